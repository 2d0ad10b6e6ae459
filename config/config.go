package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nate-han123/Mind-Scroll/models"
)

type Config struct {
	Server struct {
		Port string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}
	Upstream struct {
		// Base URL of the Mind-Scroll analysis API (auth, profile,
		// summary, recommendations, vision, feedback).
		BaseURL string
		Timeout time.Duration
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	AWS struct {
		Region        string
		S3Bucket      string
		CloudFrontURL string
	}
}

// Load reads configuration from .env / environment variables, with viper
// providing defaults and optional config-file overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("Server.Port", "8080")
	v.SetDefault("DB.Host", "")
	v.SetDefault("DB.Port", "5432")
	v.SetDefault("DB.User", "postgres")
	v.SetDefault("DB.Password", "postgres")
	v.SetDefault("DB.DBName", "mindscroll")
	v.SetDefault("DB.SSLMode", "disable")
	v.SetDefault("Upstream.BaseURL", "https://mind-scroll-production.up.railway.app")
	v.SetDefault("Upstream.Timeout", 10*time.Second)
	v.SetDefault("Auth.TokenTTL", 72*time.Hour)

	v.AutomaticEnv()
	_ = v.BindEnv("Server.Port", "SERVER_PORT")
	_ = v.BindEnv("DB.Host", "DB_HOST")
	_ = v.BindEnv("DB.Port", "DB_PORT")
	_ = v.BindEnv("DB.User", "DB_USER")
	_ = v.BindEnv("DB.Password", "DB_PASSWORD")
	_ = v.BindEnv("DB.DBName", "DB_NAME")
	_ = v.BindEnv("DB.SSLMode", "DB_SSL_MODE")
	_ = v.BindEnv("Upstream.BaseURL", "UPSTREAM_BASE_URL")
	_ = v.BindEnv("Auth.JWTSecret", "JWT_SECRET")
	_ = v.BindEnv("AWS.Region", "AWS_REGION")
	_ = v.BindEnv("AWS.S3Bucket", "S3_BUCKET")
	_ = v.BindEnv("AWS.CloudFrontURL", "CLOUDFRONT_URL")

	// Config file is optional; env vars alone are enough.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// OpenDB connects to Postgres and migrates the session-entry table.
// Callers should treat an empty DB.Host as "run without a database".
func OpenDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.DBName,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.SessionEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}
	return db, nil
}
