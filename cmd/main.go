package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "github.com/nate-han123/Mind-Scroll/config"
	"github.com/nate-han123/Mind-Scroll/controllers"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/routes"
	"github.com/nate-han123/Mind-Scroll/services"
	"github.com/nate-han123/Mind-Scroll/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatalw("JWT_SECRET is required")
	}

	var store services.SessionStore
	if cfg.DB.Host != "" {
		db, err := appconfig.OpenDB(cfg)
		if err != nil {
			log.Fatalw("failed to open database", "error", err)
		}
		store = services.NewGormSessionStore(db)
		log.Infow("session store: postgres", "host", cfg.DB.Host)
	} else {
		store = services.NewMemorySessionStore()
		log.Warnw("no DB_HOST configured, sessions are in-memory and lost on restart")
	}

	hub := services.NewRealtimeHub()
	hub.WatchStore(store)

	base := cfg.Upstream.BaseURL
	timeout := cfg.Upstream.Timeout

	authSvc := services.NewAuthService(
		services.NewAuthAPI(base, timeout),
		store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log,
	)
	profileSvc := services.NewProfileService(services.NewProfileAPI(base, timeout), log)
	summarySvc := services.NewSummaryService(services.NewSummaryAPI(base, timeout), log)
	feedSvc := services.NewFeedService(services.NewRecommendAPI(base, timeout), log)
	visionAPI := services.NewVisionAPI(base, timeout)

	var uploader *utils.Uploader
	var rek controllers.FoodLabelDetector
	if cfg.AWS.Region != "" && cfg.AWS.S3Bucket != "" {
		uploader, err = utils.NewUploader(cfg.AWS.Region, cfg.AWS.S3Bucket, cfg.AWS.CloudFrontURL)
		if err != nil {
			log.Fatalw("failed to set up S3 uploader", "error", err)
		}
		rek, err = services.NewRekognitionService(cfg.AWS.Region)
		if err != nil {
			log.Fatalw("failed to set up Rekognition", "error", err)
		}
	} else {
		log.Warnw("AWS not configured, image archive and label fallback disabled")
	}

	r := routes.SetupRouter(authSvc, routes.Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Logs:     controllers.NewLogController(),
		Summary:  controllers.NewSummaryController(summarySvc),
		Profile:  controllers.NewProfileController(profileSvc, uploader),
		Feed:     controllers.NewFeedController(feedSvc),
		Food:     controllers.NewFoodImageController(visionAPI, rek, uploader, log),
		Realtime: controllers.NewRealtimeController(hub),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Infow("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
}
