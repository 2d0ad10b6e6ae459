package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nate-han123/Mind-Scroll/models"
)

// ProfileAPI talks to the external profile endpoint. An update is always a
// full replace; the response carries the rebuilt user plus a freshly
// generated goal, and both overwrite the stored record wholesale.
type ProfileAPI struct {
	baseURL string
	client  *http.Client
}

func NewProfileAPI(baseURL string, timeout time.Duration) *ProfileAPI {
	return &ProfileAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ProfileUpdate is the full-replace payload. Every field is sent on every
// submit; there is no partial patching.
type ProfileUpdate struct {
	UserID                string   `json:"user_id"`
	Name                  string   `json:"name"`
	Age                   int      `json:"age"`
	Gender                string   `json:"gender"`
	Weight                float64  `json:"weight"`
	Height                float64  `json:"height"`
	ActivityLevel         string   `json:"activity_level"`
	PrimaryHealthGoal     string   `json:"primary_health_goal"`
	Motivation            string   `json:"motivation"`
	LifestyleVision       string   `json:"lifestyle_vision"`
	IntellectualInterests []string `json:"intellectual_interests"`
	LearningStyle         string   `json:"learning_style"`
	TimeAvailability      string   `json:"time_availability"`
	Nickname              string   `json:"nickname"`
	Avatar                string   `json:"avatar"`
}

type profileUpdateResponse struct {
	User models.SessionUser `json:"user"`
	Goal *models.Goal       `json:"goal"`
}

// Update sends the full-replace payload and returns the new session record
// with the regenerated goal attached.
func (a *ProfileAPI) Update(update ProfileUpdate) (*models.SessionUser, error) {
	b, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, a.baseURL+"/user/profile", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call profile API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}

	var pr profileUpdateResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	user := pr.User
	// The goal is replaced as a whole, never merged field-by-field.
	user.Goal = pr.Goal
	if user.Profile == nil {
		user.Profile = &models.Profile{
			Age:                   update.Age,
			Gender:                update.Gender,
			Weight:                update.Weight,
			Height:                update.Height,
			ActivityLevel:         update.ActivityLevel,
			PrimaryHealthGoal:     update.PrimaryHealthGoal,
			Motivation:            update.Motivation,
			LifestyleVision:       update.LifestyleVision,
			IntellectualInterests: update.IntellectualInterests,
			LearningStyle:         update.LearningStyle,
			TimeAvailability:      update.TimeAvailability,
		}
	}
	return &user, nil
}
