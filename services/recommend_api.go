package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nate-han123/Mind-Scroll/models"
)

// RecommendAPI fetches the educational video feed for a set of interest
// topics and a duration preference.
type RecommendAPI struct {
	baseURL string
	client  *http.Client
}

func NewRecommendAPI(baseURL string, timeout time.Duration) *RecommendAPI {
	return &RecommendAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch runs one GET against the recommendations endpoint. A non-success
// envelope (success=false) is an error carrying the server message.
func (a *RecommendAPI) Fetch(topics []string, duration string) (*models.RecommendationsResponse, error) {
	q := url.Values{}
	q.Set("topics", strings.Join(topics, ","))
	if duration != "" {
		q.Set("duration", duration)
	}

	u := fmt.Sprintf("%s/api/intellectual/recommendations?%s", a.baseURL, q.Encode())
	resp, err := a.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call recommendations API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendations response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}

	var rr models.RecommendationsResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations JSON: %w", err)
	}
	if !rr.Success {
		msg := rr.Message
		if msg == "" {
			msg = "failed to fetch videos"
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}
	return &rr, nil
}
