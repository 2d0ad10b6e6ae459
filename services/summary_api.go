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

// SummaryAPI calls the personalized-summary endpoint. One request per
// summary view; no caching, no retries, no de-duplication.
type SummaryAPI struct {
	baseURL string
	client  *http.Client
}

func NewSummaryAPI(baseURL string, timeout time.Duration) *SummaryAPI {
	return &SummaryAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type SummaryRequest struct {
	UserID    string           `json:"user_id"`
	Meals     []string         `json:"meals"`
	Exercises []string         `json:"exercises"`
	Lifestyle models.Lifestyle `json:"lifestyle"`
}

func (a *SummaryAPI) Generate(req SummaryRequest) (*models.DailySummary, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary payload: %w", err)
	}

	resp, err := a.client.Post(
		a.baseURL+"/generate-personalized-summary",
		"application/json",
		bytes.NewReader(b),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to call summary API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}

	var summary models.DailySummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary JSON: %w", err)
	}
	if summary.OrchestratorSummary.Recommendations == nil {
		summary.OrchestratorSummary.Recommendations = []string{}
	}
	return &summary, nil
}
