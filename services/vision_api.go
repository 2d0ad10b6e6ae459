package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/nate-han123/Mind-Scroll/models"
)

// VisionAPI uploads food photos to the external analysis endpoint and
// relays prediction corrections back to it.
type VisionAPI struct {
	baseURL string
	client  *http.Client
}

func NewVisionAPI(baseURL string, timeout time.Duration) *VisionAPI {
	return &VisionAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// AnalyzeImage posts the image as multipart form data under the "image"
// field, which is the only field name the endpoint accepts.
func (a *VisionAPI) AnalyzeImage(filename, contentType string, data []byte) (*models.FoodAnalysis, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write image part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, a.baseURL+"/api/food/analyze-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}

	var analysis models.FoodAnalysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse vision JSON: %w", err)
	}
	return &analysis, nil
}

// SendFeedback posts a user correction. Callers fire and forget: a failure
// here is logged, never shown.
func (a *VisionAPI) SendFeedback(fb models.FoodFeedback) error {
	b, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback payload: %w", err)
	}

	resp, err := a.client.Post(a.baseURL+"/api/food/feedback", "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to call feedback API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}
	return nil
}
