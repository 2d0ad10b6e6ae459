package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/services"
)

type fakeDetector struct {
	labels []string
	err    error
}

func (d fakeDetector) DetectFoodLabels(data []byte) ([]string, error) {
	return d.labels, d.err
}

func newFoodRouter(t *testing.T, handler http.Handler, rek FoodLabelDetector) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	fic := NewFoodImageController(services.NewVisionAPI(srv.URL, time.Second), rek, nil, logger.NewNop())
	r := gin.New()
	r.POST("/food/analyze-image", fic.Analyze)
	r.POST("/food/feedback", fic.Feedback)
	return r
}

func photoRequest(t *testing.T, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/food/analyze-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyzePassesResultThrough(t *testing.T) {
	imageBytes := []byte("jpeg-bytes")
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/food/analyze-image", req.URL.Path)
		file, header, err := req.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "lunch.jpg", header.Filename)

		var got bytes.Buffer
		_, err = got.ReadFrom(file)
		require.NoError(t, err)
		assert.Equal(t, imageBytes, got.Bytes())

		json.NewEncoder(w).Encode(models.FoodAnalysis{
			Success:         true,
			FoodItems:       []string{"rice", "salmon"},
			FreeModel:       true,
			UpgradeRequired: true,
			DetailedAnalysis: []models.DetailedFoodItem{
				{Name: "salmon", Portion: "150g", Description: "grilled"},
			},
		})
	}), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, photoRequest(t, "lunch.jpg", "image/jpeg", imageBytes))

	require.Equal(t, http.StatusOK, w.Code)
	var analysis models.FoodAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.True(t, analysis.Success)
	assert.Equal(t, []string{"rice", "salmon"}, analysis.FoodItems)
	// the upstream's model flags reach the client untouched
	assert.True(t, analysis.FreeModel)
	assert.True(t, analysis.UpgradeRequired)
	assert.False(t, analysis.Fallback)
}

func TestAnalyzeUpstreamDownWithoutFallbackAnalyzer(t *testing.T) {
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"detail":"vision service down"}`, http.StatusServiceUnavailable)
	}), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, photoRequest(t, "lunch.jpg", "image/jpeg", []byte("x")))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "vision service down")
}

func TestAnalyzeFallsBackToLabelDetection(t *testing.T) {
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"detail":"quota exceeded"}`, http.StatusTooManyRequests)
	}), fakeDetector{labels: []string{"Pizza", "Cheese"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, photoRequest(t, "dinner.jpg", "image/jpeg", []byte("x")))

	require.Equal(t, http.StatusOK, w.Code)
	var analysis models.FoodAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.True(t, analysis.Success)
	assert.True(t, analysis.Fallback)
	assert.Equal(t, []string{"Pizza", "Cheese"}, analysis.FoodItems)
	assert.Empty(t, analysis.DetailedAnalysis)
}

func TestAnalyzeSurfacesErrorWhenFallbackFails(t *testing.T) {
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, `{"detail":"vision service down"}`, http.StatusServiceUnavailable)
	}), fakeDetector{err: errors.New("no labels detected")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, photoRequest(t, "dinner.jpg", "image/jpeg", []byte("x")))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "vision service down")
}

func TestAnalyzeRequiresImageFile(t *testing.T) {
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("upstream must not be called without a file")
	}), nil)

	req := httptest.NewRequest(http.MethodPost, "/food/analyze-image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackAnswers202AndRelays(t *testing.T) {
	relayed := make(chan models.FoodFeedback, 1)
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/api/food/feedback", req.URL.Path)
		var fb models.FoodFeedback
		require.NoError(t, json.NewDecoder(req.Body).Decode(&fb))
		relayed <- fb
		// the relay failing must never reach the client
		http.Error(w, "feedback store down", http.StatusInternalServerError)
	}), nil)

	body, _ := json.Marshal(models.FoodFeedback{
		ImageHash:      "abc123",
		AIPrediction:   []string{"rice"},
		UserCorrection: "fried rice",
	})
	req := httptest.NewRequest(http.MethodPost, "/food/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	select {
	case fb := <-relayed:
		assert.Equal(t, "abc123", fb.ImageHash)
		assert.Equal(t, "fried rice", fb.UserCorrection)
	case <-time.After(2 * time.Second):
		t.Fatal("feedback was never relayed upstream")
	}
}

func TestFeedbackRejectsMalformedBody(t *testing.T) {
	r := newFoodRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("upstream must not be called for a malformed body")
	}), nil)

	req := httptest.NewRequest(http.MethodPost, "/food/feedback", bytes.NewReader([]byte(`{broken`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
