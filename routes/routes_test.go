package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nate-han123/Mind-Scroll/controllers"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
	"github.com/nate-han123/Mind-Scroll/services"
)

// upstream stub answering every external endpoint the app proxies to.
func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in services.LoginInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "secret" {
			http.Error(w, `{"detail":"Incorrect email or password"}`, http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"user_id":"u1","name":"Ada","nickname":"ada"}`))
	})
	mux.HandleFunc("/generate-personalized-summary", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"food_agent": {"calories": 400, "nutrition_score": 8, "comment": "nice"},
			"exercise_agent": {"calories_burned": 150, "note": "ok"},
			"lifestyle_agent": {"wellness_score": 3, "advice": "sleep more"},
			"orchestrator_summary": {"overall_health_score": 6, "summary": "fine", "recommendations": []}
		}`))
	})
	mux.HandleFunc("/api/intellectual/recommendations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "data": [{"id": "v1", "title": "t", "category": "Science"}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := newUpstream(t).URL
	timeout := time.Second
	log := logger.NewNop()
	store := services.NewMemorySessionStore()

	authSvc := services.NewAuthService(services.NewAuthAPI(base, timeout), store, "test-secret", time.Hour, log)
	hub := services.NewRealtimeHub()
	hub.WatchStore(store)

	return SetupRouter(authSvc, Controllers{
		Auth:     controllers.NewAuthController(authSvc),
		Logs:     controllers.NewLogController(),
		Summary:  controllers.NewSummaryController(services.NewSummaryService(services.NewSummaryAPI(base, timeout), log)),
		Profile:  controllers.NewProfileController(services.NewProfileService(services.NewProfileAPI(base, timeout), log), nil),
		Feed:     controllers.NewFeedController(services.NewFeedService(services.NewRecommendAPI(base, timeout), log)),
		Food:     controllers.NewFoodImageController(services.NewVisionAPI(base, timeout), nil, nil, log),
		Realtime: controllers.NewRealtimeController(hub),
	})
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(r, http.MethodPost, "/auth/login", "", gin.H{"email": "ada@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/summary", "/logs/meals", "/feed/state", "/user/profile"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, w.Body.String(), `"redirect":"/login"`, path)
	}

	w := do(r, http.MethodGet, "/summary", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectionRelaysDetail(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodPost, "/auth/login", "", gin.H{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email or password")
}

func TestMealLogLifecycle(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(r, http.MethodPost, "/logs/meals", token, gin.H{"entry": "oatmeal"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodPost, "/logs/meals", token, gin.H{"entry": "salad"})
	require.Equal(t, http.StatusOK, w.Code)

	// blank entries never make it in
	w = do(r, http.MethodPost, "/logs/meals", token, gin.H{"entry": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/logs/meals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Entries []string `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"oatmeal", "salad"}, res.Entries)

	w = do(r, http.MethodDelete, "/logs/meals/0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/logs/meals/9", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/logs/meals", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, []string{"salad"}, res.Entries)
}

func TestSummaryAfterLogging(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// nothing logged: placeholder, no_data
	w := do(r, http.MethodGet, "/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"no_data":true`)

	do(r, http.MethodPost, "/logs/meals", token, gin.H{"entry": "oatmeal"})

	w = do(r, http.MethodGet, "/summary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"no_data":false`)
	assert.Contains(t, body, "sleep more")
	// wellness score 3 sits in the red band
	assert.Contains(t, body, "Needs Attention")
}

func TestFeedFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// browsing before setup is refused
	w := do(r, http.MethodGet, "/feed", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPut, "/feed/interests", token, gin.H{"interests": []string{"Science", "Art"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/feed/interests", token, gin.H{"interests": []string{"Science", "Art", "Music"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/feed/duration", token, gin.H{"duration": "short"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"browsing"`)

	w = do(r, http.MethodGet, "/feed", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"v1"`)

	w = do(r, http.MethodPost, "/feed/like/v1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)

	w = do(r, http.MethodGet, "/feed/liked", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"v1"`)

	// backing out returns the session to interest selection
	w = do(r, http.MethodPost, "/feed/reset", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"selecting_interests"`)

	w = do(r, http.MethodGet, "/feed", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLifestyleStressLevelBounds(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := do(r, http.MethodPut, "/logs/lifestyle", token, gin.H{"sleep_hours": 7, "stress_level": 11})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 0 is the unset zero value, accepted
	w = do(r, http.MethodPut, "/logs/lifestyle", token, gin.H{"sleep_hours": 7, "stress_level": 0})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, "/logs/lifestyle", token, gin.H{"sleep_hours": 7, "stress_level": 4})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/logs/lifestyle", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stress_level":4`)
}

func TestLogoutDropsTheSession(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	do(r, http.MethodPost, "/logs/meals", token, gin.H{"entry": "toast"})

	w := do(r, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)

	// the old token no longer opens anything
	w = do(r, http.MethodGet, "/logs/meals", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}
