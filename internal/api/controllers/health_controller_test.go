package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shorex/internal/models/response_models"
)

type stubPlanner struct {
	configured bool
}

func (s *stubPlanner) GenerateDayPlan(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (s *stubPlanner) Configured() bool { return s.configured }

func healthTestRouter(pingErr error, configured bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewHealthController(
		func() error { return pingErr },
		&stubPlanner{configured: configured},
	)
	r.GET("/api/health", controller.Health)
	return r
}

func getHealth(t *testing.T, r *gin.Engine) response_models.HealthResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp response_models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthAllChecksPass(t *testing.T) {
	resp := getHealth(t, healthTestRouter(nil, true))

	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "shorex", resp.Service)
	require.Equal(t, "healthy", resp.Checks.Database)
	require.Equal(t, "configured", resp.Checks.AIService)
	require.NotEmpty(t, resp.Timestamp)
}

func TestHealthDatabaseUnreachable(t *testing.T) {
	resp := getHealth(t, healthTestRouter(errors.New("connection refused"), true))

	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "unhealthy", resp.Checks.Database)
	require.Equal(t, "configured", resp.Checks.AIService)
}

func TestHealthAINotConfigured(t *testing.T) {
	resp := getHealth(t, healthTestRouter(nil, false))

	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "healthy", resp.Checks.Database)
	require.Equal(t, "not_configured", resp.Checks.AIService)
}
