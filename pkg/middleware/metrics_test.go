package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"shorex/internal/observability"
)

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/trips/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips/trip-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	observability.RecordPlanGeneration("success", 3*time.Second)

	scrape := httptest.NewRecorder()
	r.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, scrape.Code)

	body := scrape.Body.String()
	require.Contains(t, body, `shorex_http_requests_total{method="GET",route="/api/trips/:id",status="200"}`)
	require.Contains(t, body, "shorex_http_request_duration_seconds_bucket")
	require.Contains(t, body, `shorex_plans_generation_total{outcome="success"}`)
	require.Contains(t, body, "shorex_plans_generation_duration_seconds_bucket")
}
