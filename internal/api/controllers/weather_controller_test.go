package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"shorex/internal/models/db_models"
	"shorex/pkg/utils"
)

type stubWeatherService struct {
	snapshot *db_models.WeatherSnapshot
	err      error
}

func (s *stubWeatherService) GetForecast(_ context.Context, _, _ float64, _ time.Time) (*db_models.WeatherSnapshot, error) {
	return s.snapshot, s.err
}

func weatherTestRouter(svc *stubWeatherService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/weather", NewWeatherController(svc).GetForecast)
	return r
}

func TestWeatherEndpointSuccess(t *testing.T) {
	tmax := 25.0
	r := weatherTestRouter(&stubWeatherService{snapshot: &db_models.WeatherSnapshot{
		Date:      "2026-09-10",
		Available: true,
		TempMaxC:  &tmax,
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/weather?latitude=41.38&longitude=2.17&date=2026-09-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
}

func TestWeatherEndpointValidatesParams(t *testing.T) {
	r := weatherTestRouter(&stubWeatherService{})

	for _, q := range []string{
		"latitude=abc&longitude=2.17&date=2026-09-10",
		"latitude=95&longitude=2.17&date=2026-09-10",
		"latitude=41.38&longitude=-200&date=2026-09-10",
		"latitude=41.38&longitude=2.17&date=tomorrow",
		"longitude=2.17&date=2026-09-10",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/weather?"+q, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestWeatherEndpointUpstreamFailure(t *testing.T) {
	r := weatherTestRouter(&stubWeatherService{err: utils.ErrWeatherUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/weather?latitude=41.38&longitude=2.17&date=2026-09-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, utils.KindWeatherUnavail, resp.Error.Error)
}
