package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shorex/internal/models/db_models"
	"shorex/pkg/utils"
)

// forecastHorizonDays is how far ahead the provider publishes daily data.
// A visit date beyond it is a normal "no data yet" outcome, not an error.
const forecastHorizonDays = 16

const defaultWeatherBaseURL = "https://api.open-meteo.com"

type WeatherServiceInterface interface {
	GetForecast(ctx context.Context, latitude, longitude float64, date time.Time) (*db_models.WeatherSnapshot, error)
}

type WeatherService struct {
	baseURL string
	client  *http.Client
}

func NewWeatherService(baseURL string) WeatherServiceInterface {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type openMeteoDaily struct {
	Time                        []string  `json:"time"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	WeatherCode                 []int     `json:"weathercode"`
}

type openMeteoResponse struct {
	Daily openMeteoDaily `json:"daily"`
}

func (s *WeatherService) GetForecast(ctx context.Context, latitude, longitude float64, date time.Time) (*db_models.WeatherSnapshot, error) {
	day := date.UTC().Format("2006-01-02")

	daysOut := utils.DaysUntil(date)
	if daysOut < 0 || daysOut > forecastHorizonDays {
		return &db_models.WeatherSnapshot{
			Date:      day,
			Available: false,
			Reason:    fmt.Sprintf("no forecast available: date is outside the %d-day horizon", forecastHorizonDays),
		}, nil
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", longitude))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode")
	q.Set("timezone", "auto")
	q.Set("start_date", day)
	q.Set("end_date", day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", utils.ErrWeatherUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUnavailable, err)
	}

	var parsed openMeteoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response", utils.ErrWeatherUnavailable)
	}

	d := parsed.Daily
	if len(d.Time) == 0 || len(d.TemperatureMax) == 0 || len(d.TemperatureMin) == 0 {
		return &db_models.WeatherSnapshot{
			Date:      day,
			Available: false,
			Reason:    "provider returned no data for this date",
		}, nil
	}

	snapshot := &db_models.WeatherSnapshot{
		Date:      day,
		Available: true,
		TempMaxC:  &d.TemperatureMax[0],
		TempMinC:  &d.TemperatureMin[0],
	}
	if len(d.PrecipitationProbabilityMax) > 0 {
		snapshot.PrecipChancePct = &d.PrecipitationProbabilityMax[0]
	}
	if len(d.WeatherCode) > 0 {
		snapshot.WeatherCode = &d.WeatherCode[0]
	}
	return snapshot, nil
}
