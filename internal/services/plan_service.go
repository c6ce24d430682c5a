package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"shorex/internal/models/db_models"
	"shorex/internal/models/request_models"
	"shorex/internal/observability"
	"shorex/internal/repositories"
	"shorex/pkg/utils"
)

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, deviceID string, req request_models.GeneratePlanRequest) (*db_models.DayPlan, error)
	GetPlanForPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.DayPlan, error)
	ListPlans(ctx context.Context, deviceID, tripID string, page, pageSize int) ([]db_models.DayPlan, error)
	DeletePlan(ctx context.Context, deviceID, planID string) error
}

// PlanService orchestrates one generation request: ownership checks, prompt
// construction, the LLM call with the weather lookup alongside, response
// validation and the final write. Planner failures are recovered into a
// persisted failed plan so the client always gets a durable, classified
// outcome.
type PlanService struct {
	repo                 repositories.RecordRepository
	prompts              PromptServiceInterface
	planner              utils.PlannerClientInterface
	weather              WeatherServiceInterface
	affiliate            AffiliateServiceInterface
	retryInvalidResponse bool
}

func NewPlanService(
	repo repositories.RecordRepository,
	prompts PromptServiceInterface,
	planner utils.PlannerClientInterface,
	weather WeatherServiceInterface,
	affiliate AffiliateServiceInterface,
	retryInvalidResponse bool,
) PlanServiceInterface {
	return &PlanService{
		repo:                 repo,
		prompts:              prompts,
		planner:              planner,
		weather:              weather,
		affiliate:            affiliate,
		retryInvalidResponse: retryInvalidResponse,
	}
}

func (s *PlanService) GeneratePlan(ctx context.Context, deviceID string, req request_models.GeneratePlanRequest) (*db_models.DayPlan, error) {
	trip, err := s.repo.GetTrip(ctx, deviceID, req.TripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	port, err := s.repo.GetPort(ctx, deviceID, req.TripID, req.PortID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if port == nil {
		return nil, utils.ErrPortNotFound
	}

	if err := req.Preferences.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	// A disconnecting client must not abort the generation: the LLM call is
	// billed either way, and the UI polls for the persisted result. The
	// planner and weather clients bound their own calls.
	genCtx := context.WithoutCancel(ctx)

	weatherCh := make(chan *db_models.WeatherSnapshot, 1)
	go func() {
		weatherCh <- s.fetchWeather(genCtx, port)
	}()

	prompt := s.prompts.BuildDayPlanPrompt(trip, port, req.Preferences, nil)
	log.Printf("Generating day plan for port %s (trip %s)", port.ID, trip.ID)

	genStart := time.Now()
	activities, genErr := s.generateActivities(genCtx, prompt, WindowForPort(port))
	weather := <-weatherCh

	plan := &db_models.DayPlan{
		ID:          uuid.New().String(),
		TripID:      req.TripID,
		PortID:      req.PortID,
		DeviceID:    deviceID,
		Preferences: req.Preferences,
		GeneratedAt: utils.NowUTC(),
		Weather:     weather,
	}

	if genErr != nil {
		body := utils.ClassifyAIError(genErr)
		plan.Status = db_models.PlanStatusFailed
		plan.Activities = []db_models.Activity{}
		plan.Error = &db_models.PlanError{
			Error:           body.Error,
			Message:         body.Message,
			Troubleshooting: body.Troubleshooting,
			RetryAfter:      body.RetryAfter,
		}
		log.Printf("Day plan generation failed for port %s: %s", port.ID, body.Error)
		observability.RecordPlanGeneration("error", time.Since(genStart))
	} else {
		plan.Status = db_models.PlanStatusSucceeded
		plan.Activities = s.affiliate.WrapActivities(activities)
		log.Printf("Day plan generated for port %s with %d activities", port.ID, len(activities))
		observability.RecordPlanGeneration("success", time.Since(genStart))
	}

	if err := s.repo.PutPlan(genCtx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

// generateActivities runs the LLM call and validation, optionally retrying
// once when the response fails validation. Provider errors (quota, timeout,
// not configured) are never retried here; that is the client's call.
func (s *PlanService) generateActivities(ctx context.Context, prompt string, window VisitWindow) ([]db_models.Activity, error) {
	raw, err := s.planner.GenerateDayPlan(ctx, prompt)
	if err != nil {
		return nil, err
	}

	activities, err := ParseDayPlan(raw, window)
	if err == nil {
		return activities, nil
	}
	if !s.retryInvalidResponse || !errors.Is(err, utils.ErrAIInvalidResponse) {
		return nil, err
	}

	log.Printf("Plan response failed validation, retrying once: %v", err)
	raw, retryErr := s.planner.GenerateDayPlan(ctx, prompt)
	if retryErr != nil {
		return nil, retryErr
	}
	return ParseDayPlan(raw, window)
}

func (s *PlanService) fetchWeather(ctx context.Context, port *db_models.Port) *db_models.WeatherSnapshot {
	snapshot, err := s.weather.GetForecast(ctx, port.Latitude, port.Longitude, port.ArrivalTime)
	if err != nil {
		// Best effort only; a failed lookup never fails the plan.
		log.Printf("Weather lookup failed for port %s: %v", port.ID, err)
		return &db_models.WeatherSnapshot{
			Date:      port.ArrivalTime.UTC().Format("2006-01-02"),
			Available: false,
			Reason:    "weather service unavailable",
		}
	}
	return snapshot
}

func (s *PlanService) GetPlanForPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.DayPlan, error) {
	plan, err := s.repo.GetPlanForPort(ctx, deviceID, tripID, portID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) ListPlans(ctx context.Context, deviceID, tripID string, page, pageSize int) ([]db_models.DayPlan, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	plans, err := s.repo.ListPlans(ctx, deviceID, tripID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, deviceID, planID string) error {
	deleted, err := s.repo.DeletePlanByID(ctx, deviceID, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPlanNotFound
	}
	return nil
}
