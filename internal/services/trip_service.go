package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shorex/internal/models/db_models"
	"shorex/internal/models/request_models"
	"shorex/internal/models/response_models"
	"shorex/internal/repositories"
	"shorex/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, deviceID string, req request_models.CreateTripRequest) (*db_models.Trip, error)
	ListTrips(ctx context.Context, deviceID string, page, pageSize int) ([]db_models.Trip, error)
	GetTripDetail(ctx context.Context, deviceID, tripID string) (*response_models.TripDetailResponse, error)
	UpdateTrip(ctx context.Context, deviceID, tripID string, req request_models.UpdateTripRequest) (*db_models.Trip, error)
	DeleteTrip(ctx context.Context, deviceID, tripID string) error
}

type TripService struct {
	repo repositories.RecordRepository
}

func NewTripService(repo repositories.RecordRepository) TripServiceInterface {
	return &TripService{repo: repo}
}

func (s *TripService) CreateTrip(ctx context.Context, deviceID string, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	if req.ShipName == "" {
		return nil, fmt.Errorf("%w: ship_name is required", utils.ErrInvalidInput)
	}

	now := utils.NowUTC()
	trip := &db_models.Trip{
		ID:         uuid.New().String(),
		DeviceID:   deviceID,
		ShipName:   req.ShipName,
		CruiseLine: req.CruiseLine,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.PutTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, deviceID string, page, pageSize int) ([]db_models.Trip, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := s.repo.ListTrips(ctx, deviceID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, deviceID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.repo.GetTrip(ctx, deviceID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	ports, err := s.repo.ListPorts(ctx, deviceID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripDetailResponse{Trip: *trip, Ports: ports}, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, deviceID, tripID string, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := s.repo.GetTrip(ctx, deviceID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.ShipName != nil {
		if *req.ShipName == "" {
			return nil, fmt.Errorf("%w: ship_name cannot be empty", utils.ErrInvalidInput)
		}
		trip.ShipName = *req.ShipName
	}
	if req.CruiseLine != nil {
		trip.CruiseLine = *req.CruiseLine
	}
	trip.UpdatedAt = utils.NowUTC()

	if err := s.repo.PutTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, deviceID, tripID string) error {
	deleted, err := s.repo.DeleteTrip(ctx, deviceID, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrTripNotFound
	}
	return nil
}
