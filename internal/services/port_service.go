package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"shorex/internal/models/db_models"
	"shorex/internal/models/request_models"
	"shorex/internal/repositories"
	"shorex/pkg/utils"
)

type PortServiceInterface interface {
	AddPort(ctx context.Context, deviceID, tripID string, req request_models.CreatePortRequest) (*db_models.Port, error)
	UpdatePort(ctx context.Context, deviceID, tripID, portID string, req request_models.UpdatePortRequest) (*db_models.Port, error)
	DeletePort(ctx context.Context, deviceID, tripID, portID string) error
}

type PortService struct {
	repo repositories.RecordRepository
}

func NewPortService(repo repositories.RecordRepository) PortServiceInterface {
	return &PortService{repo: repo}
}

func (s *PortService) AddPort(ctx context.Context, deviceID, tripID string, req request_models.CreatePortRequest) (*db_models.Port, error) {
	trip, err := s.repo.GetTrip(ctx, deviceID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	port := &db_models.Port{
		ID:            uuid.New().String(),
		TripID:        tripID,
		Name:          req.Name,
		Country:       req.Country,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		CreatedAt:     utils.NowUTC(),
	}
	if err := validatePort(port); err != nil {
		return nil, err
	}

	if err := s.repo.PutPort(ctx, deviceID, port); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return port, nil
}

func (s *PortService) UpdatePort(ctx context.Context, deviceID, tripID, portID string, req request_models.UpdatePortRequest) (*db_models.Port, error) {
	port, err := s.repo.GetPort(ctx, deviceID, tripID, portID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if port == nil {
		return nil, utils.ErrPortNotFound
	}

	if req.Name != nil {
		port.Name = *req.Name
	}
	if req.Country != nil {
		port.Country = *req.Country
	}
	if req.Latitude != nil {
		port.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		port.Longitude = *req.Longitude
	}
	if req.ArrivalTime != nil {
		port.ArrivalTime = *req.ArrivalTime
	}
	if req.DepartureTime != nil {
		port.DepartureTime = *req.DepartureTime
	}
	if err := validatePort(port); err != nil {
		return nil, err
	}

	if err := s.repo.PutPort(ctx, deviceID, port); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return port, nil
}

func (s *PortService) DeletePort(ctx context.Context, deviceID, tripID, portID string) error {
	deleted, err := s.repo.DeletePort(ctx, deviceID, tripID, portID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPortNotFound
	}
	return nil
}

func validatePort(port *db_models.Port) error {
	if port.Name == "" {
		return fmt.Errorf("%w: port name is required", utils.ErrInvalidInput)
	}
	if port.Latitude < -90 || port.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", utils.ErrInvalidInput)
	}
	if port.Longitude < -180 || port.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", utils.ErrInvalidInput)
	}
	if !port.ArrivalTime.Before(port.DepartureTime) {
		return fmt.Errorf("%w: arrival_time must be before departure_time", utils.ErrInvalidInput)
	}
	return nil
}
