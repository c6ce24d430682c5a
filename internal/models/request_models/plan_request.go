package request_models

import "shorex/internal/models/db_models"

type GeneratePlanRequest struct {
	TripID      string                `json:"trip_id" binding:"required"`
	PortID      string                `json:"port_id" binding:"required"`
	Preferences db_models.Preferences `json:"preferences" binding:"required"`
}
