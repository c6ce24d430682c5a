package response_models

import "shorex/internal/models/db_models"

// TripDetailResponse is a trip with its ports in itinerary order.
type TripDetailResponse struct {
	db_models.Trip
	Ports []db_models.Port `json:"ports"`
}
