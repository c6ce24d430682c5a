package request_models

import "time"

type CreatePortRequest struct {
	Name          string    `json:"name" binding:"required"`
	Country       string    `json:"country" binding:"required"`
	Latitude      float64   `json:"latitude" binding:"min=-90,max=90"`
	Longitude     float64   `json:"longitude" binding:"min=-180,max=180"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
}

type UpdatePortRequest struct {
	Name          *string    `json:"name"`
	Country       *string    `json:"country"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	DepartureTime *time.Time `json:"departure_time"`
}
