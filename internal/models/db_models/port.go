package db_models

import "time"

// Port is one call on a trip's itinerary. ArrivalTime < DepartureTime is
// enforced at write time by the port service.
type Port struct {
	ID            string    `json:"id"`
	TripID        string    `json:"trip_id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ArrivalTime   time.Time `json:"arrival_time"`
	DepartureTime time.Time `json:"departure_time"`
	CreatedAt     time.Time `json:"created_at"`
}
