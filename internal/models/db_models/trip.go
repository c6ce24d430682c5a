package db_models

import "time"

// Trip is a cruise owned by one device. Ports are separate records under the
// trip's partition key, not embedded here.
type Trip struct {
	ID         string    `json:"id"`
	DeviceID   string    `json:"device_id"`
	ShipName   string    `json:"ship_name"`
	CruiseLine string    `json:"cruise_line,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
