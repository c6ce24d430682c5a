package db_models

import (
	"fmt"
	"time"
)

// Plan lifecycle states. Only terminal states are ever returned to clients.
const (
	PlanStatusPending   = "pending"
	PlanStatusSucceeded = "succeeded"
	PlanStatusFailed    = "failed"
)

// Preference vocabularies.
var (
	PartyTypes     = []string{"solo", "couple", "family"}
	ActivityLevels = []string{"light", "moderate", "active", "intensive"}
	TransportModes = []string{"walking", "public_transport", "taxi", "mixed"}
	BudgetLevels   = []string{"free", "low", "medium", "high"}
)

// Preferences is a value object snapshotted into each DayPlan; it is never
// persisted on its own.
type Preferences struct {
	PartyType     string `json:"party_type"`
	ActivityLevel string `json:"activity_level"`
	TransportMode string `json:"transport_mode"`
	Budget        string `json:"budget"`
	Currency      string `json:"currency"`
}

func (p Preferences) Validate() error {
	if !oneOf(p.PartyType, PartyTypes) {
		return fmt.Errorf("party_type must be one of %v", PartyTypes)
	}
	if !oneOf(p.ActivityLevel, ActivityLevels) {
		return fmt.Errorf("activity_level must be one of %v", ActivityLevels)
	}
	if !oneOf(p.TransportMode, TransportModes) {
		return fmt.Errorf("transport_mode must be one of %v", TransportModes)
	}
	if !oneOf(p.Budget, BudgetLevels) {
		return fmt.Errorf("budget must be one of %v", BudgetLevels)
	}
	if len(p.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code")
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Activity is one stop in a day plan. Times are "HH:MM" clock strings within
// the port visit window. TransportToNext is absent on the last activity.
type Activity struct {
	Order            int      `json:"order"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	DurationMinutes  int      `json:"duration_minutes"`
	Location         string   `json:"location,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	CostEstimate     string   `json:"cost_estimate,omitempty"`
	BookingURL       string   `json:"booking_url,omitempty"`
	Tips             string   `json:"tips,omitempty"`
	TransportToNext  string   `json:"transport_to_next,omitempty"`
	TravelTimeToNext *int     `json:"travel_time_to_next,omitempty"`
}

// WeatherSnapshot is the best-effort forecast captured alongside a plan.
// Available is false when the date is beyond the forecast horizon or the
// provider was unreachable.
type WeatherSnapshot struct {
	Date             string   `json:"date"`
	Available        bool     `json:"available"`
	Reason           string   `json:"reason,omitempty"`
	TempMaxC         *float64 `json:"temp_max_c,omitempty"`
	TempMinC         *float64 `json:"temp_min_c,omitempty"`
	PrecipChancePct  *float64 `json:"precip_chance_pct,omitempty"`
	WeatherCode      *int     `json:"weather_code,omitempty"`
}

// PlanError is the structured failure detail persisted on a failed plan.
type PlanError struct {
	Error           string `json:"error"`
	Message         string `json:"message"`
	Troubleshooting string `json:"troubleshooting,omitempty"`
	RetryAfter      *int   `json:"retry_after"`
}

// DayPlan is the generated itinerary for one port visit. Exactly one exists
// per (trip_id, port_id); regeneration replaces it wholesale.
type DayPlan struct {
	ID          string           `json:"id"`
	TripID      string           `json:"trip_id"`
	PortID      string           `json:"port_id"`
	DeviceID    string           `json:"device_id"`
	Preferences Preferences      `json:"preferences"`
	GeneratedAt time.Time        `json:"generated_at"`
	Status      string           `json:"status"`
	Activities  []Activity       `json:"activities"`
	Weather     *WeatherSnapshot `json:"weather,omitempty"`
	Error       *PlanError       `json:"error,omitempty"`
}
