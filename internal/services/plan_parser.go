package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shorex/internal/models/db_models"
	"shorex/pkg/utils"
)

// The planner's output is untrusted text. ParseDayPlan turns it into
// activities that provably satisfy the plan invariants, or fails with
// ErrAIInvalidResponse; nothing structurally broken is ever persisted.

// VisitWindow is the port call expressed as clock minutes since midnight.
type VisitWindow struct {
	Start int
	End   int
}

func WindowForPort(port *db_models.Port) VisitWindow {
	return VisitWindow{
		Start: utils.ClockMinutes(port.ArrivalTime),
		End:   utils.ClockMinutes(port.DepartureTime),
	}
}

// flexInt and flexFloat tolerate numbers the model emits as strings
// ("order": "2"). Structurally wrong values still fail the decode.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", string(data))
	}
	*f = flexInt(int(v))
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", string(data))
	}
	*f = flexFloat(v)
	return nil
}

type rawActivity struct {
	Order            *flexInt   `json:"order"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	DurationMinutes  *flexInt   `json:"duration_minutes"`
	Location         string     `json:"location"`
	Latitude         *flexFloat `json:"latitude"`
	Longitude        *flexFloat `json:"longitude"`
	CostEstimate     string     `json:"cost_estimate"`
	BookingURL       string     `json:"booking_url"`
	Tips             string     `json:"tips"`
	TransportToNext  string     `json:"transport_to_next"`
	TravelTimeToNext *flexInt   `json:"travel_time_to_next"`
}

type rawPlan struct {
	Activities []rawActivity `json:"activities"`
}

// ParseDayPlan extracts, repairs and validates the model's response.
func ParseDayPlan(raw string, window VisitWindow) ([]db_models.Activity, error) {
	payload := utils.ExtractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON payload in response", utils.ErrAIInvalidResponse)
	}

	items, err := decodeActivities(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIInvalidResponse, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: plan contains no activities", utils.ErrAIInvalidResponse)
	}

	// Preserve the model's relative ordering whatever order values it
	// emitted; contiguous 1..n numbering is reassigned below.
	for i := range items {
		if items[i].Order == nil {
			o := flexInt(i + 1)
			items[i].Order = &o
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return *items[i].Order < *items[j].Order })

	activities := clipToWindow(items, window)
	if len(activities) == 0 {
		return nil, fmt.Errorf("%w: no activity fits the visit window %s-%s",
			utils.ErrAIInvalidResponse, utils.FormatClock(window.Start), utils.FormatClock(window.End))
	}

	for i := range activities {
		activities[i].Order = i + 1
	}
	// The last stop has no onward leg.
	activities[len(activities)-1].TransportToNext = ""
	activities[len(activities)-1].TravelTimeToNext = nil

	return activities, nil
}

// decodeActivities accepts both the schema shape {"activities": [...]} and a
// bare array.
func decodeActivities(payload string) ([]rawActivity, error) {
	if strings.HasPrefix(strings.TrimSpace(payload), "[") {
		var items []rawActivity
		if err := json.Unmarshal([]byte(payload), &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var plan rawPlan
	if err := json.Unmarshal([]byte(payload), &plan); err != nil {
		return nil, err
	}
	return plan.Activities, nil
}

// clipToWindow drops activities that cannot be placed inside the visit
// window and trims the ones that straddle its edges. Overlaps left by the
// model are resolved by advancing the later activity's start.
func clipToWindow(items []rawActivity, window VisitWindow) []db_models.Activity {
	activities := make([]db_models.Activity, 0, len(items))
	prevEnd := window.Start

	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		start, err := utils.ParseClock(item.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseClock(item.EndTime)
		if err != nil {
			continue
		}

		if start < window.Start {
			start = window.Start
		}
		if end > window.End {
			end = window.End
		}
		if start < prevEnd {
			start = prevEnd
		}
		if start >= end {
			continue
		}
		prevEnd = end

		a := db_models.Activity{
			Name:            strings.TrimSpace(item.Name),
			Description:     strings.TrimSpace(item.Description),
			StartTime:       utils.FormatClock(start),
			EndTime:         utils.FormatClock(end),
			DurationMinutes: end - start,
			Location:        strings.TrimSpace(item.Location),
			CostEstimate:    strings.TrimSpace(item.CostEstimate),
			BookingURL:      strings.TrimSpace(item.BookingURL),
			Tips:            strings.TrimSpace(item.Tips),
			TransportToNext: strings.TrimSpace(item.TransportToNext),
		}
		if item.Latitude != nil && item.Longitude != nil {
			lat, lon := float64(*item.Latitude), float64(*item.Longitude)
			if lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 {
				a.Latitude = &lat
				a.Longitude = &lon
			}
		}
		if item.TravelTimeToNext != nil {
			tt := int(*item.TravelTimeToNext)
			if tt > 0 {
				a.TravelTimeToNext = &tt
			}
		}
		activities = append(activities, a)
	}

	return activities
}
