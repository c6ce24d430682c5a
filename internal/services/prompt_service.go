package services

import (
	"fmt"
	"strings"

	"shorex/internal/models/db_models"
	"shorex/pkg/utils"
)

// PromptServiceInterface builds the generation prompt. The output is a pure
// function of its inputs: no randomness and no wall clock beyond the visit
// date already carried by the port.
type PromptServiceInterface interface {
	BuildDayPlanPrompt(trip *db_models.Trip, port *db_models.Port, prefs db_models.Preferences, weather *db_models.WeatherSnapshot) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// planSchema is embedded in every prompt so the model is told the exact JSON
// shape to return. The validator parses against the same shape.
const planSchema = `{
  "activities": [
    {
      "order": 1,
      "name": "string",
      "description": "string",
      "start_time": "HH:MM",
      "end_time": "HH:MM",
      "duration_minutes": 90,
      "location": "string",
      "latitude": 41.38,
      "longitude": 2.19,
      "cost_estimate": "string with currency",
      "booking_url": "string or omit",
      "tips": "string or omit",
      "transport_to_next": "string, omit on the last activity",
      "travel_time_to_next": 15
    }
  ]
}`

func (p *PromptService) BuildDayPlanPrompt(trip *db_models.Trip, port *db_models.Port, prefs db_models.Preferences, weather *db_models.WeatherSnapshot) string {
	arrival := utils.FormatClock(utils.ClockMinutes(port.ArrivalTime))
	departure := utils.FormatClock(utils.ClockMinutes(port.DepartureTime))
	minActivities, maxActivities := activityCountRange(port, prefs.ActivityLevel)

	var b strings.Builder

	fmt.Fprintf(&b, "Create a shore day plan for a cruise passenger visiting %s, %s on %s.\n\n",
		port.Name, port.Country, port.ArrivalTime.Format("2006-01-02"))

	fmt.Fprintf(&b, "Ship: %s", trip.ShipName)
	if trip.CruiseLine != "" {
		fmt.Fprintf(&b, " (%s)", trip.CruiseLine)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "In port: %s to %s (ship local time)\n", arrival, departure)
	fmt.Fprintf(&b, "Port coordinates: %.4f, %.4f\n\n", port.Latitude, port.Longitude)

	b.WriteString("Traveler preferences:\n")
	fmt.Fprintf(&b, "- Party: %s\n", prefs.PartyType)
	fmt.Fprintf(&b, "- Activity level: %s\n", prefs.ActivityLevel)
	fmt.Fprintf(&b, "- Transport: %s\n", prefs.TransportMode)
	fmt.Fprintf(&b, "- Budget: %s (prices in %s)\n\n", prefs.Budget, prefs.Currency)

	if weather != nil && weather.Available {
		b.WriteString("Forecast for the day:\n")
		if weather.TempMaxC != nil && weather.TempMinC != nil {
			fmt.Fprintf(&b, "- Temperature %.0f-%.0f C\n", *weather.TempMinC, *weather.TempMaxC)
		}
		if weather.PrecipChancePct != nil {
			fmt.Fprintf(&b, "- Chance of precipitation %.0f%%\n", *weather.PrecipChancePct)
		}
		b.WriteString("\n")
	}

	b.WriteString("HARD CONSTRAINTS:\n")
	fmt.Fprintf(&b, "1. The first activity starts at or after %s and the last ends at or before %s.\n", arrival, departure)
	b.WriteString("2. The day implicitly starts and ends at the cruise ship terminal; plan walking or transfers from and back to it.\n")
	fmt.Fprintf(&b, "3. Plan %d to %d activities with no overlapping time windows.\n", minActivities, maxActivities)
	b.WriteString("4. Leave enough buffer to be back on board before departure.\n")
	b.WriteString("5. Times are HH:MM, order values are 1,2,3,... with no gaps.\n")
	fmt.Fprintf(&b, "6. Tag every cost_estimate with %s.\n\n", prefs.Currency)

	b.WriteString("Return ONLY valid JSON matching this exact schema, no markdown, no extra text:\n")
	b.WriteString(planSchema)

	return b.String()
}

// activityCountRange scales the requested stop count with the visit length
// and the traveler's pace: roughly one stop per 2.5h at a light pace up to
// one per 1.5h at an intensive one, always at least 2-3.
func activityCountRange(port *db_models.Port, activityLevel string) (int, int) {
	visitHours := port.DepartureTime.Sub(port.ArrivalTime).Hours()

	var perStopHours float64
	switch activityLevel {
	case "light":
		perStopHours = 2.5
	case "moderate":
		perStopHours = 2.0
	case "active":
		perStopHours = 1.75
	default: // intensive
		perStopHours = 1.5
	}

	max := int(visitHours / perStopHours)
	if max < 3 {
		max = 3
	}
	min := max - 1
	if min < 2 {
		min = 2
	}
	return min, max
}
