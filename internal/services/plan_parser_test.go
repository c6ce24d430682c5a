package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shorex/pkg/utils"
)

// 08:00 to 18:00
var testWindow = VisitWindow{Start: 480, End: 1080}

func TestParseDayPlanFencedResponse(t *testing.T) {
	raw := "Here is your plan:\n```json\n" + validPlanJSON + "\n```\nEnjoy your day!"

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	require.Equal(t, "La Boqueria Market", activities[0].Name)
	require.Equal(t, "08:30", activities[0].StartTime)
	require.Equal(t, 90, activities[0].DurationMinutes)
}

func TestParseDayPlanBareArray(t *testing.T) {
	raw := `[
		{"order": 1, "name": "Old Town", "start_time": "09:00", "end_time": "11:00"},
		{"order": 2, "name": "Harbor", "start_time": "11:30", "end_time": "13:00"}
	]`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 2)
}

func TestParseDayPlanRenumbersOutOfOrder(t *testing.T) {
	raw := `{"activities": [
		{"order": 2, "name": "Second", "start_time": "11:00", "end_time": "12:00"},
		{"order": 1, "name": "First", "start_time": "09:00", "end_time": "10:30"},
		{"order": 3, "name": "Third", "start_time": "13:00", "end_time": "14:00"}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	require.Equal(t, "First", activities[0].Name)
	require.Equal(t, "Second", activities[1].Name)
	require.Equal(t, "Third", activities[2].Name)
	for i, a := range activities {
		require.Equal(t, i+1, a.Order)
	}
}

func TestParseDayPlanClipsToWindow(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "Early Market", "start_time": "07:00", "end_time": "09:00"},
		{"order": 2, "name": "Museum", "start_time": "10:00", "end_time": "12:00"},
		{"order": 3, "name": "Dinner", "start_time": "17:00", "end_time": "19:30"}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	require.Equal(t, "08:00", activities[0].StartTime)
	require.Equal(t, "09:00", activities[0].EndTime)
	require.Equal(t, 60, activities[0].DurationMinutes)

	require.Equal(t, "17:00", activities[2].StartTime)
	require.Equal(t, "18:00", activities[2].EndTime)
}

func TestParseDayPlanResolvesOverlaps(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "Walk", "start_time": "09:00", "end_time": "11:00"},
		{"order": 2, "name": "Lunch", "start_time": "10:30", "end_time": "12:30"}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "11:00", activities[1].StartTime)
	require.Equal(t, "12:30", activities[1].EndTime)
	require.Equal(t, 90, activities[1].DurationMinutes)
}

func TestParseDayPlanDropsUnplaceableActivities(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "", "start_time": "09:00", "end_time": "10:00"},
		{"order": 2, "name": "Bad Times", "start_time": "late morning", "end_time": "noon"},
		{"order": 3, "name": "Night Tour", "start_time": "20:00", "end_time": "22:00"},
		{"order": 4, "name": "Keeper", "start_time": "09:00", "end_time": "10:00"}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Keeper", activities[0].Name)
	require.Equal(t, 1, activities[0].Order)
}

func TestParseDayPlanAllOutsideWindowFails(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "Night Market", "start_time": "20:00", "end_time": "22:00"}
	]}`

	_, err := ParseDayPlan(raw, testWindow)
	require.ErrorIs(t, err, utils.ErrAIInvalidResponse)
}

func TestParseDayPlanNoJSONFails(t *testing.T) {
	_, err := ParseDayPlan("I'm sorry, I can't help with that.", testWindow)
	require.ErrorIs(t, err, utils.ErrAIInvalidResponse)
}

func TestParseDayPlanEmptyActivitiesFails(t *testing.T) {
	_, err := ParseDayPlan(`{"activities": []}`, testWindow)
	require.ErrorIs(t, err, utils.ErrAIInvalidResponse)
}

func TestParseDayPlanToleratesNumericStrings(t *testing.T) {
	raw := `{"activities": [
		{"order": "2", "name": "Beach", "start_time": "12:00", "end_time": "14:00", "latitude": "41.38", "longitude": "2.19", "travel_time_to_next": "15"},
		{"order": "1", "name": "Castle", "start_time": "09:00", "end_time": "11:00"}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "Castle", activities[0].Name)
	require.NotNil(t, activities[1].Latitude)
	require.InDelta(t, 41.38, *activities[1].Latitude, 0.001)
}

func TestParseDayPlanTrailingCommaRepaired(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "Plaza", "start_time": "09:00", "end_time": "10:00",},
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 1)
}

func TestParseDayPlanClearsLastTransportLeg(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "A", "start_time": "09:00", "end_time": "10:00", "transport_to_next": "walk", "travel_time_to_next": 10},
		{"order": 2, "name": "B", "start_time": "10:15", "end_time": "11:00", "transport_to_next": "taxi", "travel_time_to_next": 5}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "walk", activities[0].TransportToNext)
	require.Empty(t, activities[1].TransportToNext)
	require.Nil(t, activities[1].TravelTimeToNext)
}

func TestParseDayPlanInvalidCoordinatesDropped(t *testing.T) {
	raw := `{"activities": [
		{"order": 1, "name": "A", "start_time": "09:00", "end_time": "10:00", "latitude": 95.0, "longitude": 2.19}
	]}`

	activities, err := ParseDayPlan(raw, testWindow)
	require.NoError(t, err)
	require.Nil(t, activities[0].Latitude)
	require.Nil(t, activities[0].Longitude)
}
