package services

import (
	"context"
	"sort"
	"time"

	"shorex/internal/models/db_models"
)

// fakeRecordRepository is an in-memory stand-in for the records table with
// the same device scoping behavior: foreign records read as nil, nil.
type fakeRecordRepository struct {
	trips      map[string]*db_models.Trip
	ports      map[string]*db_models.Port
	portOwners map[string]string
	plans      map[string]*db_models.DayPlan
	err        error

	putPlanCalls int
}

func newFakeRepo() *fakeRecordRepository {
	return &fakeRecordRepository{
		trips:      make(map[string]*db_models.Trip),
		ports:      make(map[string]*db_models.Port),
		portOwners: make(map[string]string),
		plans:      make(map[string]*db_models.DayPlan),
	}
}

func portKey(tripID, portID string) string { return tripID + "/" + portID }

func (f *fakeRecordRepository) PutTrip(_ context.Context, trip *db_models.Trip) error {
	if f.err != nil {
		return f.err
	}
	cp := *trip
	f.trips[trip.ID] = &cp
	return nil
}

func (f *fakeRecordRepository) GetTrip(_ context.Context, deviceID, tripID string) (*db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	trip, ok := f.trips[tripID]
	if !ok || trip.DeviceID != deviceID {
		return nil, nil
	}
	cp := *trip
	return &cp, nil
}

func (f *fakeRecordRepository) ListTrips(_ context.Context, deviceID string, skip, limit int) ([]db_models.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var trips []db_models.Trip
	for _, trip := range f.trips {
		if trip.DeviceID == deviceID {
			trips = append(trips, *trip)
		}
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].CreatedAt.After(trips[j].CreatedAt) })
	if skip >= len(trips) {
		return []db_models.Trip{}, nil
	}
	trips = trips[skip:]
	if len(trips) > limit {
		trips = trips[:limit]
	}
	return trips, nil
}

func (f *fakeRecordRepository) DeleteTrip(_ context.Context, deviceID, tripID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	trip, ok := f.trips[tripID]
	if !ok || trip.DeviceID != deviceID {
		return false, nil
	}
	delete(f.trips, tripID)
	for key, port := range f.ports {
		if port.TripID == tripID {
			delete(f.ports, key)
			delete(f.portOwners, key)
		}
	}
	for key, plan := range f.plans {
		if plan.TripID == tripID {
			delete(f.plans, key)
		}
	}
	return true, nil
}

func (f *fakeRecordRepository) PutPort(_ context.Context, deviceID string, port *db_models.Port) error {
	if f.err != nil {
		return f.err
	}
	cp := *port
	key := portKey(port.TripID, port.ID)
	f.ports[key] = &cp
	f.portOwners[key] = deviceID
	return nil
}

func (f *fakeRecordRepository) GetPort(_ context.Context, deviceID, tripID, portID string) (*db_models.Port, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := portKey(tripID, portID)
	port, ok := f.ports[key]
	if !ok || f.portOwners[key] != deviceID {
		return nil, nil
	}
	cp := *port
	return &cp, nil
}

func (f *fakeRecordRepository) ListPorts(_ context.Context, deviceID, tripID string) ([]db_models.Port, error) {
	if f.err != nil {
		return nil, f.err
	}
	var ports []db_models.Port
	for key, port := range f.ports {
		if port.TripID == tripID && f.portOwners[key] == deviceID {
			ports = append(ports, *port)
		}
	}
	sort.Slice(ports, func(i, j int) bool { return ports[i].ArrivalTime.Before(ports[j].ArrivalTime) })
	return ports, nil
}

func (f *fakeRecordRepository) DeletePort(_ context.Context, deviceID, tripID, portID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := portKey(tripID, portID)
	if _, ok := f.ports[key]; !ok || f.portOwners[key] != deviceID {
		return false, nil
	}
	delete(f.ports, key)
	delete(f.portOwners, key)
	delete(f.plans, key)
	return true, nil
}

func (f *fakeRecordRepository) PutPlan(_ context.Context, plan *db_models.DayPlan) error {
	if f.err != nil {
		return f.err
	}
	f.putPlanCalls++
	cp := *plan
	f.plans[portKey(plan.TripID, plan.PortID)] = &cp
	return nil
}

func (f *fakeRecordRepository) GetPlanForPort(_ context.Context, deviceID, tripID, portID string) (*db_models.DayPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	plan, ok := f.plans[portKey(tripID, portID)]
	if !ok || plan.DeviceID != deviceID {
		return nil, nil
	}
	cp := *plan
	return &cp, nil
}

func (f *fakeRecordRepository) ListPlans(_ context.Context, deviceID, tripID string, skip, limit int) ([]db_models.DayPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	var plans []db_models.DayPlan
	for _, plan := range f.plans {
		if plan.DeviceID != deviceID {
			continue
		}
		if tripID != "" && plan.TripID != tripID {
			continue
		}
		plans = append(plans, *plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].GeneratedAt.After(plans[j].GeneratedAt) })
	if skip >= len(plans) {
		return []db_models.DayPlan{}, nil
	}
	plans = plans[skip:]
	if len(plans) > limit {
		plans = plans[:limit]
	}
	return plans, nil
}

func (f *fakeRecordRepository) DeletePlanByID(_ context.Context, deviceID, planID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for key, plan := range f.plans {
		if plan.ID == planID && plan.DeviceID == deviceID {
			delete(f.plans, key)
			return true, nil
		}
	}
	return false, nil
}

// fakePlanner returns canned responses or errors in sequence, one per call.
type fakePlanner struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakePlanner) GenerateDayPlan(_ context.Context, _ string) (string, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", nil
}

func (f *fakePlanner) Configured() bool { return true }

type fakeWeather struct {
	snapshot *db_models.WeatherSnapshot
	err      error
}

func (f *fakeWeather) GetForecast(_ context.Context, _, _ float64, date time.Time) (*db_models.WeatherSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.snapshot != nil {
		return f.snapshot, nil
	}
	return &db_models.WeatherSnapshot{Date: date.UTC().Format("2006-01-02"), Available: true}, nil
}
