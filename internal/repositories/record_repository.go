package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shorex/internal/models/db_models"
)

// RecordRepository is the data access layer over the single records table.
// Every method takes the caller's device id explicitly; a record owned by a
// different device behaves exactly like a missing one (nil, nil), so the
// API can never distinguish "not yours" from "not there".
type RecordRepository interface {
	PutTrip(ctx context.Context, trip *db_models.Trip) error
	GetTrip(ctx context.Context, deviceID, tripID string) (*db_models.Trip, error)
	ListTrips(ctx context.Context, deviceID string, skip, limit int) ([]db_models.Trip, error)
	DeleteTrip(ctx context.Context, deviceID, tripID string) (bool, error)

	PutPort(ctx context.Context, deviceID string, port *db_models.Port) error
	GetPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.Port, error)
	ListPorts(ctx context.Context, deviceID, tripID string) ([]db_models.Port, error)
	DeletePort(ctx context.Context, deviceID, tripID, portID string) (bool, error)

	PutPlan(ctx context.Context, plan *db_models.DayPlan) error
	GetPlanForPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.DayPlan, error)
	ListPlans(ctx context.Context, deviceID, tripID string, skip, limit int) ([]db_models.DayPlan, error)
	DeletePlanByID(ctx context.Context, deviceID, planID string) (bool, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// --- Trips ---

func (r *recordRepository) PutTrip(ctx context.Context, trip *db_models.Trip) error {
	rec, err := buildRecord(db_models.TripPK(trip.ID), db_models.MetadataSK,
		db_models.EntityTrip, trip.DeviceID, trip.CreatedAt.Unix(), trip)
	if err != nil {
		return err
	}
	return r.upsert(ctx, rec)
}

func (r *recordRepository) GetTrip(ctx context.Context, deviceID, tripID string) (*db_models.Trip, error) {
	rec, err := r.getOwned(ctx, deviceID, db_models.TripPK(tripID), db_models.MetadataSK)
	if rec == nil || err != nil {
		return nil, err
	}
	var trip db_models.Trip
	if err := json.Unmarshal(rec.Data, &trip); err != nil {
		return nil, fmt.Errorf("corrupt trip record %s: %w", tripID, err)
	}
	return &trip, nil
}

func (r *recordRepository) ListTrips(ctx context.Context, deviceID string, skip, limit int) ([]db_models.Trip, error) {
	var records []db_models.Record
	err := r.db.WithContext(ctx).
		Where("device_id = ? AND entity_type = ?", deviceID, db_models.EntityTrip).
		Order("created_sort DESC").
		Offset(skip).Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	trips := make([]db_models.Trip, 0, len(records))
	for _, rec := range records {
		var trip db_models.Trip
		if err := json.Unmarshal(rec.Data, &trip); err != nil {
			return nil, fmt.Errorf("corrupt trip record %s: %w", rec.PK, err)
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

func (r *recordRepository) DeleteTrip(ctx context.Context, deviceID, tripID string) (bool, error) {
	trip, err := r.GetTrip(ctx, deviceID, tripID)
	if err != nil {
		return false, err
	}
	if trip == nil {
		return false, nil
	}

	// Cascade: the trip's partition holds its metadata, ports and plans.
	err = r.db.WithContext(ctx).
		Where("pk = ?", db_models.TripPK(tripID)).
		Delete(&db_models.Record{}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// --- Ports ---

func (r *recordRepository) PutPort(ctx context.Context, deviceID string, port *db_models.Port) error {
	rec, err := buildRecord(db_models.TripPK(port.TripID), db_models.PortSK(port.ID),
		db_models.EntityPort, deviceID, port.CreatedAt.Unix(), port)
	if err != nil {
		return err
	}
	return r.upsert(ctx, rec)
}

func (r *recordRepository) GetPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.Port, error) {
	rec, err := r.getOwned(ctx, deviceID, db_models.TripPK(tripID), db_models.PortSK(portID))
	if rec == nil || err != nil {
		return nil, err
	}
	var port db_models.Port
	if err := json.Unmarshal(rec.Data, &port); err != nil {
		return nil, fmt.Errorf("corrupt port record %s: %w", portID, err)
	}
	return &port, nil
}

func (r *recordRepository) ListPorts(ctx context.Context, deviceID, tripID string) ([]db_models.Port, error) {
	var records []db_models.Record
	err := r.db.WithContext(ctx).
		Where("pk = ? AND entity_type = ? AND device_id = ?",
			db_models.TripPK(tripID), db_models.EntityPort, deviceID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	ports := make([]db_models.Port, 0, len(records))
	for _, rec := range records {
		var port db_models.Port
		if err := json.Unmarshal(rec.Data, &port); err != nil {
			return nil, fmt.Errorf("corrupt port record %s: %w", rec.SK, err)
		}
		ports = append(ports, port)
	}
	sort.Slice(ports, func(i, j int) bool {
		return ports[i].ArrivalTime.Before(ports[j].ArrivalTime)
	})
	return ports, nil
}

func (r *recordRepository) DeletePort(ctx context.Context, deviceID, tripID, portID string) (bool, error) {
	port, err := r.GetPort(ctx, deviceID, tripID, portID)
	if err != nil {
		return false, err
	}
	if port == nil {
		return false, nil
	}

	// The port's plan record goes with it.
	err = r.db.WithContext(ctx).
		Where("pk = ? AND sk IN ?", db_models.TripPK(tripID),
			[]string{db_models.PortSK(portID), db_models.PlanSK(portID)}).
		Delete(&db_models.Record{}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// --- Plans ---

func (r *recordRepository) PutPlan(ctx context.Context, plan *db_models.DayPlan) error {
	rec, err := buildRecord(db_models.TripPK(plan.TripID), db_models.PlanSK(plan.PortID),
		db_models.EntityPlan, plan.DeviceID, plan.GeneratedAt.Unix(), plan)
	if err != nil {
		return err
	}
	// Last write wins: regeneration replaces the previous plan wholesale.
	return r.upsert(ctx, rec)
}

func (r *recordRepository) GetPlanForPort(ctx context.Context, deviceID, tripID, portID string) (*db_models.DayPlan, error) {
	rec, err := r.getOwned(ctx, deviceID, db_models.TripPK(tripID), db_models.PlanSK(portID))
	if rec == nil || err != nil {
		return nil, err
	}
	var plan db_models.DayPlan
	if err := json.Unmarshal(rec.Data, &plan); err != nil {
		return nil, fmt.Errorf("corrupt plan record for port %s: %w", portID, err)
	}
	return &plan, nil
}

func (r *recordRepository) ListPlans(ctx context.Context, deviceID, tripID string, skip, limit int) ([]db_models.DayPlan, error) {
	q := r.db.WithContext(ctx).
		Where("device_id = ? AND entity_type = ?", deviceID, db_models.EntityPlan)
	if tripID != "" {
		q = q.Where("pk = ?", db_models.TripPK(tripID))
	}

	var records []db_models.Record
	err := q.Order("created_sort DESC").Offset(skip).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}

	plans := make([]db_models.DayPlan, 0, len(records))
	for _, rec := range records {
		var plan db_models.DayPlan
		if err := json.Unmarshal(rec.Data, &plan); err != nil {
			return nil, fmt.Errorf("corrupt plan record %s: %w", rec.SK, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *recordRepository) DeletePlanByID(ctx context.Context, deviceID, planID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("device_id = ? AND entity_type = ? AND data->>'id' = ?",
			deviceID, db_models.EntityPlan, planID).
		Delete(&db_models.Record{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --- Helpers ---

func buildRecord(pk, sk, entityType, deviceID string, createdSort int64, payload any) (*db_models.Record, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &db_models.Record{
		PK:          pk,
		SK:          sk,
		EntityType:  entityType,
		DeviceID:    deviceID,
		CreatedSort: createdSort,
		Data:        data,
	}, nil
}

func (r *recordRepository) upsert(ctx context.Context, rec *db_models.Record) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pk"}, {Name: "sk"}},
			UpdateAll: true,
		}).
		Create(rec).Error
}

// getOwned fetches the record at (pk, sk) and applies the device scope:
// missing records and records owned by another device are indistinguishable
// to the caller.
func (r *recordRepository) getOwned(ctx context.Context, deviceID, pk, sk string) (*db_models.Record, error) {
	var rec db_models.Record
	err := r.db.WithContext(ctx).
		Where("pk = ? AND sk = ?", pk, sk).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.DeviceID != deviceID {
		return nil, nil
	}
	return &rec, nil
}
