package db_models

import (
	"gorm.io/datatypes"
)

// Entity type discriminators stored in each record.
const (
	EntityTrip = "trip"
	EntityPort = "port"
	EntityPlan = "plan"
)

// Record is the single physical table every entity lives in, addressed by a
// composite partition/sort key:
//
//	Trip:    PK=TRIP#<trip_id>  SK=METADATA
//	Port:    PK=TRIP#<trip_id>  SK=PORT#<port_id>
//	DayPlan: PK=TRIP#<trip_id>  SK=PLAN#<port_id>
//
// Direct lookups hit the primary key; "list my trips" queries the device_id
// index instead of scanning. The plan key carries no plan id, so a second
// generation for the same (trip, port) overwrites the first by construction.
type Record struct {
	PK          string         `gorm:"primaryKey;size:128"`
	SK          string         `gorm:"primaryKey;size:128"`
	EntityType  string         `gorm:"size:16;index:idx_records_device,priority:2"`
	DeviceID    string         `gorm:"size:64;index:idx_records_device,priority:1"`
	CreatedSort int64          `gorm:"index"`
	Data        datatypes.JSON `gorm:"type:jsonb"`
}

func (Record) TableName() string { return "records" }

func TripPK(tripID string) string { return "TRIP#" + tripID }
func PortSK(portID string) string { return "PORT#" + portID }
func PlanSK(portID string) string { return "PLAN#" + portID }

const MetadataSK = "METADATA"
