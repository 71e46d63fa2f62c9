// Package loadrepo tracks per-vehicle capacity in PostgreSQL. The
// vehicle_loads table holds the only mutable shared state of the core;
// Reserve and Release take a row lock so concurrent reservations against the
// same vehicle serialize while different vehicles proceed independently.
package loadrepo

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleLoadDTO represents the database structure for a vehicle's current
// load. One row per vehicle; a missing row means an empty load.
type VehicleLoadDTO struct {
	VehicleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentLoadKg   float64   `gorm:"type:double precision;not null;default:0"`
	CurrentVolumeM3 float64   `gorm:"type:double precision;not null;default:0"`
	OrderCount      int       `gorm:"type:int;not null;default:0"`
}

// TableName specifies the database table name for load records.
func (VehicleLoadDTO) TableName() string {
	return "vehicle_loads"
}

// fromDomain converts a load domain entity to its database representation.
func fromDomain(load *vehicle.Load) VehicleLoadDTO {
	return VehicleLoadDTO{
		VehicleID:       load.VehicleID().Bytes(),
		CurrentLoadKg:   load.CurrentLoadKg(),
		CurrentVolumeM3: load.CurrentVolumeM3(),
		OrderCount:      load.OrderCount(),
	}
}

// toDomain converts a database DTO to a load domain entity.
func toDomain(dto VehicleLoadDTO) (*vehicle.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreLoad(id, dto.CurrentLoadKg, dto.CurrentVolumeM3, dto.OrderCount)
}
