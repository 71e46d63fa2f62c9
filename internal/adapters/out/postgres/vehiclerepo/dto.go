// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. Vehicle definitions are immutable during an
// allocation cycle; only their loads change, and those live behind the
// capacity tracker.
package vehiclerepo

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// definitions. Type and route scope are stored by name so the rows stay
// readable in back-office queries.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	BranchID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type           string    `gorm:"type:varchar(32);not null"`
	MaxLoadKg      float64   `gorm:"type:double precision;not null"`
	MaxVolumeM3    float64   `gorm:"type:double precision;not null"`
	MaxLengthCm    float64   `gorm:"type:double precision"`
	MaxWidthCm     float64   `gorm:"type:double precision"`
	MaxHeightCm    float64   `gorm:"type:double precision"`
	SupportedGoods []string  `gorm:"type:jsonb;serializer:json"`
	RouteScope     string    `gorm:"type:varchar(32);not null"`
	IsActive       bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// toDomain converts a database DTO to a vehicle domain entity.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := vehicle.VehicleTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	routeScope, err := geo.RouteScopeFromString(dto.RouteScope)
	if err != nil {
		return nil, err
	}

	maxDims := shipment.Dimensions{
		LengthCm: dto.MaxLengthCm,
		WidthCm:  dto.MaxWidthCm,
		HeightCm: dto.MaxHeightCm,
	}

	return vehicle.NewVehicle(id, dto.Code, branchID, vehicleType,
		dto.MaxLoadKg, dto.MaxVolumeM3, maxDims, dto.SupportedGoods,
		routeScope, dto.IsActive)
}
