// Package branchrepo provides data transfer objects and mapping functions for
// branch persistence. Branches are reference data owned by back-office
// tooling; the booking core only reads them.
package branchrepo

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/branch"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BranchDTO represents the database structure for persisting branches.
// Coordinates are nullable; branches without them are excluded from distance
// ranking but still operate.
type BranchDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code     string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Lat      *float64  `gorm:"type:double precision"`
	Lng      *float64  `gorm:"type:double precision"`
	IsActive bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName specifies the database table name for branch entities.
func (BranchDTO) TableName() string {
	return "branches"
}

// toDomain converts a database DTO to a branch domain entity.
func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	return branch.NewBranch(id, dto.Code, dto.Name, point, dto.IsActive)
}
