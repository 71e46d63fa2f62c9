// Package assignmentrepo provides data transfer objects and mapping
// functions for assignment persistence. This package implements the
// repository pattern for the assignment aggregate, handling the conversion
// between domain entities and database representations.
package assignmentrepo

import (
	"time"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. The order reference comes from the order service and is opaque
// here; status is stored by name so the rows stay readable.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    string    `gorm:"type:varchar(64);not null;index"`
	VehicleID  uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID   uuid.UUID `gorm:"type:uuid;not null"`
	AssignedBy string    `gorm:"type:varchar(64);not null"`
	WeightKg   float64   `gorm:"type:double precision;not null"`
	VolumeM3   float64   `gorm:"type:double precision;not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(assignment *allocation.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         assignment.ID().Bytes(),
		OrderID:    assignment.OrderID(),
		VehicleID:  assignment.VehicleID().Bytes(),
		BranchID:   assignment.BranchID().Bytes(),
		AssignedBy: assignment.AssignedBy(),
		WeightKg:   assignment.WeightKg(),
		VolumeM3:   assignment.VolumeM3(),
		Status:     assignment.Status().String(),
		CreatedAt:  assignment.CreatedAt(),
	}
}

// toDomain converts a database DTO to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*allocation.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	status, err := allocation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAssignment(id, dto.OrderID, vehicleID, branchID,
		dto.AssignedBy, dto.WeightKg, dto.VolumeM3, status, dto.CreatedAt)
}
