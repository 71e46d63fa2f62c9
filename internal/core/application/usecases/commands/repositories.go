// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CapacityTrackerFactory provides access to the capacity tracker within a transaction.
	CapacityTrackerFactory interface {
		CapacityTracker() ports.CapacityTracker
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// UoW manages a transaction across the capacity tracker and the
	// assignment repository, so a reservation and its assignment record
	// commit or roll back as one.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tracker := uow.CapacityTracker()
	//   assignments := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CapacityTrackerFactory
		AssignmentRepoFactory
		VehicleRepoFactory
	}

	// UoWFactory creates new unit of work instances for allocation commands.
	UoWFactory interface {
		Create() UoW
	}
)
