package ports

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
)

// CapacityTracker manages the only mutable shared state of the core: the
// per-vehicle load rows. Reserve and Release must serialize per vehicle, so
// that concurrent reservations against the same vehicle never overshoot its
// capacity, while operations on different vehicles proceed independently.
type CapacityTracker interface {
	// GetLoad returns the current load of a vehicle. A vehicle without a
	// load row yet is reported as empty.
	GetLoad(ctx context.Context, vehicleID kernel.UUID) (*vehicle.Load, error)

	// GetLoads returns the current loads of the given vehicles, in the same
	// order as the ids.
	GetLoads(ctx context.Context, vehicleIDs []kernel.UUID) ([]*vehicle.Load, error)

	// Reserve atomically adds the shipment's weight and volume to the
	// vehicle's load. Fails with vehicle.ErrCapacityExceeded when either
	// limit would be crossed, leaving the load unchanged.
	Reserve(ctx context.Context, v *vehicle.Vehicle, weightKg float64, volumeM3 float64) (*vehicle.Load, error)

	// Release atomically subtracts a previous reservation from the
	// vehicle's load. Fails with vehicle.ErrReleaseExceedsLoad when the
	// load does not hold that much.
	Release(ctx context.Context, vehicleID kernel.UUID, weightKg float64, volumeM3 float64) (*vehicle.Load, error)
}
