// Package memory provides an in-memory CapacityTracker for tests and local
// development. It mirrors the postgres tracker's semantics: per-vehicle
// serialization with independent progress across vehicles, backed by a mutex
// map instead of row locks.
package memory

import (
	"context"
	"sync"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
)

// CapacityTracker tracks per-vehicle loads in memory.
type CapacityTracker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	loads map[string]*vehicle.Load
}

// NewCapacityTracker creates an empty in-memory tracker.
func NewCapacityTracker() *CapacityTracker {
	return &CapacityTracker{
		locks: make(map[string]*sync.Mutex),
		loads: make(map[string]*vehicle.Load),
	}
}

// GetLoad returns a copy of the current load of a vehicle. A vehicle that
// was never reserved is reported as empty.
func (t *CapacityTracker) GetLoad(_ context.Context, vehicleID kernel.UUID) (*vehicle.Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	lock := t.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	return t.snapshot(vehicleID)
}

// GetLoads returns copies of the current loads of the given vehicles, in the
// same order as the ids.
func (t *CapacityTracker) GetLoads(ctx context.Context, vehicleIDs []kernel.UUID) ([]*vehicle.Load, error) {
	loads := make([]*vehicle.Load, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		load, err := t.GetLoad(ctx, id)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	return loads, nil
}

// Reserve atomically adds the shipment's weight and volume to the vehicle's
// load. Fails with vehicle.ErrCapacityExceeded when either limit would be
// crossed, leaving the load unchanged.
func (t *CapacityTracker) Reserve(_ context.Context, v *vehicle.Vehicle, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	lock := t.vehicleLock(v.ID())
	lock.Lock()
	defer lock.Unlock()

	load, err := t.current(v.ID())
	if err != nil {
		return nil, err
	}

	if err := load.Reserve(v, weightKg, volumeM3); err != nil {
		return nil, err
	}

	return t.snapshot(v.ID())
}

// Release atomically subtracts a previous reservation from the vehicle's
// load. Fails with vehicle.ErrReleaseExceedsLoad when the load does not hold
// that much.
func (t *CapacityTracker) Release(_ context.Context, vehicleID kernel.UUID, weightKg float64, volumeM3 float64) (*vehicle.Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	lock := t.vehicleLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	load, err := t.current(vehicleID)
	if err != nil {
		return nil, err
	}

	if err := load.Release(weightKg, volumeM3); err != nil {
		return nil, err
	}

	return t.snapshot(vehicleID)
}

// vehicleLock returns the mutex guarding one vehicle's load, creating it on
// first use.
func (t *CapacityTracker) vehicleLock(vehicleID kernel.UUID) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := vehicleID.String()
	lock, ok := t.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		t.locks[key] = lock
	}
	return lock
}

// current returns the stored load entity, creating an empty one on first
// use. Callers must hold the vehicle's lock.
func (t *CapacityTracker) current(vehicleID kernel.UUID) (*vehicle.Load, error) {
	key := vehicleID.String()
	load, ok := t.loads[key]
	if !ok {
		created, err := vehicle.NewLoad(vehicleID)
		if err != nil {
			return nil, err
		}
		t.loads[key] = created
		load = created
	}
	return load, nil
}

// snapshot returns a detached copy of the stored load, so callers can read
// it without racing later reservations. Callers must hold the vehicle's lock.
func (t *CapacityTracker) snapshot(vehicleID kernel.UUID) (*vehicle.Load, error) {
	load, err := t.current(vehicleID)
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreLoad(load.VehicleID(), load.CurrentLoadKg(),
		load.CurrentVolumeM3(), load.OrderCount())
}
