package vehicle

import (
	"errors"
	"fmt"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// Domain errors for load operations.
var (
	// ErrLoadIsNotConstructed is returned when using an improperly initialized Load.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructors")

	// ErrCapacityExceeded is returned when a reservation would push the current
	// load above the vehicle's weight or volume limit. It is deliberately a
	// distinct error kind from "no eligible vehicle": callers react by
	// refreshing suggestions, not by retrying the same vehicle.
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")

	// ErrReleaseExceedsLoad is returned when a release would drive the current
	// load negative, which indicates an unbalanced reserve/release pairing.
	ErrReleaseExceedsLoad = errors.New("release exceeds current load")
)

// Load is the mutable per-vehicle utilization record: current weight, current
// volume and the number of orders riding on the vehicle. It is the only
// mutable shared state in the allocation core.
//
// Invariants, held at rest and never violated by a successful Reserve:
//
//	currentLoadKg   ≤ vehicle.MaxLoadKg()
//	currentVolumeM3 ≤ vehicle.MaxVolumeM3()
//
// Load itself is not safe for concurrent use; the CapacityTracker adapters
// serialize access per vehicle (mutex map in memory, row lock in postgres).
type Load struct {
	vehicleID       kernel.UUID
	currentLoadKg   float64
	currentVolumeM3 float64
	orderCount      int
	guard           guard.ConstructorGuard
}

// NewLoad creates an empty load record for a vehicle. A vehicle with no load
// record is treated as zero-load, so this is also the restore path for
// vehicles that were never reserved.
func NewLoad(vehicleID kernel.UUID) (*Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	return &Load{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreLoad reconstructs a load record from persistence.
// Current values must not be negative.
func RestoreLoad(vehicleID kernel.UUID, currentLoadKg float64, currentVolumeM3 float64, orderCount int) (*Load, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}
	if currentLoadKg < 0 {
		return nil, errs.NewValueIsInvalidError("currentLoadKg")
	}
	if currentVolumeM3 < 0 {
		return nil, errs.NewValueIsInvalidError("currentVolumeM3")
	}
	if orderCount < 0 {
		return nil, errs.NewValueIsInvalidError("orderCount")
	}

	return &Load{
		vehicleID:       vehicleID,
		currentLoadKg:   currentLoadKg,
		currentVolumeM3: currentVolumeM3,
		orderCount:      orderCount,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Load was properly constructed.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// VehicleID returns the vehicle this load record belongs to.
func (l *Load) VehicleID() kernel.UUID {
	return l.vehicleID
}

// CurrentLoadKg returns the reserved weight in kilograms.
func (l *Load) CurrentLoadKg() float64 {
	return l.currentLoadKg
}

// CurrentVolumeM3 returns the reserved volume in cubic meters.
func (l *Load) CurrentVolumeM3() float64 {
	return l.currentVolumeM3
}

// OrderCount returns the number of orders currently riding on the vehicle.
func (l *Load) OrderCount() int {
	return l.orderCount
}

// RemainingWeightKg returns the free weight capacity against the given vehicle.
func (l *Load) RemainingWeightKg(v *Vehicle) float64 {
	return v.MaxLoadKg() - l.currentLoadKg
}

// RemainingVolumeM3 returns the free volume capacity against the given vehicle.
func (l *Load) RemainingVolumeM3(v *Vehicle) float64 {
	return v.MaxVolumeM3() - l.currentVolumeM3
}

// CanReserve reports whether the given weight and volume still fit the vehicle.
func (l *Load) CanReserve(v *Vehicle, weightKg float64, volumeM3 float64) (bool, error) {
	if err := errors.Join(l.Validate(), v.Validate()); err != nil {
		return false, err
	}

	return l.currentLoadKg+weightKg <= v.MaxLoadKg() &&
		l.currentVolumeM3+volumeM3 <= v.MaxVolumeM3(), nil
}

// Reserve adds the given weight and volume to the load and increments the
// order count. The check and the mutation are a single step on the entity;
// callers must hold whatever per-vehicle serialization the tracker provides.
// On ErrCapacityExceeded the load is left completely unchanged.
func (l *Load) Reserve(v *Vehicle, weightKg float64, volumeM3 float64) error {
	if err := errors.Join(l.Validate(), v.Validate()); err != nil {
		return err
	}
	if weightKg < 0 || volumeM3 < 0 {
		return errs.NewValueIsInvalidError("reservation")
	}

	if l.currentLoadKg+weightKg > v.MaxLoadKg() {
		return fmt.Errorf("%w: weight %.2f+%.2f exceeds %.2f kg on vehicle %s",
			ErrCapacityExceeded, l.currentLoadKg, weightKg, v.MaxLoadKg(), v.Code())
	}
	if l.currentVolumeM3+volumeM3 > v.MaxVolumeM3() {
		return fmt.Errorf("%w: volume %.4f+%.4f exceeds %.4f m³ on vehicle %s",
			ErrCapacityExceeded, l.currentVolumeM3, volumeM3, v.MaxVolumeM3(), v.Code())
	}

	l.currentLoadKg += weightKg
	l.currentVolumeM3 += volumeM3
	l.orderCount++
	return nil
}

// Release removes a previously reserved weight and volume and decrements the
// order count. Releasing more than is currently loaded fails with
// ErrReleaseExceedsLoad and leaves the record unchanged.
func (l *Load) Release(weightKg float64, volumeM3 float64) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if weightKg < 0 || volumeM3 < 0 {
		return errs.NewValueIsInvalidError("release")
	}

	if weightKg > l.currentLoadKg || volumeM3 > l.currentVolumeM3 || l.orderCount == 0 {
		return fmt.Errorf("%w: release %.2f kg/%.4f m³ from %.2f kg/%.4f m³",
			ErrReleaseExceedsLoad, weightKg, volumeM3, l.currentLoadKg, l.currentVolumeM3)
	}

	l.currentLoadKg -= weightKg
	l.currentVolumeM3 -= volumeM3
	l.orderCount--
	return nil
}
