// Package allocation contains the Assignment aggregate: the durable record of
// a vehicle reserved for an order, written when an order is confirmed and
// flipped to released when the order is cancelled or delivered.
package allocation

import (
	"errors"
	"strings"
	"time"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// Status is the lifecycle state of an assignment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota
	// StatusActive means the vehicle capacity is reserved for the order.
	StatusActive
	// StatusReleased means the reservation was returned to the vehicle.
	StatusReleased
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusActive:   "active",
		StatusReleased: "released",
	}
}

// StatusFromString parses an assignment status string ("active", "released").
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == strings.ToLower(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusReleased:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

// String returns the lowercase status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

	// ErrAssignmentAlreadyReleased is returned when releasing an assignment twice.
	ErrAssignmentAlreadyReleased = errors.New("assignment is already released")
)

// Assignment is the aggregate recording that a vehicle carries an order. It
// holds the exact weight and volume that were reserved so a later release
// returns precisely what was taken, regardless of how the manifest would be
// priced at that time.
type Assignment struct {
	id         kernel.UUID
	orderID    string
	vehicleID  kernel.UUID
	branchID   kernel.UUID
	assignedBy string
	weightKg   float64
	volumeM3   float64
	status     Status
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewAssignment creates an active assignment for an order. The order id is
// the external order reference and must be non-blank; assignedBy names the
// actor that made the reservation; weight and volume must not be negative.
func NewAssignment(
	id kernel.UUID,
	orderID string,
	vehicleID kernel.UUID,
	branchID kernel.UUID,
	assignedBy string,
	weightKg float64,
	volumeM3 float64,
) (*Assignment, error) {
	assignment := &Assignment{
		status:    StatusActive,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignment.setID(id),
		assignment.setOrderID(orderID),
		assignment.setVehicleID(vehicleID),
		assignment.setBranchID(branchID),
		assignment.setAssignedBy(assignedBy),
		assignment.setReservation(weightKg, volumeM3),
	); err != nil {
		return nil, err
	}

	return assignment, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id kernel.UUID,
	orderID string,
	vehicleID kernel.UUID,
	branchID kernel.UUID,
	assignedBy string,
	weightKg float64,
	volumeM3 float64,
	status Status,
	createdAt time.Time,
) (*Assignment, error) {
	assignment, err := NewAssignment(id, orderID, vehicleID, branchID, assignedBy, weightKg, volumeM3)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	assignment.status = status
	assignment.createdAt = createdAt
	return assignment, nil
}

// Validate checks if the Assignment was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two assignments by id.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the external order reference.
func (a *Assignment) OrderID() string {
	return a.orderID
}

// VehicleID returns the assigned vehicle's id.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// BranchID returns the id of the branch the vehicle belongs to.
func (a *Assignment) BranchID() kernel.UUID {
	return a.branchID
}

// AssignedBy returns the actor that made the reservation.
func (a *Assignment) AssignedBy() string {
	return a.assignedBy
}

// WeightKg returns the reserved chargeable weight.
func (a *Assignment) WeightKg() float64 {
	return a.weightKg
}

// VolumeM3 returns the reserved volume.
func (a *Assignment) VolumeM3() float64 {
	return a.volumeM3
}

// Status returns the lifecycle state.
func (a *Assignment) Status() Status {
	return a.status
}

// CreatedAt returns when the assignment was created, in UTC.
func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}

// IsActive reports whether the reservation is still held.
func (a *Assignment) IsActive() bool {
	return a.status == StatusActive
}

// Release marks the assignment released. Releasing twice is an error so the
// caller never returns capacity to the vehicle more than once.
func (a *Assignment) Release() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status == StatusReleased {
		return ErrAssignmentAlreadyReleased
	}
	a.status = StatusReleased
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID", err)
	}
	a.vehicleID = vehicleID
	return nil
}

func (a *Assignment) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}
	a.branchID = branchID
	return nil
}

func (a *Assignment) setAssignedBy(assignedBy string) error {
	if strings.TrimSpace(assignedBy) == "" {
		return errs.NewValueIsRequiredError("assignedBy")
	}
	a.assignedBy = assignedBy
	return nil
}

func (a *Assignment) setReservation(weightKg float64, volumeM3 float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidError("volumeM3")
	}
	a.weightKg = weightKg
	a.volumeM3 = volumeM3
	return nil
}
