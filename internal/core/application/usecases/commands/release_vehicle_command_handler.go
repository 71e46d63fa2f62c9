package commands

import (
	"context"
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// ErrAssignmentNotFound is returned when the order has no active assignment
// to release.
var ErrAssignmentNotFound = errors.New("order has no active assignment")

// ReleaseVehicleCommandHandler returns reserved capacity to a vehicle. The
// assignment flip and the load decrement happen in one transaction, so the
// reservation can never be returned twice or only halfway.
type ReleaseVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseVehicleCommandHandler creates a handler for release operations.
func NewReleaseVehicleCommandHandler(uowFactory UoWFactory) ReleaseVehicleCommandHandler {
	return ReleaseVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the release command. Fails with ErrAssignmentNotFound
// when the order holds no active assignment.
func (h ReleaseVehicleCommandHandler) Handle(ctx context.Context, command ReleaseVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignments := uow.AssignmentRepository()

	assignment, err := assignments.GetActiveByOrderID(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrAssignmentNotFound
	}
	if err != nil {
		return err
	}

	if err := assignment.Release(); err != nil {
		return err
	}

	if _, err := uow.CapacityTracker().Release(ctx,
		assignment.VehicleID(), assignment.WeightKg(), assignment.VolumeM3()); err != nil {
		return err
	}

	if err := assignments.Update(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
