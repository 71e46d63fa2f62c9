package commands

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

var ErrReleaseVehicleCommandIsNotConstructed = errors.New(
	"ReleaseVehicleCommand must be created via NewReleaseVehicleCommand constructor",
)

// ReleaseVehicleCommand returns a reservation to the vehicle when an order is
// cancelled or delivered. The release restores exactly the weight and volume
// recorded on the assignment.
type ReleaseVehicleCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

// NewReleaseVehicleCommand creates a validated release command.
func NewReleaseVehicleCommand(orderID string) (ReleaseVehicleCommand, error) {
	if strings.TrimSpace(orderID) == "" {
		return ReleaseVehicleCommand{}, errs.NewValueIsRequiredError("orderID")
	}
	return ReleaseVehicleCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseVehicleCommandIsNotConstructed if validation fails.
func (c *ReleaseVehicleCommand) Validate() error {
	return c.guard.Validate(ErrReleaseVehicleCommandIsNotConstructed)
}

// OrderID returns the external order reference.
func (c *ReleaseVehicleCommand) OrderID() string {
	return c.orderID
}
