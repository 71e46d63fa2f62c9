package commands

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand reserves a vehicle for a confirmed order. It carries
// the order reference, the raw sender and receiver addresses, the service
// type and the package manifest; the handler resolves addresses, matches the
// fleet and reserves capacity on the best-ranked vehicle.
//
// branchID is optional: when blank the handler scopes the fleet to the
// branch serving the sender address. vehicleID is optional: when set the
// handler assigns that exact vehicle instead of ranking, after checking it
// against the same matching and capacity rules. assignedBy names the actor
// making the assignment and defaults to "system" when blank.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand("ORD-1042",
//	    "phố Huế, Hà Nội", "Nguyễn Huệ, TPHCM",
//	    shipment.ServiceTypeStandard, manifest, "", "", "dispatcher-7")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type AssignVehicleCommand struct {
	orderID         string
	senderAddress   string
	receiverAddress string
	serviceType     shipment.ServiceType
	manifest        shipment.Manifest
	branchID        *kernel.UUID
	vehicleID       *kernel.UUID
	assignedBy      string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a validated assignment command.
func NewAssignVehicleCommand(
	orderID string,
	senderAddress string,
	receiverAddress string,
	serviceType shipment.ServiceType,
	manifest shipment.Manifest,
	branchID string,
	vehicleID string,
	assignedBy string,
) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAddresses(senderAddress, receiverAddress),
		command.setShipment(serviceType, manifest),
		command.setBranchID(branchID),
		command.setVehicleID(vehicleID),
		command.setAssignedBy(assignedBy),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c *AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// OrderID returns the external order reference.
func (c *AssignVehicleCommand) OrderID() string {
	return c.orderID
}

// SenderAddress returns the raw pickup address text.
func (c *AssignVehicleCommand) SenderAddress() string {
	return c.senderAddress
}

// ReceiverAddress returns the raw delivery address text.
func (c *AssignVehicleCommand) ReceiverAddress() string {
	return c.receiverAddress
}

// ServiceType returns the requested delivery product.
func (c *AssignVehicleCommand) ServiceType() shipment.ServiceType {
	return c.serviceType
}

// Manifest returns the package manifest.
func (c *AssignVehicleCommand) Manifest() shipment.Manifest {
	return c.manifest
}

// BranchID returns the requested branch, or nil when the handler should pick
// the branch serving the sender address.
func (c *AssignVehicleCommand) BranchID() *kernel.UUID {
	return c.branchID
}

// VehicleID returns the directly requested vehicle, or nil for ranked
// selection.
func (c *AssignVehicleCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// AssignedBy returns the actor making the assignment.
func (c *AssignVehicleCommand) AssignedBy() string {
	return c.assignedBy
}

func (c *AssignVehicleCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *AssignVehicleCommand) setAddresses(sender string, receiver string) error {
	if strings.TrimSpace(sender) == "" {
		return errs.NewValueIsRequiredError("senderAddress")
	}
	if strings.TrimSpace(receiver) == "" {
		return errs.NewValueIsRequiredError("receiverAddress")
	}
	c.senderAddress = sender
	c.receiverAddress = receiver
	return nil
}

func (c *AssignVehicleCommand) setShipment(serviceType shipment.ServiceType, manifest shipment.Manifest) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return err
	}
	c.serviceType = serviceType
	c.manifest = manifest
	return nil
}

func (c *AssignVehicleCommand) setBranchID(branchID string) error {
	if strings.TrimSpace(branchID) == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(branchID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}
	c.branchID = &id
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(vehicleID string) error {
	if strings.TrimSpace(vehicleID) == "" {
		return nil
	}
	id, err := kernel.UUIDFromString(vehicleID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID", err)
	}
	c.vehicleID = &id
	return nil
}

func (c *AssignVehicleCommand) setAssignedBy(assignedBy string) error {
	if strings.TrimSpace(assignedBy) == "" {
		c.assignedBy = "system"
		return nil
	}
	c.assignedBy = assignedBy
	return nil
}
