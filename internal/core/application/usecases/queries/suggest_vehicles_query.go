package queries

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

var ErrSuggestVehiclesQueryIsNotConstructed = errors.New(
	"SuggestVehiclesQuery must be created via NewSuggestVehiclesQuery constructor",
)

// SuggestVehiclesQuery asks for a ranked list of vehicles able to carry a
// shipment, without reserving anything. Dispatchers use it to preview
// allocation options before confirming an order.
//
// branchID is optional: when blank the handler scopes the fleet to the
// branch serving the sender address.
type SuggestVehiclesQuery struct {
	senderAddress   string
	receiverAddress string
	serviceType     shipment.ServiceType
	manifest        shipment.Manifest
	branchID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSuggestVehiclesQuery creates a validated suggestion query.
func NewSuggestVehiclesQuery(
	senderAddress string,
	receiverAddress string,
	serviceType shipment.ServiceType,
	manifest shipment.Manifest,
	branchID string,
) (SuggestVehiclesQuery, error) {
	if strings.TrimSpace(senderAddress) == "" {
		return SuggestVehiclesQuery{}, errs.NewValueIsRequiredError("senderAddress")
	}
	if strings.TrimSpace(receiverAddress) == "" {
		return SuggestVehiclesQuery{}, errs.NewValueIsRequiredError("receiverAddress")
	}
	if err := serviceType.Validate(); err != nil {
		return SuggestVehiclesQuery{}, err
	}
	if err := manifest.Validate(); err != nil {
		return SuggestVehiclesQuery{}, err
	}

	query := SuggestVehiclesQuery{
		senderAddress:   senderAddress,
		receiverAddress: receiverAddress,
		serviceType:     serviceType,
		manifest:        manifest,
		guard:           guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(branchID) != "" {
		id, err := kernel.UUIDFromString(branchID)
		if err != nil {
			return SuggestVehiclesQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
		}
		query.branchID = &id
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSuggestVehiclesQueryIsNotConstructed if validation fails.
func (q *SuggestVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrSuggestVehiclesQueryIsNotConstructed)
}

// SenderAddress returns the raw pickup address text.
func (q *SuggestVehiclesQuery) SenderAddress() string {
	return q.senderAddress
}

// ReceiverAddress returns the raw delivery address text.
func (q *SuggestVehiclesQuery) ReceiverAddress() string {
	return q.receiverAddress
}

// ServiceType returns the requested delivery product.
func (q *SuggestVehiclesQuery) ServiceType() shipment.ServiceType {
	return q.serviceType
}

// Manifest returns the package manifest.
func (q *SuggestVehiclesQuery) Manifest() shipment.Manifest {
	return q.manifest
}

// BranchID returns the requested branch, or nil when the handler should pick
// the branch serving the sender address.
func (q *SuggestVehiclesQuery) BranchID() *kernel.UUID {
	return q.branchID
}

// VehicleSuggestion is one ranked allocation option in the read model.
type VehicleSuggestion struct {
	VehicleID         kernel.UUID
	VehicleCode       string
	VehicleType       vehicle.VehicleType
	BranchID          kernel.UUID
	RemainingWeightKg float64
	RemainingVolumeM3 float64
	OrderCount        int
	CostScore         float64
}

// SuggestVehiclesQueryResponse is the ranked suggestion list, cheapest first.
type SuggestVehiclesQueryResponse struct {
	RouteScope  string
	Suggestions []VehicleSuggestion
}
