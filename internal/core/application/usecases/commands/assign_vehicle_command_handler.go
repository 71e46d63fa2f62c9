package commands

import (
	"context"
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/allocation"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/ports"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// ErrOrderAlreadyAssigned is returned when the order already holds an active
// assignment.
var ErrOrderAlreadyAssigned = errors.New("order already has an active assignment")

// AssignVehicleResult reports the reservation that was made.
type AssignVehicleResult struct {
	AssignmentID kernel.UUID
	VehicleID    kernel.UUID
	VehicleCode  string
	VehicleType  vehicle.VehicleType
	BranchID     kernel.UUID
	AssignedBy   string
	WeightKg     float64
	VolumeM3     float64
}

// AssignVehicleCommandHandler reserves capacity for a confirmed order. It
// resolves both addresses, scopes the fleet to the serving branch, filters
// and ranks it, then walks the ranking and reserves the first vehicle whose
// capacity still holds, all within one transaction. A reservation lost to a
// concurrent request simply moves on to the next candidate. When the command
// names a vehicle the handler skips ranking and reserves exactly that
// vehicle, still checking it against the same matching and capacity rules.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(
//	    uowFactory, normalizer, classifier, matcher, ranker, locator, branchRepo)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoEligibleVehicle):
//	    log.Println("no vehicle fits this shipment")
//	case errors.Is(err, vehicle.ErrCapacityExceeded):
//	    log.Println("fleet is full right now")
//	case err != nil:
//	    log.Printf("assignment failed: %v", err)
//	}
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
	normalizer *services.AddressNormalizer
	classifier *services.RouteClassifier
	matcher    *services.VehicleMatcher
	ranker     *services.AllocationRanker
	locator    *services.BranchLocator
	branchRepo ports.BranchRepository
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment.
func NewAssignVehicleCommandHandler(
	uowFactory UoWFactory,
	normalizer *services.AddressNormalizer,
	classifier *services.RouteClassifier,
	matcher *services.VehicleMatcher,
	ranker *services.AllocationRanker,
	locator *services.BranchLocator,
	branchRepo ports.BranchRepository,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
		normalizer: normalizer,
		classifier: classifier,
		matcher:    matcher,
		ranker:     ranker,
		locator:    locator,
		branchRepo: branchRepo,
	}
}

// Handle processes the assignment command. Fails with
// ErrOrderAlreadyAssigned when the order holds an active assignment,
// services.ErrNoEligibleVehicle when the serving branch has no fitting
// vehicle and vehicle.ErrCapacityExceeded when every ranked candidate filled
// up before the reservation landed. For a directly requested vehicle,
// services.ErrNoEligibleVehicle means that vehicle cannot carry the shipment
// and vehicle.ErrCapacityExceeded means it is full; there is no fallback.
func (h AssignVehicleCommandHandler) Handle(
	ctx context.Context,
	command AssignVehicleCommand,
) (AssignVehicleResult, error) {
	if err := command.Validate(); err != nil {
		return AssignVehicleResult{}, err
	}

	requiredScope, err := h.classifier.DeriveRouteScope(
		command.SenderAddress(), command.ReceiverAddress())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	requirement, err := shipment.GoodsRequirementFromManifest(
		command.Manifest(), command.ServiceType())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	branchID, err := h.servingBranch(ctx, command)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignVehicleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignments := uow.AssignmentRepository()
	tracker := uow.CapacityTracker()

	existing, err := assignments.GetActiveByOrderID(ctx, command.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignVehicleResult{}, err
	}
	if existing != nil {
		return AssignVehicleResult{}, ErrOrderAlreadyAssigned
	}

	var fleet []*vehicle.Vehicle
	if branchID != nil {
		fleet, err = uow.VehicleRepository().GetAllActiveByBranch(ctx, *branchID)
	} else {
		fleet, err = uow.VehicleRepository().GetAllActive(ctx)
	}
	if err != nil {
		return AssignVehicleResult{}, err
	}

	candidates, err := h.matcher.FindCandidates(
		command.ServiceType(), requiredScope, requirement, fleet)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	byID := make(map[string]*vehicle.Vehicle, len(candidates))
	ids := make([]kernel.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		byID[candidate.ID().String()] = candidate
		ids = append(ids, candidate.ID())
	}

	if command.VehicleID() != nil {
		chosen, ok := byID[command.VehicleID().String()]
		if !ok {
			return AssignVehicleResult{}, services.ErrNoEligibleVehicle
		}
		result, err := h.reserve(ctx, uow, command, requirement, chosen)
		if err != nil {
			return AssignVehicleResult{}, err
		}
		return result, nil
	}

	loads, err := tracker.GetLoads(ctx, ids)
	if err != nil {
		return AssignVehicleResult{}, err
	}

	ranked := make([]services.Candidate, 0, len(candidates))
	for i, candidate := range candidates {
		ranked = append(ranked, services.Candidate{Vehicle: candidate, Load: loads[i]})
	}

	suggestions, err := h.ranker.Rank(
		ranked, requirement.ChargeableWeightKg(), requirement.VolumeM3())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	for _, suggestion := range suggestions {
		chosen := byID[suggestion.VehicleID.String()]

		result, err := h.reserve(ctx, uow, command, requirement, chosen)
		if errors.Is(err, vehicle.ErrCapacityExceeded) {
			continue
		}
		if err != nil {
			return AssignVehicleResult{}, err
		}
		return result, nil
	}

	return AssignVehicleResult{}, vehicle.ErrCapacityExceeded
}

// servingBranch resolves the branch whose fleet serves the order: the
// explicitly requested branch when the command names one, otherwise the
// nearest branch covering the sender address. A sender that resolves without
// coordinates yields nil, meaning the whole active fleet.
func (h AssignVehicleCommandHandler) servingBranch(
	ctx context.Context,
	command AssignVehicleCommand,
) (*kernel.UUID, error) {
	if command.BranchID() != nil {
		return command.BranchID(), nil
	}

	sender, err := h.normalizer.Normalize(command.SenderAddress())
	if err != nil {
		return nil, err
	}
	if sender.Point() == nil {
		return nil, nil
	}

	branches, err := h.branchRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	nearest, err := h.locator.NearestCovering(branches, *sender.Point())
	if err != nil {
		return nil, err
	}
	branchID := nearest.Branch.ID()
	return &branchID, nil
}

// reserve takes capacity on the chosen vehicle, records the assignment and
// commits the transaction.
func (h AssignVehicleCommandHandler) reserve(
	ctx context.Context,
	uow UoW,
	command AssignVehicleCommand,
	requirement shipment.GoodsRequirement,
	chosen *vehicle.Vehicle,
) (AssignVehicleResult, error) {
	_, err := uow.CapacityTracker().Reserve(ctx, chosen,
		requirement.ChargeableWeightKg(), requirement.VolumeM3())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	assignment, err := allocation.NewAssignment(
		kernel.NewUUID(), command.OrderID(), chosen.ID(), chosen.BranchID(),
		command.AssignedBy(), requirement.ChargeableWeightKg(), requirement.VolumeM3())
	if err != nil {
		return AssignVehicleResult{}, err
	}

	if err := uow.AssignmentRepository().Add(ctx, assignment); err != nil {
		return AssignVehicleResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return AssignVehicleResult{}, err
	}

	return AssignVehicleResult{
		AssignmentID: assignment.ID(),
		VehicleID:    chosen.ID(),
		VehicleCode:  chosen.Code(),
		VehicleType:  chosen.Type(),
		BranchID:     chosen.BranchID(),
		AssignedBy:   assignment.AssignedBy(),
		WeightKg:     assignment.WeightKg(),
		VolumeM3:     assignment.VolumeM3(),
	}, nil
}
