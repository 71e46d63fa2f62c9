package queries

import (
	"context"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/services"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/ports"
)

// SuggestVehiclesQueryHandler produces the ranked allocation preview: route
// scope derivation, branch scoping, fleet filtering, current loads and
// cost-score ranking. The loads are read outside any transaction, so the
// preview may lose a race against a concurrent assignment; the assignment
// command re-validates.
type SuggestVehiclesQueryHandler struct {
	normalizer  *services.AddressNormalizer
	classifier  *services.RouteClassifier
	matcher     *services.VehicleMatcher
	ranker      *services.AllocationRanker
	locator     *services.BranchLocator
	branchRepo  ports.BranchRepository
	vehicleRepo ports.VehicleRepository
	tracker     ports.CapacityTracker
}

// NewSuggestVehiclesQueryHandler creates a handler for suggestion queries.
func NewSuggestVehiclesQueryHandler(
	normalizer *services.AddressNormalizer,
	classifier *services.RouteClassifier,
	matcher *services.VehicleMatcher,
	ranker *services.AllocationRanker,
	locator *services.BranchLocator,
	branchRepo ports.BranchRepository,
	vehicleRepo ports.VehicleRepository,
	tracker ports.CapacityTracker,
) SuggestVehiclesQueryHandler {
	return SuggestVehiclesQueryHandler{
		normalizer:  normalizer,
		classifier:  classifier,
		matcher:     matcher,
		ranker:      ranker,
		locator:     locator,
		branchRepo:  branchRepo,
		vehicleRepo: vehicleRepo,
		tracker:     tracker,
	}
}

// Handle executes the suggestion query. Fails with
// services.ErrNoEligibleVehicle when the fleet has no vehicle that can carry
// the shipment.
func (h SuggestVehiclesQueryHandler) Handle(
	ctx context.Context,
	query SuggestVehiclesQuery,
) (SuggestVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	requiredScope, err := h.classifier.DeriveRouteScope(
		query.SenderAddress(), query.ReceiverAddress())
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	requirement, err := shipment.GoodsRequirementFromManifest(
		query.Manifest(), query.ServiceType())
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	fleet, err := h.servingFleet(ctx, query)
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	candidates, err := h.matcher.FindCandidates(
		query.ServiceType(), requiredScope, requirement, fleet)
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	ids := make([]kernel.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID())
	}
	loads, err := h.tracker.GetLoads(ctx, ids)
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	paired := make([]services.Candidate, 0, len(candidates))
	for i, candidate := range candidates {
		paired = append(paired, services.Candidate{Vehicle: candidate, Load: loads[i]})
	}

	suggestions, err := h.ranker.Rank(
		paired, requirement.ChargeableWeightKg(), requirement.VolumeM3())
	if err != nil {
		return SuggestVehiclesQueryResponse{}, err
	}

	response := SuggestVehiclesQueryResponse{
		RouteScope:  requiredScope.String(),
		Suggestions: make([]VehicleSuggestion, 0, len(suggestions)),
	}
	for _, suggestion := range suggestions {
		response.Suggestions = append(response.Suggestions, VehicleSuggestion{
			VehicleID:         suggestion.VehicleID,
			VehicleCode:       suggestion.VehicleCode,
			VehicleType:       suggestion.VehicleType,
			BranchID:          suggestion.BranchID,
			RemainingWeightKg: suggestion.RemainingWeightKg,
			RemainingVolumeM3: suggestion.RemainingVolumeM3,
			OrderCount:        suggestion.OrderCount,
			CostScore:         suggestion.CostScore,
		})
	}
	return response, nil
}

// servingFleet scopes the candidate fleet to one branch: the explicitly
// requested branch when the query names one, otherwise the nearest branch
// covering the sender address. Senders that resolve without coordinates fall
// back to the whole active fleet.
func (h SuggestVehiclesQueryHandler) servingFleet(
	ctx context.Context,
	query SuggestVehiclesQuery,
) ([]*vehicle.Vehicle, error) {
	if query.BranchID() != nil {
		return h.vehicleRepo.GetAllActiveByBranch(ctx, *query.BranchID())
	}

	sender, err := h.normalizer.Normalize(query.SenderAddress())
	if err != nil {
		return nil, err
	}
	if sender.Point() == nil {
		return h.vehicleRepo.GetAllActive(ctx)
	}

	branches, err := h.branchRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	nearest, err := h.locator.NearestCovering(branches, *sender.Point())
	if err != nil {
		return nil, err
	}
	return h.vehicleRepo.GetAllActiveByBranch(ctx, nearest.Branch.ID())
}
