package services

import (
	"sort"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// Cost score weights. Vehicle class dominates, so a motorbike always beats a
// truck when both fit; the waste ratios break ties within a class and the
// order count nudges toward less busy vehicles.
const (
	costWeightTypePriority = 1000.0
	costWeightWasteRatio   = 10.0
	costWeightOrderCount   = 1.0
)

// Candidate pairs a vehicle with its current load for ranking.
type Candidate struct {
	Vehicle *vehicle.Vehicle
	Load    *vehicle.Load
}

// Suggestion is one ranked allocation option.
type Suggestion struct {
	VehicleID         kernel.UUID
	VehicleCode       string
	VehicleType       vehicle.VehicleType
	BranchID          kernel.UUID
	RemainingWeightKg float64
	RemainingVolumeM3 float64
	OrderCount        int
	CostScore         float64
}

// AllocationRanker orders candidate vehicles by cost score, cheapest first.
// The sort is stable, so candidates with equal scores keep their input order.
// The ranker is pure and safe for concurrent use.
type AllocationRanker struct{}

// NewAllocationRanker creates a ranker.
func NewAllocationRanker() *AllocationRanker {
	return &AllocationRanker{}
}

// Rank scores every candidate against the shipment's weight and volume and
// returns suggestions sorted ascending by cost score. Candidates whose
// remaining capacity cannot absorb the shipment are skipped rather than
// scored, so the result may be shorter than the input; an empty result means
// ErrNoEligibleVehicle.
func (r *AllocationRanker) Rank(
	candidates []Candidate,
	shipmentWeightKg float64,
	shipmentVolumeM3 float64,
) ([]Suggestion, error) {
	if shipmentWeightKg < 0 {
		return nil, errs.NewValueIsInvalidError("shipmentWeightKg")
	}
	if shipmentVolumeM3 < 0 {
		return nil, errs.NewValueIsInvalidError("shipmentVolumeM3")
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Vehicle.Validate(); err != nil {
			return nil, err
		}
		if err := candidate.Load.Validate(); err != nil {
			return nil, err
		}

		fits, err := candidate.Load.CanReserve(candidate.Vehicle, shipmentWeightKg, shipmentVolumeM3)
		if err != nil {
			return nil, err
		}
		if !fits {
			continue
		}

		suggestions = append(suggestions, r.score(candidate, shipmentWeightKg, shipmentVolumeM3))
	}

	if len(suggestions) == 0 {
		return nil, ErrNoEligibleVehicle
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].CostScore < suggestions[j].CostScore
	})
	return suggestions, nil
}

func (r *AllocationRanker) score(
	candidate Candidate,
	shipmentWeightKg float64,
	shipmentVolumeM3 float64,
) Suggestion {
	remainingWeightKg := candidate.Load.RemainingWeightKg(candidate.Vehicle)
	remainingVolumeM3 := candidate.Load.RemainingVolumeM3(candidate.Vehicle)

	wasteWeightRatio := (remainingWeightKg - shipmentWeightKg) / candidate.Vehicle.MaxLoadKg()
	wasteVolumeRatio := (remainingVolumeM3 - shipmentVolumeM3) / candidate.Vehicle.MaxVolumeM3()

	costScore := costWeightTypePriority*float64(candidate.Vehicle.Type().Priority()) +
		costWeightWasteRatio*wasteWeightRatio +
		costWeightWasteRatio*wasteVolumeRatio +
		costWeightOrderCount*float64(candidate.Load.OrderCount())

	return Suggestion{
		VehicleID:         candidate.Vehicle.ID(),
		VehicleCode:       candidate.Vehicle.Code(),
		VehicleType:       candidate.Vehicle.Type(),
		BranchID:          candidate.Vehicle.BranchID(),
		RemainingWeightKg: remainingWeightKg,
		RemainingVolumeM3: remainingVolumeM3,
		OrderCount:        candidate.Load.OrderCount(),
		CostScore:         costScore,
	}
}
