package services

import (
	"errors"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/vehicle"
)

// ErrNoEligibleVehicle is returned when the matcher filters every vehicle out.
var ErrNoEligibleVehicle = errors.New("no vehicle satisfies the shipment requirements")

// VehicleMatcher filters a fleet down to the vehicles that can legally carry
// a shipment. It applies hard constraints only; ranking the survivors is the
// AllocationRanker's job. The matcher is pure and safe for concurrent use.
type VehicleMatcher struct{}

// NewVehicleMatcher creates a matcher.
func NewVehicleMatcher() *VehicleMatcher {
	return &VehicleMatcher{}
}

// FindCandidates returns the vehicles from the fleet that are active, serve
// the service type, cover at least the required route scope, support the
// goods type and have absolute capacity for the requirement's weight, volume
// and dimensions. Current load is not considered here. The returned slice
// preserves fleet order; it is empty, with ErrNoEligibleVehicle, when nothing
// qualifies.
func (m *VehicleMatcher) FindCandidates(
	serviceType shipment.ServiceType,
	requiredScope geo.RouteScope,
	requirement shipment.GoodsRequirement,
	fleet []*vehicle.Vehicle,
) ([]*vehicle.Vehicle, error) {
	if err := serviceType.Validate(); err != nil {
		return nil, err
	}
	if err := requiredScope.Validate(); err != nil {
		return nil, err
	}
	if err := requirement.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*vehicle.Vehicle, 0, len(fleet))
	for _, candidate := range fleet {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !m.isEligible(candidate, serviceType, requiredScope, requirement) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return nil, ErrNoEligibleVehicle
	}
	return candidates, nil
}

func (m *VehicleMatcher) isEligible(
	candidate *vehicle.Vehicle,
	serviceType shipment.ServiceType,
	requiredScope geo.RouteScope,
	requirement shipment.GoodsRequirement,
) bool {
	switch {
	case !candidate.IsActive():
		return false
	case !candidate.Type().SupportsService(serviceType):
		return false
	case !candidate.RouteScope().Covers(requiredScope):
		return false
	case !candidate.SupportsGoodsType(requirement.GoodsType()):
		return false
	case requirement.ChargeableWeightKg() > candidate.MaxLoadKg():
		return false
	case requirement.VolumeM3() > candidate.MaxVolumeM3():
		return false
	case !candidate.FitsDimensions(requirement.MaxDimensions()):
		return false
	default:
		return true
	}
}
