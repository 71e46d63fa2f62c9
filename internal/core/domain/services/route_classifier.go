package services

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
)

// RouteClassifier derives route categories from resolved addresses. Two
// classifications coexist: RouteType drives the pricing tariff tables while
// RouteScope drives vehicle eligibility. They agree on the easy cases but
// diverge on North/South lanes, which price as cross_region yet require
// INTER_REGION_FAR capable vehicles.
type RouteClassifier struct {
	normalizer *AddressNormalizer
}

// NewRouteClassifier creates a classifier backed by an address normalizer
// for the raw-text scope derivation path.
func NewRouteClassifier(normalizer *AddressNormalizer) (*RouteClassifier, error) {
	if normalizer == nil {
		return nil, ErrAddressNormalizerIsNotConstructed
	}
	return &RouteClassifier{normalizer: normalizer}, nil
}

// ClassifyRouteType maps a sender/receiver pair onto the pricing route type.
// Same province is intra_province, same region is intra_region, neighbouring
// regions (North/Central or Central/South, either direction) are
// adjacent_region and everything else, notably North/South, is cross_region.
func (c *RouteClassifier) ClassifyRouteType(
	sender geo.ResolvedAddress,
	receiver geo.ResolvedAddress,
) (geo.RouteType, error) {
	sameProvince, err := sender.SameProvince(receiver)
	if err != nil {
		return geo.RouteTypeUnknown, err
	}
	if sameProvince {
		return geo.RouteTypeIntraProvince, nil
	}

	if err := sender.Region().Validate(); err != nil {
		return geo.RouteTypeUnknown, err
	}
	if err := receiver.Region().Validate(); err != nil {
		return geo.RouteTypeUnknown, err
	}

	switch {
	case sender.Region() == receiver.Region():
		return geo.RouteTypeIntraRegion, nil
	case sender.Region().IsAdjacentTo(receiver.Region()):
		return geo.RouteTypeAdjacentRegion, nil
	default:
		return geo.RouteTypeCrossRegion, nil
	}
}

// DeriveRouteScope resolves two raw address strings and maps them onto the
// vehicle-eligibility scope. North/South pairs come out as
// RouteScopeInterRegionFar; neighbouring regions as RouteScopeInterRegionNear.
func (c *RouteClassifier) DeriveRouteScope(
	senderAddress string,
	receiverAddress string,
) (geo.RouteScope, error) {
	sender, err := c.normalizer.Normalize(senderAddress)
	if err != nil {
		return geo.RouteScopeUnknown, err
	}
	receiver, err := c.normalizer.Normalize(receiverAddress)
	if err != nil {
		return geo.RouteScopeUnknown, err
	}
	return c.ScopeOf(sender, receiver)
}

// ScopeOf maps an already-resolved sender/receiver pair onto the route scope.
func (c *RouteClassifier) ScopeOf(
	sender geo.ResolvedAddress,
	receiver geo.ResolvedAddress,
) (geo.RouteScope, error) {
	sameProvince, err := sender.SameProvince(receiver)
	if err != nil {
		return geo.RouteScopeUnknown, err
	}
	if sameProvince {
		return geo.RouteScopeIntraProvince, nil
	}

	if err := sender.Region().Validate(); err != nil {
		return geo.RouteScopeUnknown, err
	}
	if err := receiver.Region().Validate(); err != nil {
		return geo.RouteScopeUnknown, err
	}

	switch {
	case sender.Region() == receiver.Region():
		return geo.RouteScopeIntraRegion, nil
	case sender.Region().IsAdjacentTo(receiver.Region()):
		return geo.RouteScopeInterRegionNear, nil
	default:
		return geo.RouteScopeInterRegionFar, nil
	}
}
