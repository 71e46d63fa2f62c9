package geo

import (
	"fmt"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// RouteType is the pricing-tier classification of a shipment's geographic span.
// It feeds the tariff tables of the pricing engine. RouteType and RouteScope
// are derived from the same region codes but through different adjacency
// rules that were designed independently; they are deliberately kept apart.
type RouteType int

const (
	// RouteTypeUnknown represents an invalid or undefined route type.
	RouteTypeUnknown RouteType = iota

	// RouteTypeIntraProvince is a shipment within one province.
	RouteTypeIntraProvince

	// RouteTypeIntraRegion is a shipment between provinces of the same region.
	RouteTypeIntraRegion

	// RouteTypeAdjacentRegion is a shipment between bordering regions.
	RouteTypeAdjacentRegion

	// RouteTypeCrossRegion is a shipment between non-bordering regions.
	RouteTypeCrossRegion
)

// getRouteTypeStrings returns a map of RouteType values to their string representations.
func getRouteTypeStrings() map[RouteType]string {
	return map[RouteType]string{
		RouteTypeUnknown:        "unknown",
		RouteTypeIntraProvince:  "intra_province",
		RouteTypeIntraRegion:    "intra_region",
		RouteTypeAdjacentRegion: "adjacent_region",
		RouteTypeCrossRegion:    "cross_region",
	}
}

// getValidRouteTypeStrings returns a map of only valid RouteType values.
func getValidRouteTypeStrings() map[RouteType]string {
	//nolint:exhaustive // RouteTypeUnknown is intentionally excluded as it's invalid
	return map[RouteType]string{
		RouteTypeIntraProvince:  "intra_province",
		RouteTypeIntraRegion:    "intra_region",
		RouteTypeAdjacentRegion: "adjacent_region",
		RouteTypeCrossRegion:    "cross_region",
	}
}

// Validate checks if the RouteType value is valid.
func (t RouteType) Validate() error {
	if _, ok := getValidRouteTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routeType",
			fmt.Errorf("%d is not a valid route type", t))
	}
	return nil
}

// String returns the snake_case name of the route type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t RouteType) String() string {
	if str, ok := getRouteTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// RouteScope is the vehicle-eligibility classification of a shipment's
// geographic span. Scopes form a total order; a vehicle may serve a shipment
// only if the vehicle's own scope level is greater than or equal to the
// shipment's required level.
type RouteScope int

const (
	// RouteScopeUnknown represents an invalid or undefined route scope.
	RouteScopeUnknown RouteScope = iota

	// RouteScopeIntraProvince is a shipment within one province.
	RouteScopeIntraProvince

	// RouteScopeIntraRegion is a shipment between provinces of the same region.
	RouteScopeIntraRegion

	// RouteScopeInterRegionNear is a shipment between bordering regions
	// (NORTH↔CENTRAL or CENTRAL↔SOUTH).
	RouteScopeInterRegionNear

	// RouteScopeInterRegionFar is a shipment spanning NORTH↔SOUTH directly.
	RouteScopeInterRegionFar
)

// getRouteScopeStrings returns a map of RouteScope values to their string representations.
func getRouteScopeStrings() map[RouteScope]string {
	return map[RouteScope]string{
		RouteScopeUnknown:         "UNKNOWN",
		RouteScopeIntraProvince:   "INTRA_PROVINCE",
		RouteScopeIntraRegion:     "INTRA_REGION",
		RouteScopeInterRegionNear: "INTER_REGION_NEAR",
		RouteScopeInterRegionFar:  "INTER_REGION_FAR",
	}
}

// getValidRouteScopeStrings returns a map of only valid RouteScope values.
func getValidRouteScopeStrings() map[RouteScope]string {
	//nolint:exhaustive // RouteScopeUnknown is intentionally excluded as it's invalid
	return map[RouteScope]string{
		RouteScopeIntraProvince:   "INTRA_PROVINCE",
		RouteScopeIntraRegion:     "INTRA_REGION",
		RouteScopeInterRegionNear: "INTER_REGION_NEAR",
		RouteScopeInterRegionFar:  "INTER_REGION_FAR",
	}
}

// RouteScopeFromString parses a route scope string into a RouteScope value.
func RouteScopeFromString(s string) (RouteScope, error) {
	for scope, str := range getValidRouteScopeStrings() {
		if str == s {
			return scope, nil
		}
	}
	return RouteScopeUnknown, errs.NewValueIsInvalidErrorWithCause("routeScope",
		fmt.Errorf("%q is not a valid route scope", s))
}

// Validate checks if the RouteScope value is valid.
func (s RouteScope) Validate() error {
	if _, ok := getValidRouteScopeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routeScope",
			fmt.Errorf("%d is not a valid route scope", s))
	}
	return nil
}

// String returns the upper-snake name of the route scope.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s RouteScope) String() string {
	if str, ok := getRouteScopeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Level returns the position of the scope in the total order
// INTRA_PROVINCE < INTRA_REGION < INTER_REGION_NEAR < INTER_REGION_FAR.
func (s RouteScope) Level() int {
	return int(s)
}

// Covers reports whether a vehicle holding this scope may serve a shipment
// requiring the given scope. Both scopes must be valid; UNKNOWN never covers
// and is never covered.
func (s RouteScope) Covers(required RouteScope) bool {
	if s == RouteScopeUnknown || required == RouteScopeUnknown {
		return false
	}
	return s.Level() >= required.Level()
}
