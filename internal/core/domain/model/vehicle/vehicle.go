package vehicle

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrCodeIsRequired is returned when attempting to create a vehicle without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// Vehicle is a physical delivery vehicle assigned to a branch.
// Vehicle definitions are immutable per allocation cycle: matching reads a
// snapshot of the fleet and only the separate VehicleLoad entity mutates.
//
// Key attributes:
//   - code: human-readable fleet code (e.g. "HN-01-MBK-007")
//   - type: vehicle class driving priority and service compatibility
//   - maxLoadKg / maxVolumeM3 / maxDimensions: hard capacity limits
//   - supportedGoods: normalized goods-type tags the vehicle may carry
//   - routeScope: single hierarchical eligibility scope; the vehicle serves
//     any shipment whose required scope level is at or below its own
//   - active: inactive vehicles never match
//
// Example usage:
//
//	v, err := vehicle.NewVehicle(
//	    kernel.NewUUID(), "HN-01-T25-002", branchID,
//	    vehicle.VehicleTypeTruck25, 2500, 16,
//	    shipment.Dimensions{LengthCm: 420, WidthCm: 190, HeightCm: 190},
//	    []string{shipment.GoodsTypeGeneral, shipment.GoodsTypeFood},
//	    geo.RouteScopeInterRegionNear, true,
//	)
type Vehicle struct {
	id             kernel.UUID
	code           string
	branchID       kernel.UUID
	vehicleType    VehicleType
	maxLoadKg      float64
	maxVolumeM3    float64
	maxDimensions  shipment.Dimensions
	supportedGoods map[string]struct{}
	routeScope     geo.RouteScope
	active         bool
	guard          guard.ConstructorGuard
}

// NewVehicle creates a vehicle with the given attributes.
// ID, code and branch must be valid; the type and route scope must be valid
// enum values; load and volume limits must be positive.
func NewVehicle(
	id kernel.UUID,
	code string,
	branchID kernel.UUID,
	vehicleType VehicleType,
	maxLoadKg float64,
	maxVolumeM3 float64,
	maxDimensions shipment.Dimensions,
	supportedGoods []string,
	routeScope geo.RouteScope,
	active bool,
) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCode(code),
		v.setBranchID(branchID),
		v.setType(vehicleType),
		v.setCapacity(maxLoadKg, maxVolumeM3),
		v.setRouteScope(routeScope),
	); err != nil {
		return nil, err
	}

	v.maxDimensions = maxDimensions
	v.active = active
	v.supportedGoods = make(map[string]struct{}, len(supportedGoods))
	for _, tag := range supportedGoods {
		v.supportedGoods[strings.ToUpper(strings.TrimSpace(tag))] = struct{}{}
	}

	return v, nil
}

// IsEqual compares two vehicles for equality based on their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	if other == nil {
		return false
	}
	return v.id.IsEqual(other.id)
}

// Validate checks if the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the unique identifier of the vehicle.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Code returns the fleet code of the vehicle.
func (v *Vehicle) Code() string {
	return v.code
}

// BranchID returns the branch the vehicle is assigned to.
func (v *Vehicle) BranchID() kernel.UUID {
	return v.branchID
}

// Type returns the vehicle class.
func (v *Vehicle) Type() VehicleType {
	return v.vehicleType
}

// MaxLoadKg returns the maximum load in kilograms.
func (v *Vehicle) MaxLoadKg() float64 {
	return v.maxLoadKg
}

// MaxVolumeM3 returns the maximum cargo volume in cubic meters.
func (v *Vehicle) MaxVolumeM3() float64 {
	return v.maxVolumeM3
}

// MaxDimensions returns the maximum cargo dimensions in centimeters.
// Zero dimensions mean the vehicle imposes no dimensional limit.
func (v *Vehicle) MaxDimensions() shipment.Dimensions {
	return v.maxDimensions
}

// SupportedGoods returns the normalized goods-type tags the vehicle may carry.
func (v *Vehicle) SupportedGoods() []string {
	out := make([]string, 0, len(v.supportedGoods))
	for tag := range v.supportedGoods {
		out = append(out, tag)
	}
	return out
}

// RouteScope returns the eligibility scope of the vehicle.
func (v *Vehicle) RouteScope() geo.RouteScope {
	return v.routeScope
}

// IsActive reports whether the vehicle is in service.
func (v *Vehicle) IsActive() bool {
	return v.active
}

// SupportsGoodsType reports whether the vehicle may carry the given
// normalized goods-type tag.
func (v *Vehicle) SupportsGoodsType(tag string) bool {
	_, ok := v.supportedGoods[strings.ToUpper(strings.TrimSpace(tag))]
	return ok
}

// FitsDimensions reports whether cargo with the given maximum dimensions fits
// the vehicle. Axes the vehicle does not limit (zero) always fit.
func (v *Vehicle) FitsDimensions(dims shipment.Dimensions) bool {
	if dims.IsZero() {
		return true
	}
	if v.maxDimensions.LengthCm > 0 && dims.LengthCm > v.maxDimensions.LengthCm {
		return false
	}
	if v.maxDimensions.WidthCm > 0 && dims.WidthCm > v.maxDimensions.WidthCm {
		return false
	}
	if v.maxDimensions.HeightCm > 0 && dims.HeightCm > v.maxDimensions.HeightCm {
		return false
	}
	return true
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return ErrCodeIsRequired
	}
	v.code = code
	return nil
}

func (v *Vehicle) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	v.branchID = branchID
	return nil
}

func (v *Vehicle) setType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(maxLoadKg float64, maxVolumeM3 float64) error {
	if maxLoadKg <= 0 {
		return errs.NewValueIsRequiredError("maxLoadKg")
	}
	if maxVolumeM3 <= 0 {
		return errs.NewValueIsRequiredError("maxVolumeM3")
	}
	v.maxLoadKg = maxLoadKg
	v.maxVolumeM3 = maxVolumeM3
	return nil
}

func (v *Vehicle) setRouteScope(routeScope geo.RouteScope) error {
	if err := routeScope.Validate(); err != nil {
		return err
	}
	v.routeScope = routeScope
	return nil
}
