package vehicle

import (
	"fmt"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// VehicleType identifies the physical class of a vehicle.
// The class drives service compatibility (Express rides motorbikes, Standard
// rides trucks) and the type priority used by allocation ranking, which biases
// assignments toward the smallest class that fits.
type VehicleType int

const (
	// VehicleTypeUnknown represents an invalid or undefined vehicle type.
	VehicleTypeUnknown VehicleType = iota

	// VehicleTypeMotorbike is a motorbike used for Express intra-city delivery.
	VehicleTypeMotorbike

	// VehicleTypeTruck25 is a 2.5 tonne truck.
	VehicleTypeTruck25

	// VehicleTypeTruck35 is a 3.5 tonne truck.
	VehicleTypeTruck35

	// VehicleTypeTruck50 is a 5 tonne truck.
	VehicleTypeTruck50
)

// getVehicleTypeStrings returns a map of VehicleType values to their string representations.
func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeUnknown:   "unknown",
		VehicleTypeMotorbike: "motorbike",
		VehicleTypeTruck25:   "truck_2_5t",
		VehicleTypeTruck35:   "truck_3_5t",
		VehicleTypeTruck50:   "truck_5t",
	}
}

// getValidVehicleTypeStrings returns a map of only valid VehicleType values.
func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleTypeUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleTypeMotorbike: "motorbike",
		VehicleTypeTruck25:   "truck_2_5t",
		VehicleTypeTruck35:   "truck_3_5t",
		VehicleTypeTruck50:   "truck_5t",
	}
}

// VehicleTypeFromString parses a vehicle type string.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vehicleType, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vehicleType, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks if the VehicleType value is valid.
func (t VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

// String returns the snake_case name of the vehicle type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Priority returns the ranking priority of the class: motorbike 1, 2.5t truck 2,
// 3.5t truck 3, 5t truck 4. Lower values rank first, so allocation prefers the
// smallest class that can carry the shipment.
func (t VehicleType) Priority() int {
	switch t {
	case VehicleTypeMotorbike:
		return 1
	case VehicleTypeTruck25:
		return 2
	case VehicleTypeTruck35:
		return 3
	case VehicleTypeTruck50:
		return 4
	default:
		return 0
	}
}

// SupportsService reports whether the class may serve the given service type.
// Express service may only match motorbikes; Standard service only trucks.
func (t VehicleType) SupportsService(serviceType shipment.ServiceType) bool {
	switch serviceType {
	case shipment.ServiceTypeExpress:
		return t == VehicleTypeMotorbike
	case shipment.ServiceTypeStandard:
		return t != VehicleTypeMotorbike && t != VehicleTypeUnknown
	default:
		return false
	}
}
