package shipment

import (
	"fmt"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// ServiceType selects the delivery product for a shipment.
// Standard covers the nationwide tiered tariff; Express is the same-day
// intra-city product limited to the two major cities.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeStandard is nationwide delivery priced by the tiered tariff.
	ServiceTypeStandard

	// ServiceTypeExpress is same-day intra-city delivery by motorbike.
	ServiceTypeExpress
)

// getServiceTypeStrings returns a map of ServiceType values to their string representations.
func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:  "unknown",
		ServiceTypeStandard: "standard",
		ServiceTypeExpress:  "express",
	}
}

// getValidServiceTypeStrings returns a map of only valid ServiceType values.
func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceTypeUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceTypeStandard: "standard",
		ServiceTypeExpress:  "express",
	}
}

// ServiceTypeFromString parses a service type string ("standard", "express").
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getValidServiceTypeStrings() {
		if str == s {
			return serviceType, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the ServiceType value is valid.
func (t ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the lowercase name of the service type.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
