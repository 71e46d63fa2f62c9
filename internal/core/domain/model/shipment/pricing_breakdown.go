package shipment

import (
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
)

// PricingBreakdown is the itemized result of a fee calculation. It is a read
// model returned alongside the fee; the weights are rounded to two decimals
// for presentation.
type PricingBreakdown struct {
	// BasePrice is the tariff base fee in VND before extra-weight charges.
	BasePrice int64
	// ExtraWeightPrice is the per-step surcharge in VND above the included weight.
	ExtraWeightPrice int64
	// ChargeableWeightKg is max(actual, volumetric), rounded to 2 decimals.
	ChargeableWeightKg float64
	// ActualWeightKg is the physical weight, rounded to 2 decimals.
	ActualWeightKg float64
	// VolumetricWeightKg is total volume / 5000, rounded to 2 decimals.
	VolumetricWeightKg float64
	// RouteType is the pricing classification the tariff was read from.
	RouteType geo.RouteType
	// ServiceType is the delivery product that was priced.
	ServiceType ServiceType
	// SLADays is the estimated delivery time in days.
	SLADays int
	// SLA is the human-readable delivery estimate.
	SLA string
}

// TotalFee returns base price plus extra-weight price.
func (b PricingBreakdown) TotalFee() int64 {
	return b.BasePrice + b.ExtraWeightPrice
}
