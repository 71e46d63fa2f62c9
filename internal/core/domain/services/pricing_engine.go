package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/shipment"
)

// ErrUnsupportedRoute is returned when no tariff covers the request: Express
// outside a single major city, Express above the weight limit, or Standard
// above the tier table ceiling.
var ErrUnsupportedRoute = errors.New("no tariff covers the requested route and weight")

// Standard tariff. Weights below 20kg pay a base fee plus a per-half-kilogram
// surcharge above the included 3kg; heavier shipments fall into flat bands and
// above 50kg a per-kilogram rate applies on top of the 40-50kg band fee.
// Shipments above 300kg are outside the table entirely.
const (
	standardIncludedWeightKg  = 3.0
	standardExtraStepKg       = 0.5
	standardTierCeilingKg     = 20.0
	standardMaxWeightKg       = 300.0
	standardPerKgThresholdKg  = 50.0
	expressMaxWeightKg        = 20.0
	expressLightBandCeilingKg = 5.0
)

var (
	standardBaseFee = map[geo.RouteType]int64{
		geo.RouteTypeIntraProvince:  30000,
		geo.RouteTypeIntraRegion:    30000,
		geo.RouteTypeAdjacentRegion: 32000,
		geo.RouteTypeCrossRegion:    35000,
	}

	standardExtraUnitFee = map[geo.RouteType]int64{
		geo.RouteTypeIntraProvince:  2500,
		geo.RouteTypeIntraRegion:    2500,
		geo.RouteTypeAdjacentRegion: 5000,
		geo.RouteTypeCrossRegion:    5000,
	}

	standardFlatBands = []struct {
		ceilingKg float64
		fees      map[geo.RouteType]int64
	}{
		{30, map[geo.RouteType]int64{
			geo.RouteTypeIntraProvince:  130000,
			geo.RouteTypeIntraRegion:    165000,
			geo.RouteTypeAdjacentRegion: 260000,
			geo.RouteTypeCrossRegion:    320000,
		}},
		{40, map[geo.RouteType]int64{
			geo.RouteTypeIntraProvince:  170000,
			geo.RouteTypeIntraRegion:    205000,
			geo.RouteTypeAdjacentRegion: 340000,
			geo.RouteTypeCrossRegion:    420000,
		}},
		{50, map[geo.RouteType]int64{
			geo.RouteTypeIntraProvince:  210000,
			geo.RouteTypeIntraRegion:    245000,
			geo.RouteTypeAdjacentRegion: 420000,
			geo.RouteTypeCrossRegion:    520000,
		}},
	}

	standardPerKgFee = map[geo.RouteType]int64{
		geo.RouteTypeIntraProvince:  5000,
		geo.RouteTypeIntraRegion:    5000,
		geo.RouteTypeAdjacentRegion: 7000,
		geo.RouteTypeCrossRegion:    8000,
	}

	// Express fee matrix: weight band crossed with volume thresholds.
	expressVolumeThresholdsCm3 = []float64{9600, 100000}
	expressLightBandFees       = []int64{50000, 60000, 70000}
	expressHeavyBandFees       = []int64{60000, 70000, 80000}
)

// slaDays maps route type and service type to the delivery estimate in days.
// Unmapped combinations fall back to slaDefaultDays.
var slaDays = map[geo.RouteType]map[shipment.ServiceType]int{
	geo.RouteTypeIntraProvince: {
		shipment.ServiceTypeStandard: 2,
		shipment.ServiceTypeExpress:  1,
	},
	geo.RouteTypeIntraRegion:    {shipment.ServiceTypeStandard: 3},
	geo.RouteTypeAdjacentRegion: {shipment.ServiceTypeStandard: 4},
	geo.RouteTypeCrossRegion:    {shipment.ServiceTypeStandard: 5},
}

const slaDefaultDays = 5

// DefaultMajorCityProvinceCodes are the provinces where Express operates:
// Hanoi and Ho Chi Minh City, by their official province codes.
var DefaultMajorCityProvinceCodes = []string{"01", "79"}

// PricingEngine computes deterministic shipping fees from the tariff tables.
// It is pure and safe for concurrent use.
type PricingEngine struct {
	majorCityCodes map[string]struct{}
}

// NewPricingEngine creates an engine with the default major-city set.
func NewPricingEngine() *PricingEngine {
	return NewPricingEngineWithMajorCities(DefaultMajorCityProvinceCodes...)
}

// NewPricingEngineWithMajorCities creates an engine whose Express service is
// limited to the given province codes.
func NewPricingEngineWithMajorCities(provinceCodes ...string) *PricingEngine {
	majorCityCodes := make(map[string]struct{}, len(provinceCodes))
	for _, code := range provinceCodes {
		majorCityCodes[code] = struct{}{}
	}
	return &PricingEngine{majorCityCodes: majorCityCodes}
}

// CalculateFee prices a manifest over a classified route. Standard shipments
// are priced by the tiered tariff on chargeable weight; Express shipments are
// only valid when both endpoints resolve to the same major city and are priced
// by the weight/volume matrix. The returned breakdown carries the weights
// rounded to two decimals and the SLA estimate.
func (e *PricingEngine) CalculateFee(
	serviceType shipment.ServiceType,
	routeType geo.RouteType,
	sender geo.ResolvedAddress,
	receiver geo.ResolvedAddress,
	manifest shipment.Manifest,
) (shipment.PricingBreakdown, error) {
	if err := serviceType.Validate(); err != nil {
		return shipment.PricingBreakdown{}, err
	}
	if err := routeType.Validate(); err != nil {
		return shipment.PricingBreakdown{}, err
	}

	actualWeightKg := manifest.ActualWeightKg()
	volumetricWeightKg, err := manifest.VolumetricWeightKg(serviceType)
	if err != nil {
		return shipment.PricingBreakdown{}, err
	}
	chargeableWeightKg, err := manifest.ChargeableWeightKg(serviceType)
	if err != nil {
		return shipment.PricingBreakdown{}, err
	}

	var basePrice, extraPrice int64
	switch serviceType {
	case shipment.ServiceTypeStandard:
		basePrice, extraPrice, err = e.standardFee(routeType, chargeableWeightKg)
	case shipment.ServiceTypeExpress:
		totalVolumeCm3, volumeErr := manifest.TotalVolumeCm3(serviceType)
		if volumeErr != nil {
			return shipment.PricingBreakdown{}, volumeErr
		}
		basePrice, err = e.expressFee(sender, receiver, chargeableWeightKg, totalVolumeCm3)
	}
	if err != nil {
		return shipment.PricingBreakdown{}, err
	}

	days := lookupSLADays(routeType, serviceType)

	return shipment.PricingBreakdown{
		BasePrice:          basePrice,
		ExtraWeightPrice:   extraPrice,
		ChargeableWeightKg: round2(chargeableWeightKg),
		ActualWeightKg:     round2(actualWeightKg),
		VolumetricWeightKg: round2(volumetricWeightKg),
		RouteType:          routeType,
		ServiceType:        serviceType,
		SLADays:            days,
		SLA:                formatSLA(days),
	}, nil
}

func (e *PricingEngine) standardFee(routeType geo.RouteType, weightKg float64) (int64, int64, error) {
	if weightKg > standardMaxWeightKg {
		return 0, 0, fmt.Errorf("%w: standard weight %.2fkg exceeds %.0fkg",
			ErrUnsupportedRoute, weightKg, standardMaxWeightKg)
	}

	if weightKg < standardTierCeilingKg {
		base := standardBaseFee[routeType]
		var extra int64
		if weightKg > standardIncludedWeightKg {
			steps := math.Ceil((weightKg - standardIncludedWeightKg) / standardExtraStepKg)
			extra = int64(steps) * standardExtraUnitFee[routeType]
		}
		return base, extra, nil
	}

	for _, band := range standardFlatBands {
		if weightKg <= band.ceilingKg {
			return band.fees[routeType], 0, nil
		}
	}

	base := standardFlatBands[len(standardFlatBands)-1].fees[routeType]
	extra := int64(math.Round(weightKg-standardPerKgThresholdKg)) * standardPerKgFee[routeType]
	return base, extra, nil
}

func (e *PricingEngine) expressFee(
	sender geo.ResolvedAddress,
	receiver geo.ResolvedAddress,
	weightKg float64,
	volumeCm3 float64,
) (int64, error) {
	sameProvince, err := sender.SameProvince(receiver)
	if err != nil {
		return 0, err
	}
	if !sameProvince || !e.isMajorCity(sender.ProvinceCode()) {
		return 0, fmt.Errorf("%w: express serves intra-city routes in major cities only",
			ErrUnsupportedRoute)
	}
	if weightKg > expressMaxWeightKg {
		return 0, fmt.Errorf("%w: express weight %.2fkg exceeds %.0fkg",
			ErrUnsupportedRoute, weightKg, expressMaxWeightKg)
	}

	fees := expressHeavyBandFees
	if weightKg <= expressLightBandCeilingKg {
		fees = expressLightBandFees
	}

	for index, thresholdCm3 := range expressVolumeThresholdsCm3 {
		if volumeCm3 < thresholdCm3 {
			return fees[index], nil
		}
	}
	return fees[len(fees)-1], nil
}

func (e *PricingEngine) isMajorCity(provinceCode string) bool {
	_, found := e.majorCityCodes[provinceCode]
	return found
}

func lookupSLADays(routeType geo.RouteType, serviceType shipment.ServiceType) int {
	if byService, found := slaDays[routeType]; found {
		if days, mapped := byService[serviceType]; mapped {
			return days
		}
	}
	return slaDefaultDays
}

func formatSLA(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
