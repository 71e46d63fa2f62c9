package shipment

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// Normalized goods-type tags produced by the taxonomy.
const (
	GoodsTypeGeneral     = "GENERAL"
	GoodsTypeFood        = "FOOD"
	GoodsTypeFrozen      = "FROZEN"
	GoodsTypeFragile     = "FRAGILE"
	GoodsTypeElectronics = "ELECTRONICS"
	GoodsTypeClothing    = "CLOTHING"
	GoodsTypeDocument    = "DOCUMENT"
	GoodsTypeCosmetics   = "COSMETICS"
)

// getGoodsTaxonomy returns the fixed raw-category → tag dictionary.
// Keys are compared case-insensitively after whitespace trimming.
func getGoodsTaxonomy() map[string]string {
	return map[string]string{
		"general":        GoodsTypeGeneral,
		"hang thuong":    GoodsTypeGeneral,
		"food":           GoodsTypeFood,
		"thuc pham":      GoodsTypeFood,
		"frozen":         GoodsTypeFrozen,
		"hang dong lanh": GoodsTypeFrozen,
		"fragile":        GoodsTypeFragile,
		"hang de vo":     GoodsTypeFragile,
		"electronics":    GoodsTypeElectronics,
		"hang dien tu":   GoodsTypeElectronics,
		"clothing":       GoodsTypeClothing,
		"quan ao":        GoodsTypeClothing,
		"document":       GoodsTypeDocument,
		"documents":      GoodsTypeDocument,
		"tai lieu":       GoodsTypeDocument,
		"cosmetics":      GoodsTypeCosmetics,
		"my pham":        GoodsTypeCosmetics,
	}
}

// NormalizeGoodsType maps a raw goods category to its normalized tag.
// The lookup is a case-insensitive exact match against the fixed taxonomy;
// unmapped values pass through uppercased, so unknown categories still produce
// a stable tag for vehicle matching.
func NormalizeGoodsType(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GoodsTypeGeneral
	}
	if tag, ok := getGoodsTaxonomy()[strings.ToLower(trimmed)]; ok {
		return tag
	}
	return strings.ToUpper(trimmed)
}

// ErrGoodsRequirementIsNotConstructed is returned when using an improperly
// initialized GoodsRequirement.
var ErrGoodsRequirementIsNotConstructed = errors.New(
	"GoodsRequirement must be created via NewGoodsRequirement or GoodsRequirementFromManifest")

// GoodsRequirement is the aggregate cargo demand of one shipment as seen by
// vehicle matching: a normalized goods-type tag, chargeable weight in kg,
// volume in m³ and, when the manifest declares measured items, the maximum
// per-axis dimensions in cm.
type GoodsRequirement struct {
	goodsType          string
	chargeableWeightKg float64
	volumeM3           float64
	maxDimensions      Dimensions
	guard              guard.ConstructorGuard
}

// cm³ per m³.
const cm3PerM3 = 1_000_000.0

// NewGoodsRequirement creates a goods requirement from pre-aggregated values.
func NewGoodsRequirement(
	goodsType string,
	chargeableWeightKg float64,
	volumeM3 float64,
	maxDimensions Dimensions,
) (GoodsRequirement, error) {
	requirement := GoodsRequirement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requirement.setGoodsType(goodsType),
		requirement.setWeight(chargeableWeightKg),
		requirement.setVolume(volumeM3),
	); err != nil {
		return GoodsRequirement{}, err
	}

	requirement.maxDimensions = maxDimensions
	return requirement, nil
}

// GoodsRequirementFromManifest aggregates a manifest into a goods requirement
// for the given service type. The goods-type tag is taken from the first item's
// category run through the taxonomy; mixed-category manifests are matched on
// that dominant tag.
func GoodsRequirementFromManifest(manifest Manifest, serviceType ServiceType) (GoodsRequirement, error) {
	chargeable, err := manifest.ChargeableWeightKg(serviceType)
	if err != nil {
		return GoodsRequirement{}, err
	}

	volumeCm3, err := manifest.TotalVolumeCm3(serviceType)
	if err != nil {
		return GoodsRequirement{}, err
	}

	items := manifest.Items()
	goodsType := NormalizeGoodsType(items[0].GoodsCategory())

	return NewGoodsRequirement(goodsType, chargeable, volumeCm3/cm3PerM3, manifest.MaxDimensions())
}

// Validate checks if the GoodsRequirement was properly constructed.
func (r GoodsRequirement) Validate() error {
	return r.guard.Validate(ErrGoodsRequirementIsNotConstructed)
}

// GoodsType returns the normalized goods-type tag.
func (r GoodsRequirement) GoodsType() string {
	return r.goodsType
}

// ChargeableWeightKg returns the aggregate chargeable weight in kilograms.
func (r GoodsRequirement) ChargeableWeightKg() float64 {
	return r.chargeableWeightKg
}

// VolumeM3 returns the aggregate volume in cubic meters.
func (r GoodsRequirement) VolumeM3() float64 {
	return r.volumeM3
}

// MaxDimensions returns the maximum per-axis dimensions in cm, zero when the
// manifest declared no measured items.
func (r GoodsRequirement) MaxDimensions() Dimensions {
	return r.maxDimensions
}

func (r *GoodsRequirement) setGoodsType(goodsType string) error {
	if strings.TrimSpace(goodsType) == "" {
		return errs.NewValueIsRequiredError("goodsType")
	}
	r.goodsType = goodsType
	return nil
}

func (r *GoodsRequirement) setWeight(chargeableWeightKg float64) error {
	if chargeableWeightKg < 0 {
		return errs.NewValueIsInvalidError("chargeableWeightKg")
	}
	r.chargeableWeightKg = chargeableWeightKg
	return nil
}

func (r *GoodsRequirement) setVolume(volumeM3 float64) error {
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidError("volumeM3")
	}
	r.volumeM3 = volumeM3
	return nil
}
