package shipment

import (
	"errors"
	"fmt"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// SizeBucket is the declared size label of an Express item. Express orders do
// not carry measured dimensions; volume is looked up from a fixed table keyed
// by the label.
type SizeBucket int

const (
	// SizeBucketUnknown represents an undeclared size bucket.
	SizeBucketUnknown SizeBucket = iota
	// SizeBucketS is a small parcel (up to roughly a shoe box).
	SizeBucketS
	// SizeBucketM is a medium parcel.
	SizeBucketM
	// SizeBucketL is a large parcel.
	SizeBucketL
	// SizeBucketXL is an extra-large parcel.
	SizeBucketXL
)

// getSizeBucketVolumes returns the fixed volume table, in cubic centimeters.
func getSizeBucketVolumes() map[SizeBucket]float64 {
	return map[SizeBucket]float64{
		SizeBucketS:  4000,
		SizeBucketM:  13500,
		SizeBucketL:  32000,
		SizeBucketXL: 62500,
	}
}

// SizeBucketFromString parses a size label ("S", "M", "L", "XL").
func SizeBucketFromString(s string) (SizeBucket, error) {
	switch s {
	case "S":
		return SizeBucketS, nil
	case "M":
		return SizeBucketM, nil
	case "L":
		return SizeBucketL, nil
	case "XL":
		return SizeBucketXL, nil
	default:
		return SizeBucketUnknown, errs.NewValueIsInvalidErrorWithCause("sizeBucket",
			fmt.Errorf("%q is not a valid size bucket", s))
	}
}

// VolumeCm3 returns the table volume of the bucket in cubic centimeters,
// zero for SizeBucketUnknown.
func (b SizeBucket) VolumeCm3() float64 {
	return getSizeBucketVolumes()[b]
}

// String returns the size label.
func (b SizeBucket) String() string {
	switch b {
	case SizeBucketS:
		return "S"
	case SizeBucketM:
		return "M"
	case SizeBucketL:
		return "L"
	case SizeBucketXL:
		return "XL"
	default:
		return "unknown"
	}
}

// Domain errors for item construction.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemHasNoVolumeSource is returned when an item declares neither
	// physical dimensions nor a size bucket.
	ErrItemHasNoVolumeSource = errors.New("item requires either dimensions or a size bucket")
)

// Dimensions are the physical measurements of an item in centimeters.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// IsZero reports whether no dimension has been declared.
func (d Dimensions) IsZero() bool {
	return d.LengthCm == 0 && d.WidthCm == 0 && d.HeightCm == 0
}

// VolumeCm3 returns length×width×height in cubic centimeters.
func (d Dimensions) VolumeCm3() float64 {
	return d.LengthCm * d.WidthCm * d.HeightCm
}

// Item is a single package line of a shipment manifest.
// An item declares its weight in grams and exactly one volume source: measured
// dimensions (Standard service) or a size bucket (Express service). Declared
// value and goods category are carried through for insurance and vehicle
// eligibility but do not affect volume.
type Item struct {
	weightGrams   int
	dimensions    Dimensions
	sizeBucket    SizeBucket
	declaredValue int64
	goodsCategory string
	guard         guard.ConstructorGuard
}

// NewItem creates an item. Weight must be positive; at least one of dimensions
// or size bucket must be declared; declared dimensions must all be positive;
// declared value must not be negative.
func NewItem(
	weightGrams int,
	dimensions Dimensions,
	sizeBucket SizeBucket,
	declaredValue int64,
	goodsCategory string,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setWeight(weightGrams),
		item.setVolumeSource(dimensions, sizeBucket),
		item.setDeclaredValue(declaredValue),
	); err != nil {
		return Item{}, err
	}

	item.goodsCategory = goodsCategory
	return item, nil
}

// Validate checks if the Item was properly constructed.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// WeightGrams returns the item weight in grams.
func (i Item) WeightGrams() int {
	return i.weightGrams
}

// Dimensions returns the measured dimensions, zero when the item declares a bucket.
func (i Item) Dimensions() Dimensions {
	return i.dimensions
}

// SizeBucket returns the declared size bucket, SizeBucketUnknown when the item
// declares dimensions instead.
func (i Item) SizeBucket() SizeBucket {
	return i.sizeBucket
}

// DeclaredValue returns the declared value in VND.
func (i Item) DeclaredValue() int64 {
	return i.declaredValue
}

// GoodsCategory returns the raw goods category string as supplied by the caller.
func (i Item) GoodsCategory() string {
	return i.goodsCategory
}

// VolumeCm3 returns the item volume for the given service type: measured
// dimensions for Standard, the size-bucket table for Express.
func (i Item) VolumeCm3(serviceType ServiceType) (float64, error) {
	switch serviceType {
	case ServiceTypeStandard:
		return i.dimensions.VolumeCm3(), nil
	case ServiceTypeExpress:
		if i.sizeBucket == SizeBucketUnknown {
			return 0, ErrItemHasNoVolumeSource
		}
		return i.sizeBucket.VolumeCm3(), nil
	default:
		return 0, serviceType.Validate()
	}
}

func (i *Item) setWeight(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsRequiredError("weightGrams")
	}
	i.weightGrams = weightGrams
	return nil
}

func (i *Item) setVolumeSource(dimensions Dimensions, sizeBucket SizeBucket) error {
	if dimensions.IsZero() && sizeBucket == SizeBucketUnknown {
		return ErrItemHasNoVolumeSource
	}
	if !dimensions.IsZero() {
		if dimensions.LengthCm <= 0 || dimensions.WidthCm <= 0 || dimensions.HeightCm <= 0 {
			return errs.NewValueIsInvalidError("dimensions")
		}
	}
	i.dimensions = dimensions
	i.sizeBucket = sizeBucket
	return nil
}

func (i *Item) setDeclaredValue(declaredValue int64) error {
	if declaredValue < 0 {
		return errs.NewValueIsInvalidError("declaredValue")
	}
	i.declaredValue = declaredValue
	return nil
}

// ErrManifestIsEmpty is returned when creating a manifest without items.
var ErrManifestIsEmpty = errs.NewValueIsRequiredError("items")

// VolumetricDivisor converts total volume in cm³ into volumetric weight in kg.
const VolumetricDivisor = 5000.0

// Manifest is the ordered list of items of one shipment. It aggregates
// weight and volume, which feed both pricing (chargeable weight) and vehicle
// eligibility (goods requirement).
type Manifest struct {
	items []Item
}

// NewManifest creates a manifest from a non-empty, valid item list.
func NewManifest(items []Item) (Manifest, error) {
	if len(items) == 0 {
		return Manifest{}, ErrManifestIsEmpty
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Manifest{}, err
		}
	}

	copied := make([]Item, len(items))
	copy(copied, items)
	return Manifest{items: copied}, nil
}

// Validate checks the manifest is non-empty, which only holds for manifests
// created via NewManifest.
func (m Manifest) Validate() error {
	if len(m.items) == 0 {
		return ErrManifestIsEmpty
	}
	return nil
}

// Items returns a copy of the item list in manifest order.
func (m Manifest) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// ActualWeightKg returns the summed physical weight in kilograms.
func (m Manifest) ActualWeightKg() float64 {
	var grams int
	for _, item := range m.items {
		grams += item.weightGrams
	}
	return float64(grams) / 1000
}

// TotalVolumeCm3 returns the summed item volume in cubic centimeters for the
// given service type.
func (m Manifest) TotalVolumeCm3(serviceType ServiceType) (float64, error) {
	var total float64
	for _, item := range m.items {
		volume, err := item.VolumeCm3(serviceType)
		if err != nil {
			return 0, err
		}
		total += volume
	}
	return total, nil
}

// VolumetricWeightKg returns total volume divided by the volumetric divisor.
func (m Manifest) VolumetricWeightKg(serviceType ServiceType) (float64, error) {
	volume, err := m.TotalVolumeCm3(serviceType)
	if err != nil {
		return 0, err
	}
	return volume / VolumetricDivisor, nil
}

// ChargeableWeightKg returns max(actual weight, volumetric weight), the weight
// basis used by pricing and capacity checks.
func (m Manifest) ChargeableWeightKg(serviceType ServiceType) (float64, error) {
	volumetric, err := m.VolumetricWeightKg(serviceType)
	if err != nil {
		return 0, err
	}
	actual := m.ActualWeightKg()
	if volumetric > actual {
		return volumetric, nil
	}
	return actual, nil
}

// MaxDimensions returns the per-axis maxima over all items with measured
// dimensions, zero when no item declares dimensions.
func (m Manifest) MaxDimensions() Dimensions {
	var maxDims Dimensions
	for _, item := range m.items {
		if item.dimensions.LengthCm > maxDims.LengthCm {
			maxDims.LengthCm = item.dimensions.LengthCm
		}
		if item.dimensions.WidthCm > maxDims.WidthCm {
			maxDims.WidthCm = item.dimensions.WidthCm
		}
		if item.dimensions.HeightCm > maxDims.HeightCm {
			maxDims.HeightCm = item.dimensions.HeightCm
		}
	}
	return maxDims
}
