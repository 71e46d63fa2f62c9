package geo

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

const (
	// ConfidenceMin is the lowest possible confidence score.
	ConfidenceMin = 0.0
	// ConfidenceMax is the highest possible confidence score.
	ConfidenceMax = 100.0

	// Weights of the per-level confidences in the overall score.
	provinceConfidenceWeight = 0.4
	districtConfidenceWeight = 0.35
	wardConfidenceWeight     = 0.25
)

// ErrResolvedAddressIsNotConstructed is returned when using an improperly
// initialized ResolvedAddress.
var ErrResolvedAddressIsNotConstructed = errors.New(
	"ResolvedAddress must be created via NewResolvedAddress constructor")

// ResolvedAddress is the result of normalizing a free-text address against the
// geo reference data. A resolved address always carries at least a province;
// district and ward are optional refinements. Each resolved level carries a
// confidence score in [0,100] expressing how certain the match is.
//
// ResolvedAddress is immutable and created per normalization call; it is never
// persisted by the allocation core.
type ResolvedAddress struct {
	input string

	provinceCode       string
	provinceConfidence float64

	districtCode       string
	districtConfidence float64

	wardCode       string
	wardConfidence float64

	region Region
	point  *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewResolvedAddress creates a resolved address. The input text, province code,
// province confidence and region are required; district and ward codes may be
// empty, in which case their confidences must be zero. All confidences must lie
// in [ConfidenceMin, ConfidenceMax].
func NewResolvedAddress(
	input string,
	provinceCode string,
	provinceConfidence float64,
	districtCode string,
	districtConfidence float64,
	wardCode string,
	wardConfidence float64,
	region Region,
	point *kernel.GeoPoint,
) (ResolvedAddress, error) {
	addr := ResolvedAddress{
		input: input,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setProvince(provinceCode, provinceConfidence),
		addr.setDistrict(districtCode, districtConfidence),
		addr.setWard(wardCode, wardConfidence),
		addr.setRegion(region),
		addr.setPoint(point),
	); err != nil {
		return ResolvedAddress{}, err
	}

	return addr, nil
}

// Validate checks if the ResolvedAddress was properly constructed.
func (a ResolvedAddress) Validate() error {
	return a.guard.Validate(ErrResolvedAddressIsNotConstructed)
}

// Input returns the raw address text the resolution started from.
func (a ResolvedAddress) Input() string {
	return a.input
}

// ProvinceCode returns the matched province code; never empty for a valid address.
func (a ResolvedAddress) ProvinceCode() string {
	return a.provinceCode
}

// ProvinceConfidence returns the province match confidence in [0,100].
func (a ResolvedAddress) ProvinceConfidence() float64 {
	return a.provinceConfidence
}

// DistrictCode returns the matched district code, empty when unresolved.
func (a ResolvedAddress) DistrictCode() string {
	return a.districtCode
}

// DistrictConfidence returns the district match confidence, zero when unresolved.
func (a ResolvedAddress) DistrictConfidence() float64 {
	return a.districtConfidence
}

// WardCode returns the matched ward code, empty when unresolved.
func (a ResolvedAddress) WardCode() string {
	return a.wardCode
}

// WardConfidence returns the ward match confidence, zero when unresolved.
func (a ResolvedAddress) WardConfidence() float64 {
	return a.wardConfidence
}

// Region returns the region code derived from the matched province.
func (a ResolvedAddress) Region() Region {
	return a.region
}

// Point returns coordinates derived from the deepest matched unit, nil when unknown.
func (a ResolvedAddress) Point() *kernel.GeoPoint {
	return a.point
}

// OverallConfidence combines the per-level confidences into a single score:
// 0.4×province + 0.35×district + 0.25×ward. Unresolved levels contribute zero,
// so a province-only match tops out at 40.
func (a ResolvedAddress) OverallConfidence() float64 {
	return provinceConfidenceWeight*a.provinceConfidence +
		districtConfidenceWeight*a.districtConfidence +
		wardConfidenceWeight*a.wardConfidence
}

// SameProvince reports whether two resolved addresses share a province code.
func (a ResolvedAddress) SameProvince(other ResolvedAddress) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return a.provinceCode == other.provinceCode, nil
}

func (a *ResolvedAddress) setProvince(code string, confidence float64) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("provinceCode")
	}
	if confidence < ConfidenceMin || confidence > ConfidenceMax {
		return errs.NewValueIsOutOfRangeError("provinceConfidence", confidence, ConfidenceMin, ConfidenceMax)
	}
	a.provinceCode = code
	a.provinceConfidence = confidence
	return nil
}

func (a *ResolvedAddress) setDistrict(code string, confidence float64) error {
	if code == "" && confidence != 0 {
		return errs.NewValueIsInvalidError("districtConfidence")
	}
	if confidence < ConfidenceMin || confidence > ConfidenceMax {
		return errs.NewValueIsOutOfRangeError("districtConfidence", confidence, ConfidenceMin, ConfidenceMax)
	}
	a.districtCode = code
	a.districtConfidence = confidence
	return nil
}

func (a *ResolvedAddress) setWard(code string, confidence float64) error {
	if code == "" && confidence != 0 {
		return errs.NewValueIsInvalidError("wardConfidence")
	}
	if confidence < ConfidenceMin || confidence > ConfidenceMax {
		return errs.NewValueIsOutOfRangeError("wardConfidence", confidence, ConfidenceMin, ConfidenceMax)
	}
	a.wardCode = code
	a.wardConfidence = confidence
	return nil
}

func (a *ResolvedAddress) setRegion(region Region) error {
	if err := region.Validate(); err != nil {
		return err
	}
	a.region = region
	return nil
}

func (a *ResolvedAddress) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	a.point = point
	return nil
}
