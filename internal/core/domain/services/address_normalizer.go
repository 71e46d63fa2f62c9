package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/geo"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// Confidence scores assigned by the matching cascade. Display-name matches
// score highest, raw-name matches slightly lower, aliases lower still with a
// penalty proportional to the alias priority.
const (
	provinceExactConfidence     = 100.0
	provinceSubstringConfidence = 85.0
	provinceAliasCeiling        = 100.0
	provinceAliasFloor          = 65.0

	childNameConfidence    = 95.0
	childRawNameConfidence = 90.0
	childAliasCeiling      = 95.0
	childAliasFloor        = 60.0

	aliasPriorityPenalty = 2.0
)

// ErrAddressNormalizerIsNotConstructed is returned when using an improperly
// initialized AddressNormalizer.
var ErrAddressNormalizerIsNotConstructed = errors.New(
	"AddressNormalizer must be created via NewAddressNormalizer constructor")

// ErrAddressNotResolved is returned when no province can be recognized in the
// input text. District and ward resolution failures are not errors: the
// address simply resolves at a coarser level with a lower overall confidence.
var ErrAddressNotResolved = errors.New("address does not match any known province")

var (
	punctuationPattern = regexp.MustCompile(`[.,;:/\\()\-]+`)
	fillerPattern      = regexp.MustCompile(
		`\b(THANH PHO|TINH|QUAN|HUYEN|THI XA|THI TRAN|PHUONG|XA|TP)\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// AddressNormalizer resolves free-text Vietnamese addresses against the geo
// reference directory. Resolution walks top-down: province first, then
// districts of the matched province, then wards of the matched district, so
// ambiguous names like "Binh Thanh" only match within the right parent.
//
// The normalizer is stateless apart from the directory snapshot and is safe
// for concurrent use.
type AddressNormalizer struct {
	directory *geo.Directory
}

// NewAddressNormalizer creates a normalizer over a reference directory.
func NewAddressNormalizer(directory *geo.Directory) (*AddressNormalizer, error) {
	if err := directory.Validate(); err != nil {
		return nil, err
	}
	return &AddressNormalizer{directory: directory}, nil
}

// Normalize resolves a raw address string into a ResolvedAddress. The input
// must be non-blank. Returns ErrAddressNotResolved when no province matches.
func (n *AddressNormalizer) Normalize(rawAddress string) (geo.ResolvedAddress, error) {
	if strings.TrimSpace(rawAddress) == "" {
		return geo.ResolvedAddress{}, errs.NewValueIsRequiredError("rawAddress")
	}

	text := NormalizeText(rawAddress)

	province, provinceConfidence := n.matchProvince(text)
	if province == nil {
		return geo.ResolvedAddress{}, ErrAddressNotResolved
	}

	district, districtConfidence := n.matchChild(text, province.Code())

	var ward *geo.GeoUnit
	var wardConfidence float64
	if district != nil {
		ward, wardConfidence = n.matchChild(text, district.Code())
	}

	districtCode := ""
	if district != nil {
		districtCode = district.Code()
	}
	wardCode := ""
	if ward != nil {
		wardCode = ward.Code()
	}

	return geo.NewResolvedAddress(
		rawAddress,
		province.Code(),
		provinceConfidence,
		districtCode,
		districtConfidence,
		wardCode,
		wardConfidence,
		province.Region(),
		deepestPoint(province, district, ward),
	)
}

// NormalizeText canonicalizes an address fragment for matching: diacritics
// are stripped, the text is uppercased, punctuation and administrative filler
// words (tinh, thanh pho, quan, huyen, phuong, xa, ...) are removed and
// whitespace is collapsed.
func NormalizeText(raw string) string {
	text := strings.ToUpper(unidecode.Unidecode(raw))
	text = punctuationPattern.ReplaceAllString(text, " ")
	text = fillerPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// matchProvince tries the display name of every province as a substring of
// the text, then falls back to province aliases in priority order.
func (n *AddressNormalizer) matchProvince(text string) (*geo.GeoUnit, float64) {
	for _, province := range n.directory.Provinces() {
		name := NormalizeText(province.Name())
		if name == "" || !containsPhrase(text, name) {
			continue
		}
		if text == name || strings.HasPrefix(text, name+" ") || strings.HasSuffix(text, " "+name) {
			return province, provinceExactConfidence
		}
		return province, provinceSubstringConfidence
	}

	for _, alias := range n.directory.ProvinceAliases() {
		aliasText := NormalizeText(alias.Alias())
		if aliasText == "" || !containsPhrase(text, aliasText) {
			continue
		}
		unit, found := n.directory.UnitByCode(alias.UnitCode())
		if !found {
			continue
		}
		return unit, aliasConfidence(provinceAliasCeiling, provinceAliasFloor, alias.Priority())
	}

	return nil, 0
}

// matchChild resolves a district within a province or a ward within a
// district: display name first, raw name second, aliases last.
func (n *AddressNormalizer) matchChild(text string, parentCode string) (*geo.GeoUnit, float64) {
	children := n.directory.ChildrenOf(parentCode)

	for _, child := range children {
		name := NormalizeText(child.Name())
		if name != "" && containsPhrase(text, name) {
			return child, childNameConfidence
		}
	}

	for _, child := range children {
		rawName := NormalizeText(child.RawName())
		if rawName != "" && containsPhrase(text, rawName) {
			return child, childRawNameConfidence
		}
	}

	for _, alias := range n.directory.AliasesUnder(parentCode) {
		aliasText := NormalizeText(alias.Alias())
		if aliasText == "" || !containsPhrase(text, aliasText) {
			continue
		}
		unit, found := n.directory.UnitByCode(alias.UnitCode())
		if !found {
			continue
		}
		return unit, aliasConfidence(childAliasCeiling, childAliasFloor, alias.Priority())
	}

	return nil, 0
}

// containsPhrase reports whether needle occurs in text aligned on token
// boundaries, so "1" matches "PHO HUE 1" but not "123 PHO HUE".
func containsPhrase(text string, needle string) bool {
	return strings.Contains(" "+text+" ", " "+needle+" ")
}

func aliasConfidence(ceiling float64, floor float64, priority int) float64 {
	confidence := ceiling - aliasPriorityPenalty*float64(priority)
	if confidence < floor {
		return floor
	}
	return confidence
}

// deepestPoint returns the coordinates of the deepest resolved unit that has
// any, preferring ward over district over province.
func deepestPoint(units ...*geo.GeoUnit) *kernel.GeoPoint {
	var point *kernel.GeoPoint
	for _, unit := range units {
		if unit != nil && unit.Point() != nil {
			point = unit.Point()
		}
	}
	return point
}
