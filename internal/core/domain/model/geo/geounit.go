package geo

import (
	"errors"
	"strings"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/core/domain/model/kernel"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/guard"
)

// UnitLevel identifies the administrative level of a geo unit.
type UnitLevel int

const (
	// UnitLevelUnknown represents an invalid or undefined level.
	UnitLevelUnknown UnitLevel = iota
	// UnitLevelProvince is the top administrative level.
	UnitLevelProvince
	// UnitLevelDistrict is the second administrative level, scoped to a province.
	UnitLevelDistrict
	// UnitLevelWard is the third administrative level, scoped to a district.
	UnitLevelWard
)

// Validate checks if the UnitLevel is province, district or ward.
func (l UnitLevel) Validate() error {
	switch l {
	case UnitLevelProvince, UnitLevelDistrict, UnitLevelWard:
		return nil
	default:
		return errs.NewValueIsInvalidError("unitLevel")
	}
}

// String returns the lowercase level name.
func (l UnitLevel) String() string {
	switch l {
	case UnitLevelProvince:
		return "province"
	case UnitLevelDistrict:
		return "district"
	case UnitLevelWard:
		return "ward"
	default:
		return "unknown"
	}
}

// ErrGeoUnitIsNotConstructed is returned when using an improperly initialized GeoUnit.
var ErrGeoUnitIsNotConstructed = errors.New("GeoUnit must be created via NewGeoUnit constructor")

// GeoUnit is an immutable reference-data record for a province, district or ward.
// Units carry a display name used for exact matching and a raw (unaccented or
// historical) name used as a secondary match target. Provinces carry the region
// code; districts and wards inherit it through their parent chain.
type GeoUnit struct {
	code       string
	level      UnitLevel
	name       string
	rawName    string
	parentCode string
	region     Region
	point      *kernel.GeoPoint
	guard      guard.ConstructorGuard
}

// NewGeoUnit creates a geo unit. Code, level and name are required; parentCode
// is required for districts and wards; region is required for provinces.
// The point is optional coordinate data for coverage checks.
func NewGeoUnit(
	code string,
	level UnitLevel,
	name string,
	rawName string,
	parentCode string,
	region Region,
	point *kernel.GeoPoint,
) (*GeoUnit, error) {
	unit := &GeoUnit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unit.setCode(code),
		unit.setLevel(level),
		unit.setName(name, rawName),
		unit.setParent(level, parentCode),
		unit.setRegion(level, region),
		unit.setPoint(point),
	); err != nil {
		return nil, err
	}

	return unit, nil
}

// Validate checks if the GeoUnit was properly constructed.
func (u *GeoUnit) Validate() error {
	if u == nil {
		return ErrGeoUnitIsNotConstructed
	}
	return u.guard.Validate(ErrGeoUnitIsNotConstructed)
}

// Code returns the unique unit code.
func (u *GeoUnit) Code() string {
	return u.code
}

// Level returns the administrative level.
func (u *GeoUnit) Level() UnitLevel {
	return u.level
}

// Name returns the display name.
func (u *GeoUnit) Name() string {
	return u.name
}

// RawName returns the raw/alternate name, which may be empty.
func (u *GeoUnit) RawName() string {
	return u.rawName
}

// ParentCode returns the code of the parent unit, empty for provinces.
func (u *GeoUnit) ParentCode() string {
	return u.parentCode
}

// Region returns the macro region of the unit. Only provinces are guaranteed
// to carry a valid region; lower levels may return RegionUnknown.
func (u *GeoUnit) Region() Region {
	return u.region
}

// Point returns the unit's coordinates, nil when not available.
func (u *GeoUnit) Point() *kernel.GeoPoint {
	return u.point
}

func (u *GeoUnit) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	u.code = code
	return nil
}

func (u *GeoUnit) setLevel(level UnitLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	u.level = level
	return nil
}

func (u *GeoUnit) setName(name string, rawName string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	u.rawName = rawName
	return nil
}

func (u *GeoUnit) setParent(level UnitLevel, parentCode string) error {
	if level == UnitLevelDistrict || level == UnitLevelWard {
		if strings.TrimSpace(parentCode) == "" {
			return errs.NewValueIsRequiredError("parentCode")
		}
	}
	u.parentCode = parentCode
	return nil
}

func (u *GeoUnit) setRegion(level UnitLevel, region Region) error {
	if level == UnitLevelProvince {
		if err := region.Validate(); err != nil {
			return err
		}
	}
	u.region = region
	return nil
}

func (u *GeoUnit) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}
	u.point = point
	return nil
}

// ErrGeoAliasIsNotConstructed is returned when using an improperly initialized GeoAlias.
var ErrGeoAliasIsNotConstructed = errors.New("GeoAlias must be created via NewGeoAlias constructor")

// GeoAlias maps an alternate spelling to a geo unit code.
// Lower priority values take precedence during alias resolution.
type GeoAlias struct {
	alias    string
	unitCode string
	priority int
	guard    guard.ConstructorGuard
}

// NewGeoAlias creates an alias record. Alias text and unit code are required;
// priority must not be negative.
func NewGeoAlias(alias string, unitCode string, priority int) (*GeoAlias, error) {
	record := &GeoAlias{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setAlias(alias),
		record.setUnitCode(unitCode),
		record.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the GeoAlias was properly constructed.
func (a *GeoAlias) Validate() error {
	if a == nil {
		return ErrGeoAliasIsNotConstructed
	}
	return a.guard.Validate(ErrGeoAliasIsNotConstructed)
}

// Alias returns the alias text.
func (a *GeoAlias) Alias() string {
	return a.alias
}

// UnitCode returns the code of the unit the alias points at.
func (a *GeoAlias) UnitCode() string {
	return a.unitCode
}

// Priority returns the alias priority; lower is higher precedence.
func (a *GeoAlias) Priority() int {
	return a.priority
}

func (a *GeoAlias) setAlias(alias string) error {
	if strings.TrimSpace(alias) == "" {
		return errs.NewValueIsRequiredError("alias")
	}
	a.alias = alias
	return nil
}

func (a *GeoAlias) setUnitCode(unitCode string) error {
	if strings.TrimSpace(unitCode) == "" {
		return errs.NewValueIsRequiredError("unitCode")
	}
	a.unitCode = unitCode
	return nil
}

func (a *GeoAlias) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsOutOfRangeError("priority", priority, 0, 100)
	}
	a.priority = priority
	return nil
}
