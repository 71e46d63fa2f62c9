package geo

import (
	"errors"
	"sort"

	"github.com/hiepstudy1604-ux/courierXpress-sub003/internal/pkg/errs"
)

// ErrDirectoryIsNotConstructed is returned when using an improperly initialized Directory.
var ErrDirectoryIsNotConstructed = errors.New("Directory must be created via NewDirectory constructor")

// Directory is an immutable, indexed snapshot of the geo reference data:
// every province, district and ward plus their aliases. It is loaded once
// from the reference store and shared read-only across requests, so lookups
// never touch the database on the hot path.
//
// Iteration order is deterministic: units are sorted by code and aliases by
// ascending priority, then alias text.
type Directory struct {
	unitsByCode     map[string]*GeoUnit
	provinces       []*GeoUnit
	childrenByCode  map[string][]*GeoUnit
	aliasesByParent map[string][]*GeoAlias
	provinceAliases []*GeoAlias
}

// NewDirectory builds a directory from reference units and aliases. Every
// alias must point at a known unit, and every district and ward must reference
// a known parent; violations fail construction.
func NewDirectory(units []*GeoUnit, aliases []*GeoAlias) (*Directory, error) {
	directory := &Directory{
		unitsByCode:     make(map[string]*GeoUnit, len(units)),
		childrenByCode:  make(map[string][]*GeoUnit),
		aliasesByParent: make(map[string][]*GeoAlias),
	}

	for _, unit := range units {
		if err := unit.Validate(); err != nil {
			return nil, err
		}
		if _, exists := directory.unitsByCode[unit.Code()]; exists {
			return nil, errs.NewValueIsInvalidError("unit code " + unit.Code() + " is duplicated")
		}
		directory.unitsByCode[unit.Code()] = unit
	}

	for _, unit := range units {
		switch unit.Level() {
		case UnitLevelProvince:
			directory.provinces = append(directory.provinces, unit)
		default:
			parent, found := directory.unitsByCode[unit.ParentCode()]
			if !found {
				return nil, errs.NewObjectNotFoundErrorWithCause(
					"parentCode", unit.ParentCode(), errors.New("parent unit is missing"))
			}
			if parent.Level() != unit.Level()-1 {
				return nil, errs.NewValueIsInvalidError("parentCode of " + unit.Code())
			}
			directory.childrenByCode[unit.ParentCode()] = append(
				directory.childrenByCode[unit.ParentCode()], unit)
		}
	}

	for _, alias := range aliases {
		if err := alias.Validate(); err != nil {
			return nil, err
		}
		unit, found := directory.unitsByCode[alias.UnitCode()]
		if !found {
			return nil, errs.NewObjectNotFoundErrorWithCause(
				"unitCode", alias.UnitCode(), errors.New("aliased unit is missing"))
		}
		if unit.Level() == UnitLevelProvince {
			directory.provinceAliases = append(directory.provinceAliases, alias)
		} else {
			directory.aliasesByParent[unit.ParentCode()] = append(
				directory.aliasesByParent[unit.ParentCode()], alias)
		}
	}

	sortUnits(directory.provinces)
	for _, children := range directory.childrenByCode {
		sortUnits(children)
	}
	sortAliases(directory.provinceAliases)
	for _, scoped := range directory.aliasesByParent {
		sortAliases(scoped)
	}

	return directory, nil
}

// Validate checks if the Directory was properly constructed.
func (d *Directory) Validate() error {
	if d == nil || d.unitsByCode == nil {
		return ErrDirectoryIsNotConstructed
	}
	return nil
}

// Provinces returns all provinces sorted by code.
func (d *Directory) Provinces() []*GeoUnit {
	return d.provinces
}

// ChildrenOf returns the direct children of a unit sorted by code:
// districts of a province, or wards of a district.
func (d *Directory) ChildrenOf(code string) []*GeoUnit {
	return d.childrenByCode[code]
}

// ProvinceAliases returns all province-level aliases sorted by ascending priority.
func (d *Directory) ProvinceAliases() []*GeoAlias {
	return d.provinceAliases
}

// AliasesUnder returns aliases of the direct children of a unit, sorted by
// ascending priority: district aliases of a province, or ward aliases of a district.
func (d *Directory) AliasesUnder(parentCode string) []*GeoAlias {
	return d.aliasesByParent[parentCode]
}

// UnitByCode looks up a unit by its code.
func (d *Directory) UnitByCode(code string) (*GeoUnit, bool) {
	unit, found := d.unitsByCode[code]
	return unit, found
}

func sortUnits(units []*GeoUnit) {
	sort.Slice(units, func(i, j int) bool {
		return units[i].Code() < units[j].Code()
	})
}

func sortAliases(aliases []*GeoAlias) {
	sort.Slice(aliases, func(i, j int) bool {
		if aliases[i].Priority() != aliases[j].Priority() {
			return aliases[i].Priority() < aliases[j].Priority()
		}
		return aliases[i].Alias() < aliases[j].Alias()
	})
}
