package geo

import (
	"errors"
	"fmt"
)

// ErrRegionIsInvalid indicates a region code outside NORTH/CENTRAL/SOUTH.
// It signals corrupt reference data and must be surfaced as an internal
// failure rather than silently defaulted.
var ErrRegionIsInvalid = errors.New("region code is invalid")

// Region classifies a province into one of the three macro regions of the
// country. Region codes drive both pricing route types and vehicle route
// scopes, so an invalid code is treated as a reference-data fault.
type Region int

const (
	// RegionUnknown represents an invalid or undefined region.
	// This value (0) helps catch uninitialized Region values.
	RegionUnknown Region = iota

	// RegionNorth covers the northern provinces, including Hanoi.
	RegionNorth

	// RegionCentral covers the central provinces.
	RegionCentral

	// RegionSouth covers the southern provinces, including Ho Chi Minh City.
	RegionSouth
)

// getRegionStrings returns a map of Region values to their string representations.
func getRegionStrings() map[Region]string {
	return map[Region]string{
		RegionUnknown: "UNKNOWN",
		RegionNorth:   "NORTH",
		RegionCentral: "CENTRAL",
		RegionSouth:   "SOUTH",
	}
}

// getValidRegionStrings returns a map of only valid Region values.
func getValidRegionStrings() map[Region]string {
	//nolint:exhaustive // RegionUnknown is intentionally excluded as it's invalid
	return map[Region]string{
		RegionNorth:   "NORTH",
		RegionCentral: "CENTRAL",
		RegionSouth:   "SOUTH",
	}
}

// RegionFromString parses a region code string into a Region value.
// Returns ErrRegionIsInvalid for anything outside NORTH/CENTRAL/SOUTH.
func RegionFromString(s string) (Region, error) {
	for region, str := range getValidRegionStrings() {
		if str == s {
			return region, nil
		}
	}
	return RegionUnknown, fmt.Errorf("%w: %q", ErrRegionIsInvalid, s)
}

// Validate checks if the Region value is one of NORTH, CENTRAL, SOUTH.
// RegionUnknown (0) and any other values fail validation with ErrRegionIsInvalid.
func (r Region) Validate() error {
	if _, ok := getValidRegionStrings()[r]; !ok {
		return fmt.Errorf("%w: %d", ErrRegionIsInvalid, r)
	}
	return nil
}

// String returns the region code ("NORTH", "CENTRAL", "SOUTH" or "UNKNOWN").
// Implements the fmt.Stringer interface and is safe to call on any value.
func (r Region) String() string {
	if str, ok := getRegionStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAdjacentTo reports whether two regions share a border.
// NORTH borders CENTRAL and CENTRAL borders SOUTH; NORTH and SOUTH do not touch.
func (r Region) IsAdjacentTo(other Region) bool {
	switch {
	case r == RegionNorth && other == RegionCentral,
		r == RegionCentral && other == RegionNorth,
		r == RegionCentral && other == RegionSouth,
		r == RegionSouth && other == RegionCentral:
		return true
	default:
		return false
	}
}
