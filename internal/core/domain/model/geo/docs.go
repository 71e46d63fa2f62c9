// Package geo contains the geographic reference model of the courier platform:
// administrative units (province/district/ward) with their aliases, macro
// region codes, the two route classifications (pricing route type and
// vehicle-eligibility route scope) and the ResolvedAddress value object
// produced by address normalization.
//
// The reference data itself is owned by an external geo directory and consumed
// read-only through the GeoReferenceStore port; this package only defines its
// shape and invariants.
package geo
