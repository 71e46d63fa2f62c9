// Package vehicle models the physical delivery fleet: vehicle classes with
// their ranking priority and service compatibility, the immutable Vehicle
// definition with its capacity and eligibility constraints, and the mutable
// per-vehicle Load record whose capacity invariants every reservation must
// preserve.
package vehicle
