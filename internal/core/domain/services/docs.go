// Package services provides the domain services of the booking core. They
// implement the logic that spans multiple aggregates: resolving free-text
// addresses against the geo reference data, classifying routes, pricing
// shipments from the tariff tables, filtering and ranking vehicles, and
// checking branch coverage.
//
// The package includes:
//   - AddressNormalizer: free-text address resolution with confidence scoring
//   - RouteClassifier: pricing route type and vehicle-eligibility route scope
//   - PricingEngine: tiered Standard and intra-city Express fee calculation
//   - VehicleMatcher: hard-constraint fleet filtering
//   - AllocationRanker: cost-score ranking of candidate vehicles
//   - BranchLocator: distance ranking and the 150 km coverage check
//
// All services are stateless or read-only over immutable snapshots and are
// safe for concurrent use; mutable capacity state lives behind the
// CapacityTracker port, not here.
package services
