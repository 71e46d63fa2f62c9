// Package shipment models the cargo side of an order: the service type, the
// item manifest with its weight/volume aggregation (including the Express
// size-bucket volume table and the volumetric-weight rule), the goods-type
// taxonomy, the GoodsRequirement consumed by vehicle matching and the
// PricingBreakdown produced by the pricing engine.
package shipment
