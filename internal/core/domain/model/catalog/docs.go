// Package catalog contains the read-only reference data of the supply
// network: products with their catalog prices and units of measure, and
// warehouses tagged as company-operated or independent.
//
// The catalog is owned by an external registry; this core only reads it.
// Order lines snapshot the unit price and the warehouse kind at build time,
// so later catalog changes never desynchronize a persisted order.
package catalog
