// Package kernel contains the shared value objects of the domain model.
//
// UUID wraps github.com/google/uuid behind an immutable, validated value
// object used as the identifier of every entity and aggregate.
//
// Money wraps github.com/shopspring/decimal behind a non-negative,
// exact-precision euro amount. All monetary computation in the domain
// (unit-price snapshots, line subtotals, order totals, the 80/20 compliance
// split) goes through Money so that threshold decisions are made on exact
// values rather than floats.
package kernel
