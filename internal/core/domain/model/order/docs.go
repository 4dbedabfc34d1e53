// Package order contains the supply-order aggregate.
//
// Order is the aggregate root; Line is the value object for one (product,
// warehouse, quantity) position with its unit-price and warehouse-kind
// snapshots; Status is the lifecycle state machine
// (pending → validated → prepared → delivered, cancellable from every
// non-terminal state).
//
// All monetary figures — grand total, the company/independent split, the
// compliance percentage — are recomputed from the lines on demand and never
// stored redundantly, so they can never drift out of sync with the line
// set.
package order
