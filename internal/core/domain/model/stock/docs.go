// Package stock implements the stock ledger: per (product, warehouse)
// entries tracking available and reserved quantities. The ledger is the
// single source of truth for inventory counts; every other component
// observes stock only through it.
//
// The three mutations mirror the order lifecycle: Reserve holds units for a
// non-final order, Release returns them on cancellation or edit, Commit
// consumes them permanently on delivery. Conservation holds at all times:
// available + reserved + committed equals the initial stock.
package stock
