// Package services provides domain services that orchestrate business rules
// across multiple aggregates of the supply system.
//
// The package includes:
//   - ComplianceEvaluator: computes the company/independent sourcing split
//     of a line set and checks it against the franchise sourcing rule
//   - OrderBuilder: assembles a validated order line set from catalog and
//     stock snapshots, gated by the compliance rule
//
// Both services are pure: they never touch persistence, so every sourcing
// decision is reproducible from the lines alone.
package services
