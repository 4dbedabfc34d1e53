// Package errs provides standardized error types for the supply-ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package carries two groups of errors:
//
// Generic validation errors:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//   - VersionIsInvalidError: an aggregate version mismatch
//
// Supply-ordering domain errors:
//   - InsufficientStockError: a reservation exceeds available stock
//   - ComplianceError: the 80/20 company-share rule is violated
//   - StateTransitionError: an invalid order lifecycle move
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInsufficientStock)
//   - A struct type with fields for error details
//   - Constructor functions (with and without cause where applicable)
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// The HTTP adapter relies on the sentinels to map domain failures to
// response statuses without inspecting message text.
package errs
