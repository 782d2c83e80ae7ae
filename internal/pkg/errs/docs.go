// Package errs provides standardized error types for the order management application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value violates a business rule
//   - ValueIsOutOfRangeError: For when a numeric value falls outside allowed bounds
//   - ObjectNotFoundError: For when a referenced entity cannot be found
//   - ForbiddenError: For when an authenticated caller lacks access to a resource
//   - ConflictError: For uniqueness or optimistic-concurrency violations
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinels form the error taxonomy of the system: validation failures
// (required/invalid/out-of-range), missing objects, forbidden access, and
// conflicts. Transport adapters map these classes to response codes; the
// application core never returns an untyped failure for an expected condition.
package errs
