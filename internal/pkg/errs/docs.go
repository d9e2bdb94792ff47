// Package errs provides standardized error types for the restaurant backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Besides the generic validation errors (ValueIsRequiredError,
// ValueIsInvalidError, ObjectNotFoundError), the package carries the order
// lifecycle taxonomy: InsufficientStockError, OfferingNotPublishedError,
// InvalidTransitionError, NotAssignedError, AlreadyCancelledError,
// TokenExhaustedError and ConflictError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInsufficientStock)
//   - A struct type with fields for error details (kind + offending id)
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Every error carries enough structured detail for a caller to render
// a precise message; none of them are fatal to the process.
package errs
