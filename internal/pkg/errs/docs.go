// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// The package covers the error taxonomy surfaced to callers:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or unacceptable
//   - ObjectNotFoundError: an entity lookup matched nothing
//   - InvalidTransitionError: an order status or lifecycle rule was violated
//   - UnauthenticatedError: the request carries no usable staff identity
//   - UnauthorizedError: the acting role does not permit the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Anything that does not map onto one of these types is reported to clients
// as an undifferentiated internal error; nothing is retried or escalated
// beyond the request it happened in.
package errs
