// Package errs provides standardized error types for the work order service.
// Every error type wraps a sentinel so callers classify failures with errors.Is
// and pull details out with errors.As.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: unknown id or tracking number
//   - AlreadyExistsError: unique key collision
//   - VersionIsInvalidError: unusable optimistic concurrency version
//   - GuardViolationError: a well-formed action that the lifecycle rules reject
//   - ConflictError: a conditional write that lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// The HTTP adapter maps the sentinels to status codes, so a new error kind
// needs both a sentinel here and a case in that mapping.
package errs
