// Package errs provides standardized error types for the order fulfillment engine.
//
// The package covers two groups of failures:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - business rules: ObjectNotFoundError, InvalidTransitionError, DuplicateError,
//     ReferentialConflictError and VersionIsInvalidError
//
// Each error type follows the same pattern: a sentinel error variable, a struct with
// the details, constructor functions, Error() for formatting and Unwrap() returning
// the sentinel so callers can classify with errors.Is.
//
// ErrInsufficientStock and ErrDispatchBlocked are sentinels only. Their detailed
// error types live next to the domain rules that raise them (inventory and order).
package errs
