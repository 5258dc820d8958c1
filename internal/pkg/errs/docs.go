// Package errs provides the typed errors shared by the cashrun service.
//
// Every error type follows the same shape: a sentinel variable, a struct
// carrying the details, constructors with and without a cause, Error() for
// formatting and Unwrap() returning the sentinel so that errors.Is works.
//
// Validation errors:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ObjectNotFoundError
//
// Order lifecycle errors:
//   - InvalidTransitionError: the edge is not in the status graph (caller bug)
//   - RemoteRejectionError: the authoritative store refused the transition
//   - NetworkError: transport failure, retryable by the caller
//   - NoAvailableAtmError: ATM assignment found no candidate
package errs
