// Package errs provides the error types shared by every layer of the ledger
// service. Each type pairs a sentinel with a struct carrying the details, so
// callers can branch with errors.Is and still read the parameters.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError, ObjectAlreadyExistsError: existence checks on ledger keys
//   - ObjectNotModifiedError: updates that would not change anything
//   - InvalidOrderError: order lifecycle guard failures, message is the reason
//   - DecodeError: stored bytes that do not match the expected record
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - A constructor, plus a WithCause variant where callers wrap a lower error
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
