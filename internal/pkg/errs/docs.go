// Package errs provides standardized error types for the POS service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error types the request boundary knows how to map:
//   - ValueIsRequiredError: a required value is missing (HTTP 400)
//   - ValueIsInvalidError: a value is present but unacceptable (HTTP 400)
//   - ObjectNotFoundError: a referenced object does not exist (HTTP 404)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Any error that does not unwrap to one of the sentinels is treated as an
// internal failure by the HTTP adapter.
package errs
