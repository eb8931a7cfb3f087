// Package errs provides standardized error types shared across the
// bakery backend.
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrValueIsRequired), a struct carrying the error details,
// constructors with and without an underlying cause, an Error() method
// for formatting, and an Unwrap() method so errors.Is can classify the
// error against its sentinel.
package errs
