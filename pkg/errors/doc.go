// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.Wrap(
//	    errors.ErrCodeMalformedRecord,
//	    "failed to decode recipe entry",
//	    cause,
//	)
package errors
