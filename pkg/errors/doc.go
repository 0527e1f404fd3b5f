// Package errors provides structured error types for programmatic error
// handling across the application.
//
// Example usage:
//
//	err := errors.New(
//	    errors.ErrCodeInvalidRequest,
//	    "Invalid status",
//	    "Status must be PENDING, IN_PROGRESS, or COMPLETED",
//	)
package errors
