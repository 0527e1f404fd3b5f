// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import "fmt"

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid input: an
	// unparsable id, a wrong content type, or a field constraint violation.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeNotFound indicates a requested resource or endpoint was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMethodNotAllowed indicates the HTTP method is not allowed for the resource.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeRateLimitExceeded indicates the client exceeded an enforced request limit.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeUnavailable indicates the service is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// StructuredError provides structured error information for the response
// envelope and for logs. Message is the error category shown to clients,
// Detail the specific human-readable reason, and Cause the underlying error
// when one exists.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Detail  string
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Code, e.Message, e.Detail, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code, category message,
// and specific detail.
func New(code ErrorCode, message, detail string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

// Wrap wraps an existing error with a code, category message, and detail.
func Wrap(code ErrorCode, message, detail string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Detail:  detail,
		Cause:   cause,
	}
}
