package auth

import (
	"errors"
	"fmt"
)

// Error codes for authentication and session failures
const (
	// Credential and login errors
	ErrInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrProfileFetchFailed = "AUTH_PROFILE_FETCH_FAILED"
	ErrRoleUnknown        = "AUTH_ROLE_UNKNOWN"

	// Token errors
	ErrTokenMalformed = "AUTH_TOKEN_MALFORMED"

	// Credential storage errors
	ErrStorageCorrupt     = "AUTH_STORAGE_CORRUPT"
	ErrStorageUnavailable = "AUTH_STORAGE_UNAVAILABLE"

	// Network errors
	ErrNetwork = "AUTH_NETWORK_FAILURE"
)

// AuthError represents an authentication error with code and context.
type AuthError struct {
	// Code is the error code (e.g., AUTH_INVALID_CREDENTIALS)
	Code string

	// Message is a human-readable error message
	Message string

	// Context provides additional details about the error
	Context map[string]interface{}

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewError creates a new AuthError.
func NewError(code, message string, context map[string]interface{}) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// WrapError wraps an existing error with an AuthError.
func WrapError(code, message string, cause error, context map[string]interface{}) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Context: context,
		Cause:   cause,
	}
}

// IsAuthError checks if an error is an AuthError with the given code.
// It unwraps through error chains.
func IsAuthError(err error, code string) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Code == code
	}
	return false
}
