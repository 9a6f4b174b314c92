package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthProfileFetch       ErrorCode = "AUTH-002"
	ErrCodeAuthRoleUnknown        ErrorCode = "AUTH-003"
	ErrCodeAuthTokenMalformed     ErrorCode = "AUTH-004"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-005"

	// Platform API errors (API-001 to API-099)
	ErrCodeAPIUnreachable   ErrorCode = "API-001"
	ErrCodeAPIStatus        ErrorCode = "API-002"
	ErrCodeAPIDecodeFailed  ErrorCode = "API-003"
	ErrCodeAPIListingFailed ErrorCode = "API-004"

	// Credential storage errors (STORE-001 to STORE-099)
	ErrCodeStoreCorrupt     ErrorCode = "STORE-001"
	ErrCodeStoreUnavailable ErrorCode = "STORE-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid   ErrorCode = "CONFIG-001"
	ErrCodeConfigUnmarshal ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
)

// VagasError represents an enhanced error with code, suggestions, and documentation
type VagasError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *VagasError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *VagasError) Unwrap() error {
	return e.Cause
}

// New creates a new VagasError
func New(code ErrorCode, message string) *VagasError {
	return &VagasError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new VagasError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *VagasError {
	return &VagasError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *VagasError) WithSuggestion(suggestion string) *VagasError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *VagasError) WithSuggestions(suggestions ...string) *VagasError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *VagasError) WithDocs(url string) *VagasError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates an invalid credentials error
func NewInvalidCredentialsError() *VagasError {
	return New(ErrCodeAuthInvalidCredentials, "credenciais inválidas").
		WithSuggestion("Verify your identifier and password").
		WithSuggestion("Use 'vagas login' to try again")
}

// NewNotLoggedInError creates a not-logged-in error
func NewNotLoggedInError() *VagasError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'vagas login' to authenticate")
}

// NewAPIUnreachableError creates a network failure error for the platform API
func NewAPIUnreachableError(baseURL string, cause error) *VagasError {
	return Wrap(ErrCodeAPIUnreachable, fmt.Sprintf("could not reach the platform at %s", baseURL), cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify VAGAS_API_URL points at the right backend")
}

// NewConfigUnmarshalError creates a config parse error
func NewConfigUnmarshalError(path string, cause error) *VagasError {
	return Wrap(ErrCodeConfigUnmarshal, fmt.Sprintf("failed to parse config file: %s", path), cause).
		WithSuggestion("Check the YAML syntax of the config file").
		WithSuggestion("Remove the file to fall back to defaults")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *VagasError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}
