package errors

import (
	"fmt"
)

// WizardError is the structured error type for indexwiz.
// It provides rich context for error handling, logging, and user presentation.
type WizardError struct {
	// Code is the unique error code (e.g., "ERR_205_INDEX_EXISTS").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *WizardError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *WizardError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with WizardError sentinels.
func (e *WizardError) Is(target error) bool {
	if t, ok := target.(*WizardError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *WizardError) WithDetail(key, value string) *WizardError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *WizardError) WithSuggestion(suggestion string) *WizardError {
	e.Suggestion = suggestion
	return e
}

// New creates a new WizardError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *WizardError {
	return &WizardError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a WizardError from an existing error.
// The error's message becomes the WizardError message.
func Wrap(code string, err error) *WizardError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *WizardError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IOError creates an I/O-related error.
func IOError(message string, cause error) *WizardError {
	return New(ErrCodeDirCreate, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *WizardError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *WizardError {
	return New(ErrCodeInternal, message, cause)
}

// GetCode extracts the error code from a WizardError.
// Returns empty string if not a WizardError.
func GetCode(err error) string {
	if ae, ok := err.(*WizardError); ok {
		return ae.Code
	}
	return ""
}
