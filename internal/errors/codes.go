// Package errors provides structured error handling for indexwiz.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (directory, index files)
//   - 4XX: Validation and input errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file and directory errors.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeDirCreate     = "ERR_201_DIR_CREATE"
	ErrCodeIndexNotFound = "ERR_204_INDEX_NOT_FOUND"
	ErrCodeIndexExists   = "ERR_205_INDEX_EXISTS"
	ErrCodeSchemaMissing = "ERR_206_SCHEMA_MISSING"
	ErrCodeIndexLocked   = "ERR_207_INDEX_LOCKED"

	// Validation errors (400-499)
	ErrCodeInvalidInput     = "ERR_401_INVALID_INPUT"
	ErrCodeInvalidFieldName = "ERR_402_INVALID_FIELD_NAME"
	ErrCodeDuplicateField   = "ERR_403_DUPLICATE_FIELD"
	ErrCodeEmptySchema      = "ERR_404_EMPTY_SCHEMA"
	ErrCodeInputClosed      = "ERR_407_INPUT_CLOSED"

	// Internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodeSchemaEncode = "ERR_502_SCHEMA_ENCODE"
	ErrCodeMapping      = "ERR_503_MAPPING"
	ErrCodeIndexFailed  = "ERR_505_INDEX_FAILED"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Numeric portion, e.g. "205" from "ERR_205_INDEX_EXISTS"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeDirCreate:
		return SeverityFatal
	case ErrCodeDuplicateField, ErrCodeInvalidFieldName:
		return SeverityWarning
	}
	return SeverityError
}
