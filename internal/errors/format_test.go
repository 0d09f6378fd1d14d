package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForUser_BasicError(t *testing.T) {
	// Given: a WizardError
	err := New(ErrCodeIndexExists, "an index already exists in 'idx'", nil)

	// When: formatting for user (no debug)
	result := FormatForUser(err, false)

	// Then: contains message and code
	assert.Contains(t, result, "an index already exists in 'idx'")
	assert.Contains(t, result, "[ERR_205_INDEX_EXISTS]")
}

func TestFormatForUser_WithSuggestion(t *testing.T) {
	err := New(ErrCodeIndexExists, "index exists", nil).
		WithSuggestion("Pick an empty directory or remove the existing index")

	result := FormatForUser(err, false)

	assert.Contains(t, result, "Suggestion:")
	assert.Contains(t, result, "empty directory")
}

func TestFormatForUser_CauseOnlyInDebug(t *testing.T) {
	// Given: an error with a cause
	err := New(ErrCodeIndexFailed, "failed to create index", errors.New("read-only file system"))

	// Then: the cause is hidden unless debug is set
	assert.NotContains(t, FormatForUser(err, false), "read-only")
	assert.Contains(t, FormatForUser(err, true), "Cause: read-only file system")
}

func TestFormatForUser_StandardError(t *testing.T) {
	err := errors.New("something went wrong")

	result := FormatForUser(err, false)

	assert.Equal(t, "something went wrong", result)
}

func TestFormatForUser_NilError(t *testing.T) {
	assert.Empty(t, FormatForUser(nil, false))
}

func TestFormatForCLI_IncludesHintAndCode(t *testing.T) {
	err := New(ErrCodeIndexExists, "an index already exists", nil).
		WithSuggestion("Remove the directory first")

	result := FormatForCLI(err)

	assert.Contains(t, result, "Error: an index already exists")
	assert.Contains(t, result, "Hint: Remove the directory first")
	assert.Contains(t, result, "Code: ERR_205_INDEX_EXISTS")
}

func TestFormatForCLI_WrapsStandardError(t *testing.T) {
	result := FormatForCLI(errors.New("boom"))

	assert.Contains(t, result, "Error: boom")
	assert.Contains(t, result, ErrCodeInternal)
	lines := strings.Split(strings.TrimSpace(result), "\n")
	assert.LessOrEqual(t, len(lines), 3, "Should be concise")
}

func TestFormatForLog_IncludesDetails(t *testing.T) {
	err := New(ErrCodeDirCreate, "cannot create", errors.New("not a directory")).
		WithDetail("path", "/a/b")

	attrs := FormatForLog(err)

	assert.Equal(t, ErrCodeDirCreate, attrs["error_code"])
	assert.Equal(t, "not a directory", attrs["cause"])
	assert.Equal(t, "/a/b", attrs["detail_path"])
	assert.Equal(t, string(SeverityFatal), attrs["severity"])
}
