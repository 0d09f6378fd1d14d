package errors

import (
	"fmt"
	"strings"
)

// FormatForUser returns a user-friendly error message.
// If debug is true, the underlying cause is appended.
func FormatForUser(err error, debug bool) string {
	if err == nil {
		return ""
	}

	we, ok := err.(*WizardError)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(we.Message)
	sb.WriteString("\n")

	if we.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(we.Suggestion)
		sb.WriteString("\n")
	}

	if debug && we.Cause != nil {
		sb.WriteString(fmt.Sprintf("\nCause: %v\n", we.Cause))
	}

	sb.WriteString(fmt.Sprintf("\n[%s]", we.Code))

	return sb.String()
}

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	we, ok := err.(*WizardError)
	if !ok {
		we = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error: %s\n", we.Message))

	if we.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", we.Suggestion))
	}

	sb.WriteString(fmt.Sprintf("  Code: %s\n", we.Code))

	return sb.String()
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	we, ok := err.(*WizardError)
	if !ok {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": we.Code,
		"message":    we.Message,
		"category":   string(we.Category),
		"severity":   string(we.Severity),
	}

	if we.Cause != nil {
		result["cause"] = we.Cause.Error()
	}

	if we.Suggestion != "" {
		result["suggestion"] = we.Suggestion
	}

	for k, v := range we.Details {
		result["detail_"+k] = v
	}

	return result
}
