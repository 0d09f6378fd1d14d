package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Aman-CERP/indexwiz/internal/schema"
)

// validationError carries a message meant for the user as-is.
type validationError string

func (e validationError) Error() string { return string(e) }

func invalid(format string, args ...any) error {
	return validationError(fmt.Sprintf(format, args...))
}

// ValidateFieldName accepts non-empty names made of ASCII letters, digits
// and underscores.
func ValidateFieldName(name string) error {
	if schema.IsValidFieldName(name) {
		return nil
	}
	return invalid("Field name must match the pattern [_a-zA-Z0-9]+")
}

// ValidateUndefinedName rejects names for which defined reports true.
func ValidateUndefinedName(defined func(name string) bool) Validator {
	return func(name string) error {
		if defined(name) {
			return invalid("Field name already defined: %s", name)
		}
		return nil
	}
}

// OptionsValidator accepts a single character that, upper-cased, is one of codes.
func OptionsValidator(codes []rune) Validator {
	options := joinCodes(codes)
	return func(entry string) error {
		runes := []rune(entry)
		if len(runes) != 1 {
			return invalid("Invalid input. Options are (%s)", options)
		}
		if !slices.Contains(codes, asciiUpper(runes[0])) {
			return invalid("Invalid input. Options are (%s)", options)
		}
		return nil
	}
}

// All combines validators; the first rejection wins.
func All(validators ...Validator) Validator {
	return func(answer string) error {
		for _, v := range validators {
			if err := v(answer); err != nil {
				return err
			}
		}
		return nil
	}
}

// asciiUpper upper-cases ASCII letters only, so no other script can fold
// onto a code.
func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func joinCodes(codes []rune) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, "/")
}
