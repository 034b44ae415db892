package application

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "projectID" -> "project ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"projectID": "project ID",
		"noteID":    "note ID",
		"coverURL":  "cover URL",
		"name":      "name",
		"content":   "content",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidatePercent checks that value lies in [0,100]
func ValidatePercent(fieldName string, value int) error {
	if value < 0 || value > 100 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected 0-100, got: %d", value),
		}
	}
	return nil
}

// ValidateOneOf checks that value is a member of allowed
func ValidateOneOf(fieldName, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown value %q", value),
		}
	}
	return nil
}
