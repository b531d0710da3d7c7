package apperrors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the message describing why it is
// invalid. All violated rules are collected into one value so the caller sees
// every problem at once instead of only the first.
type ValidationErrors map[string]string

// Add records a violation for the given field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors reports whether any violation was recorded.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error implements the error interface, joining all violations in a stable order.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) match any ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
