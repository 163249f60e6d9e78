package item

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("item not found")

// Violation codes used in validation errors.
const (
	ViolationRequired  = "required"
	ViolationMaxLength = "max_length"
)

// FieldViolation describes a single invalid field.
type FieldViolation struct {
	Field   string
	Code    string
	Message string
}

// ValidationError aggregates every violation found in a request so the
// caller sees all of them in one response.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
