package item

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxNameLength = 255

// ValidateDraft checks a creation request. All violations are collected
// before returning so a client can fix them in one pass.
func ValidateDraft(d Draft) error {
	var violations []FieldViolation
	violations = appendNameViolations(violations, d.Name)
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidatePatch checks a partial update. Only provided fields are
// validated; an explicit empty description is a valid value.
func ValidatePatch(p Patch) error {
	var violations []FieldViolation
	if p.Name != nil {
		violations = appendNameViolations(violations, *p.Name)
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func appendNameViolations(violations []FieldViolation, name string) []FieldViolation {
	if strings.TrimSpace(name) == "" {
		return append(violations, FieldViolation{
			Field:   "name",
			Code:    ViolationRequired,
			Message: "name must not be empty",
		})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(violations, FieldViolation{
			Field:   "name",
			Code:    ViolationMaxLength,
			Message: fmt.Sprintf("name must be at most %d characters", maxNameLength),
		})
	}
	return violations
}
