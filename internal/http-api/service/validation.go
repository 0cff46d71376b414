package service

import (
	"fmt"
	"strings"
)

// ValidationError marks a user-facing field error; handlers translate it to
// a 400 with the message as-is.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{message: fmt.Sprintf(format, args...)}
}

// validateInput checks that a field is a non-empty trimmed string and, when
// maxLength > 0, that the trimmed value fits under the cap.
func validateInput(value, label string, maxLength int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return NewValidationError("%s must not be empty", label)
	}
	if maxLength > 0 && len(trimmed) > maxLength {
		return NewValidationError("%s must not exceed %d characters", label, maxLength)
	}
	return nil
}

// validateEmail applies the loose original rule: optional, but when present
// it must contain "@" and fit in 254 characters.
func validateEmail(email *string) error {
	if email == nil || *email == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if !strings.Contains(trimmed, "@") || len(trimmed) > 254 {
		return NewValidationError("a valid email address is required")
	}
	return nil
}

// normalizeEmail trims an optional email and collapses empty values to nil
// so the column stores NULL rather than "".
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
