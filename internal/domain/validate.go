package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports a field value that violates an entity invariant.
// Callers can branch on it with errors.As instead of matching message text.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var (
	emailPattern = regexp.MustCompile(`^[\w._%+-]+@[\w.-]+\.[A-Za-z]{2,4}$`)
	numCIPattern = regexp.MustCompile(`^[0-9]+$`)
)

// requireText trims the value and fails when nothing is left.
func requireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return trimmed, nil
}
