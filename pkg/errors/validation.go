package errors

import (
	"fmt"
	"strings"
)

// ValidationError describes a single document schema violation, located by a
// path into the document (e.g. "blocks[2].annotations[0].span").
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Violation creates a ValidationError at the given path.
func Violation(path, format string, args ...any) ValidationError {
	return ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// ValidationErrors is the complete list of schema violations found in one
// validation pass. Validation never short-circuits: callers receive every
// problem at once so they can fix all of them in a single round trip.
type ValidationErrors []ValidationError

// Error implements the error interface, listing every violation.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no violations"
	}
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return fmt.Sprintf("%d schema violation(s): %s", len(e), strings.Join(parts, "; "))
}

// OrNil returns the list as an error, or nil when no violations were collected.
// The explicit nil matters: a typed nil slice inside a non-nil error interface
// would read as a failure.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
