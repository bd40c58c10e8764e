package deckconfig

import "fmt"

// ValidationError is a configuration error detected at build time.
// All validation errors are fatal to startup; the daemon never starts
// with a page tree it cannot fully honor.
type ValidationError struct {
	Path    string // tree location, e.g. "page.keys[3].folder"
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid configuration at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// NewValidationError creates a validation error at the given tree path
func NewValidationError(path string, format string, args ...any) *ValidationError {
	return &ValidationError{Path: path, Message: fmt.Sprintf(format, args...)}
}
