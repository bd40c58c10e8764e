package deck

import (
	"errors"
	"fmt"
)

// Error types for deck operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeConfig indicates an invalid deck configuration (bad page graph, slot mismatch)
	ErrTypeConfig ErrorType = iota
	// ErrTypeBounds indicates a key index outside the device's slot range
	ErrTypeBounds
	// ErrTypeUnknownPage indicates a navigation target that is not in the store
	ErrTypeUnknownPage
	// ErrTypeAction indicates a failure inside a key callback
	ErrTypeAction
	// ErrTypeRender indicates a failure while composing a key image
	ErrTypeRender
	// ErrTypeDevice indicates a failure reported by the device collaborator
	ErrTypeDevice
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConfig:
		return "Configuration Error"
	case ErrTypeBounds:
		return "Bounds Error"
	case ErrTypeUnknownPage:
		return "Unknown Page"
	case ErrTypeAction:
		return "Action Error"
	case ErrTypeRender:
		return "Render Error"
	case ErrTypeDevice:
		return "Device Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DeckError represents an error raised by the page/key state machine
type DeckError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Page    string    // Page name (for context, may be empty)
	Index   int       // Slot index (for context, -1 when not applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DeckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DeckError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration-level error
func NewConfigError(message string, err error) *DeckError {
	return &DeckError{Type: ErrTypeConfig, Message: message, Index: -1, Err: err}
}

// NewBoundsError creates an error for a key index outside the slot range
func NewBoundsError(page string, index int, slots int) *DeckError {
	return &DeckError{
		Type:    ErrTypeBounds,
		Message: fmt.Sprintf("key index %d outside of board with %d slots", index, slots),
		Page:    page,
		Index:   index,
	}
}

// NewUnknownPageError creates an error for a navigation target missing from the store
func NewUnknownPageError(name string) *DeckError {
	return &DeckError{
		Type:    ErrTypeUnknownPage,
		Message: fmt.Sprintf("page %q does not exist", name),
		Page:    name,
		Index:   -1,
	}
}

// NewActionError creates an error for a failed key callback
func NewActionError(message string, err error) *DeckError {
	return &DeckError{Type: ErrTypeAction, Message: message, Index: -1, Err: err}
}

// NewRenderError creates an error for a failed key image composition
func NewRenderError(page string, index int, err error) *DeckError {
	return &DeckError{
		Type:    ErrTypeRender,
		Message: fmt.Sprintf("rendering slot %d of page %q failed", index, page),
		Page:    page,
		Index:   index,
		Err:     err,
	}
}

// NewDeviceError creates an error for a failure in the device collaborator
func NewDeviceError(message string, err error) *DeckError {
	return &DeckError{Type: ErrTypeDevice, Message: message, Index: -1, Err: err}
}

// IsType reports whether err is a DeckError of the given type anywhere in its chain
func IsType(err error, t ErrorType) bool {
	var de *DeckError
	if errors.As(err, &de) {
		return de.Type == t
	}
	return false
}
