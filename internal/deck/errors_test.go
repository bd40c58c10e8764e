package deck

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypeConfig, "Configuration Error"},
		{ErrTypeBounds, "Bounds Error"},
		{ErrTypeUnknownPage, "Unknown Page"},
		{ErrTypeAction, "Action Error"},
		{ErrTypeRender, "Render Error"},
		{ErrTypeDevice, "Device Error"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestDeckErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewRenderError("main", 3, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "underlying") {
		t.Errorf("Error() = %q, should mention the cause", err.Error())
	}
	if !strings.Contains(err.Error(), "Render Error") {
		t.Errorf("Error() = %q, should carry the error type", err.Error())
	}
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewBoundsError("main", 9, 6))
	if !IsType(err, ErrTypeBounds) {
		t.Error("IsType() should see through wrapping")
	}
	if IsType(err, ErrTypeRender) {
		t.Error("IsType() matched the wrong type")
	}
	if IsType(errors.New("plain"), ErrTypeBounds) {
		t.Error("IsType() matched a non-DeckError")
	}
}
