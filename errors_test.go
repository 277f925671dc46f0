package bitmap

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindUnrecognizedCommand, Command: "W"}, "unrecognized command 'W'"},
		{&Error{Kind: KindArity, Command: "I", Given: 0, Expected: 2},
			"wrong number of arguments for command 'I' (given 0, expected 2)"},
		{&Error{Kind: KindOutOfRange, Token: "251"}, "integer '251' out of bounds"},
		{&Error{Kind: KindUnknownParameter, Token: "a"}, "parameter unknown: 'a'"},
		{&Error{Kind: KindNoImage, Command: "S"},
			"can not execute command 'S' if there is no image created first"},
		{&Error{Kind: KindDuplicateImage}, "image already created"},
		{&Error{Kind: KindInvalidCoordinate, Axis: AxisColumn}, "invalid column"},
		{&Error{Kind: KindInvalidCoordinate, Axis: AxisRow}, "invalid row"},
		{&Error{Kind: KindInvalidSegment}, "invalid segment"},
		{&Error{Kind: KindArgumentType, Command: "L", Position: 3, Want: "a color", Token: "3"},
			"argument 3 of command 'L' must be a color, got '3'"},
		{&Error{Kind: KindInvalidColor, Token: "a"}, "invalid color 'a'"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%v: Error() = %q, want %q", tt.err.Kind, got, tt.want)
		}
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindNoImage, Command: "C"})
	if !errors.Is(err, ErrNoImage) {
		t.Error("errors.Is(wrapped NoImage, ErrNoImage) = false")
	}
	if errors.Is(err, ErrDuplicateImage) {
		t.Error("errors.Is(wrapped NoImage, ErrDuplicateImage) = true")
	}
	var e *Error
	if !errors.As(err, &e) || e.Command != "C" {
		t.Errorf("errors.As() = %v", e)
	}
}

func TestKindString(t *testing.T) {
	if got := KindArity.String(); got != "ArityError" {
		t.Errorf("KindArity.String() = %q", got)
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
}
