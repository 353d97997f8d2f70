package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type testSquare string

func (s testSquare) String() string { return string(s) }

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfBounds", ErrOutOfBounds, ErrOutOfBounds},
		{"ErrKingNotFound", ErrKingNotFound, ErrKingNotFound},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrMissingPromotion", ErrMissingPromotion, ErrMissingPromotion},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies that no sentinel matches another.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrOutOfBounds, ErrKingNotFound, ErrIllegalMove, ErrMissingPromotion, ErrInvalidPromotion, ErrInvalidFEN}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to read square: %w", ErrOutOfBounds)

	if !errors.Is(wrapped, ErrOutOfBounds) {
		t.Errorf("errors.Is(wrapped, ErrOutOfBounds) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				From:   "e1",
				To:     "g1",
				Reason: "king passes through an attacked square",
			},
			contains: []string{"e1g1", "passes through", "illegal move"},
		},
		{
			name:     "sentinel only",
			err:      &MoveError{Err: ErrMissingPromotion},
			contains: []string{"missing promotion"},
		},
		{
			name:     "built by IllegalMove",
			err:      IllegalMove(testSquare("e2"), testSquare("e5"), "pawn cannot move there"),
			contains: []string{"e2e5", "pawn cannot move there", "illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrMissingPromotion,
		From: "a7",
		To:   "a8",
	}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrMissingPromotion) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrMissingPromotion)
	}

	if errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = true, want false")
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := IllegalMove(testSquare("e1"), testSquare("c1"), "castling path is blocked")

	wrapped := fmt.Errorf("applying move: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}

	if extractedErr.From != "e1" {
		t.Errorf("extractedErr.From = %q, want %q", extractedErr.From, "e1")
	}
	if extractedErr.Reason != "castling path is blocked" {
		t.Errorf("extractedErr.Reason = %q, want %q", extractedErr.Reason, "castling path is blocked")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Field:    "side to move",
		Expected: "'w' or 'b'",
		Got:      "x",
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, "side to move") {
		t.Errorf("ParseError.Error() should contain field, got %q", msg)
	}
	if !containsIgnoreCase(msg, `got "x"`) {
		t.Errorf("ParseError.Error() should contain the bad value, got %q", msg)
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrKingNotFound, "checking white king")

	if !errors.Is(wrapped, ErrKingNotFound) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "checking white king") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "candidate %d of %d", 3, 20)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "candidate 3 of 20") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

func TestIsHard(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{Wrap(ErrOutOfBounds, "get"), true},
		{ErrKingNotFound, true},
		{IllegalMove(testSquare("a1"), testSquare("a2"), "blocked"), false},
		{ErrMissingPromotion, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsHard(tt.err); got != tt.want {
			t.Errorf("IsHard(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
