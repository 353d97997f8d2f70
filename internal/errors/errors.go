// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square coordinate outside the 8x8 grid.
	// It is always a caller programming error.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrKingNotFound indicates a position without exactly one king of a
	// colour. It signals state corruption, not a bad move.
	ErrKingNotFound = errors.New("king not found")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMissingPromotion indicates a pawn reaching the last rank without
	// a promotion choice.
	ErrMissingPromotion = errors.New("missing promotion piece")

	// ErrInvalidPromotion indicates a promotion piece other than knight,
	// bishop, rook or queen, or a promotion on a move that does not promote.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps errors with move context: the squares involved and the
// rule that rejected the move. It implements the error interface and
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Source square in algebraic form
	To     string // Destination square in algebraic form
	Reason string // Which rule rejected the move (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IllegalMove builds a MoveError for a move rejected by rule reason.
func IllegalMove(from, to fmt.Stringer, reason string) *MoveError {
	return &MoveError{
		Err:    ErrIllegalMove,
		From:   from.String(),
		To:     to.String(),
		Reason: reason,
	}
}

// ParseError represents a FEN decoding error with field context.
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Which FEN field was being decoded
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsHard reports whether err is a hard failure (bad coordinates or a
// corrupt position) as opposed to an expected rejection of a move.
func IsHard(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrKingNotFound)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
