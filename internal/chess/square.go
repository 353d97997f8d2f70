package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square addresses one cell of the board. Row 0 is rank 8 (black's home
// row) and row 7 is rank 1; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq creates a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether both coordinates lie in [0,7].
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dRow rows and dCol columns away.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	col, rank := name[0], name[1]
	if col < 'a' || col > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	return Square{Row: int('8' - rank), Col: int(col - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// checkBounds returns ErrOutOfBounds wrapped with the offending coordinates.
func checkBounds(s Square) error {
	if s.Valid() {
		return nil
	}
	return fmt.Errorf("row %d, col %d: %w", s.Row, s.Col, errors.ErrOutOfBounds)
}
