package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is the 64-square grid. It has value semantics: assigning a
// Position copies every square, which is how probes get a private board.
type Position struct {
	// squares[row][col]; row 0 is rank 8.
	squares [BoardSize][BoardSize]Piece
}

// NewPosition creates an empty position.
func NewPosition() *Position {
	return &Position{}
}

// NewInitialPosition creates a position holding the standard starting setup.
func NewInitialPosition() *Position {
	p := &Position{}
	p.SetupInitialPosition()
	return p
}

// SetupInitialPosition clears the board and places the standard starting setup.
func (p *Position) SetupInitialPosition() {
	p.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		p.squares[HomeRow(White)][col] = W(backRank[col])
		p.squares[PawnStartRow(White)][col] = W(Pawn)
		p.squares[PawnStartRow(Black)][col] = B(Pawn)
		p.squares[HomeRow(Black)][col] = B(backRank[col])
	}
}

// Clear empties every square.
func (p *Position) Clear() {
	p.squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on the square, or NoPiece if it is unoccupied.
// It fails with ErrOutOfBounds for coordinates off the board.
func (p *Position) Get(sq Square) (Piece, error) {
	if err := checkBounds(sq); err != nil {
		return NoPiece, err
	}
	return p.squares[sq.Row][sq.Col], nil
}

// At returns the piece on a square already known to be on the board.
// Off-board squares read as empty.
func (p *Position) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return p.squares[sq.Row][sq.Col]
}

// Place puts a piece on the square, replacing whatever was there.
// No legality checks are made.
func (p *Position) Place(piece Piece, sq Square) error {
	if err := checkBounds(sq); err != nil {
		return err
	}
	p.squares[sq.Row][sq.Col] = piece
	return nil
}

// Remove empties the square.
func (p *Position) Remove(sq Square) error {
	return p.Place(NoPiece, sq)
}

// set writes an on-board square without a bounds check.
func (p *Position) set(sq Square, piece Piece) {
	p.squares[sq.Row][sq.Col] = piece
}

// Move relocates whatever stands on from to to and returns the piece that
// was previously on to. Both squares must be on the board.
func (p *Position) Move(from, to Square) (captured Piece, err error) {
	if err := checkBounds(from); err != nil {
		return NoPiece, err
	}
	if err := checkBounds(to); err != nil {
		return NoPiece, err
	}
	captured = p.squares[to.Row][to.Col]
	p.set(to, p.squares[from.Row][from.Col])
	p.set(from, NoPiece)
	return captured, nil
}

// FindKing returns the square of the colour's king. It fails with
// ErrKingNotFound unless exactly one such king is on the board, which
// signals a corrupted position rather than a bad move.
func (p *Position) FindKing(colour Colour) (Square, error) {
	var found Square
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.squares[row][col].Is(colour, King) {
				found = Square{Row: row, Col: col}
				count++
			}
		}
	}
	if count != 1 {
		return Square{}, fmt.Errorf("%s king count %d: %w", colour, count, errors.ErrKingNotFound)
	}
	return found, nil
}

// Validate checks the exactly-one-king-per-colour invariant.
func (p *Position) Validate() error {
	for _, colour := range []Colour{White, Black} {
		if _, err := p.FindKing(colour); err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many pieces equal to piece are on the board.
func (p *Position) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p.squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// String renders the position as an 8-line diagram, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(p.squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
