package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is set.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != 0
}

// Without returns the rights with the flags in r cleared.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// CastlingRight returns the flag for a colour and wing.
func CastlingRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// String returns the FEN form of the rights, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var sb strings.Builder
	for _, f := range []struct {
		flag   CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(f.flag) {
			sb.WriteByte(f.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// GameState is a position together with everything needed to decide
// legality of the next move. States handed out by the engine are never
// mutated afterwards; each applied move yields a new state.
type GameState struct {
	Position Position

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the capturing pawn lands on.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number, starting at 1.
	MoveNumber uint
}

// NewGameState wraps an externally supplied position in a state with
// white to move, no castling rights and fresh clocks. It rejects positions
// without exactly one king per colour.
func NewGameState(pos *Position) (*GameState, error) {
	if err := pos.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		Position:   *pos,
		ToMove:     White,
		MoveNumber: 1,
	}, nil
}

// NewInitialGameState returns the standard starting state.
func NewInitialGameState() *GameState {
	return &GameState{
		Position:   *NewInitialPosition(),
		ToMove:     White,
		Castling:   AllCastling,
		MoveNumber: 1,
	}
}

// Copy creates a deep copy of the state.
func (g *GameState) Copy() *GameState {
	newState := &GameState{}
	*newState = *g
	return newState
}

// ClearEnPassant removes the en passant target.
func (g *GameState) ClearEnPassant() {
	g.EnPassant = false
	g.EPSquare = Square{}
}

// SetEnPassant records sq as the en passant target.
func (g *GameState) SetEnPassant(sq Square) {
	g.EnPassant = true
	g.EPSquare = sq
}

// MovePair is a source-destination square pair with an optional promotion.
type MovePair struct {
	From      Square
	To        Square
	Promotion PieceType
}

// String returns the pair in long algebraic form, e.g. "e7e8q".
func (m MovePair) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMovePair parses long algebraic notation such as "e2e4" or "e7e8q".
func ParseMovePair(text string) (MovePair, error) {
	if len(text) != 4 && len(text) != 5 {
		return MovePair{}, fmt.Errorf("move %q: %w", text, errors.ErrOutOfBounds)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return MovePair{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return MovePair{}, err
	}
	m := MovePair{From: from, To: to}
	if len(text) == 5 {
		m.Promotion = pieceTypeFromLetter(text[4])
		if !m.Promotion.IsPromotion() {
			return MovePair{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
	}
	return m, nil
}

// pieceTypeFromLetter converts a piece letter in either case to its type.
func pieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return Empty
	}
}

// PieceFromLetter converts a FEN piece letter (uppercase white, lowercase
// black) to a piece. ok is false for any other byte.
func PieceFromLetter(c byte) (piece Piece, ok bool) {
	t := pieceTypeFromLetter(c)
	if t == Empty {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePiece(colour, t), true
}
