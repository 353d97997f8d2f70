// Package chess provides core chess types: pieces, squares, positions and game state.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the rank of a chess piece (pawn, knight, ...).
// The zero value Empty marks an unoccupied square.
type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsPromotion reports whether a pawn may promote to this piece type.
func (t PieceType) IsPromotion() bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

// Piece is an immutable pairing of a piece type with a colour.
// Two pieces are the same iff they compare equal with ==.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the content of an unoccupied square.
var NoPiece = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	return Piece{Type: t, Colour: colour}
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// IsEmpty reports whether p is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p.Type == t && p.Colour == colour && t != Empty
}

// Letter returns the FEN letter for the piece: uppercase for white,
// lowercase for black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// PawnDirection returns the row step a pawn of the colour advances by.
// Row 0 is rank 8, so white pawns move toward decreasing rows.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row pawns of the colour start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which a pawn of the colour promotes.
func PromotionRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// HomeRow returns the back rank row of the colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}
