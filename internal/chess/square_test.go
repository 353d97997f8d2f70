package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name string
		want Square
	}{
		{"a8", Sq(0, 0)},
		{"h8", Sq(0, 7)},
		{"a1", Sq(7, 0)},
		{"h1", Sq(7, 7)},
		{"e4", Sq(4, 4)},
		{"d5", Sq(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.name, got, tt.want)
			}
			if s := got.String(); s != tt.name {
				t.Errorf("String() = %q; want %q", s, tt.name)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "e44", "i1", "a0", "a9", "E4"} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSquare(name); !errors.Is(err, chesserrors.ErrOutOfBounds) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrOutOfBounds", name, err)
			}
		})
	}
}

func TestSquareValidAndOffset(t *testing.T) {
	e4 := MustParseSquare("e4")
	if got := e4.Offset(-1, 1); got != MustParseSquare("f5") {
		t.Errorf("e4.Offset(-1, 1) = %s; want f5", got)
	}
	if MustParseSquare("a1").Offset(1, 0).Valid() {
		t.Error("a1 one row down should be off the board")
	}
	if got := Sq(-1, 3).String(); got != "(-1,3)" {
		t.Errorf("off-board String() = %q", got)
	}
}

func TestMustParseSquare_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"z9\") did not panic")
		}
	}()
	MustParseSquare("z9")
}

func TestPieceHelpers(t *testing.T) {
	tests := []struct {
		piece  Piece
		letter byte
		str    string
	}{
		{W(King), 'K', "White King"},
		{B(Queen), 'q', "Black Queen"},
		{W(Pawn), 'P', "White Pawn"},
		{B(Knight), 'n', "Black Knight"},
		{NoPiece, '.', "Empty"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.letter {
				t.Errorf("Letter() = %c; want %c", got, tt.letter)
			}
			if got := tt.piece.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
			if tt.piece.IsEmpty() {
				return
			}
			back, ok := PieceFromLetter(tt.letter)
			if !ok || back != tt.piece {
				t.Errorf("PieceFromLetter(%c) = %v, %v; want %v", tt.letter, back, ok, tt.piece)
			}
		})
	}

	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') ok = true")
	}
}

func TestPawnGeometryHelpers(t *testing.T) {
	if PawnDirection(White) != -1 || PawnDirection(Black) != 1 {
		t.Error("white pawns must move toward row 0, black toward row 7")
	}
	if PawnStartRow(White) != MustParseSquare("a2").Row || PawnStartRow(Black) != MustParseSquare("a7").Row {
		t.Error("pawn start rows do not match ranks 2 and 7")
	}
	if PromotionRow(White) != 0 || PromotionRow(Black) != 7 {
		t.Error("promotion rows do not match ranks 8 and 1")
	}
	if HomeRow(White) != 7 || HomeRow(Black) != 0 {
		t.Error("home rows do not match ranks 1 and 8")
	}
}
