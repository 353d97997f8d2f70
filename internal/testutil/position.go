package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// MustState decodes a FEN string, failing the test if it is invalid.
func MustState(t *testing.T, f string) *chess.GameState {
	t.Helper()
	gs, err := fen.Decode(f)
	if err != nil {
		t.Fatalf("bad test FEN %q: %v", f, err)
	}
	return gs
}

// StateWith builds a state holding only the listed pieces, keyed by
// algebraic square, with toMove to play and no castling rights.
func StateWith(t *testing.T, toMove chess.Colour, pieces map[string]chess.Piece) *chess.GameState {
	t.Helper()
	pos := chess.NewPosition()
	for name, piece := range pieces {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad test square %q: %v", name, err)
		}
		if err := pos.Place(piece, sq); err != nil {
			t.Fatalf("placing %v on %s: %v", piece, name, err)
		}
	}
	gs, err := chess.NewGameState(pos)
	if err != nil {
		t.Fatalf("bad test position:\n%s%v", pos, err)
	}
	gs.ToMove = toMove
	return gs
}

// Squares parses a list of algebraic square names.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("bad test square %q: %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// MustMove parses a long algebraic move such as "e2e4" or "e7e8q".
func MustMove(t *testing.T, text string) chess.MovePair {
	t.Helper()
	m, err := chess.ParseMovePair(text)
	if err != nil {
		t.Fatalf("bad test move %q: %v", text, err)
	}
	return m
}
