package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *chess.GameState)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, gs *chess.GameState) {
				assert.Equal(t, chess.NewInitialGameState(), gs)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, gs *chess.GameState) {
				assert.Equal(t, chess.W(chess.Pawn), gs.Position.At(chess.MustParseSquare("e4")))
				assert.True(t, gs.Position.At(chess.MustParseSquare("e2")).IsEmpty())
				assert.Equal(t, chess.Black, gs.ToMove)
				assert.True(t, gs.EnPassant)
				assert.Equal(t, chess.MustParseSquare("e3"), gs.EPSquare)
			},
		},
		{
			name: "partial castling rights and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
			checkFn: func(t *testing.T, gs *chess.GameState) {
				assert.Equal(t, chess.WhiteKingside|chess.BlackQueenside, gs.Castling)
				assert.Equal(t, uint(12), gs.HalfmoveClock)
				assert.Equal(t, uint(40), gs.MoveNumber)
			},
		},
		{
			name: "placement only gets defaults",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(t *testing.T, gs *chess.GameState) {
				assert.Equal(t, chess.White, gs.ToMove)
				assert.Equal(t, chess.NoCastling, gs.Castling)
				assert.False(t, gs.EnPassant)
				assert.Equal(t, uint(0), gs.HalfmoveClock)
				assert.Equal(t, uint(1), gs.MoveNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gs, err := Decode(tt.fen)
			require.NoError(t, err)
			tt.checkFn(t, gs)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty", "", "fields"},
		{"two fields", "4k3/8/8/8/8/8/8/4K3 w", "fields"},
		{"seven rows", "4k3/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"short row", "4k3/7/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"long row", "4k3/8/8/8/8/8/8/4K3p w - - 0 1", "piece placement"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w - - 0 1", "piece placement"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", "piece placement"},
		{"two black kings", "3kk3/8/8/8/8/8/8/4K3 w - - 0 1", "piece placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side to move"},
		{"castling out of order", "4k3/8/8/8/8/8/8/4K3 w QK - 0 1", "castling"},
		{"castling junk", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", "castling"},
		{"en passant wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1", "en passant"},
		{"negative halfmove", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gs, err := Decode(tt.fen)
			require.Error(t, err)
			assert.Nil(t, gs)
			assert.ErrorIs(t, err, errors.ErrInvalidFEN)

			var pe *errors.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Field)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 12 40",
		"8/8/8/8/8/8/8/k6K w - - 0 1",
	}

	for _, f := range fens {
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, f, Encode(MustDecode(f)))
		})
	}
}

func TestEncode_PlacementOnly(t *testing.T) {
	gs := MustDecode("4k3/8/8/8/8/8/8/4K3")
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Encode(gs))
}

func TestMustDecode_Panics(t *testing.T) {
	assert.Panics(t, func() { MustDecode("not a fen") })
}
