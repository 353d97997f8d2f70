package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func batchMoves(t *testing.T, texts ...string) []chess.MovePair {
	t.Helper()
	moves := make([]chess.MovePair, len(texts))
	for i, text := range texts {
		moves[i] = testutil.MustMove(t, text)
	}
	return moves
}

func TestValidateMoves(t *testing.T) {
	gs := chess.NewInitialGameState()
	before := gs.Copy()
	moves := batchMoves(t, "e2e4", "e2e5", "g1f3", "e7e5", "b1d2")

	var log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithWorkers(3).
		WithBufferSize(2).
		WithVerbosity(config.Detailed).
		WithLogFile(&log).
		Build()

	results := ValidateMoves(gs, moves, cfg)
	require.Len(t, results, len(moves))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, moves[i], r.Move)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", fen.Encode(results[0].Next))

	assert.ErrorIs(t, results[1].Err, errors.ErrIllegalMove)
	assert.Nil(t, results[1].Next)

	require.NoError(t, results[2].Err)
	assert.Equal(t, chess.W(chess.Knight), results[2].Next.Position.At(sq("f3")))

	assert.ErrorIs(t, results[3].Err, errors.ErrIllegalMove, "black cannot move first")
	assert.ErrorIs(t, results[4].Err, errors.ErrIllegalMove, "d2 is occupied")

	assert.Equal(t, before, gs, "shared state modified")

	out := log.String()
	assert.Contains(t, out, "5 moves checked: 2 legal, 3 illegal\n")
	assert.Contains(t, out, "2: e2e5 rejected: move e2e5: ")
	assert.Contains(t, out, "4: e7e5 rejected")
	assert.NotContains(t, out, "e2e4 rejected")
}

func TestValidateMoves_Verbosity(t *testing.T) {
	moves := batchMoves(t, "e2e4", "e2e5")

	tests := []struct {
		name      string
		verbosity int
		want      string
	}{
		{"quiet", config.Quiet, ""},
		{"summary", config.Summary, "2 moves checked: 1 legal, 1 illegal\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			cfg := config.NewConfig()
			cfg.Verbosity = tt.verbosity
			cfg.LogFile = &log

			ValidateMoves(chess.NewInitialGameState(), moves, cfg)
			assert.Equal(t, tt.want, log.String())
		})
	}
}

func TestValidateMoves_HardFailures(t *testing.T) {
	gs := chess.NewInitialGameState()
	moves := []chess.MovePair{
		{From: sq("e2"), To: sq("e4")},
		{From: chess.Sq(8, 8), To: sq("e4")},
	}

	var log bytes.Buffer
	cfg := &config.Config{Verbosity: config.Summary, LogFile: &log}

	results := ValidateMoves(gs, moves, cfg)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, errors.ErrOutOfBounds)
	assert.Equal(t, "2 moves checked: 1 legal, 0 illegal, 1 failed\n", log.String())

	// The caller's zero config is normalised on a copy.
	assert.Equal(t, 0, cfg.Workers)
}

func TestValidateMoves_NilConfigAndEmptyBatch(t *testing.T) {
	gs := chess.NewInitialGameState()

	var log bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &log

	assert.Empty(t, ValidateMoves(gs, nil, cfg))
	assert.Equal(t, "0 moves checked: 0 legal, 0 illegal\n", log.String())
}
