package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// ValidateMoves checks each candidate move independently against gs and
// returns one result per move, in input order. A legal move's result
// carries the state it leads to; an illegal one carries the rejection.
//
// The candidates are alternatives from the same position, not a line of
// play. gs is shared read-only between the workers.
func ValidateMoves(gs *chess.GameState, moves []chess.MovePair, cfg *config.Config) []worker.ProcessResult {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	c := *cfg
	c.Normalize()
	cfg = &c

	pool := worker.NewPool(
		func(item worker.WorkItem) worker.ProcessResult {
			next, err := ApplyMovePair(gs, item.Move)
			return worker.ProcessResult{
				Move:  item.Move,
				Index: item.Index,
				Next:  next,
				Err:   err,
			}
		},
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(cfg.BufferSize),
	)

	results := pool.Run(moves)
	logBatch(cfg, results)
	return results
}

// logBatch writes the batch summary and, at Detailed verbosity, every
// rejection.
func logBatch(cfg *config.Config, results []worker.ProcessResult) {
	if cfg.Verbosity < config.Summary {
		return
	}

	legal, illegal, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err == nil:
			legal++
		case errors.IsHard(r.Err):
			failed++
		default:
			illegal++
		}

		if r.Err != nil && cfg.Verbosity >= config.Detailed {
			fmt.Fprintf(cfg.LogFile, "%d: %s rejected: %v\n", r.Index+1, r.Move, r.Err)
		}
	}

	fmt.Fprintf(cfg.LogFile, "%d moves checked: %d legal, %d illegal", len(results), legal, illegal)
	if failed > 0 {
		fmt.Fprintf(cfg.LogFile, ", %d failed", failed)
	}
	fmt.Fprintln(cfg.LogFile)
}
