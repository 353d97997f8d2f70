package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsLegalMove reports whether the side to move may play from -> to.
// An illegal move is reported as (false, nil). The error is non-nil only
// for squares off the board (ErrOutOfBounds) or a position without
// exactly one king per colour (ErrKingNotFound).
//
// gs is only read; any number of goroutines may call IsLegalMove on the
// same state as long as nobody mutates it.
func IsLegalMove(gs *chess.GameState, from, to chess.Square) (bool, error) {
	err := CheckMove(gs, from, to)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errors.ErrIllegalMove):
		return false, nil
	default:
		return false, err
	}
}

// CheckMove is IsLegalMove with the verdict as an error: nil for a legal
// move, a *errors.MoveError wrapping ErrIllegalMove naming the broken
// rule, or a hard failure.
func CheckMove(gs *chess.GameState, from, to chess.Square) error {
	// Private copy; probes below edit it and put it back.
	pos := gs.Position

	mover, err := pos.Get(from)
	if err != nil {
		return err
	}
	target, err := pos.Get(to)
	if err != nil {
		return err
	}

	if from == to {
		return errors.IllegalMove(from, to, "source and destination are the same square")
	}
	if mover.IsEmpty() {
		return errors.IllegalMove(from, to, "no piece on the source square")
	}
	if mover.Colour != gs.ToMove {
		return errors.IllegalMove(from, to, "piece does not belong to the side to move")
	}
	if !target.IsEmpty() && target.Colour == mover.Colour {
		return errors.IllegalMove(from, to, "destination holds a piece of the same colour")
	}

	reason, err := moveGeometry(gs, &pos, mover, from, to)
	if err != nil {
		return err
	}
	if reason != "" {
		return errors.IllegalMove(from, to, reason)
	}

	safe, err := leavesKingSafe(gs, &pos, mover, from, to)
	if err != nil {
		return err
	}
	if !safe {
		return errors.IllegalMove(from, to, "move leaves the king in check")
	}

	return nil
}

// moveGeometry dispatches to the movement rule of the piece type.
func moveGeometry(gs *chess.GameState, pos *chess.Position, mover chess.Piece, from, to chess.Square) (string, error) {
	switch mover.Type {
	case chess.Pawn:
		return pawnGeometry(gs, pos, mover, from, to), nil

	case chess.King:
		if cm, ok := findCastling(mover.Colour, from, to); ok {
			return castlingReason(gs, pos, mover, cm)
		}
		return kingStep(pos, mover.Colour, from, to)

	default:
		return pieceGeometry(pos, mover.Type, from, to), nil
	}
}

// LegalDestinations returns every square the piece on from may legally
// move to, in row-major order from a8. It is a thin loop over IsLegalMove
// and not meant for search.
func LegalDestinations(gs *chess.GameState, from chess.Square) ([]chess.Square, error) {
	if _, err := gs.Position.Get(from); err != nil {
		return nil, err
	}

	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			legal, err := IsLegalMove(gs, from, to)
			if err != nil {
				return nil, err
			}
			if legal {
				targets = append(targets, to)
			}
		}
	}
	return targets, nil
}
