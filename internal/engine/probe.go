package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// squareEdit sets one square to a piece (NoPiece to clear it).
type squareEdit struct {
	sq    chess.Square
	piece chess.Piece
}

// speculate applies edits to pos, evaluates fn on the edited position and
// restores every touched square before returning, on every exit path
// including a panic in fn. Edits are undone in reverse order so the same
// square may appear more than once.
//
// speculate is not reentrant on the same Position; callers give it a
// private copy.
func speculate(pos *chess.Position, edits []squareEdit, fn func(*chess.Position) (bool, error)) (bool, error) {
	saved := make([]squareEdit, 0, len(edits))
	defer func() {
		for i := len(saved) - 1; i >= 0; i-- {
			_ = pos.Place(saved[i].piece, saved[i].sq)
		}
	}()

	for _, e := range edits {
		prev, err := pos.Get(e.sq)
		if err != nil {
			return false, err
		}
		saved = append(saved, squareEdit{sq: e.sq, piece: prev})
		_ = pos.Place(e.piece, e.sq)
	}
	return fn(pos)
}

// moveEdits returns the edits that play mover from from to to, including
// removal of the pawn taken by an en passant capture.
func moveEdits(gs *chess.GameState, mover chess.Piece, from, to chess.Square) []squareEdit {
	edits := []squareEdit{
		{sq: from, piece: chess.NoPiece},
		{sq: to, piece: mover},
	}
	if isEnPassantCapture(gs, &gs.Position, mover, from, to) {
		edits = append(edits, squareEdit{sq: enPassantVictim(from, to), piece: chess.NoPiece})
	}
	return edits
}

// leavesKingSafe reports whether playing the move keeps the mover's own
// king out of check. pos must be a private copy of gs.Position.
func leavesKingSafe(gs *chess.GameState, pos *chess.Position, mover chess.Piece, from, to chess.Square) (bool, error) {
	inCheck, err := speculate(pos, moveEdits(gs, mover, from, to), func(p *chess.Position) (bool, error) {
		return IsInCheck(p, mover.Colour)
	})
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}
