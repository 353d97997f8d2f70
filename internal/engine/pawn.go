package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnGeometry checks the four pawn move forms: single step, double step
// from the start row, diagonal capture and en passant capture.
func pawnGeometry(gs *chess.GameState, pos *chess.Position, pawn chess.Piece, from, to chess.Square) string {
	dir := chess.PawnDirection(pawn.Colour)
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := pos.At(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		if !target.IsEmpty() {
			return "pawn is blocked"
		}
		return ""

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row != chess.PawnStartRow(pawn.Colour) {
			return "pawn can only advance two squares from its start row"
		}
		if !pos.At(from.Offset(dir, 0)).IsEmpty() || !target.IsEmpty() {
			return "pawn is blocked"
		}
		return ""

	case colDiff == 1 && rowDiff == dir:
		if !target.IsEmpty() {
			// preliminary checks already ruled out an own piece
			return ""
		}
		if isEnPassantCapture(gs, pos, pawn, from, to) {
			return ""
		}
		return "pawn moves diagonally only to capture"
	}

	return "pawn cannot move there"
}

// isEnPassantCapture reports whether the move is a pawn stepping
// diagonally onto the en passant target with the opposing pawn beside it.
func isEnPassantCapture(gs *chess.GameState, pos *chess.Position, mover chess.Piece, from, to chess.Square) bool {
	if mover.Type != chess.Pawn || !gs.EnPassant || to != gs.EPSquare {
		return false
	}
	if to.Row-from.Row != chess.PawnDirection(mover.Colour) || abs(to.Col-from.Col) != 1 {
		return false
	}
	if !pos.At(to).IsEmpty() {
		return false
	}
	return pos.At(enPassantVictim(from, to)).Is(mover.Colour.Opposite(), chess.Pawn)
}

// enPassantVictim is the square of the pawn taken en passant: the
// destination's column on the capturing pawn's row.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isDoubleStep reports whether a pawn move advanced two squares.
func isDoubleStep(mover chess.Piece, from, to chess.Square) bool {
	return mover.Type == chess.Pawn && from.Col == to.Col && abs(to.Row-from.Row) == 2
}

// applyPawnMove plays a pawn move on next, handling en passant and
// promotion. It reports whether a piece was captured.
func applyPawnMove(prev, next *chess.GameState, pawn chess.Piece, from, to chess.Square, promotion chess.PieceType) (bool, error) {
	pos := &next.Position

	epCapture := isEnPassantCapture(prev, &prev.Position, pawn, from, to)

	captured, err := pos.Move(from, to)
	if err != nil {
		return false, err
	}

	if epCapture {
		if err := pos.Remove(enPassantVictim(from, to)); err != nil {
			return false, err
		}
	}

	if promotion != chess.Empty {
		if err := pos.Place(chess.MakePiece(pawn.Colour, promotion), to); err != nil {
			return false, err
		}
	}

	next.ClearEnPassant()
	if isDoubleStep(pawn, from, to) {
		next.SetEnPassant(chess.Sq((from.Row+to.Row)/2, from.Col))
	}

	return epCapture || !captured.IsEmpty(), nil
}
