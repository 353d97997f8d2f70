package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pieceGeometry checks the movement pattern of a knight, bishop, rook or
// queen, including that sliding paths are unobstructed. It returns the
// reason the move is impossible, or "" if the piece can make it.
func pieceGeometry(pos *chess.Position, pieceType chess.PieceType, from, to chess.Square) string {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch pieceType {
	case chess.Knight:
		if (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1) {
			return ""
		}
		return "knight moves in an L shape"

	case chess.Bishop:
		if rowDiff != colDiff {
			return "bishop moves diagonally"
		}
		return pathReason(pos, from, to)

	case chess.Rook:
		if rowDiff != 0 && colDiff != 0 {
			return "rook moves along a rank or file"
		}
		return pathReason(pos, from, to)

	case chess.Queen:
		if rowDiff != colDiff && rowDiff != 0 && colDiff != 0 {
			return "queen moves along a line or diagonal"
		}
		return pathReason(pos, from, to)
	}

	return "unsupported piece"
}

// pathReason turns isPathClear into a rejection reason.
func pathReason(pos *chess.Position, from, to chess.Square) string {
	if !isPathClear(pos, from, to) {
		return "path is blocked"
	}
	return ""
}

// isPathClear checks that every square strictly between from and to is
// empty. from and to must share a row, column or diagonal.
func isPathClear(pos *chess.Position, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !pos.At(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// kingStep checks an ordinary one-square king move: the king may not end
// next to the opposing king.
func kingStep(pos *chess.Position, colour chess.Colour, from, to chess.Square) (string, error) {
	if abs(to.Row-from.Row) > 1 || abs(to.Col-from.Col) > 1 {
		return "king moves one square", nil
	}
	enemy, err := pos.FindKing(colour.Opposite())
	if err != nil {
		return "", err
	}
	if adjacent(to, enemy) {
		return "kings may not touch", nil
	}
	return "", nil
}
