package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMove describes one of the four castling moves.
type castlingMove struct {
	colour   chess.Colour
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square

	// between holds every square strictly between king and rook.
	between []chess.Square

	// kingPath holds the squares the king crosses and lands on, in order.
	kingPath []chess.Square
}

var castlingMoves = []castlingMove{
	buildCastlingMove(chess.White, true),
	buildCastlingMove(chess.White, false),
	buildCastlingMove(chess.Black, true),
	buildCastlingMove(chess.Black, false),
}

func buildCastlingMove(colour chess.Colour, kingside bool) castlingMove {
	row := chess.HomeRow(colour)
	cm := castlingMove{
		colour:   colour,
		right:    chess.CastlingRight(colour, kingside),
		kingFrom: chess.Sq(row, 4),
	}
	if kingside {
		cm.kingTo = chess.Sq(row, 6)
		cm.rookFrom = chess.Sq(row, 7)
		cm.rookTo = chess.Sq(row, 5)
		cm.between = []chess.Square{chess.Sq(row, 5), chess.Sq(row, 6)}
		cm.kingPath = []chess.Square{chess.Sq(row, 5), chess.Sq(row, 6)}
	} else {
		cm.kingTo = chess.Sq(row, 2)
		cm.rookFrom = chess.Sq(row, 0)
		cm.rookTo = chess.Sq(row, 3)
		cm.between = []chess.Square{chess.Sq(row, 1), chess.Sq(row, 2), chess.Sq(row, 3)}
		cm.kingPath = []chess.Square{chess.Sq(row, 3), chess.Sq(row, 2)}
	}
	return cm
}

// findCastling returns the castling move a king of colour makes by going
// from from to to, if any.
func findCastling(colour chess.Colour, from, to chess.Square) (castlingMove, bool) {
	for _, cm := range castlingMoves {
		if cm.colour == colour && cm.kingFrom == from && cm.kingTo == to {
			return cm, true
		}
	}
	return castlingMove{}, false
}

// castlingReason checks every castling condition and returns the first one
// that fails, or "" if the castle is legal. pos must be a private copy of
// gs.Position.
func castlingReason(gs *chess.GameState, pos *chess.Position, king chess.Piece, cm castlingMove) (string, error) {
	colour := king.Colour

	if !gs.Castling.Has(cm.right) {
		return "castling right has been lost", nil
	}
	if !pos.At(cm.rookFrom).Is(colour, chess.Rook) {
		return "no rook on its home square", nil
	}
	for _, sq := range cm.between {
		if !pos.At(sq).IsEmpty() {
			return "castling path is blocked", nil
		}
	}

	inCheck, err := IsInCheck(pos, colour)
	if err != nil {
		return "", err
	}
	if inCheck {
		return "cannot castle out of check", nil
	}

	enemy, err := pos.FindKing(colour.Opposite())
	if err != nil {
		return "", err
	}
	for _, sq := range cm.kingPath {
		attacked, err := speculate(pos, []squareEdit{
			{sq: cm.kingFrom, piece: chess.NoPiece},
			{sq: sq, piece: king},
		}, func(p *chess.Position) (bool, error) {
			return IsSquareAttacked(p, sq, colour.Opposite()) || adjacent(sq, enemy), nil
		})
		if err != nil {
			return "", err
		}
		if attacked {
			return "king passes through or lands on an attacked square", nil
		}
	}

	return "", nil
}

// applyCastle moves king and rook together.
func applyCastle(next *chess.GameState, cm castlingMove) error {
	pos := &next.Position
	if _, err := pos.Move(cm.kingFrom, cm.kingTo); err != nil {
		return err
	}
	if _, err := pos.Move(cm.rookFrom, cm.rookTo); err != nil {
		return err
	}
	return nil
}

// castlingRightsLost maps home squares to the rights that disappear once
// a piece moves from, or is captured on, that square.
var castlingRightsLost = map[chess.Square]chess.CastlingRights{
	chess.Sq(chess.HomeRow(chess.White), 4): chess.WhiteKingside | chess.WhiteQueenside,
	chess.Sq(chess.HomeRow(chess.White), 7): chess.WhiteKingside,
	chess.Sq(chess.HomeRow(chess.White), 0): chess.WhiteQueenside,
	chess.Sq(chess.HomeRow(chess.Black), 4): chess.BlackKingside | chess.BlackQueenside,
	chess.Sq(chess.HomeRow(chess.Black), 7): chess.BlackKingside,
	chess.Sq(chess.HomeRow(chess.Black), 0): chess.BlackQueenside,
}

// updateCastlingRights removes rights when a king or rook leaves its home
// square or a rook is captured there.
func updateCastlingRights(rights chess.CastlingRights, from, to chess.Square) chess.CastlingRights {
	return rights.Without(castlingRightsLost[from] | castlingRightsLost[to])
}
