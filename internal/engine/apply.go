package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove validates and plays from -> to for the side to move and returns
// the resulting state. gs itself is left untouched.
//
// ApplyMove never plays an illegal move: it fails with an error wrapping
// ErrIllegalMove instead. promotion must be chess.Empty unless a pawn
// reaches the last rank, where it must be a knight, bishop, rook or queen;
// leaving it out there fails with ErrMissingPromotion, anything else with
// ErrInvalidPromotion.
func ApplyMove(gs *chess.GameState, from, to chess.Square, promotion chess.PieceType) (*chess.GameState, error) {
	if err := CheckMove(gs, from, to); err != nil {
		return nil, err
	}

	mover := gs.Position.At(from)
	if err := checkPromotion(mover, from, to, promotion); err != nil {
		return nil, err
	}

	var castle castlingMove
	castles := false
	if mover.Type == chess.King {
		castle, castles = findCastling(mover.Colour, from, to)
	}

	next := gs.Copy()
	var captured bool
	var err error

	switch {
	case mover.Type == chess.Pawn:
		captured, err = applyPawnMove(gs, next, mover, from, to, promotion)

	case castles:
		err = applyCastle(next, castle)
		next.ClearEnPassant()

	default:
		captured, err = applyPieceMove(next, from, to)
	}
	if err != nil {
		return nil, err
	}

	next.Castling = updateCastlingRights(next.Castling, from, to)

	// Update halfmove clock
	if mover.Type == chess.Pawn || captured {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if mover.Colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = mover.Colour.Opposite()

	return next, nil
}

// ApplyMovePair is ApplyMove taking a chess.MovePair.
func ApplyMovePair(gs *chess.GameState, m chess.MovePair) (*chess.GameState, error) {
	return ApplyMove(gs, m.From, m.To, m.Promotion)
}

// applyPieceMove plays a knight, bishop, rook, queen or ordinary king move
// and reports whether it captured.
func applyPieceMove(next *chess.GameState, from, to chess.Square) (bool, error) {
	captured, err := next.Position.Move(from, to)
	if err != nil {
		return false, err
	}
	next.ClearEnPassant()
	return !captured.IsEmpty(), nil
}

// checkPromotion enforces the promotion argument rules for a legal move.
func checkPromotion(mover chess.Piece, from, to chess.Square, promotion chess.PieceType) error {
	promotes := mover.Type == chess.Pawn && to.Row == chess.PromotionRow(mover.Colour)

	switch {
	case promotes && promotion == chess.Empty:
		return &errors.MoveError{Err: errors.ErrMissingPromotion, From: from.String(), To: to.String()}
	case promotes && !promotion.IsPromotion():
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, From: from.String(), To: to.String(), Reason: "cannot promote to " + promotion.String()}
	case !promotes && promotion != chess.Empty:
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, From: from.String(), To: to.String(), Reason: "move does not promote"}
	}
	return nil
}
