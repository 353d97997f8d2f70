// Package fen converts between FEN strings and game states.
package fen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	castlingPattern  = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	enPassantPattern = regexp.MustCompile(`^([a-h][36]|-)$`)
	halfmovePattern  = regexp.MustCompile(`^[0-9]+$`)
	fullmovePattern  = regexp.MustCompile(`^[1-9][0-9]*$`)
)

// Decode builds a game state from a FEN string.
//
// Either all six fields or the piece placement alone must be given. A
// placement-only string yields white to move, no castling rights, no en
// passant target and clocks 0 and 1. The position must hold exactly one
// king of each colour. Every failure wraps errors.ErrInvalidFEN.
func Decode(fen string) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) != 1 && len(parts) != 6 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fields",
			Expected: "1 or 6 fields",
			Got:      strconv.Itoa(len(parts)),
		}
	}

	pos := chess.NewPosition()
	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := pos.Validate(); err != nil {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "piece placement",
			Expected: "one king of each colour",
			Got:      err.Error(),
		}
	}

	gs := &chess.GameState{
		Position:   *pos,
		ToMove:     chess.White,
		MoveNumber: 1,
	}
	if len(parts) == 1 {
		return gs, nil
	}

	if err := parseSideToMove(gs, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(gs, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(gs, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(gs, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return gs, nil
}

// MustDecode is Decode for known-good strings; it panics on error.
func MustDecode(fen string) *chess.GameState {
	gs, err := Decode(fen)
	if err != nil {
		panic(err)
	}
	return gs
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "piece placement",
			Expected: "8 rows",
			Got:      placement,
		}
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece, ok := chess.PieceFromLetter(c)
				if !ok {
					return &errors.ParseError{
						Err:   errors.ErrInvalidFEN,
						Field: "piece placement",
						Got:   string(c),
					}
				}
				if col < chess.BoardSize {
					if err := pos.Place(piece, chess.Sq(row, col)); err != nil {
						return err
					}
				}
				col++
			}
		}
		if col != chess.BoardSize {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Field:    "piece placement",
				Expected: "8 columns per row",
				Got:      text,
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(gs *chess.GameState, field string) error {
	switch field {
	case "w":
		gs.ToMove = chess.White
	case "b":
		gs.ToMove = chess.Black
	default:
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "side to move",
			Expected: "w or b",
			Got:      field,
		}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(gs *chess.GameState, field string) error {
	if !castlingPattern.MatchString(field) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "castling",
			Expected: "subset of KQkq or -",
			Got:      field,
		}
	}

	gs.Castling = chess.NoCastling
	for _, c := range field {
		switch c {
		case 'K':
			gs.Castling |= chess.WhiteKingside
		case 'Q':
			gs.Castling |= chess.WhiteQueenside
		case 'k':
			gs.Castling |= chess.BlackKingside
		case 'q':
			gs.Castling |= chess.BlackQueenside
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(gs *chess.GameState, field string) error {
	if !enPassantPattern.MatchString(field) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "en passant",
			Expected: "square on rank 3 or 6, or -",
			Got:      field,
		}
	}

	gs.ClearEnPassant()
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return errors.Wrap(err, "en passant")
	}
	gs.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(gs *chess.GameState, halfmove, fullmove string) error {
	if !halfmovePattern.MatchString(halfmove) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "halfmove clock",
			Expected: "non-negative integer",
			Got:      halfmove,
		}
	}
	if !fullmovePattern.MatchString(fullmove) {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fullmove number",
			Expected: "positive integer",
			Got:      fullmove,
		}
	}

	h, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: halfmove}
	}
	f, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: fullmove}
	}
	gs.HalfmoveClock = uint(h)
	gs.MoveNumber = uint(f)
	return nil
}

// Encode converts a game state to a FEN string.
func Encode(gs *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, &gs.Position)
	sb.WriteByte(' ')
	writeSideToMove(&sb, gs.ToMove)
	sb.WriteByte(' ')
	sb.WriteString(gs.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, gs)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", gs.HalfmoveClock, gs.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := pos.At(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, gs *chess.GameState) {
	if gs.EnPassant {
		sb.WriteString(gs.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}
