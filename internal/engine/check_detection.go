// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a row/column step.
type direction struct {
	dRow, dCol int
}

// pieceSet is a small bit set of piece types.
type pieceSet uint8

func setOf(types ...chess.PieceType) pieceSet {
	var s pieceSet
	for _, t := range types {
		s |= 1 << uint(t)
	}
	return s
}

func (s pieceSet) has(t chess.PieceType) bool {
	return s&(1<<uint(t)) != 0
}

// attackRay describes one line of attack: step in dir up to maxSteps
// squares, and the first piece met attacks if its type is in attackers.
type attackRay struct {
	dir       direction
	attackers pieceSet
	maxSteps  int
}

var (
	orthogonalDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps    = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// attackRays is the colour-independent part of the attack table.
var attackRays = buildAttackRays()

func buildAttackRays() []attackRay {
	var rays []attackRay
	for _, d := range orthogonalDirs {
		rays = append(rays, attackRay{dir: d, attackers: setOf(chess.Rook, chess.Queen), maxSteps: chess.BoardSize - 1})
	}
	for _, d := range diagonalDirs {
		rays = append(rays, attackRay{dir: d, attackers: setOf(chess.Bishop, chess.Queen), maxSteps: chess.BoardSize - 1})
	}
	for _, d := range knightJumps {
		rays = append(rays, attackRay{dir: d, attackers: setOf(chess.Knight), maxSteps: 1})
	}
	return rays
}

// pawnRays returns the two single-step lookups for pawns of colour by.
// A pawn captures one row ahead in its own direction, so it attacks a
// square from one row behind it.
func pawnRays(by chess.Colour) [2]attackRay {
	dRow := -chess.PawnDirection(by)
	return [2]attackRay{
		{dir: direction{dRow, -1}, attackers: setOf(chess.Pawn), maxSteps: 1},
		{dir: direction{dRow, 1}, attackers: setOf(chess.Pawn), maxSteps: 1},
	}
}

// walkRay steps outward from origin and reports whether the first occupied
// square holds a piece of colour by whose type the ray admits. Reaching the
// edge, a piece of the other colour, or a non-attacking type ends the walk.
func walkRay(pos *chess.Position, origin chess.Square, ray attackRay, by chess.Colour) bool {
	sq := origin
	for step := 0; step < ray.maxSteps; step++ {
		sq = sq.Offset(ray.dir.dRow, ray.dir.dCol)
		if !sq.Valid() {
			return false
		}
		piece := pos.At(sq)
		if piece.IsEmpty() {
			continue
		}
		return piece.Colour == by && ray.attackers.has(piece.Type)
	}
	return false
}

// IsSquareAttacked returns true if a sliding piece, knight or pawn of
// colour by attacks sq. The enemy king is not counted; use KingsTouching
// for that.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	for _, ray := range attackRays {
		if walkRay(pos, sq, ray, by) {
			return true
		}
	}
	for _, ray := range pawnRays(by) {
		if walkRay(pos, sq, ray, by) {
			return true
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
// It fails with ErrKingNotFound if the position lacks exactly one such king.
func IsInCheck(pos *chess.Position, colour chess.Colour) (bool, error) {
	king, err := pos.FindKing(colour)
	if err != nil {
		return false, err
	}
	return IsSquareAttacked(pos, king, colour.Opposite()), nil
}

// KingsTouching reports whether the two kings stand on adjacent squares.
func KingsTouching(pos *chess.Position) (bool, error) {
	white, err := pos.FindKing(chess.White)
	if err != nil {
		return false, err
	}
	black, err := pos.FindKing(chess.Black)
	if err != nil {
		return false, err
	}
	return adjacent(white, black), nil
}

// adjacent reports whether two distinct squares touch, including diagonally.
func adjacent(a, b chess.Square) bool {
	return a != b && abs(a.Row-b.Row) <= 1 && abs(a.Col-b.Col) <= 1
}
