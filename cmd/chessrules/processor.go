// processor.go - Move reading, checking and output functions
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

// readMoves reads whitespace-separated long algebraic moves. Lines starting
// with '#' are comments.
func readMoves(r io.Reader) ([]chess.MovePair, error) {
	var moves []chess.MovePair
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, word := range strings.Fields(line) {
			m, err := chess.ParseMovePair(word)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			moves = append(moves, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

// describeRejection returns the rule that rejected a move, or the error
// text when there is no rule to name.
func describeRejection(err error) string {
	var me *errors.MoveError
	if errors.As(err, &me) && me.Reason != "" {
		return me.Reason
	}
	return err.Error()
}

// checkMoves checks every move against gs independently and writes one
// line per move. It returns the number of moves that were not legal.
func checkMoves(w io.Writer, gs *chess.GameState, moves []chess.MovePair, cfg *config.Config) int {
	rejected := 0
	for _, r := range engine.ValidateMoves(gs, moves, cfg) {
		if r.Err != nil {
			rejected++
			fmt.Fprintf(w, "%s illegal: %s\n", r.Move, describeRejection(r.Err))
			continue
		}
		fmt.Fprintf(w, "%s legal: %s\n", r.Move, fen.Encode(r.Next))
	}
	return rejected
}

// playMoves applies the moves in order, writing the FEN after each one.
// It stops at the first move that cannot be played and returns the last
// state reached along with the error.
func playMoves(w io.Writer, gs *chess.GameState, moves []chess.MovePair) (*chess.GameState, error) {
	for i, m := range moves {
		next, err := engine.ApplyMovePair(gs, m)
		if err != nil {
			return gs, errors.Wrapf(err, "ply %d", i+1)
		}
		gs = next

		suffix := ""
		inCheck, err := engine.IsInCheck(&gs.Position, gs.ToMove)
		if err != nil {
			return gs, err
		}
		if inCheck {
			suffix = " +"
		}
		fmt.Fprintf(w, "%s %s%s\n", m, fen.Encode(gs), suffix)
	}
	return gs, nil
}

// listDestinations writes the legal destinations of the piece on square.
func listDestinations(w io.Writer, gs *chess.GameState, square string) error {
	from, err := chess.ParseSquare(square)
	if err != nil {
		return err
	}
	targets, err := engine.LegalDestinations(gs, from)
	if err != nil {
		return err
	}

	names := make([]string, len(targets))
	for i, to := range targets {
		names[i] = to.String()
	}
	fmt.Fprintf(w, "%s: %s\n", from, strings.Join(names, " "))
	return nil
}
