// chessrules checks chess moves against a position and plays them out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	out := setupOutputFile()

	gs, err := fen.Decode(*startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading starting position: %v\n", err)
		os.Exit(1)
	}

	if *listFrom != "" {
		if err := listDestinations(out, gs, *listFrom); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	moves, err := loadMoves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading moves: %v\n", err)
		os.Exit(1)
	}

	if *playMode {
		final, err := playMoves(out, gs, moves)
		if *showDiag && final != nil {
			fmt.Fprint(out, final.Position.String())
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if illegal := checkMoves(out, gs, moves, cfg); illegal > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile opens the output file, or returns stdout.
func setupOutputFile() io.Writer {
	if *outputFile == "" {
		return os.Stdout
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// loadMoves collects moves from the -m file, the command line, or stdin,
// in that order of preference.
func loadMoves() ([]chess.MovePair, error) {
	if *movesFile != "" {
		file, err := os.Open(*movesFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return readMoves(file)
	}

	if args := flag.Args(); len(args) > 0 {
		return readMoves(strings.NewReader(strings.Join(args, " ")))
	}

	return readMoves(os.Stdin)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Checks moves in long algebraic form (e2e4, e7e8q) against a position.\n")
	fmt.Fprintf(os.Stderr, "Without -play every move is checked against the starting position;\n")
	fmt.Fprintf(os.Stderr, "with -play the moves form one game and are applied in turn.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
