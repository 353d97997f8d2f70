// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/fen"
)

var (
	// Input options
	startFEN  = flag.String("fen", fen.InitialFEN, "Starting position in FEN")
	movesFile = flag.String("m", "", "Read moves from this file instead of the command line or stdin")

	// Mode options
	playMode = flag.Bool("play", false, "Play the moves in order as one game instead of checking each against the start position")
	listFrom = flag.String("from", "", "List the legal destinations of the piece on this square")
	showDiag = flag.Bool("board", false, "Print a board diagram of the final position")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	detailed  = flag.Bool("detail", false, "Log every rejected move with its reason")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 0, "Work queue capacity (0 = default)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPerformanceFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *detailed:
		cfg.Verbosity = config.Detailed
	}
}

// applyPerformanceFlags configures the worker pool settings.
func applyPerformanceFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *bufferSize > 0 {
		cfg.BufferSize = *bufferSize
	}
}
