// Package config provides configuration for the rules engine's batch tooling.
package config

import (
	"io"
	"os"
	"runtime"
)

// Verbosity levels for LogFile output.
const (
	Quiet    = 0 // nothing
	Summary  = 1 // one line per batch
	Detailed = 2 // every rejected move with its reason
)

// Config holds settings for callers that validate many moves at once.
// The core operations (IsInCheck, IsLegalMove, ApplyMove) take no
// configuration.
type Config struct {
	// Number of goroutines validating moves concurrently.
	Workers int

	// Capacity of the work and result channels.
	BufferSize int

	// 0=nothing, 1=batch summary, 2=each rejected move
	Verbosity int

	// Diagnostic output stream.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
		Verbosity:  Summary,
		LogFile:    os.Stderr,
	}
}

// Normalize replaces out-of-range values with defaults so a zero Config
// is usable.
func (c *Config) Normalize() {
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.BufferSize < 1 {
		c.BufferSize = 1
	}
	if c.LogFile == nil {
		c.LogFile = io.Discard
	}
}
