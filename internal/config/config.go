// Package config holds the runtime settings of the chess viewer.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// Verbosity levels for LogFile output.
const (
	Silent = 0
	// GameLevel reports sources, game starts and results.
	GameLevel = 1
	// MoveLevel adds every replayed move.
	MoveLevel = 2
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=games, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Input  *InputConfig
	Replay *ReplayConfig
	Resume *ResumeConfig
	Check  *CheckConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  GameLevel,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Input:      NewInputConfig(),
		Replay:     NewReplayConfig(),
		Resume:     NewResumeConfig(),
		Check:      NewCheckConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > MoveLevel {
		return fmt.Errorf("verbosity %d not in %d..%d: %w", c.Verbosity, Silent, MoveLevel, errors.ErrInvalidConfig)
	}
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Check.Validate()
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
