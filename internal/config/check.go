package config

import (
	"fmt"
	"runtime"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// CheckConfig controls batch verification of a PGN file.
type CheckConfig struct {
	// Enabled replays every game once without delays and reports failures.
	Enabled bool

	// Workers replaying games; 0 uses one per CPU.
	Workers int
}

// NewCheckConfig creates a CheckConfig with default values.
func NewCheckConfig() *CheckConfig {
	return &CheckConfig{}
}

// Validate checks that the check configuration is valid.
func (c *CheckConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// WorkerCount resolves Workers to a positive number.
func (c *CheckConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
