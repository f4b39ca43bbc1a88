package config

import (
	"fmt"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// InputConfig selects the PGN source and the order games are read in.
type InputConfig struct {
	// PGNFile is the file to replay; empty selects the built-in game.
	PGNFile string

	// Random jumps to a random game instead of the next one.
	Random bool

	// Seed for random game selection; 0 seeds from the clock.
	Seed int64

	// MaxGames stops after this many games; 0 replays forever.
	MaxGames int
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{}
}

// Validate checks that the input configuration is valid.
func (i *InputConfig) Validate() error {
	if i.MaxGames < 0 {
		return fmt.Errorf("game limit %d is negative: %w", i.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
