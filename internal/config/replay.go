package config

import (
	"fmt"
	"time"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// Replay timing defaults.
const (
	DefaultMoveDelay         = 2 * time.Second
	DefaultEngineTimePercent = 20
	MaxPostGameDelay         = 30 * time.Second

	postGameDelayFactor = 8
)

// ReplayConfig controls replay pacing.
type ReplayConfig struct {
	// MoveDelay is how long each move stays on screen.
	MoveDelay time.Duration

	// EngineTimePercent is the share of a delay given to analysis.
	EngineTimePercent int
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		MoveDelay:         DefaultMoveDelay,
		EngineTimePercent: DefaultEngineTimePercent,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.MoveDelay < 0 {
		return fmt.Errorf("move delay %v is negative: %w", r.MoveDelay, errors.ErrInvalidConfig)
	}
	if r.EngineTimePercent < 0 || r.EngineTimePercent > 100 {
		return fmt.Errorf("engine time %d%% not in 0..100: %w", r.EngineTimePercent, errors.ErrInvalidConfig)
	}
	return nil
}

// PreGameDelay is the pause on the start position.
func (r *ReplayConfig) PreGameDelay() time.Duration {
	return r.MoveDelay
}

// PostGameDelay is the pause after the last move, at most MaxPostGameDelay.
func (r *ReplayConfig) PostGameDelay() time.Duration {
	d := postGameDelayFactor * r.MoveDelay
	if d > MaxPostGameDelay {
		return MaxPostGameDelay
	}
	return d
}

// AnalysisBudget is the analysis time available within delay.
func (r *ReplayConfig) AnalysisBudget(delay time.Duration) time.Duration {
	return delay * time.Duration(r.EngineTimePercent) / 100
}
