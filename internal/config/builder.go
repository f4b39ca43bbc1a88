package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPGNFile sets the file to replay.
func (b *ConfigBuilder) WithPGNFile(path string) *ConfigBuilder {
	b.cfg.Input.PGNFile = path
	return b
}

// WithRandomOrder enables random game selection with the given seed.
func (b *ConfigBuilder) WithRandomOrder(enabled bool, seed int64) *ConfigBuilder {
	b.cfg.Input.Random = enabled
	b.cfg.Input.Seed = seed
	return b
}

// WithMaxGames limits the number of games replayed.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Input.MaxGames = n
	return b
}

// WithMoveDelay sets how long each move is shown.
func (b *ConfigBuilder) WithMoveDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Replay.MoveDelay = d
	return b
}

// WithEngineTime sets the analysis share of each delay.
func (b *ConfigBuilder) WithEngineTime(percent int) *ConfigBuilder {
	b.cfg.Replay.EngineTimePercent = percent
	return b
}

// WithStateFile sets the resume marker path.
func (b *ConfigBuilder) WithStateFile(path string) *ConfigBuilder {
	b.cfg.Resume.StateFile = path
	return b
}

// WithoutResume disables the resume marker.
func (b *ConfigBuilder) WithoutResume() *ConfigBuilder {
	b.cfg.Resume.Disabled = true
	return b
}

// WithCheckMode enables batch verification.
func (b *ConfigBuilder) WithCheckMode(enabled bool, workers int) *ConfigBuilder {
	b.cfg.Check.Enabled = enabled
	b.cfg.Check.Workers = workers
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
