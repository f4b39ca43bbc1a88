package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
	"github.com/fredrander/chessviewerscreensaver/internal/testutil"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != GameLevel {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, GameLevel)
	}
	if cfg.LogFile != os.Stderr {
		t.Error("LogFile should default to stderr")
	}
	if cfg.Input.PGNFile != "" || cfg.Input.Random {
		t.Error("default input should be the built-in game in order")
	}
	if cfg.Replay.MoveDelay != 2*time.Second {
		t.Errorf("MoveDelay = %v, want 2s", cfg.Replay.MoveDelay)
	}
	if cfg.Replay.EngineTimePercent != 20 {
		t.Errorf("EngineTimePercent = %d, want 20", cfg.Replay.EngineTimePercent)
	}
	if cfg.Resume.StateFile != filepath.Join(os.TempDir(), ".chessviewerscreensaver") {
		t.Errorf("StateFile = %q", cfg.Resume.StateFile)
	}
	if !cfg.Resume.Enabled() {
		t.Error("resume should be enabled by default")
	}
	if cfg.Check.Enabled {
		t.Error("check mode should be off by default")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestReplayConfig_Delays(t *testing.T) {
	tests := []struct {
		delay    time.Duration
		percent  int
		wantPre  time.Duration
		wantPost time.Duration
		wantEng  time.Duration
	}{
		{2 * time.Second, 20, 2 * time.Second, 16 * time.Second, 400 * time.Millisecond},
		{3 * time.Second, 50, 3 * time.Second, 24 * time.Second, 1500 * time.Millisecond},
		{5 * time.Second, 20, 5 * time.Second, 30 * time.Second, time.Second},
		{0, 20, 0, 0, 0},
	}

	for _, tt := range tests {
		r := &ReplayConfig{MoveDelay: tt.delay, EngineTimePercent: tt.percent}
		testutil.AssertEqual(t, r.PreGameDelay(), tt.wantPre, "pre-game")
		testutil.AssertEqual(t, r.PostGameDelay(), tt.wantPost, "post-game")
		testutil.AssertEqual(t, r.AnalysisBudget(r.MoveDelay), tt.wantEng, "analysis")
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative delay", func(c *Config) { c.Replay.MoveDelay = -time.Second }, true},
		{"engine time over 100", func(c *Config) { c.Replay.EngineTimePercent = 101 }, true},
		{"engine time zero", func(c *Config) { c.Replay.EngineTimePercent = 0 }, false},
		{"negative games", func(c *Config) { c.Input.MaxGames = -1 }, true},
		{"negative workers", func(c *Config) { c.Check.Workers = -2 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(GameLevel).Build()

	cfg.Logf(GameLevel, "game %d\n", 1)
	cfg.Logf(MoveLevel, "move %s\n", "e4")
	testutil.AssertEqual(t, buf.String(), "game 1\n")

	var nilCfg *Config
	nilCfg.Logf(GameLevel, "ignored")
}

func TestResumeConfig_Enabled(t *testing.T) {
	testutil.AssertFalse(t, (&ResumeConfig{StateFile: "x", Disabled: true}).Enabled())
	testutil.AssertFalse(t, (&ResumeConfig{}).Enabled())
	testutil.AssertTrue(t, (&ResumeConfig{StateFile: "x"}).Enabled())
}

func TestCheckConfig_WorkerCount(t *testing.T) {
	testutil.AssertEqual(t, (&CheckConfig{Workers: 3}).WorkerCount(), 3)
	if n := (&CheckConfig{}).WorkerCount(); n < 1 {
		t.Errorf("WorkerCount() = %d, want at least 1", n)
	}
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var out bytes.Buffer
	cfg := NewConfigBuilder().
		WithPGNFile("games.pgn").
		WithRandomOrder(true, 42).
		WithMaxGames(3).
		WithMoveDelay(time.Second).
		WithEngineTime(50).
		WithStateFile("/tmp/state").
		WithoutResume().
		WithCheckMode(true, 4).
		WithOutput(&out).
		WithVerbosity(MoveLevel).
		Build()

	testutil.AssertEqual(t, *cfg.Input, InputConfig{PGNFile: "games.pgn", Random: true, Seed: 42, MaxGames: 3})
	testutil.AssertEqual(t, *cfg.Replay, ReplayConfig{MoveDelay: time.Second, EngineTimePercent: 50})
	testutil.AssertEqual(t, *cfg.Resume, ResumeConfig{StateFile: "/tmp/state", Disabled: true})
	testutil.AssertEqual(t, *cfg.Check, CheckConfig{Enabled: true, Workers: 4})
	testutil.AssertTrue(t, cfg.OutputFile == &out, "output writer")
	testutil.AssertEqual(t, cfg.Verbosity, MoveLevel)
	testutil.AssertNoError(t, cfg.Validate())
}
