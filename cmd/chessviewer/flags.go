// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/fredrander/chessviewerscreensaver/internal/config"
)

var (
	// Input options
	pgnFile    = flag.String("f", "", "PGN file to replay (.pgn, .pgn.zst or .pgn.bz2; default: built-in game)")
	randomMode = flag.Bool("r", false, "Pick games in random order")
	seed       = flag.Int64("seed", 0, "Seed for random order (0 = time based)")
	maxGames   = flag.Int("games", 0, "Stop after N games (0 = no limit)")

	// Replay pacing
	moveDelay  = flag.Float64("s", config.DefaultMoveDelay.Seconds(), "Seconds each move is shown")
	engineTime = flag.Int("t", config.DefaultEngineTimePercent, "Percentage of the move delay given to analysis")

	// Resume
	stateFile = flag.String("state", config.DefaultStateFile(), "File keeping the position of the last game started")
	noResume  = flag.Bool("noresume", false, "Neither load nor save the resume position")

	// Batch verification
	checkMode = flag.Bool("check", false, "Replay every game once without delays and report unplayable moves")
	workers   = flag.Int("workers", 0, "Number of worker threads for -check (0 = auto-detect based on CPU cores)")

	// Logging and output
	verbosity  = flag.Int("v", config.GameLevel, "Log verbosity: 0 silent, 1 games, 2 moves")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	outputFile = flag.String("o", "", "Write the replay to this file (default: stdout)")

	// Other options
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile to this directory")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

func init() {
	flag.StringVar(pgnFile, "pgnfile", "", "Same as -f")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyInputFlags(cfg)
	applyReplayFlags(cfg)
	applyResumeFlags(cfg)

	cfg.Check.Enabled = *checkMode
	cfg.Check.Workers = *workers
	cfg.Verbosity = *verbosity
}

func applyInputFlags(cfg *config.Config) {
	cfg.Input.PGNFile = *pgnFile
	cfg.Input.Random = *randomMode
	cfg.Input.Seed = *seed
	cfg.Input.MaxGames = *maxGames
}

func applyReplayFlags(cfg *config.Config) {
	cfg.Replay.MoveDelay = time.Duration(*moveDelay * float64(time.Second))
	cfg.Replay.EngineTimePercent = *engineTime
}

func applyResumeFlags(cfg *config.Config) {
	cfg.Resume.StateFile = *stateFile
	cfg.Resume.Disabled = *noResume
}
