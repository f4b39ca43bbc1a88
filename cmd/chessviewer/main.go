// chessviewer replays the games of a PGN file move by move, the way a
// screensaver shows them: each position stays on screen for a while, and
// at the end of a game the next one starts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"

	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/replay"
	"github.com/fredrander/chessviewerscreensaver/internal/source"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chessviewer version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := source.OpenOrBuiltin(cfg.Input.PGNFile, logWriter(cfg))

	if cfg.Check.Enabled {
		defer src.Close() //nolint:errcheck // read-only source
		return runCheck(ctx, src, cfg)
	}

	session := replay.NewSession(src, cfg)
	defer session.Close() //nolint:errcheck // read-only source

	err = runReplay(ctx, session, cfg, sleep)
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return func() { file.Close() }, nil
}

// logWriter is the log file, or a sink when logging is off.
func logWriter(cfg *config.Config) io.Writer {
	if cfg.Verbosity == config.Silent || cfg.LogFile == nil {
		return io.Discard
	}
	return cfg.LogFile
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessviewer [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games from a PGN file one move at a time.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWithout -f the built-in game Kasparov - Topalov, Wijk aan Zee 1999 is shown.\n")
}
