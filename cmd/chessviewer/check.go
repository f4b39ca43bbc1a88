package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/replay"
	"github.com/fredrander/chessviewerscreensaver/internal/source"
)

// runCheck replays every game of src once and reports the ones that cannot
// be played to the end. It returns the process exit code.
func runCheck(ctx context.Context, src source.Source, cfg *config.Config) int {
	started := time.Now()
	report, err := replay.VerifyAll(ctx, src, cfg.Check.WorkerCount())
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	for _, f := range report.Failures {
		fmt.Fprintf(cfg.OutputFile, "%v\n", f)
	}
	reportCheck(cfg, report, src.Size(), time.Since(started))

	if len(report.Failures) > 0 {
		return 1
	}
	return 0
}

// reportCheck prints the statistics of a check run to the log.
func reportCheck(cfg *config.Config, report *replay.Report, size int64, elapsed time.Duration) {
	cfg.Logf(config.GameLevel, "%d game(s), %d plies, %d failed, %s in %v on %d worker(s).\n",
		report.Games, report.Plies, len(report.Failures), source.HumanSize(size), elapsed.Round(time.Millisecond), report.Workers)
	for _, r := range []chess.Result{chess.WhiteWins, chess.BlackWins, chess.Draw, chess.ResultUnknown} {
		if n := report.Results[r]; n > 0 {
			cfg.Logf(config.GameLevel, "  %-7s %d\n", r, n)
		}
	}
}
