package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/engine"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
	"github.com/fredrander/chessviewerscreensaver/internal/notation"
	"github.com/fredrander/chessviewerscreensaver/internal/replay"
)

// waitFunc pauses the display; it returns early with ctx's error.
type waitFunc func(ctx context.Context, d time.Duration) error

// maxSkippedGames stops a replay whose games all fail to start.
const maxSkippedGames = 100

type frameKind int

const (
	frameGameStart frameKind = iota
	frameMove
	frameGameEnd
)

// frame is one step of the display: a new game, a move or a result.
type frame struct {
	kind   frameKind
	info   chess.GameInfo
	move   chess.Move
	fen    string
	toMove chess.Colour
	score  string // game score so far, at game end
	failed bool   // game stopped at an unplayable move
}

// runReplay reads games from the session and shows them until ctx is done
// or the configured number of games has been shown. Reading runs ahead of
// the display by at most one frame.
func runReplay(ctx context.Context, s *replay.Session, cfg *config.Config, wait waitFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	frames := make(chan frame, 1)

	g.Go(func() error {
		defer close(frames)
		return produceFrames(ctx, s, cfg, frames)
	})

	g.Go(func() error {
		return showFrames(ctx, cfg, frames, wait)
	})

	return g.Wait()
}

func produceFrames(ctx context.Context, s *replay.Session, cfg *config.Config, frames chan<- frame) error {
	send := func(f frame) error {
		select {
		case frames <- f:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	skipped := 0
	for games := 0; cfg.Input.MaxGames == 0 || games < cfg.Input.MaxGames; games++ {
		if err := startGame(s, cfg); err != nil {
			if _, ok := errors.AsGameError(err); !ok {
				return err
			}
			cfg.Logf(config.GameLevel, "Skipping game: %v\n", err)
			if skipped++; skipped >= maxSkippedGames {
				return fmt.Errorf("%d games in a row could not be started: %w", skipped, err)
			}
			continue
		}
		skipped = 0
		if err := send(frame{kind: frameGameStart, info: s.Info(), fen: s.StartFEN(), toMove: s.ToMove()}); err != nil {
			return err
		}

		failed := false
		for {
			m, err := s.NextMove()
			if err == io.EOF {
				break
			}
			if err != nil {
				if _, ok := errors.AsGameError(err); !ok {
					return err
				}
				cfg.Logf(config.GameLevel, "Stopping game: %v\n", err)
				failed = true
				break
			}
			if err := send(frame{kind: frameMove, move: m, fen: s.FEN(), toMove: s.ToMove()}); err != nil {
				return err
			}
		}

		end := frame{kind: frameGameEnd, info: s.Info(), failed: failed, score: gameScore(s)}
		if err := send(end); err != nil {
			return err
		}
	}
	return nil
}

func startGame(s *replay.Session, cfg *config.Config) error {
	if cfg.Input.Random {
		return s.NextRandomGame()
	}
	return s.NextGame()
}

// gameScore renders the moves played in the current game from its start
// position, cut off after notation.MaxLineLen characters.
func gameScore(s *replay.Session) string {
	history := s.MoveHistory()
	if len(history) == 0 {
		return ""
	}
	pos, toMove, err := engine.PositionFromFEN(s.StartFEN())
	if err != nil {
		return ""
	}

	moves := make([]string, len(history))
	for i, m := range history {
		moves[i] = m.Base().LongAlgebraic
	}
	return notation.FormatLine(strings.Join(moves, " "), &pos, toMove, history[0].Base().Number)
}

func showFrames(ctx context.Context, cfg *config.Config, frames <-chan frame, wait waitFunc) error {
	out := cfg.OutputFile
	for f := range frames {
		var delay time.Duration

		switch f.kind {
		case frameGameStart:
			fmt.Fprintf(out, "\n%s\n", f.info.Title())
			if summary := f.info.Summary(); summary != "" {
				fmt.Fprintf(out, "%s\n", summary)
			}
			fmt.Fprintf(out, "%s\n", f.fen)
			delay = cfg.Replay.PreGameDelay()

		case frameMove:
			b := f.move.Base()
			dots := "."
			if f.toMove == chess.White {
				dots = "..."
			}
			fmt.Fprintf(out, "%d%s %-7s %-5s %s\n", b.Number, dots, b.Text, b.LongAlgebraic, f.fen)
			delay = cfg.Replay.MoveDelay

		case frameGameEnd:
			if f.score != "" {
				fmt.Fprintf(out, "%s\n", f.score)
			}
			if f.failed {
				fmt.Fprintf(out, "Game stopped\n")
			} else {
				fmt.Fprintf(out, "%s %s\n", f.info.Result.Description(), f.info.Result)
			}
			delay = cfg.Replay.PostGameDelay()
		}

		cfg.Logf(config.MoveLevel, "Analysis time %v\n", cfg.Replay.AnalysisBudget(delay))
		if err := wait(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}
