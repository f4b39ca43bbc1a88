package replay

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
	"github.com/fredrander/chessviewerscreensaver/internal/parser"
	"github.com/fredrander/chessviewerscreensaver/internal/source"
	"github.com/fredrander/chessviewerscreensaver/internal/worker"
)

// MaxGamePlies bounds the movetext collected for one game. Input that
// never reaches a result would otherwise cycle through the source forever.
const MaxGamePlies = 4096

// Report summarises a verification run.
type Report struct {
	Workers int
	Games   int
	Plies   int
	Results map[chess.Result]int
	// Failures holds one error per game that could not be replayed to its
	// result, in source order.
	Failures []*errors.GameError
}

// VerifyAll replays every game of src once, in parallel on workers
// goroutines, and reports the games containing a move that cannot be
// played. The games are read in order from offset 0 until the source
// wraps around to a game already read.
func VerifyAll(ctx context.Context, src source.Source, workers int) (*Report, error) {
	if err := src.Seek(0); err != nil {
		return nil, err
	}
	cfg := config.NewConfigBuilder().WithVerbosity(config.Silent).Build()
	tok := parser.NewTokenizer(src, cfg)
	name := src.Name()

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return replayItem(item, name)
	}, worker.WithWorkers(workers), worker.WithBufferSize(2*workers))
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		return produceGames(ctx, tok, pool)
	})

	report := &Report{Workers: pool.NumWorkers(), Results: make(map[chess.Result]int)}
	g.Go(func() error {
		// Results are only read here, so report needs no locking.
		for r := range pool.Results() {
			report.Games++
			report.Plies += r.Plies
			if r.Error != nil {
				report.Failures = append(report.Failures, r.Error.(*errors.GameError))
				continue
			}
			report.Results[r.Info.Result]++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report, err
	}

	slices.SortFunc(report.Failures, func(a, b *errors.GameError) int {
		return a.GameNum - b.GameNum
	})
	return report, nil
}

// produceGames tokenizes games in order and submits them to the pool.
func produceGames(ctx context.Context, tok *parser.Tokenizer, pool *worker.Pool) error {
	last := int64(-1)
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			pool.Stop()
			return err
		}

		tok.NextGame()
		var info chess.GameInfo
		if err := tok.ParseTags(info.Update); err == io.EOF {
			// empty source
			return nil
		} else if err != nil {
			return err
		}
		start := tok.HeaderStart()
		if start <= last {
			return nil
		}
		last = start

		item := worker.WorkItem{Index: index, Start: start, Info: info}
		for {
			next, err := tok.NextMove()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			item.Moves = append(item.Moves, next)
			if len(item.Moves) > MaxGamePlies {
				return fmt.Errorf("game %d at offset %d has no result within %d plies: %w",
					index+1, start, MaxGamePlies, errors.ErrParseFailure)
			}
		}
		if err := pool.Submit(ctx, item); err != nil {
			pool.Stop()
			return err
		}
	}
}

// replayItem plays the moves of one game from its start position.
func replayItem(item worker.WorkItem, name string) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, Start: item.Start, Info: item.Info}

	fail := func(err error, ply int, text string) worker.ProcessResult {
		res.Error = &errors.GameError{
			Err:      err,
			GameNum:  item.Index + 1,
			PlyNum:   ply,
			MoveText: text,
			Source:   name,
			Offset:   item.Start,
		}
		return res
	}

	var g game
	if err := g.reset(item.Info.FEN); err != nil {
		return fail(err, 0, "")
	}

	for _, tok := range item.Moves {
		if tok.Type == parser.ResultToken {
			res.Info.Result = tok.Result
			break
		}
		if _, err := g.play(tok); err != nil {
			res.Plies = len(g.history)
			res.Final, res.ToMove = g.pos, g.toMove
			return fail(err, len(g.history)+1, tok.Text)
		}
	}

	res.Plies = len(g.history)
	res.Final, res.ToMove = g.pos, g.toMove
	return res
}
