package replay

import (
	"context"
	"strings"
	"testing"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
	"github.com/fredrander/chessviewerscreensaver/internal/source"
	"github.com/fredrander/chessviewerscreensaver/internal/testutil"
)

const badGamePGN = `[Event "Bad"]
[White "X"]
[Black "Y"]

1. e4 e5 2. Ke3 Nc6 *
`

func TestVerifyAll(t *testing.T) {
	tests := []struct {
		name      string
		src       source.Source
		games     int
		plies     int
		results   map[chess.Result]int
		failGames []int
	}{
		{
			name:    "two games",
			src:     source.NewMemorySource("two", []byte(testutil.TwoGamesPGN)),
			games:   2,
			plies:   9,
			results: map[chess.Result]int{chess.WhiteWins: 1, chess.ResultUnknown: 1},
		},
		{
			name:    "builtin",
			src:     source.NewBuiltin(),
			games:   1,
			plies:   87,
			results: map[chess.Result]int{chess.WhiteWins: 1},
		},
		{
			name:      "broken game in the middle",
			src:       source.NewMemorySource("mixed", []byte(testutil.FoolsMatePGN+"\n"+badGamePGN+"\n"+testutil.TwoGamesPGN)),
			games:     4,
			plies:     4 + 2 + 9,
			results:   map[chess.Result]int{chess.BlackWins: 1, chess.WhiteWins: 1, chess.ResultUnknown: 1},
			failGames: []int{2},
		},
		{
			name:    "empty",
			src:     source.NewMemorySource("empty", nil),
			results: map[chess.Result]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, workers := range []int{1, 4} {
				report, err := VerifyAll(context.Background(), tt.src, workers)
				testutil.AssertNoError(t, err)

				testutil.AssertEqual(t, report.Workers, workers)
				testutil.AssertEqual(t, report.Games, tt.games, "workers", workers)
				testutil.AssertEqual(t, report.Plies, tt.plies, "workers", workers)
				testutil.AssertEqual(t, report.Results, tt.results, "workers", workers)

				var failed []int
				for _, f := range report.Failures {
					failed = append(failed, f.GameNum)
				}
				testutil.AssertEqual(t, failed, tt.failGames, "workers", workers)
			}
		})
	}
}

func TestVerifyAll_FailureDetail(t *testing.T) {
	data := testutil.FoolsMatePGN + "\n" + badGamePGN
	report, err := VerifyAll(context.Background(), source.NewMemorySource("mixed", []byte(data)), 2)
	testutil.AssertNoError(t, err)

	if len(report.Failures) != 1 {
		t.Fatalf("failures = %v, want one", report.Failures)
	}
	f := report.Failures[0]
	testutil.AssertErrorIs(t, f, errors.ErrIllegalMove)
	testutil.AssertEqual(t, f.GameNum, 2)
	testutil.AssertEqual(t, f.PlyNum, 3)
	testutil.AssertEqual(t, f.MoveText, "Ke3")
	testutil.AssertEqual(t, f.Source, "mixed")
	testutil.AssertEqual(t, f.Offset, int64(strings.Index(data, "[Event \"Bad\"]")))
	testutil.AssertContains(t, f.Error(), "game 2")
}

func TestVerifyAll_NoGames(t *testing.T) {
	_, err := VerifyAll(context.Background(), source.NewMemorySource("text", []byte("no games here\n")), 2)
	testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
}

func TestVerifyAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := VerifyAll(ctx, source.NewBuiltin(), 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
