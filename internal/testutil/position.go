package testutil

import (
	"strings"
	"testing"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// Board builds a position from a diagram of eight ranks, rank 8 first.
// Each rank uses FEN letters for pieces and '.' for empty squares; spaces
// are ignored so diagrams can be aligned:
//
//	testutil.Board(t,
//		"r . . . k . . r",
//		...
//		"R . . . K . . R")
func Board(t testing.TB, ranks ...string) chess.Position {
	t.Helper()

	var pos chess.Position
	if len(ranks) != chess.BoardSize {
		t.Fatalf("board diagram has %d ranks, want %d", len(ranks), chess.BoardSize)
	}

	for i, row := range ranks {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != chess.BoardSize {
			t.Fatalf("rank %d %q has %d squares", chess.BoardSize-i, row, len(row))
		}
		rank := chess.BoardSize - 1 - i
		for file := 0; file < chess.BoardSize; file++ {
			c := row[file]
			if c == '.' {
				continue
			}
			piece := chess.PieceFromFENLetter(c)
			if piece == chess.Empty {
				t.Fatalf("rank %d: bad piece letter %q", rank+1, c)
			}
			pos.Set(chess.NewSquare(file, rank), piece)
		}
	}
	return pos
}

// Sq parses a square name and fails the test on error.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// Sample PGN texts shared by the parser and replay tests.
const (
	// FoolsMatePGN ends in mate after four plies.
	FoolsMatePGN = `[Event "Casual"]
[Site "?"]
[White "Novice"]
[Black "Expert"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1
`

	// AnnotatedPGN exercises comments, NAGs, variations and escapes.
	AnnotatedPGN = `[Event "Annotated"]
[White "A"]
[Black "B"]
[Round "?"]
[Result "1/2-1/2"]

% an escaped line 1. h4 h5
1. e4 {best by test} e5 $1 2. Nf3 (2. f4 exf4 (2... d5) 3. Nf3) Nc6 ; the usual
3. Bb5 a6 1/2-1/2
`

	// TwoGamesPGN holds two short games back to back.
	TwoGamesPGN = `[Event "First"]
[White "W1"]
[Black "B1"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0

[Event "Second"]
[White "W2"]
[Black "B2"]
[Result "*"]

1. d4 d5 *
`
)
