package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// Only success paths can be exercised without a fake *testing.T.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.W(chess.King), chess.W(chess.King), "piece %s", "K")
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")

	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertConditions_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestBoard(t *testing.T) {
	pos := Board(t,
		"r . . . k . . r",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . P . . .",
		". . . . . . . .",
		". . . . . . . .",
		"R . . . K . . R",
	)

	AssertEqual(t, pos.Get(Sq(t, "a8")), chess.B(chess.Rook))
	AssertEqual(t, pos.Get(Sq(t, "e8")), chess.B(chess.King))
	AssertEqual(t, pos.Get(Sq(t, "e4")), chess.W(chess.Pawn))
	AssertEqual(t, pos.Get(Sq(t, "h1")), chess.W(chess.Rook))
	AssertEqual(t, pos.Get(Sq(t, "d4")), chess.Empty)
	AssertEqual(t, pos.Count(chess.W(chess.Rook)), 2)
}
