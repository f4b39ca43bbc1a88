package engine

import (
	"testing"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/testutil"
)

func TestIsPossibleMove_PawnDoubleStep(t *testing.T) {
	for file := 0; file < chess.BoardSize; file++ {
		tests := []struct {
			colour  chess.Colour
			from    chess.Square
			between chess.Square
			to      chess.Square
		}{
			{chess.White, chess.NewSquare(file, 1), chess.NewSquare(file, 2), chess.NewSquare(file, 3)},
			{chess.Black, chess.NewSquare(file, 6), chess.NewSquare(file, 5), chess.NewSquare(file, 4)},
		}

		for _, tt := range tests {
			pawn := chess.MakeColouredPiece(tt.colour, chess.Pawn)
			pos := NewInitialPosition()

			if !IsPossibleMove(&pos, tt.from, tt.to, pawn, false) {
				t.Errorf("%v %v-%v should be legal with %v empty", tt.colour, tt.from, tt.to, tt.between)
			}

			pos.Set(tt.between, chess.W(chess.Knight))
			if IsPossibleMove(&pos, tt.from, tt.to, pawn, false) {
				t.Errorf("%v %v-%v should be blocked by %v", tt.colour, tt.from, tt.to, tt.between)
			}
		}
	}
}

func TestIsPossibleMove_Pawn(t *testing.T) {
	pos := testutil.Board(t,
		". . . . k . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . P . . . .",
		". . . . . . . .",
		". . . . K . . .",
	)
	sq := func(name string) chess.Square { return testutil.Sq(t, name) }

	tests := []struct {
		name    string
		piece   chess.Piece
		from    string
		to      string
		capture bool
		want    bool
	}{
		{"single step", chess.W(chess.Pawn), "d3", "d4", false, true},
		{"double step off start rank", chess.W(chess.Pawn), "d3", "d5", false, false},
		{"backwards", chess.W(chess.Pawn), "d3", "d2", false, false},
		{"sideways", chess.W(chess.Pawn), "d3", "e3", false, false},
		{"capture diagonal", chess.W(chess.Pawn), "d3", "e4", true, true},
		{"capture straight", chess.W(chess.Pawn), "d3", "d4", true, false},
		{"diagonal without capture", chess.W(chess.Pawn), "d3", "c4", false, false},
		{"black capture down", chess.B(chess.Pawn), "d5", "c4", true, true},
		{"black capture up", chess.B(chess.Pawn), "d5", "c6", true, false},
		{"black double step", chess.B(chess.Pawn), "c7", "c5", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPossibleMove(&pos, sq(tt.from), sq(tt.to), tt.piece, tt.capture)
			if got != tt.want {
				t.Errorf("IsPossibleMove(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsPossibleMove_SliderBlocking(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		to    string
	}{
		{"rook file", chess.W(chess.Rook), "a1", "a8"},
		{"rook rank", chess.B(chess.Rook), "h5", "a5"},
		{"bishop diagonal", chess.W(chess.Bishop), "c1", "h6"},
		{"bishop anti-diagonal", chess.B(chess.Bishop), "h8", "b2"},
		{"queen file", chess.W(chess.Queen), "d1", "d7"},
		{"queen diagonal", chess.W(chess.Queen), "b1", "g6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := testutil.Sq(t, tt.from)
			to := testutil.Sq(t, tt.to)

			var pos chess.Position
			pos.Set(from, tt.piece)
			if !IsPossibleMove(&pos, from, to, tt.piece, false) {
				t.Fatalf("%s-%s should be legal on an empty board", tt.from, tt.to)
			}

			fileDir := sign(to.File() - from.File())
			rankDir := sign(to.Rank() - from.Rank())
			for sq := chess.NewSquare(from.File()+fileDir, from.Rank()+rankDir); sq != to; sq = chess.NewSquare(sq.File()+fileDir, sq.Rank()+rankDir) {
				blocked := pos
				blocked.Set(sq, chess.B(chess.Pawn))
				if IsPossibleMove(&blocked, from, to, tt.piece, false) {
					t.Errorf("%s-%s should be blocked by a piece on %v", tt.from, tt.to, sq)
				}
			}
		})
	}
}

func TestIsPossibleMove_KnightsJump(t *testing.T) {
	pos := NewInitialPosition()
	for _, tt := range []struct{ from, to string }{
		{"g1", "f3"}, {"g1", "h3"}, {"b1", "a3"}, {"b1", "c3"},
	} {
		if !IsPossibleMove(&pos, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to), chess.W(chess.Knight), false) {
			t.Errorf("knight %s-%s should jump over the pawns", tt.from, tt.to)
		}
	}
	if IsPossibleMove(&pos, testutil.Sq(t, "g1"), testutil.Sq(t, "g3"), chess.W(chess.Knight), false) {
		t.Error("knight g1-g3 is not a knight move")
	}
}

func TestIsPossibleMove_Shapes(t *testing.T) {
	var empty chess.Position
	tests := []struct {
		name  string
		piece chess.Piece
		from  string
		to    string
		want  bool
	}{
		{"rook diagonal", chess.W(chess.Rook), "a1", "b2", false},
		{"bishop straight", chess.W(chess.Bishop), "c1", "c4", false},
		{"queen knight shape", chess.W(chess.Queen), "d1", "e3", false},
		{"king one step", chess.W(chess.King), "e4", "f5", true},
		{"king two steps", chess.W(chess.King), "e4", "g4", false},
		{"same square", chess.W(chess.Queen), "d4", "d4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPossibleMove(&empty, testutil.Sq(t, tt.from), testutil.Sq(t, tt.to), tt.piece, false)
			if got != tt.want {
				t.Errorf("IsPossibleMove(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsPossibleMove_CastlingShape(t *testing.T) {
	pos := testutil.Board(t,
		"r . . . k . . r",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"R . . . K B . R",
	)
	sq := func(name string) chess.Square { return testutil.Sq(t, name) }

	tests := []struct {
		name    string
		piece   chess.Piece
		from    string
		to      string
		capture bool
		want    bool
	}{
		{"white queenside", chess.W(chess.King), "e1", "c1", false, true},
		{"white kingside blocked", chess.W(chess.King), "e1", "g1", false, false},
		{"black kingside", chess.B(chess.King), "e8", "g8", false, true},
		{"black queenside", chess.B(chess.King), "e8", "c8", false, true},
		{"castle shape as capture", chess.B(chess.King), "e8", "g8", true, false},
		{"white shape for black king", chess.B(chess.King), "e1", "g1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPossibleMove(&pos, sq(tt.from), sq(tt.to), tt.piece, tt.capture)
			if got != tt.want {
				t.Errorf("IsPossibleMove(%s-%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_FoolsMate(t *testing.T) {
	pos, toMove, err := PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("PositionFromFEN error: %v", err)
	}
	if toMove != chess.White {
		t.Fatalf("toMove = %v, want White", toMove)
	}

	if !IsInCheck(&pos, chess.W(chess.King)) {
		t.Error("white king should be in check")
	}
	if !IsMated(&pos, chess.W(chess.King)) {
		t.Error("white king should be mated")
	}
	if IsInCheck(&pos, chess.B(chess.King)) {
		t.Error("black king should not be in check")
	}
}

func TestIsMated_DoesNotModifyPosition(t *testing.T) {
	pos, _, err := PositionFromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("PositionFromFEN error: %v", err)
	}
	before := pos

	IsMated(&pos, chess.W(chess.King))
	testutil.AssertEqual(t, pos, before)
}

func TestIsMated_CheckWithEscape(t *testing.T) {
	// Rook check along the back rank, king can step up.
	pos := testutil.Board(t,
		". . . . k . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		"r . . . K . . .",
	)
	if !IsInCheck(&pos, chess.W(chess.King)) {
		t.Fatal("white king should be in check")
	}
	if IsMated(&pos, chess.W(chess.King)) {
		t.Error("white king can escape to the second rank")
	}
}

func TestIsMated_CaptureTheChecker(t *testing.T) {
	pos := testutil.Board(t,
		". . . . . . k .",
		". R . . . p p p",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . P P P",
		". r . . . . K .",
	)
	if !IsInCheck(&pos, chess.W(chess.King)) {
		t.Fatal("white king should be in check")
	}
	if IsMated(&pos, chess.W(chess.King)) {
		t.Error("Rxb1 removes the checking rook")
	}
}

func TestIsMated_InitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	if IsMated(&pos, chess.W(chess.King)) || IsMated(&pos, chess.B(chess.King)) {
		t.Error("initial position is not mate")
	}
}

func TestIsInCheck_MissingKingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("IsInCheck without a king should panic")
		}
	}()

	var pos chess.Position
	pos.Set(testutil.Sq(t, "e8"), chess.B(chess.King))
	IsInCheck(&pos, chess.W(chess.King))
}

func TestLeavesKingInCheck_Pin(t *testing.T) {
	pos := testutil.Board(t,
		". . . . k . . .",
		". . . . r . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . . . . .",
		". . . . N . . .",
		". . . . K . . .",
	)

	if !LeavesKingInCheck(&pos, chess.W(chess.Knight), testutil.Sq(t, "e2"), testutil.Sq(t, "f4")) {
		t.Error("moving the pinned knight exposes the king")
	}
	if LeavesKingInCheck(&pos, chess.W(chess.King), testutil.Sq(t, "e1"), testutil.Sq(t, "d1")) {
		t.Error("Kd1 leaves the king safe")
	}
}
