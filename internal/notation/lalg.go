// Package notation converts between PGN move text, coordinate move strings
// and board changes.
package notation

import (
	"fmt"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/engine"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// ParseLongAlgebraic splits a coordinate move such as "e2e4" or "a7a8q".
// The promotion letter may be in either case; the returned piece has the
// mover's colour. promoted is Empty for other moves.
func ParseLongAlgebraic(lalg string, mover chess.Colour) (from, to chess.Square, promoted chess.Piece, err error) {
	if len(lalg) < 4 || len(lalg) > chess.MaxLongAlgebraicLen {
		return chess.NoSquare, chess.NoSquare, chess.Empty,
			fmt.Errorf("coordinate move %q: bad length: %w", lalg, errors.ErrParseFailure)
	}

	from, err = chess.ParseSquare(lalg[0:2])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, fmt.Errorf("%v: %w", err, errors.ErrParseFailure)
	}
	to, err = chess.ParseSquare(lalg[2:4])
	if err != nil {
		return chess.NoSquare, chess.NoSquare, chess.Empty, fmt.Errorf("%v: %w", err, errors.ErrParseFailure)
	}

	if len(lalg) == chess.MaxLongAlgebraicLen {
		kind := chess.PieceFromLetter(lalg[4])
		switch kind {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
			promoted = chess.MakeColouredPiece(mover, kind)
		default:
			return chess.NoSquare, chess.NoSquare, chess.Empty,
				fmt.Errorf("coordinate move %q: bad promotion piece: %w", lalg, errors.ErrParseFailure)
		}
	}

	return from, to, promoted, nil
}

// LongAlgebraic formats a coordinate move. The promotion letter, if any,
// is written in lower case.
func LongAlgebraic(from, to chess.Square, promoted chess.Piece) string {
	s := from.String() + to.String()
	if promoted != chess.Empty {
		s += string(promoted.Letter() + 'a' - 'A')
	}
	return s
}

// ApplyLongAlgebraic plays a coordinate move on pos, including en passant
// and castling side effects. The move is not checked for legality beyond
// there being a piece to move.
func ApplyLongAlgebraic(lalg string, pos *chess.Position) error {
	piece, from, to, promoted, err := decodeOnBoard(lalg, pos)
	if err != nil {
		return err
	}
	engine.PerformMoveAs(pos, piece, from, to, promoted)
	return nil
}

// decodeOnBoard parses lalg using the colour of the piece on its origin square.
func decodeOnBoard(lalg string, pos *chess.Position) (piece chess.Piece, from, to chess.Square, promoted chess.Piece, err error) {
	if len(lalg) < 2 {
		return chess.Empty, chess.NoSquare, chess.NoSquare, chess.Empty,
			fmt.Errorf("coordinate move %q: bad length: %w", lalg, errors.ErrParseFailure)
	}
	origin, err := chess.ParseSquare(lalg[0:2])
	if err != nil {
		return chess.Empty, chess.NoSquare, chess.NoSquare, chess.Empty, fmt.Errorf("%v: %w", err, errors.ErrParseFailure)
	}

	piece = pos.Get(origin)
	if piece == chess.Empty {
		return chess.Empty, chess.NoSquare, chess.NoSquare, chess.Empty,
			fmt.Errorf("coordinate move %q: no piece on %v: %w", lalg, origin, errors.ErrIllegalMove)
	}

	from, to, promoted, err = ParseLongAlgebraic(lalg, chess.ExtractColour(piece))
	if err != nil {
		return chess.Empty, chess.NoSquare, chess.NoSquare, chess.Empty, err
	}
	return piece, from, to, promoted, nil
}
