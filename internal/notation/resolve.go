package notation

import (
	"fmt"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/engine"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// sanMarkers holds the positions found by a single scan over a SAN token.
// Indices are -1 when the marker is absent.
type sanMarkers struct {
	castleCount int
	capture     int
	promote     int
	destination int
	// last index of the piece letter / disambiguation window
	disambiguationEnd int
}

// scanMarkers walks a token such as "Qa6xb7#" once and records where the
// destination and the optional markers are.
func scanMarkers(token string) sanMarkers {
	m := sanMarkers{
		capture:           -1,
		promote:           -1,
		destination:       len(token) - 2,
		disambiguationEnd: len(token) - 3,
	}

	for i := 0; i < len(token); i++ {
		switch token[i] {
		case 'O', '0':
			m.castleCount++
		case captureMarker:
			m.capture = i
			m.destination = i + 1
			m.disambiguationEnd = i - 1
		case promoteMarker:
			m.promote = i
			m.destination = i - 2
			if m.capture < 0 {
				m.disambiguationEnd = i - 3
			}
		case checkMarker, checkmateMarker:
			if m.capture < 0 && m.promote < 0 {
				m.destination = i - 2
				m.disambiguationEnd = i - 3
			}
		}
	}
	return m
}

// ResolveSAN finds the move described by a SAN token for the side to move,
// plays it on pos and returns it. On error pos is left unchanged; the
// error wraps ErrParseFailure for unreadable tokens and ErrIllegalMove when
// no piece can make the move.
//
// The caller owns the side to move and must flip it after a successful call.
func ResolveSAN(token string, pos *chess.Position, toMove chess.Colour, moveNumber int) (chess.Move, error) {
	if len(token) < 2 {
		return nil, parseFailure(token, "move text", "too short")
	}

	king := chess.MakeColouredPiece(toMove, chess.King)
	if pos.FindKing(king) == chess.NoSquare {
		return nil, fmt.Errorf("move %q: %v king: %w", token, toMove, errors.ErrNoKing)
	}

	m := scanMarkers(token)
	if m.castleCount > 1 {
		return resolveCastle(token, pos, toMove, moveNumber, m.castleCount > 2)
	}

	piece := chess.MakeColouredPiece(toMove, chess.Pawn)
	window := 0
	if c := token[0]; c >= 'A' && c <= 'Z' {
		kind := chess.PieceFromLetter(c)
		if kind == chess.Empty {
			return nil, parseFailure(token, "piece letter", string(c))
		}
		piece = chess.MakeColouredPiece(toMove, kind)
		window = 1
	}

	if m.destination < 0 || m.destination+2 > len(token) {
		return nil, parseFailure(token, "destination square", "end of move")
	}
	to, err := chess.ParseSquare(token[m.destination : m.destination+2])
	if err != nil {
		return nil, parseFailure(token, "destination square", fmt.Sprintf("%q", token[m.destination:m.destination+2]))
	}

	promoted := chess.Empty
	if m.promote >= 0 {
		if m.promote+1 >= len(token) {
			return nil, parseFailure(token, "promotion piece", "end of move")
		}
		kind := chess.PieceFromLetter(token[m.promote+1])
		switch kind {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return nil, parseFailure(token, "promotion piece", string(token[m.promote+1]))
		}
		if chess.ExtractPiece(piece) != chess.Pawn {
			return nil, parseFailure(token, "pawn for promotion", piece.String())
		}
		promoted = chess.MakeColouredPiece(toMove, kind)
	}

	file, rank := AnyLine, AnyLine
	for i := window; i >= 0 && i <= m.disambiguationEnd; i++ {
		switch c := token[i]; {
		case c >= chess.RankBase && c < chess.RankBase+chess.BoardSize:
			rank = int(c - chess.RankBase)
		case c >= chess.FileBase && c < chess.FileBase+chess.BoardSize:
			file = int(c - chess.FileBase)
		default:
			return nil, parseFailure(token, "file or rank", string(c))
		}
	}

	target := pos.Get(to)
	if chess.IsColour(target, toMove) {
		return nil, fmt.Errorf("move %q: %v occupied by own %v: %w", token, to, target, errors.ErrIllegalMove)
	}

	candidates := Candidates(pos, piece, to, file, rank)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("move %q: no %v %v can reach %v: %w", token, toMove, chess.ExtractPiece(piece), to, errors.ErrIllegalMove)
	}
	from := candidates[0]

	base := chess.MoveBase{
		Piece:         piece,
		From:          from,
		To:            to,
		Number:        moveNumber,
		Text:          chess.TruncateMoveText(token),
		LongAlgebraic: LongAlgebraic(from, to, promoted),
	}

	var move chess.Move
	switch {
	case promoted != chess.Empty:
		move = &chess.PromoteMove{MoveBase: base, Promoted: promoted, Captured: target}
	case engine.IsEnPassantCapture(pos, piece, from, to):
		move = &chess.EnPassantMove{MoveBase: base, CapturedSquare: engine.EnPassantVictim(piece, to)}
	case m.capture >= 0 || target != chess.Empty:
		move = &chess.CaptureMove{MoveBase: base, Captured: target}
	default:
		if rookFrom, rookTo, ok := engine.IsCastling(piece, from, to); ok && engine.IsCastlingDistance(from, to) {
			move = &chess.CastleMove{
				MoveBase: base,
				Rook:     chess.MakeColouredPiece(toMove, chess.Rook),
				RookFrom: rookFrom,
				RookTo:   rookTo,
			}
		} else {
			move = &chess.NormalMove{MoveBase: base}
		}
	}

	engine.PerformMoveAs(pos, piece, from, to, promoted)
	return move, nil
}

// resolveCastle builds a castle for the side to move. The king and rook
// must stand on their home squares.
func resolveCastle(token string, pos *chess.Position, toMove chess.Colour, moveNumber int, queenside bool) (chess.Move, error) {
	king := chess.MakeColouredPiece(toMove, chess.King)
	rook := chess.MakeColouredPiece(toMove, chess.Rook)
	kingFrom, kingTo, rookFrom, rookTo := engine.CastleSquares(toMove, queenside)

	if pos.Get(kingFrom) != king || pos.Get(rookFrom) != rook {
		return nil, fmt.Errorf("move %q: king or rook not on home square: %w", token, errors.ErrIllegalMove)
	}
	if !engine.IsPossibleMove(pos, kingFrom, kingTo, king, false) || isRookPathBlocked(pos, rookFrom, kingFrom) {
		return nil, fmt.Errorf("move %q: castling path blocked: %w", token, errors.ErrIllegalMove)
	}

	move := &chess.CastleMove{
		MoveBase: chess.MoveBase{
			Piece:         king,
			From:          kingFrom,
			To:            kingTo,
			Number:        moveNumber,
			Text:          chess.TruncateMoveText(token),
			LongAlgebraic: LongAlgebraic(kingFrom, kingTo, chess.Empty),
		},
		Rook:     rook,
		RookFrom: rookFrom,
		RookTo:   rookTo,
	}

	engine.PerformMoveAs(pos, king, kingFrom, kingTo, chess.Empty)
	return move, nil
}

// isRookPathBlocked reports whether a square between rook and king is occupied.
func isRookPathBlocked(pos *chess.Position, rookFrom, kingFrom chess.Square) bool {
	step := chess.Square(1)
	if rookFrom > kingFrom {
		step = -1
	}
	for sq := rookFrom + step; sq != kingFrom; sq += step {
		if pos.Get(sq) != chess.Empty {
			return true
		}
	}
	return false
}

func parseFailure(token, expected, got string) error {
	return &errors.ParseError{
		Err:      fmt.Errorf("move %q: %w", token, errors.ErrParseFailure),
		Offset:   -1,
		Expected: expected,
		Got:      got,
	}
}
