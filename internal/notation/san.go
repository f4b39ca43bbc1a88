package notation

import (
	"fmt"
	"strings"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/engine"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// SAN markers.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"

	captureMarker   = 'x'
	promoteMarker   = '='
	checkMarker     = '+'
	checkmateMarker = '#'
)

// ToShortNotation renders a coordinate move as SAN, given the position
// before the move. pos is not modified.
func ToShortNotation(lalg string, pos *chess.Position) (string, error) {
	piece, from, to, promoted, err := decodeOnBoard(lalg, pos)
	if err != nil {
		return "", err
	}
	if err := requireKings(pos); err != nil {
		return "", err
	}

	var sb strings.Builder

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if engine.IsCastlingDistance(from, to) {
			if to.File() == 2 {
				sb.WriteString(QueensideCastle)
			} else {
				sb.WriteString(KingsideCastle)
			}
			break
		}
		writePieceMove(&sb, piece, from, to, pos)

	case chess.Pawn:
		if from.File() != to.File() {
			sb.WriteByte(byte(chess.FileBase + from.File()))
			sb.WriteByte(captureMarker)
		}
		sb.WriteString(to.String())
		if promoted != chess.Empty {
			sb.WriteByte(promoteMarker)
			sb.WriteByte(promoted.Letter())
		}

	default:
		writePieceMove(&sb, piece, from, to, pos)
	}

	suffix, err := checkSuffix(pos, piece, from, to, promoted)
	if err != nil {
		return "", err
	}
	if suffix != 0 {
		sb.WriteByte(suffix)
	}

	return sb.String(), nil
}

func writePieceMove(sb *strings.Builder, piece chess.Piece, from, to chess.Square, pos *chess.Position) {
	sb.WriteByte(piece.Letter())
	sb.WriteString(Disambiguation(pos, piece, from, to))
	if pos.Get(to) != chess.Empty {
		sb.WriteByte(captureMarker)
	}
	sb.WriteString(to.String())
}

// checkSuffix plays the move on a copy and returns '#', '+' or 0.
func checkSuffix(pos *chess.Position, piece chess.Piece, from, to chess.Square, promoted chess.Piece) (byte, error) {
	scratch := *pos
	engine.PerformMoveAs(&scratch, piece, from, to, promoted)
	if err := requireKings(&scratch); err != nil {
		return 0, err
	}

	var suffix byte
	for _, king := range []chess.Piece{chess.W(chess.King), chess.B(chess.King)} {
		if !engine.IsInCheck(&scratch, king) {
			continue
		}
		if engine.IsMated(&scratch, king) {
			return checkmateMarker, nil
		}
		suffix = checkMarker
	}
	return suffix, nil
}

// Disambiguation returns the origin file, rank or both needed to tell the
// moving piece apart from other pieces of the same kind and colour that
// could also go to the destination. The choice is made over every pair of
// such pieces: both when some share a file and some share a rank, the rank
// when only files are shared, the file otherwise. It returns "" for kings,
// pawns and unambiguous moves.
func Disambiguation(pos *chess.Position, piece chess.Piece, from, to chess.Square) string {
	switch chess.ExtractPiece(piece) {
	case chess.King, chess.Pawn:
		return ""
	}

	sources := Candidates(pos, piece, to, AnyLine, AnyLine)
	if len(sources) < 2 {
		return ""
	}

	sharedFile, sharedRank := false, false
	for i, a := range sources {
		for _, b := range sources[i+1:] {
			sharedFile = sharedFile || a.File() == b.File()
			sharedRank = sharedRank || a.Rank() == b.Rank()
		}
	}

	switch {
	case sharedFile && sharedRank:
		return from.String()
	case sharedFile:
		return string(byte(chess.RankBase + from.Rank()))
	}
	return string(byte(chess.FileBase + from.File()))
}

// AnyLine leaves a file or rank unrestricted in Candidates.
const AnyLine = -1

// Candidates lists, in board order, the squares holding piece that can
// move to the destination without leaving their own king in check.
// A file or rank other than AnyLine restricts the search.
func Candidates(pos *chess.Position, piece chess.Piece, to chess.Square, file, rank int) []chess.Square {
	capture := chess.IsColour(pos.Get(to), chess.ExtractColour(piece).Opposite())

	var found []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if pos.Get(sq) != piece {
			continue
		}
		if file != AnyLine && sq.File() != file {
			continue
		}
		if rank != AnyLine && sq.Rank() != rank {
			continue
		}
		if !engine.IsPossibleMove(pos, sq, to, piece, capture || engine.IsEnPassantCapture(pos, piece, sq, to)) {
			continue
		}
		if engine.LeavesKingInCheck(pos, piece, sq, to) {
			continue
		}
		found = append(found, sq)
	}
	return found
}

// requireKings guards the check tests, which panic on a missing king.
func requireKings(pos *chess.Position) error {
	for _, king := range []chess.Piece{chess.W(chess.King), chess.B(chess.King)} {
		if pos.FindKing(king) == chess.NoSquare {
			return fmt.Errorf("%v king: %w", chess.ExtractColour(king), errors.ErrNoKing)
		}
	}
	return nil
}
