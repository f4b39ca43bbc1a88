package engine

import (
	"fmt"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// IsInCheck returns true if any enemy piece could capture the given
// coloured king. Only shape and blocking are tested, so a pinned attacker
// still gives check.
//
// A position without that king is a caller bug and panics.
func IsInCheck(pos *chess.Position, king chess.Piece) bool {
	target := pos.FindKing(king)
	if target == chess.NoSquare {
		panic(fmt.Sprintf("engine: no %v king on board\n%s", chess.ExtractColour(king), pos.String()))
	}

	enemy := chess.ExtractColour(king).Opposite()
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Get(sq)
		if chess.IsColour(piece, enemy) && IsPossibleMove(pos, sq, target, piece, true) {
			return true
		}
	}
	return false
}

// IsMated returns true if no move of the king's side leaves the king out
// of check. Castling is never tried. Candidate moves are played on a copy,
// pos itself is not modified.
func IsMated(pos *chess.Position, king chess.Piece) bool {
	colour := chess.ExtractColour(king)

	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := pos.Get(from)
		if !chess.IsColour(piece, colour) {
			continue
		}

		for to := chess.Square(0); to < chess.NumSquares; to++ {
			target := pos.Get(to)
			if chess.IsColour(target, colour) {
				continue
			}
			capture := target != chess.Empty

			if !IsPossibleMove(pos, from, to, piece, capture) {
				continue
			}
			if _, _, castle := IsCastling(piece, from, to); castle {
				continue
			}

			scratch := *pos
			PerformMove(&scratch, from, to)
			if !IsInCheck(&scratch, king) {
				return false
			}
		}
	}

	return true
}

// LeavesKingInCheck plays piece from one square to another on a copy and
// reports whether the mover's own king is then attacked.
func LeavesKingInCheck(pos *chess.Position, piece chess.Piece, from, to chess.Square) bool {
	scratch := *pos
	PerformMoveAs(&scratch, piece, from, to, chess.Empty)
	king := chess.MakeColouredPiece(chess.ExtractColour(piece), chess.King)
	return IsInCheck(&scratch, king)
}
