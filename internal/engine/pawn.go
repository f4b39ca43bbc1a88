package engine

import "github.com/fredrander/chessviewerscreensaver/internal/chess"

// Rank indices a pawn must stand on to capture en passant.
const (
	whiteEnPassantRank = 4
	blackEnPassantRank = 3
)

// IsEnPassantCapture reports whether a pawn moving diagonally onto an empty
// square takes an enemy pawn standing directly behind the destination.
// Whether that pawn just made a double step is not tracked.
func IsEnPassantCapture(pos *chess.Position, piece chess.Piece, from, to chess.Square) bool {
	if chess.ExtractPiece(piece) != chess.Pawn {
		return false
	}
	if abs(to.Rank()-from.Rank()) != 1 || abs(to.File()-from.File()) != 1 {
		return false
	}
	if pos.Get(to) != chess.Empty {
		return false
	}

	if chess.ExtractColour(piece) == chess.White {
		return from.Rank() == whiteEnPassantRank && pos.Get(to-chess.BoardSize) == chess.B(chess.Pawn)
	}
	return from.Rank() == blackEnPassantRank && pos.Get(to+chess.BoardSize) == chess.W(chess.Pawn)
}

// EnPassantVictim returns the square of the pawn taken by an en passant
// capture onto to.
func EnPassantVictim(piece chess.Piece, to chess.Square) chess.Square {
	if chess.ExtractColour(piece) == chess.White {
		return to - chess.BoardSize
	}
	return to + chess.BoardSize
}
