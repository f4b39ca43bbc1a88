package engine

import (
	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// PerformMove moves whatever stands on from to to, removing an en passant
// victim and relocating the rook of a castle. The move is not validated.
func PerformMove(pos *chess.Position, from, to chess.Square) {
	PerformMoveAs(pos, pos.Get(from), from, to, chess.Empty)
}

// PerformMoveAs is PerformMove with the moving piece given explicitly.
// If promoted is not Empty it is placed on to instead of piece.
func PerformMoveAs(pos *chess.Position, piece chess.Piece, from, to chess.Square, promoted chess.Piece) {
	if IsEnPassantCapture(pos, piece, from, to) {
		pos.Set(EnPassantVictim(piece, to), chess.Empty)
	}

	if rookFrom, rookTo, ok := IsCastling(piece, from, to); ok {
		pos.Set(rookTo, pos.Get(rookFrom))
		pos.Set(rookFrom, chess.Empty)
	}

	pos.Set(from, chess.Empty)
	if promoted != chess.Empty {
		pos.Set(to, promoted)
	} else {
		pos.Set(to, piece)
	}
}
