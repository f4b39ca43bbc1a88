// Package engine provides chess move validation and board manipulation.
//
// All predicates work on a bare 64-square Position; there is no castling
// rights or en passant bookkeeping. Legality is only checked far enough to
// resolve move text and to annotate check and mate.
package engine

import "github.com/fredrander/chessviewerscreensaver/internal/chess"

// Castling squares of the kings.
const (
	whiteKingHome    chess.Square = 4
	whiteQueensideTo chess.Square = 2
	whiteKingsideTo  chess.Square = 6
	blackKingHome    chess.Square = 60
	blackQueensideTo chess.Square = 58
	blackKingsideTo  chess.Square = 62
)

// Rank indices from which a pawn may advance two squares.
const (
	pawnStartRank      = 1
	blackPawnStartRank = 6
)

// IsPossibleMove reports whether piece can move from one square to another
// by shape alone. capture tells whether the destination holds an enemy
// piece. Every piece except a knight also needs a clear path.
// Check safety is not considered.
func IsPossibleMove(pos *chess.Position, from, to chess.Square, piece chess.Piece, capture bool) bool {
	if from == to || !from.Valid() || !to.Valid() {
		return false
	}

	fileDist := abs(to.File() - from.File())
	rankDist := abs(to.Rank() - from.Rank())
	colour := chess.ExtractColour(piece)

	ok := false
	switch chess.ExtractPiece(piece) {
	case chess.King:
		ok = fileDist < 2 && rankDist < 2
		if !ok && !capture {
			ok = isCastlingShape(colour, from, to)
		}

	case chess.Queen:
		ok = isStraight(from, to) || fileDist == rankDist

	case chess.Rook:
		ok = isStraight(from, to)

	case chess.Bishop:
		ok = fileDist == rankDist

	case chess.Knight:
		return (fileDist == 2 && rankDist == 1) || (fileDist == 1 && rankDist == 2)

	case chess.Pawn:
		ok = canPawnMove(colour, from, to, fileDist, rankDist, capture)
	}

	return ok && !isMoveBlocked(pos, from, to)
}

func canPawnMove(colour chess.Colour, from, to chess.Square, fileDist, rankDist int, capture bool) bool {
	startRank := pawnStartRank
	forward := from < to
	if colour == chess.Black {
		startRank = blackPawnStartRank
		forward = from > to
	}
	if !forward {
		return false
	}

	if capture {
		return fileDist == 1 && rankDist == 1
	}
	return fileDist == 0 && (rankDist == 1 || (rankDist == 2 && from.Rank() == startRank))
}

func isCastlingShape(colour chess.Colour, from, to chess.Square) bool {
	if colour == chess.White {
		return from == whiteKingHome && (to == whiteQueensideTo || to == whiteKingsideTo)
	}
	return from == blackKingHome && (to == blackQueensideTo || to == blackKingsideTo)
}

func isStraight(from, to chess.Square) bool {
	return from.File() == to.File() || from.Rank() == to.Rank()
}
