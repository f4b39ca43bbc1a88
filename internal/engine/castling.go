package engine

import "github.com/fredrander/chessviewerscreensaver/internal/chess"

const (
	kingFile          = 4
	queensideKingFile = 2
	kingsideKingFile  = 6
)

// IsCastling reports whether a king move from the e-file to the c- or
// g-file is a castle, and returns where the matching rook moves.
// Kingside: h-file to f-file. Queenside: a-file to d-file.
func IsCastling(piece chess.Piece, from, to chess.Square) (rookFrom, rookTo chess.Square, ok bool) {
	if chess.ExtractPiece(piece) != chess.King {
		return chess.NoSquare, chess.NoSquare, false
	}
	if from.File() != kingFile {
		return chess.NoSquare, chess.NoSquare, false
	}

	switch to.File() {
	case kingsideKingFile:
		return to + 1, to - 1, true
	case queensideKingFile:
		return to - 2, to + 1, true
	}
	return chess.NoSquare, chess.NoSquare, false
}

// IsCastlingDistance reports whether a king going from one square to the
// other travels two files, the only way a king move can be a castle.
func IsCastlingDistance(from, to chess.Square) bool {
	return abs(to.File()-from.File()) == 2
}

// CastleSquares returns the king and rook squares of a castle for the given
// colour, independent of the board contents.
func CastleSquares(colour chess.Colour, queenside bool) (kingFrom, kingTo, rookFrom, rookTo chess.Square) {
	kingFrom = whiteKingHome
	kingTo = whiteKingsideTo
	if queenside {
		kingTo = whiteQueensideTo
	}
	if colour == chess.Black {
		kingFrom += blackKingHome - whiteKingHome
		kingTo += blackKingHome - whiteKingHome
	}
	rookFrom, rookTo, _ = IsCastling(chess.MakeColouredPiece(colour, chess.King), kingFrom, kingTo)
	return kingFrom, kingTo, rookFrom, rookTo
}
