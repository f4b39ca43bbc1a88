package engine

import "github.com/fredrander/chessviewerscreensaver/internal/chess"

// isMoveBlocked steps from one square towards another and reports whether
// any square strictly in between is occupied. Callers must only pass
// straight or diagonal lines; other shapes are never walked.
func isMoveBlocked(pos *chess.Position, from, to chess.Square) bool {
	fileDir := sign(to.File() - from.File())
	rankDir := sign(to.Rank() - from.Rank())

	fileDist := abs(to.File() - from.File())
	rankDist := abs(to.Rank() - from.Rank())
	if fileDist != 0 && rankDist != 0 && fileDist != rankDist {
		return false
	}

	file := from.File() + fileDir
	rank := from.Rank() + rankDir

	for sq := chess.NewSquare(file, rank); sq != to; sq = chess.NewSquare(file, rank) {
		if pos.Get(sq) != chess.Empty {
			return true
		}
		file += fileDir
		rank += rankDir
	}

	return false
}
