package notation

import (
	"fmt"
	"strings"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// MaxLineLen bounds a rendered principal variation. No further move is
// added once the line is this long.
const MaxLineLen = 128 - (chess.MaxMoveLen + 1) - 1 - 16

// FormatLine renders a space separated list of coordinate moves, as sent
// by an analysis engine, as numbered SAN starting from pos:
//
//	"12. Nf3 Nc6 13. Bb5" or "12... Nc6 13. Bb5"
//
// Rendering stops at the first move that cannot be read or played.
// pos is not modified.
func FormatLine(pv string, pos *chess.Position, toMove chess.Colour, moveNumber int) string {
	scratch := *pos
	var sb strings.Builder

	for _, lalg := range strings.Fields(pv) {
		if sb.Len() >= MaxLineLen {
			break
		}

		san, err := ToShortNotation(lalg, &scratch)
		if err != nil {
			break
		}
		if err := ApplyLongAlgebraic(lalg, &scratch); err != nil {
			break
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if toMove == chess.White {
			fmt.Fprintf(&sb, "%d. ", moveNumber)
		} else if sb.Len() == 0 {
			fmt.Fprintf(&sb, "%d... ", moveNumber)
		}
		sb.WriteString(san)

		if toMove == chess.Black {
			moveNumber++
		}
		toMove = toMove.Opposite()
	}

	return sb.String()
}

// ScoreKind tells how an engine score is measured.
type ScoreKind int

const (
	// CentiPawns is a material evaluation in hundredths of a pawn.
	CentiPawns ScoreKind = iota
	// MateIn counts moves to mate; negative scores favour Black.
	MateIn
)

// FormatScore renders an engine score from White's point of view,
// e.g. "+0.35", "-1.20" or "Black Mates in 2".
func FormatScore(kind ScoreKind, score int) string {
	if kind == MateIn {
		if score < 0 {
			return fmt.Sprintf("Black Mates in %d", -score)
		}
		return fmt.Sprintf("White Mates in %d", score)
	}

	sign := '+'
	if score < 0 {
		sign = '-'
		score = -score
	}
	return fmt.Sprintf("%c%d.%02d", sign, score/100, score%100)
}
