package replay

import (
	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/engine"
	"github.com/fredrander/chessviewerscreensaver/internal/notation"
	"github.com/fredrander/chessviewerscreensaver/internal/parser"
)

// game is the live state of one game being replayed.
type game struct {
	pos      chess.Position
	toMove   chess.Colour
	number   int
	startFEN string
	history  []chess.Move
}

// reset sets up the start position, from fen if it is not empty.
// On error the game is left at the standard start position.
func (g *game) reset(fen string) error {
	g.pos = engine.NewInitialPosition()
	g.toMove = chess.White
	g.number = 1
	g.startFEN = engine.InitialFEN
	g.history = g.history[:0]

	if fen == "" {
		return nil
	}
	pos, toMove, err := engine.PositionFromFEN(fen)
	if err != nil {
		return err
	}
	g.pos, g.toMove, g.startFEN = pos, toMove, fen
	return nil
}

// play resolves a move token for the side to move and plays it. On
// error nothing changes.
func (g *game) play(tok parser.Token) (chess.Move, error) {
	number := g.moveNumber(tok.Number)
	m, err := notation.ResolveSAN(tok.Text, &g.pos, g.toMove, number)
	if err != nil {
		return nil, err
	}
	g.number = number
	g.history = append(g.history, m)
	g.toMove = g.toMove.Opposite()
	return m, nil
}

// moveNumber takes the number written before the move if there is one.
// Otherwise White's move follows on from Black's previous move and
// Black keeps the number of White's.
func (g *game) moveNumber(written int) int {
	if written != parser.NoMoveNumber {
		return written
	}
	if g.toMove == chess.White && len(g.history) > 0 {
		return g.number + 1
	}
	return g.number
}

// fullMoveNumber is the FEN move counter of the position after the last
// move played.
func (g *game) fullMoveNumber() int {
	if len(g.history) > 0 && g.toMove == chess.White {
		return g.number + 1
	}
	return g.number
}

func (g *game) fen() string {
	return engine.PositionToFEN(&g.pos, g.toMove, g.fullMoveNumber())
}
