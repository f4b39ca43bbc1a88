// Package replay plays the games of a PGN source one move at a time.
//
// A Session owns everything the replay of a source needs: the tokenizer,
// the metadata of the current game, the live position, the side to move
// and the move number. Callers start a game with NextGame or
// NextRandomGame and then call NextMove until it returns io.EOF.
package replay

import (
	"fmt"
	"io"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
	"github.com/fredrander/chessviewerscreensaver/internal/parser"
	"github.com/fredrander/chessviewerscreensaver/internal/source"
)

// Session replays the games of one source.
type Session struct {
	src source.Source
	cfg *config.Config
	tok *parser.Tokenizer

	info   chess.GameInfo
	game   game
	inGame bool
}

// NewSession creates a session reading src. Unless cfg disables it, the
// start of every game of a PGN file is saved as the resume point, and in
// sequential mode replay continues from the saved point.
// If cfg is nil, a default config is created.
func NewSession(src source.Source, cfg *config.Config, opts ...parser.Option) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	resume := cfg.Resume.Enabled() && src.Name() != source.BuiltinName
	if resume {
		store := parser.NewResumeStore(cfg.Resume.StateFile)
		opts = append([]parser.Option{parser.WithResumeStore(store)}, opts...)
	}

	s := &Session{
		src: src,
		cfg: cfg,
		tok: parser.NewTokenizer(src, cfg, opts...),
	}
	s.game.reset("")

	if resume && !cfg.Input.Random {
		s.tok.Resume()
	}
	return s
}

// NextGame starts the game following the current one.
func (s *Session) NextGame() error {
	s.tok.NextGame()
	return s.beginGame()
}

// NextRandomGame starts a game at a random place in the source.
func (s *Session) NextRandomGame() error {
	if err := s.tok.NextRandomGame(); err != nil {
		s.inGame = false
		return err
	}
	return s.beginGame()
}

// beginGame reads the tags of the new game and sets up its start position.
func (s *Session) beginGame() error {
	s.inGame = false
	s.info.Reset()

	if err := s.tok.ParseTags(s.info.Update); err != nil {
		return err
	}
	if err := s.game.reset(s.info.FEN); err != nil {
		return s.gameError(err, "")
	}
	s.inGame = true

	s.cfg.Logf(config.GameLevel, "Game %d: %s\n", s.tok.Games(), s.info.Title())
	if summary := s.info.Summary(); summary != "" {
		s.cfg.Logf(config.GameLevel, "  %s\n", summary)
	}
	if s.info.FEN != "" {
		s.cfg.Logf(config.GameLevel, "  Starting from %s\n", s.info.FEN)
	}
	return nil
}

// NextMove plays the next move of the current game and returns it. At the
// end of the movetext it records the result in Info and returns io.EOF.
// A move that cannot be resolved ends the game with a *errors.GameError;
// the position is left as it was before that move.
func (s *Session) NextMove() (chess.Move, error) {
	if !s.inGame {
		return nil, io.EOF
	}

	tok, err := s.tok.NextMove()
	if err != nil {
		s.inGame = false
		return nil, err
	}

	if tok.Type == parser.ResultToken {
		s.inGame = false
		s.info.Result = tok.Result
		s.cfg.Logf(config.GameLevel, "%s (%s) after %d plies\n",
			tok.Result.Description(), tok.Result, len(s.game.history))
		return nil, io.EOF
	}

	m, err := s.game.play(tok)
	if err != nil {
		s.inGame = false
		return nil, s.gameError(err, tok.Text)
	}

	s.cfg.Logf(config.MoveLevel, "%s %s\n", moveLabel(m, s.game.toMove), m.Base().LongAlgebraic)
	return m, nil
}

// moveLabel formats a move as it appears in a game score, e.g. "12... Nc6".
// next is the side to move after m.
func moveLabel(m chess.Move, next chess.Colour) string {
	b := m.Base()
	if next == chess.White {
		return fmt.Sprintf("%d... %s", b.Number, b.Text)
	}
	return fmt.Sprintf("%d. %s", b.Number, b.Text)
}

func (s *Session) gameError(err error, moveText string) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  s.tok.Games(),
		PlyNum:   len(s.game.history) + 1,
		MoveText: moveText,
		Source:   s.src.Name(),
		Offset:   s.tok.GameStart(),
	}
}

// InGame reports whether the current game has moves left to play.
func (s *Session) InGame() bool { return s.inGame }

// Position returns a copy of the current position.
func (s *Session) Position() chess.Position { return s.game.pos }

// Info returns the metadata of the current game.
func (s *Session) Info() chess.GameInfo { return s.info }

// ToMove returns the side to play the next move.
func (s *Session) ToMove() chess.Colour { return s.game.toMove }

// MoveNumber is the number of the last move played, or of the first move
// if none has been played yet.
func (s *Session) MoveNumber() int { return s.game.number }

// StartFEN is the start position of the current game.
func (s *Session) StartFEN() string { return s.game.startFEN }

// FEN describes the current position.
func (s *Session) FEN() string { return s.game.fen() }

// MoveHistory returns the moves played so far in the current game.
func (s *Session) MoveHistory() []chess.Move {
	out := make([]chess.Move, len(s.game.history))
	copy(out, s.game.history)
	return out
}

// Games counts the games started.
func (s *Session) Games() int { return s.tok.Games() }

// GameStart is the source offset of the current game.
func (s *Session) GameStart() int64 { return s.tok.GameStart() }

// Source returns the source being replayed.
func (s *Session) Source() source.Source { return s.src }

// Close closes the source.
func (s *Session) Close() error {
	return s.src.Close()
}
