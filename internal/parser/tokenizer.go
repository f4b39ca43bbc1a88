package parser

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/fredrander/chessviewerscreensaver/internal/config"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// Input is the byte stream a Tokenizer reads. Reads wrap around at the
// end, so the stream never runs dry while it holds any data.
type Input interface {
	io.ByteReader
	Offset() int64
	Seek(offset int64) error
	Size() int64
}

type phase int

const (
	phaseTags phase = iota
	phaseMoves
	phaseDone
)

// Tokenizer turns PGN text into a sequence of tokens per game: tag pairs,
// then moves, then one result. After the result Next returns io.EOF until
// NextGame or NextRandomGame starts the next game.
type Tokenizer struct {
	in     Input
	cfg    *config.Config
	resume *ResumeStore
	rng    *rand.Rand

	phase phase
	tags  tagState
	moves moveState
	depth int

	tag   []byte
	value []byte
	move  []byte

	// one byte of pushback for a character that ended a move
	pending          bool
	pendingByte      byte
	pendingLineStart bool

	lineStart    bool
	afterNewline bool

	// bytes read since the current call began, bounded by limit
	scanned int64
	limit   int64

	gameStart   int64
	headerStart int64
	games       int
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithResumeStore saves the start of every game to s.
func WithResumeStore(s *ResumeStore) Option {
	return func(t *Tokenizer) {
		t.resume = s
	}
}

// WithRand sets the random source for NextRandomGame.
func WithRand(r *rand.Rand) Option {
	return func(t *Tokenizer) {
		t.rng = r
	}
}

// NewTokenizer creates a tokenizer positioned at the current offset of in.
// If cfg is nil, a default config is created.
func NewTokenizer(in Input, cfg *config.Config, opts ...Option) *Tokenizer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	t := &Tokenizer{
		in:           in,
		cfg:          cfg,
		tag:          make([]byte, 0, TagMaxLen),
		value:        make([]byte, 0, ValueMaxLen),
		move:         make([]byte, 0, 8),
		afterNewline: true,
		gameStart:    in.Offset(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		seed := cfg.Input.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		t.rng = rand.New(rand.NewSource(seed))
	}
	return t
}

// Resume seeks to the game start stored by the resume store, if any.
// A missing or unusable marker is logged and leaves the position as is.
func (t *Tokenizer) Resume() (int64, bool) {
	if t.resume == nil {
		return 0, false
	}
	offset, err := t.resume.Load()
	if err != nil {
		t.cfg.Logf(config.GameLevel, "Not resuming: %v\n", err)
		return 0, false
	}
	if offset >= t.in.Size() {
		t.cfg.Logf(config.GameLevel, "Not resuming: game position %d beyond end of input\n", offset)
		return 0, false
	}
	if err := t.in.Seek(offset); err != nil {
		t.cfg.Logf(config.GameLevel, "Not resuming: %v\n", err)
		return 0, false
	}
	t.reset()
	t.gameStart = offset
	t.cfg.Logf(config.GameLevel, "Loaded game position: %d\n", offset)
	return offset, true
}

// reset restarts both machines and drops any pushback.
func (t *Tokenizer) reset() {
	t.phase = phaseTags
	t.tags = gameStart
	t.moves = moveStart
	t.depth = 0
	t.pending = false
	t.afterNewline = true
}

// NextGame starts the next game in the stream. The current offset is
// stored as the resume point; failing to store it is only logged.
func (t *Tokenizer) NextGame() {
	start := t.in.Offset()
	if t.pending {
		start--
	}
	t.reset()
	t.gameStart = start
	t.games++

	if t.resume == nil {
		return
	}
	if err := t.resume.Save(t.gameStart); err != nil {
		t.cfg.Logf(config.GameLevel, "Warning: %v\n", err)
		return
	}
	t.cfg.Logf(config.MoveLevel, "Saved game position: %d\n", t.gameStart)
}

// NextRandomGame jumps to a random offset and then to the start of the
// game after it: first past a line that does not start with '[', then to
// the next line that does. If no such line turns up within two passes
// over the input, the tokenizer stays where it was.
//
// A '[' at the start of a line inside a comment is taken for a tag.
func (t *Tokenizer) NextRandomGame() error {
	t.reset()
	t.games++

	size := t.in.Size()
	if size <= 0 {
		return nil
	}
	from := t.in.Offset()

	target := t.rng.Int63n(size)
	if err := t.in.Seek(target); err != nil {
		return err
	}

	found, err := t.seekGameStart(size)
	if err != nil {
		return err
	}
	if !found {
		t.cfg.Logf(config.GameLevel, "No game start after offset %d, staying at %d\n", target, from)
		t.reset()
		return t.in.Seek(from)
	}

	// the '[' is consumed
	t.tags = inTag
	t.tag = t.tag[:0]
	t.afterNewline = false
	t.gameStart = t.lastByteOffset()
	t.headerStart = t.gameStart
	t.cfg.Logf(config.GameLevel, "Game start pos: %d\n", t.gameStart)
	return nil
}

func (t *Tokenizer) seekGameStart(size int64) (bool, error) {
	newline := false
	pass := func(match func(ch byte) bool) (bool, error) {
		for n := int64(0); n <= size+1; n++ {
			ch, err := t.in.ReadByte()
			if err != nil {
				return false, err
			}
			hit := newline && match(ch)
			newline = ch == '\n'
			if hit {
				return true, nil
			}
		}
		return false, nil
	}

	found, err := pass(func(ch byte) bool { return ch != '[' })
	if !found || err != nil {
		return false, err
	}
	return pass(func(ch byte) bool { return ch == '[' })
}

// Next returns the next token of the current game, or io.EOF once the
// result has been returned.
func (t *Tokenizer) Next() (Token, error) {
	t.begin()
	for {
		switch t.phase {
		case phaseTags:
			tok, ok, err := t.scanTag()
			if err != nil {
				return Token{}, err
			}
			if ok {
				return tok, nil
			}
			t.phase = phaseMoves
		case phaseMoves:
			return t.scanMove()
		default:
			return Token{}, io.EOF
		}
	}
}

// ParseTags calls fn for each remaining tag pair of the current game and
// leaves the tokenizer at the start of the movetext. fn may be nil.
func (t *Tokenizer) ParseTags(fn func(tag, value string)) error {
	t.begin()
	for t.phase == phaseTags {
		tok, ok, err := t.scanTag()
		if err != nil {
			return err
		}
		if !ok {
			t.phase = phaseMoves
			break
		}
		if fn != nil {
			fn(tok.Tag, tok.Value)
		}
	}
	return nil
}

// NextMove returns the next move or the result of the current game,
// skipping any tags not yet read. It returns io.EOF after the result.
func (t *Tokenizer) NextMove() (Token, error) {
	if t.phase == phaseTags {
		if err := t.ParseTags(nil); err != nil {
			return Token{}, err
		}
	}
	if t.phase == phaseDone {
		return Token{}, io.EOF
	}
	t.begin()
	return t.scanMove()
}

// GameStart is the offset the current game was started from.
func (t *Tokenizer) GameStart() int64 { return t.gameStart }

// HeaderStart is the offset of the '[' that opened the current game's
// first tag pair. It is only meaningful once that tag has been read.
func (t *Tokenizer) HeaderStart() int64 { return t.headerStart }

// Games counts the games started with NextGame or NextRandomGame.
func (t *Tokenizer) Games() int { return t.games }

// begin bounds the bytes the next call may read, so input without any
// game cannot keep a call spinning around the wrapping stream.
func (t *Tokenizer) begin() {
	t.scanned = 0
	t.limit = 2*t.in.Size() + 2
}

func (t *Tokenizer) readByte() (byte, error) {
	if t.pending {
		t.pending = false
		t.lineStart = t.pendingLineStart
		return t.pendingByte, nil
	}
	if t.scanned >= t.limit {
		return 0, t.exhausted()
	}
	ch, err := t.in.ReadByte()
	if err != nil {
		return 0, err
	}
	t.scanned++
	t.lineStart = t.afterNewline
	t.afterNewline = ch == '\n'
	return ch, nil
}

// lastByteOffset is the offset of the byte most recently read.
func (t *Tokenizer) lastByteOffset() int64 {
	off := t.in.Offset() - 1
	if off < 0 {
		off += t.in.Size()
	}
	return off
}

func (t *Tokenizer) unread(ch byte) {
	t.pending = true
	t.pendingByte = ch
	t.pendingLineStart = t.lineStart
}

func (t *Tokenizer) exhausted() error {
	expected := "tag pair"
	if t.phase == phaseMoves {
		expected = "move or result"
	}
	pe := &errors.ParseError{
		Err:      fmt.Errorf("read the whole input twice: %w", errors.ErrParseFailure),
		Offset:   t.in.Offset(),
		Expected: expected,
		Got:      "no complete token",
	}
	if named, ok := t.in.(interface{ Name() string }); ok {
		pe.Source = named.Name()
	}
	return pe
}
