package parser

import (
	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// tagState is the state of the header machine.
type tagState int

const (
	gameStart tagState = iota
	nextTag
	tagStart
	inTag
	valueStart
	inValue
)

// moveState is the state of the movetext machine.
type moveState int

const (
	moveStart moveState = iota
	inMove
	inMoveNumber
	zeroDash // "0-" read: either 0-1 or 0-0 castling
	inNAG
	inComment
	commentToEOL
	inVariation
	escapeLine
)

// Move character classification table
var moveChars [256]bool

func init() {
	initMoveChars()
}

// initMoveChars marks letters, digits and the SAN markers - = + #.
func initMoveChars() {
	for c := byte('a'); c <= 'z'; c++ {
		moveChars[c] = true
		moveChars[c-'a'+'A'] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{'-', '=', '+', '#'} {
		moveChars[c] = true
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// scanTag runs the header machine until it completes a tag pair (ok is
// true) or reaches the blank line that ends the header (ok is false).
func (t *Tokenizer) scanTag() (tok Token, ok bool, err error) {
	for {
		ch, err := t.readByte()
		if err != nil {
			return Token{}, false, err
		}

		switch t.tags {
		case gameStart:
			if ch == '[' {
				t.headerStart = t.lastByteOffset()
				t.tag = t.tag[:0]
				t.tags = inTag
			}

		case tagStart:
			switch ch {
			case '[':
				t.tag = t.tag[:0]
				t.tags = inTag
			case '\n':
				return Token{}, false, nil
			}

		case inTag:
			if ch == ' ' {
				t.tags = valueStart
			} else if len(t.tag) < TagMaxLen {
				t.tag = append(t.tag, ch)
			}

		case valueStart:
			if ch == '"' {
				t.value = t.value[:0]
				t.tags = inValue
			}

		case inValue:
			if ch == '"' {
				t.tags = nextTag
				return Token{Type: TagToken, Tag: string(t.tag), Value: string(t.value)}, true, nil
			}
			if len(t.value) < ValueMaxLen {
				t.value = append(t.value, ch)
			}

		case nextTag:
			if ch == '\n' {
				t.tags = tagStart
			}
		}
	}
}

// scanMove runs the movetext machine until it completes one move or a
// result. After a result the game is finished.
func (t *Tokenizer) scanMove() (Token, error) {
	number := NoMoveNumber
	// number before a leading '0', restored if it starts "0-0"
	saved := NoMoveNumber

	for {
		ch, err := t.readByte()
		if err != nil {
			return Token{}, err
		}

		switch t.moves {
		case moveStart:
			switch {
			case isDigit(ch):
				t.moves = inMoveNumber
				saved = number
				number = int(ch - '0')
			case moveChars[ch]:
				t.moves = inMove
				t.move = append(t.move[:0], ch)
			case ch == '*':
				return t.finish(chess.ResultUnknown), nil
			case ch == '$':
				t.moves = inNAG
			case ch == '(':
				t.depth = 1
				t.moves = inVariation
			case ch == '{':
				t.moves = inComment
			case ch == ';':
				t.moves = commentToEOL
			case ch == '%' && t.lineStart:
				t.moves = escapeLine
			}

		case inMoveNumber:
			switch {
			case isDigit(ch):
				number = number*10 + int(ch-'0')
			case ch == '.' || isSpace(ch):
				// "12..." for Black is read as a number and dots
				t.moves = moveStart
			case ch == '/':
				return t.finish(chess.Draw), nil
			case ch == '-' && number == 0:
				t.moves = zeroDash
			case ch == '-' && number == 1:
				return t.finish(chess.WhiteWins), nil
			case ch == '-':
				return t.finish(chess.BlackWins), nil
			}

		case zeroDash:
			if ch == '0' {
				t.moves = inMove
				t.move = append(t.move[:0], '0', '-', '0')
				number = saved
				break
			}
			return t.finish(chess.BlackWins), nil

		case inMove:
			if moveChars[ch] {
				if len(t.move) < chess.MaxMoveLen {
					t.move = append(t.move, ch)
				}
				break
			}
			t.moves = moveStart
			if !isSpace(ch) {
				t.unread(ch)
			}
			return Token{Type: MoveToken, Number: number, Text: string(t.move)}, nil

		case inNAG:
			if !isDigit(ch) {
				t.moves = moveStart
				t.unread(ch)
			}

		case inComment:
			if ch == '}' {
				t.moves = moveStart
			}

		case commentToEOL, escapeLine:
			if ch == '\n' {
				t.moves = moveStart
			}

		case inVariation:
			switch ch {
			case '(':
				t.depth++
			case ')':
				t.depth--
				if t.depth == 0 {
					t.moves = moveStart
				}
			}
		}
	}
}

func (t *Tokenizer) finish(result chess.Result) Token {
	t.phase = phaseDone
	t.moves = moveStart
	return Token{Type: ResultToken, Result: result}
}
