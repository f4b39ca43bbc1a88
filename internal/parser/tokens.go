// Package parser reads PGN text one byte at a time and yields the tag
// pairs, move tokens and result of each game.
package parser

import (
	"fmt"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
)

// TokenType represents the kind of a PGN token.
type TokenType int

const (
	// TagToken is a [Tag "Value"] pair from the game header.
	TagToken TokenType = iota
	// MoveToken is one SAN move from the movetext.
	MoveToken
	// ResultToken ends the movetext of a game.
	ResultToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	TagToken:    "TAG",
	MoveToken:   "MOVE",
	ResultToken: "RESULT",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Length limits; longer text is truncated.
const (
	TagMaxLen   = 63
	ValueMaxLen = 255
)

// NoMoveNumber marks a move that was not preceded by a move number.
const NoMoveNumber = -1

// Token is one item of a game. Only the fields of its Type are set.
type Token struct {
	Type TokenType

	// TagToken
	Tag   string
	Value string

	// MoveToken
	Number int
	Text   string

	// ResultToken
	Result chess.Result
}

// String returns a short description for logging.
func (t Token) String() string {
	switch t.Type {
	case TagToken:
		return fmt.Sprintf("[%s %q]", t.Tag, t.Value)
	case MoveToken:
		if t.Number == NoMoveNumber {
			return t.Text
		}
		return fmt.Sprintf("%d. %s", t.Number, t.Text)
	case ResultToken:
		return t.Result.String()
	}
	return t.Type.String()
}
