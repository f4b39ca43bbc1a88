// Package errors provides sentinel errors and error types for the chess
// viewer. Sentinels are checked with errors.Is(); the structured types keep
// game and source context and unwrap to the sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates move text that no piece on the board can play.
	ErrIllegalMove = errors.New("illegal move")

	// ErrParseFailure indicates move text that cannot be read at all.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoKing indicates a position without a king of the side to move.
	ErrNoKing = errors.New("king missing from position")

	// ErrSourceUnavailable indicates the PGN source could not be opened or read.
	ErrSourceUnavailable = errors.New("game source unavailable")

	// ErrResumeState indicates a missing or corrupt resume marker.
	ErrResumeState = errors.New("invalid resume state")
)

// GameError wraps errors with game context: game number, ply, the move
// text being resolved and where the game starts in its source.
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number (0 if unknown)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	Source   string // Source name (if known)
	Offset   int64  // Byte offset of the game start, -1 if unknown
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.Source != "" {
		if e.Offset >= 0 {
			parts = append(parts, fmt.Sprintf("%s@%d", e.Source, e.Offset))
		} else {
			parts = append(parts, e.Source)
		}
	}

	if e.GameNum > 0 {
		parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a tokenizer or move text error at a byte offset.
type ParseError struct {
	Err      error  // The underlying error
	Source   string // Source name
	Offset   int64  // Byte offset in the source, -1 if unknown
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Source != "" {
		loc := e.Source
		if e.Offset >= 0 {
			loc += fmt.Sprintf("@%d", e.Offset)
		}
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	case e.Got != "":
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// AsGameError returns the first *GameError in err's chain.
func AsGameError(err error) (*GameError, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
