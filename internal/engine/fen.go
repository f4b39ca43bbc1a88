package engine

import (
	"fmt"
	"strings"

	"github.com/fredrander/chessviewerscreensaver/internal/chess"
	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PositionFromFEN reads the piece placement and side to move of a FEN
// string. Castling, en passant and clock fields are accepted but ignored.
// A missing side to move field means White.
func PositionFromFEN(fen string) (chess.Position, chess.Colour, error) {
	var pos chess.Position

	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return pos, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return pos, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return pos, chess.White, err
	}

	return pos, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
			if rank < 0 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}
		default:
			piece := chess.PieceFromFENLetter(c)
			if piece == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			pos.Set(chess.NewSquare(file, rank), piece)
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete piece placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// PositionToFEN writes a FEN string for the position. Castling rights are
// derived from kings and rooks still on their home squares; en passant is
// always "-" and the clocks are fixed.
func PositionToFEN(pos *chess.Position, toMove chess.Colour, moveNumber int) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	if moveNumber < 1 {
		moveNumber = 1
	}
	fmt.Fprintf(&sb, " - 0 %d", moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.FENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	rights := []struct {
		king, rook     chess.Piece
		kingSq, rookSq chess.Square
		letter         byte
	}{
		{chess.W(chess.King), chess.W(chess.Rook), whiteKingHome, 7, 'K'},
		{chess.W(chess.King), chess.W(chess.Rook), whiteKingHome, 0, 'Q'},
		{chess.B(chess.King), chess.B(chess.Rook), blackKingHome, 63, 'k'},
		{chess.B(chess.King), chess.B(chess.Rook), blackKingHome, 56, 'q'},
	}

	hasCastling := false
	for _, r := range rights {
		if pos.Get(r.kingSq) == r.king && pos.Get(r.rookSq) == r.rook {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	pos, _, _ := PositionFromFEN(InitialFEN)
	return pos
}
