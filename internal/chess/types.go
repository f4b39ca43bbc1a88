// Package chess provides the core board, piece and move types.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents either a piece kind (Pawn..King) or a coloured piece
// built with MakeColouredPiece. The zero value is an empty square.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the name of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	kind := ExtractPiece(p)
	if int(kind) < len(names) {
		return names[kind]
	}
	return "Unknown"
}

// Letter returns the single uppercase SAN letter of a piece kind.
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	kind := ExtractPiece(p)
	if int(kind) < len(letters) {
		return letters[kind]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	if piece == Empty {
		return Empty
	}
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece kind from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsColour reports whether p is a non-empty piece of the given colour.
func IsColour(p Piece, colour Colour) bool {
	return p != Empty && ExtractColour(p) == colour
}

// PieceFromLetter converts a SAN or FEN letter (either case) to a piece kind.
// It returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	}
	return Empty
}

// FENLetter returns the FEN letter of a coloured piece: uppercase for
// White, lowercase for Black.
func FENLetter(colouredPiece Piece) byte {
	letter := colouredPiece.Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENLetter converts a FEN letter to a coloured piece.
func PieceFromFENLetter(c byte) Piece {
	kind := PieceFromLetter(c)
	if kind == Empty {
		return Empty
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// Board geometry.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)

// MaxMoveLen is the maximum number of visible characters kept from a SAN
// move string, e.g. "Qa6xb7#".
const MaxMoveLen = 7

// MaxLongAlgebraicLen is the length of the longest coordinate move, e.g. "a7a8q".
const MaxLongAlgebraicLen = 5
