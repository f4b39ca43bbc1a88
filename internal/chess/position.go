package chess

import "fmt"

// Square is a board index: file + 8*rank, a1=0 ... h8=63.
//
//	8 | 56 57 58 59 60 61 62 63
//	7 | 48 49 50 51 52 53 54 55
//	6 | 40 41 42 43 44 45 46 47
//	5 | 32 33 34 35 36 37 38 39
//	4 | 24 25 26 27 28 29 30 31
//	3 | 16 17 18 19 20 21 22 23
//	2 |  8  9 10 11 12 13 14 15
//	1 |  0  1  2  3  4  5  6  7
//	     a  b  c  d  e  f  g  h
type Square int

// NoSquare marks an absent square.
const NoSquare Square = -1

// NewSquare builds a square from 0-based file and rank indices.
func NewSquare(file, rank int) Square {
	return Square(file + BoardSize*rank)
}

// File returns the 0-based file index (a=0).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the 0-based rank index (rank 1 = 0).
func (s Square) Rank() int {
	return int(s) >> 3
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare converts a two character square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters", name)
	}
	file := int(name[0]) - FileBase
	rank := int(name[1]) - RankBase
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, fmt.Errorf("square %q out of range", name)
	}
	return NewSquare(file, rank), nil
}

// Position is a value-typed board snapshot. Assigning a Position copies it,
// which is how speculative scratch boards are made.
type Position struct {
	Squares [NumSquares]Piece
}

// Get returns the piece on the given square.
func (p *Position) Get(sq Square) Piece {
	return p.Squares[sq]
}

// Set places a piece on the given square.
func (p *Position) Set(sq Square, piece Piece) {
	p.Squares[sq] = piece
}

// FindKing returns the square of the given coloured king, or NoSquare.
func (p *Position) FindKing(king Piece) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		if p.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns how many squares hold the given coloured piece.
func (p *Position) Count(piece Piece) int {
	n := 0
	for _, sq := range p.Squares {
		if sq == piece {
			n++
		}
	}
	return n
}

// String renders the board rank 8 first, one rank per line, using FEN
// letters and '.' for empty squares.
func (p *Position) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, FENLetter(piece))
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
