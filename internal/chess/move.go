package chess

// MoveType classifies a replayed move.
type MoveType int

const (
	NormalMoveType MoveType = iota
	CaptureMoveType
	CastleMoveType
	EnPassantMoveType
	PromoteMoveType
)

// String returns the name of a move type.
func (t MoveType) String() string {
	switch t {
	case NormalMoveType:
		return "Normal"
	case CaptureMoveType:
		return "Capture"
	case CastleMoveType:
		return "Castle"
	case EnPassantMoveType:
		return "EnPassant"
	case PromoteMoveType:
		return "Promote"
	}
	return "Unknown"
}

// Move is a replayed move. The concrete type is one of NormalMove,
// CaptureMove, CastleMove, EnPassantMove or PromoteMove; each carries only
// the fields that are meaningful for it.
type Move interface {
	Type() MoveType
	Base() *MoveBase
}

// MoveBase holds the fields common to every move variant.
type MoveBase struct {
	// The moving coloured piece.
	Piece Piece

	From Square
	To   Square

	// Full move number as written in the movetext.
	Number int

	// Short algebraic text as read from the PGN source, at most MaxMoveLen bytes.
	Text string

	// Coordinate form for the analysis engine, e.g. "e2e4" or "a7a8q".
	LongAlgebraic string
}

// Base returns the common move fields.
func (m *MoveBase) Base() *MoveBase { return m }

// NormalMove is a quiet move to an empty square.
type NormalMove struct {
	MoveBase
}

// Type implements Move.
func (*NormalMove) Type() MoveType { return NormalMoveType }

// CaptureMove takes the piece standing on the destination square.
type CaptureMove struct {
	MoveBase
	Captured Piece
}

// Type implements Move.
func (*CaptureMove) Type() MoveType { return CaptureMoveType }

// CastleMove moves the king two files and relocates the rook.
type CastleMove struct {
	MoveBase
	Rook     Piece
	RookFrom Square
	RookTo   Square
}

// Type implements Move.
func (*CastleMove) Type() MoveType { return CastleMoveType }

// Queenside reports whether the king moved towards the a-file.
func (m *CastleMove) Queenside() bool {
	return m.To.File() < m.From.File()
}

// EnPassantMove is a pawn capture whose victim does not stand on the
// destination square.
type EnPassantMove struct {
	MoveBase
	CapturedSquare Square
}

// Type implements Move.
func (*EnPassantMove) Type() MoveType { return EnPassantMoveType }

// PromoteMove is a pawn reaching the last rank, with or without a capture.
// Captured is Empty when the destination was empty.
type PromoteMove struct {
	MoveBase
	Promoted Piece
	Captured Piece
}

// Type implements Move.
func (*PromoteMove) Type() MoveType { return PromoteMoveType }

// IsCapture reports whether a move removes an enemy piece.
func IsCapture(m Move) bool {
	switch mv := m.(type) {
	case *CaptureMove, *EnPassantMove:
		return true
	case *PromoteMove:
		return mv.Captured != Empty
	}
	return false
}

// TruncateMoveText bounds a SAN string to MaxMoveLen bytes.
func TruncateMoveText(text string) string {
	if len(text) > MaxMoveLen {
		return text[:MaxMoveLen]
	}
	return text
}
