package board

// Board represents the complete state of a chess game as a mailbox of
// 64 squares plus the auxiliary state (side to move, castling rights,
// en passant target, move counters) FEN requires.
type Board struct {
	// Squares holds all 64 squares of the board.
	// Indexed as rank*8 + file, where a1=0, b1=1, ..., h8=63.
	Squares [64]Piece

	// ActiveColor is the color of the player to move.
	ActiveColor Color

	// CastlingRights encodes available castling options.
	// Bit 0: White kingside (K). Bit 1: White queenside (Q).
	// Bit 2: Black kingside (k). Bit 3: Black queenside (q).
	CastlingRights uint8

	// EnPassantSq is the en passant target square, or NoSquare if none.
	EnPassantSq Square

	// HalfMoveClock counts half-moves since the last pawn move or
	// capture. Used for the fifty-move rule.
	HalfMoveClock uint8

	// FullMoveNum is the current full move number, starting at 1.
	FullMoveNum uint16

	// Hash is the full Zobrist hash of the current position, including
	// castling rights, en passant, and side to move. Used for
	// threefold-repetition bookkeeping, not for the search's
	// transposition fingerprint (see Fingerprint).
	Hash uint64

	// History stores Hash values of previous positions, including the
	// current one (appended after each Push). Used for repetition
	// counting.
	History []uint64

	undo []undoState
}

// Castling rights bit masks.
const (
	CastleWhiteKing  uint8 = 1 << 0 // K
	CastleWhiteQueen uint8 = 1 << 1 // Q
	CastleBlackKing  uint8 = 1 << 2 // k
	CastleBlackQueen uint8 = 1 << 3 // q
	CastleAll        uint8 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// NewBoard creates the standard chess starting position.
func NewBoard() *Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		// The starting FEN is a compile-time constant; a failure here
		// means FromFEN itself is broken.
		panic("board: invalid built-in starting FEN: " + err.Error())
	}
	return b
}

// NewEmptyBoard creates a board with no pieces, White to move, no
// castling rights, suitable for building up a custom position.
func NewEmptyBoard() *Board {
	b := &Board{
		Squares:        [64]Piece{},
		ActiveColor:    White,
		CastlingRights: 0,
		EnPassantSq:    NoSquare,
		HalfMoveClock:  0,
		FullMoveNum:    1,
	}
	b.Hash = b.ComputeHash()
	b.History = append(b.History, b.Hash)
	return b
}

// PieceAt returns the piece at the given square, or an empty piece for
// an invalid square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece(Empty)
	}
	return b.Squares[sq]
}

// KingSquare returns the square of the given color's king, or NoSquare
// if it is missing (should not occur in a legal position).
func (b *Board) KingSquare(color Color) Square {
	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.Type() == King && p.Color() == color {
			return sq
		}
	}
	return NoSquare
}

// Pieces returns every square occupied by a piece of the given kind
// and color.
func (b *Board) Pieces(kind PieceType, color Color) []Square {
	var squares []Square
	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.Type() == kind && p.Color() == color {
			squares = append(squares, sq)
		}
	}
	return squares
}

// HasKingsideCastlingRights reports whether color still holds kingside
// castling rights. The right being set does not mean castling is
// currently legal (the king may be in check or the path blocked).
func (b *Board) HasKingsideCastlingRights(color Color) bool {
	if color == White {
		return b.CastlingRights&CastleWhiteKing != 0
	}
	return b.CastlingRights&CastleBlackKing != 0
}

// HasQueensideCastlingRights reports whether color still holds
// queenside castling rights.
func (b *Board) HasQueensideCastlingRights(color Color) bool {
	if color == White {
		return b.CastlingRights&CastleWhiteQueen != 0
	}
	return b.CastlingRights&CastleBlackQueen != 0
}

// pieceCount returns the total number of pieces (of any kind or
// color) on the board.
func (b *Board) pieceCount() int {
	n := 0
	for sq := Square(0); sq < 64; sq++ {
		if !b.Squares[sq].IsEmpty() {
			n++
		}
	}
	return n
}

// PieceCount returns the total number of pieces (of any kind or
// color) remaining on the board. The evaluator uses it to gate king
// safety terms off in the endgame.
func (b *Board) PieceCount() int {
	return b.pieceCount()
}

// Clone returns a deep copy of b: its own History and undo stack, so
// pushing moves on the clone can never reuse or corrupt the
// original's backing arrays.
func (b *Board) Clone() *Board {
	clone := *b
	clone.History = append([]uint64(nil), b.History...)
	clone.undo = append([]undoState(nil), b.undo...)
	return &clone
}
