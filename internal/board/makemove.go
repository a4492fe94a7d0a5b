package board

// undoState captures everything Pop needs to reverse a Push, so the
// board can walk forward and backward through a line without ever
// copying the full position.
type undoState struct {
	move       Move
	mover      Color
	moved      Piece // pre-promotion piece that stood on move.From
	captured   Piece // empty piece if nothing was captured
	capturedSq Square

	isCastle bool
	rookFrom Square
	rookTo   Square

	isNull bool

	prevCastlingRights uint8
	prevEnPassantSq    Square
	prevHalfMoveClock  uint8
	prevFullMoveNum    uint16
	prevHash           uint64
}

var castlingRightLoss = map[Square]uint8{
	0:  CastleWhiteQueen, // a1
	7:  CastleWhiteKing,  // h1
	56: CastleBlackQueen, // a8
	63: CastleBlackKing,  // h8
}

// Push applies m to the board, updating castling rights, the en
// passant target, the half-move clock, move counters, and the Zobrist
// hash, and records enough state on the undo stack for a matching Pop
// to restore the position exactly.
func (b *Board) Push(m Move) {
	color := b.ActiveColor
	moved := b.Squares[m.From]
	captured := b.Squares[m.To]
	capturedSq := m.To

	isEnPassant := moved.Type() == Pawn && m.To == b.EnPassantSq && b.Squares[m.To].IsEmpty() &&
		m.From.File() != m.To.File()
	if isEnPassant {
		capturedSq = NewSquare(m.To.File(), m.From.Rank())
		captured = b.Squares[capturedSq]
	}

	isCastle := moved.Type() == King && abs(m.To.File()-m.From.File()) == 2
	var rookFrom, rookTo Square
	if isCastle {
		homeRank := m.From.Rank()
		if m.To.File() == 6 {
			rookFrom = NewSquare(7, homeRank)
			rookTo = NewSquare(5, homeRank)
		} else {
			rookFrom = NewSquare(0, homeRank)
			rookTo = NewSquare(3, homeRank)
		}
	}

	u := undoState{
		move:               m,
		mover:              color,
		moved:              moved,
		captured:           captured,
		capturedSq:         capturedSq,
		isCastle:           isCastle,
		rookFrom:           rookFrom,
		rookTo:             rookTo,
		prevCastlingRights: b.CastlingRights,
		prevEnPassantSq:    b.EnPassantSq,
		prevHalfMoveClock:  b.HalfMoveClock,
		prevFullMoveNum:    b.FullMoveNum,
		prevHash:           b.Hash,
	}

	b.Squares[m.From] = Piece(Empty)
	if isEnPassant {
		b.Squares[capturedSq] = Piece(Empty)
	}

	placed := moved
	if m.Promotion != Empty {
		placed = NewPiece(color, m.Promotion)
	}
	b.Squares[m.To] = placed

	if isCastle {
		b.Squares[rookFrom] = Piece(Empty)
		b.Squares[rookTo] = NewPiece(color, Rook)
	}

	if moved.Type() == King {
		if color == White {
			b.CastlingRights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			b.CastlingRights &^= CastleBlackKing | CastleBlackQueen
		}
	}
	if right, ok := castlingRightLoss[m.From]; ok {
		b.CastlingRights &^= right
	}
	if right, ok := castlingRightLoss[m.To]; ok {
		b.CastlingRights &^= right
	}

	if moved.Type() == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		b.EnPassantSq = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	} else {
		b.EnPassantSq = NoSquare
	}

	if moved.Type() == Pawn || !captured.IsEmpty() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	b.ActiveColor = color.Opponent()
	if color == Black {
		b.FullMoveNum++
	}

	b.Hash = b.ComputeHash()
	b.History = append(b.History, b.Hash)
	b.undo = append(b.undo, u)
}

// Pop reverses the most recent Push (or PushNull), restoring the
// board to exactly the state it held before that call. Calling Pop
// with no matching Push is a programming error and panics.
func (b *Board) Pop() {
	n := len(b.undo)
	if n == 0 {
		panic("board: Pop called with no matching Push")
	}
	u := b.undo[n-1]
	b.undo = b.undo[:n-1]
	b.History = b.History[:len(b.History)-1]

	b.ActiveColor = u.mover
	b.CastlingRights = u.prevCastlingRights
	b.EnPassantSq = u.prevEnPassantSq
	b.HalfMoveClock = u.prevHalfMoveClock
	b.FullMoveNum = u.prevFullMoveNum
	b.Hash = u.prevHash

	if u.isNull {
		return
	}

	b.Squares[u.move.From] = u.moved
	b.Squares[u.move.To] = Piece(Empty)
	if !u.captured.IsEmpty() {
		b.Squares[u.capturedSq] = u.captured
	}
	if u.isCastle {
		b.Squares[u.rookTo] = Piece(Empty)
		b.Squares[u.rookFrom] = NewPiece(u.mover, Rook)
	}
}

// PushNull flips the side to move without making a move, clearing the
// en passant square. Used only to satisfy the board's push/pop
// contract for callers that probe a position's static state under the
// opponent's turn; the search core never calls it, since it does not
// implement null-move pruning.
func (b *Board) PushNull() {
	color := b.ActiveColor
	u := undoState{
		isNull:             true,
		mover:              color,
		prevCastlingRights: b.CastlingRights,
		prevEnPassantSq:    b.EnPassantSq,
		prevHalfMoveClock:  b.HalfMoveClock,
		prevFullMoveNum:    b.FullMoveNum,
		prevHash:           b.Hash,
	}

	b.EnPassantSq = NoSquare
	b.ActiveColor = color.Opponent()
	if color == Black {
		b.FullMoveNum++
	}
	b.Hash = b.ComputeHash()
	b.History = append(b.History, b.Hash)
	b.undo = append(b.undo, u)
}

// PopNull reverses the most recent PushNull.
func (b *Board) PopNull() {
	b.Pop()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
