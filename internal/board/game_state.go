package board

// GameStatus represents the current state of a chess game.
type GameStatus int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing GameStatus = iota
	// Checkmate indicates the player to move is in checkmate.
	Checkmate
	// Stalemate indicates the player to move has no legal moves but is
	// not in check; the game is a draw.
	Stalemate
	// DrawInsufficientMaterial indicates neither side has enough
	// material to deliver checkmate.
	DrawInsufficientMaterial
	// DrawThreefoldRepetition indicates the current position has
	// occurred three or more times.
	DrawThreefoldRepetition
)

// String returns a human-readable label for the status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	default:
		return "unknown"
	}
}

// Status classifies the position by checking checkmate, stalemate, and
// draw conditions in priority order.
func (b *Board) Status() GameStatus {
	if len(b.LegalMoves()) == 0 {
		if b.IsCheck() {
			return Checkmate
		}
		return Stalemate
	}

	if b.IsInsufficientMaterial() {
		return DrawInsufficientMaterial
	}

	if b.repetitionCount() >= 3 {
		return DrawThreefoldRepetition
	}

	return Ongoing
}

// IsGameOver returns true if the game has ended (checkmate, stalemate,
// or a draw condition).
func (b *Board) IsGameOver() bool {
	return b.Status() != Ongoing
}

// IsCheckmate reports whether the side to move is checkmated: in
// check, with no legal move available.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal move but
// is not in check.
func (b *Board) IsStalemate() bool {
	return !b.IsCheck() && len(b.LegalMoves()) == 0
}

// IsInsufficientMaterial reports whether neither side has enough
// material remaining to force checkmate: king vs king, king+minor vs
// king, or king+bishop vs king+bishop with same-colored bishops.
func (b *Board) IsInsufficientMaterial() bool {
	var minors [2]int // knights + bishops, by color
	var bishopSq [2]Square
	bishopSq[White], bishopSq[Black] = NoSquare, NoSquare

	for sq := Square(0); sq < 64; sq++ {
		p := b.Squares[sq]
		if p.IsEmpty() || p.Type() == King {
			continue
		}
		switch p.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			minors[p.Color()]++
		case Bishop:
			minors[p.Color()]++
			bishopSq[p.Color()] = sq
		}
	}

	total := minors[White] + minors[Black]
	if total == 0 {
		return true // king vs king
	}
	if total == 1 {
		return true // king+minor vs king
	}
	if total == 2 && minors[White] == 1 && minors[Black] == 1 &&
		bishopSq[White] != NoSquare && bishopSq[Black] != NoSquare {
		return squareColor(bishopSq[White]) == squareColor(bishopSq[Black])
	}

	return false
}

// squareColor returns 0 for a dark square, 1 for a light square.
func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}

// repetitionCount returns how many times the current position's hash
// occurs in History, which includes the current occurrence.
func (b *Board) repetitionCount() int {
	count := 0
	for _, h := range b.History {
		if h == b.Hash {
			count++
		}
	}
	return count
}
