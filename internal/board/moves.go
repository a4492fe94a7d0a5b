package board

import (
	"errors"
	"fmt"
)

// Move represents a chess move from one square to another.
type Move struct {
	From      Square    // Source square
	To        Square    // Destination square
	Promotion PieceType // Promotion piece type (Empty if not a promotion)
}

// ParseMove parses a move from coordinate notation (e.g., "e2e4", "a7a8q").
// Format: from_file, from_rank, to_file, to_rank + optional promotion char.
// Promotion chars: q=Queen, r=Rook, b=Bishop, n=Knight (lowercase).
func ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, errors.New("invalid move format: expected 4-5 characters")
	}

	fromFile := int(s[0] - 'a')
	fromRank := int(s[1] - '1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 {
		return Move{}, fmt.Errorf("invalid from square: %s", s[0:2])
	}

	toFile := int(s[2] - 'a')
	toRank := int(s[3] - '1')
	if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return Move{}, fmt.Errorf("invalid to square: %s", s[2:4])
	}

	from := NewSquare(fromFile, fromRank)
	to := NewSquare(toFile, toRank)

	var promotion PieceType = Empty
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promotion = Queen
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		case 'n':
			promotion = Knight
		default:
			return Move{}, fmt.Errorf("invalid promotion character: %c", s[4])
		}
	}

	return Move{From: from, To: to, Promotion: promotion}, nil
}

// String returns the move in coordinate notation (e.g., "e2e4", "a7a8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()

	if m.Promotion != Empty {
		switch m.Promotion {
		case Queen:
			s += "q"
		case Rook:
			s += "r"
		case Bishop:
			s += "b"
		case Knight:
			s += "n"
		}
	}

	return s
}

// IsCapture reports whether m captures a piece in the current position,
// including an en passant capture where the destination square itself
// is empty but a pawn is removed from beside it.
func (b *Board) IsCapture(m Move) bool {
	if !b.Squares[m.To].IsEmpty() {
		return true
	}
	moved := b.Squares[m.From]
	return moved.Type() == Pawn && m.To == b.EnPassantSq && m.From.File() != m.To.File()
}

var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

// generatePawnMoves generates all pseudo-legal pawn moves for the active
// color, including two-square advances, diagonal captures, en passant,
// and promotions (one Move per promotion piece kind).
func (b *Board) generatePawnMoves() []Move {
	var moves []Move

	var direction int
	var startRank int
	var promoteRank int

	if b.ActiveColor == White {
		direction = 1
		startRank = 1
		promoteRank = 7
	} else {
		direction = -1
		startRank = 6
		promoteRank = 0
	}

	addMove := func(from, to Square) {
		if to.Rank() == promoteRank {
			for _, k := range promotionKinds {
				moves = append(moves, Move{From: from, To: to, Promotion: k})
			}
			return
		}
		moves = append(moves, Move{From: from, To: to})
	}

	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != Pawn || piece.Color() != b.ActiveColor {
			continue
		}

		file := sq.File()
		rank := sq.Rank()

		forwardRank := rank + direction
		if forwardRank >= 0 && forwardRank <= 7 {
			forwardSq := NewSquare(file, forwardRank)
			if b.Squares[forwardSq].IsEmpty() {
				addMove(sq, forwardSq)

				if rank == startRank {
					twoForwardSq := NewSquare(file, rank+2*direction)
					if b.Squares[twoForwardSq].IsEmpty() {
						moves = append(moves, Move{From: sq, To: twoForwardSq})
					}
				}
			}
		}

		for _, fileOffset := range []int{-1, 1} {
			captureFile := file + fileOffset
			captureRank := rank + direction

			if captureFile < 0 || captureFile > 7 || captureRank < 0 || captureRank > 7 {
				continue
			}

			captureSq := NewSquare(captureFile, captureRank)
			targetPiece := b.Squares[captureSq]

			if !targetPiece.IsEmpty() && targetPiece.Color() != b.ActiveColor {
				addMove(sq, captureSq)
				continue
			}

			if captureSq == b.EnPassantSq {
				moves = append(moves, Move{From: sq, To: captureSq})
			}
		}
	}

	return moves
}

var knightOffsets = [8][2]int{
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

var diagonalDirs = [4][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
}

var orthogonalDirs = [4][2]int{
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

func (b *Board) generateKnightMoves() []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != Knight || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, off := range knightOffsets {
			tf, tr := file+off[0], rank+off[1]
			if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
				continue
			}
			to := NewSquare(tf, tr)
			target := b.Squares[to]
			if target.IsEmpty() || target.Color() != b.ActiveColor {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
	}
	return moves
}

func (b *Board) generateKingMoves() []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != King || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, off := range kingOffsets {
			tf, tr := file+off[0], rank+off[1]
			if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
				continue
			}
			to := NewSquare(tf, tr)
			target := b.Squares[to]
			if target.IsEmpty() || target.Color() != b.ActiveColor {
				moves = append(moves, Move{From: sq, To: to})
			}
		}
		moves = append(moves, b.generateCastlingMoves(sq)...)
	}
	return moves
}

func (b *Board) generateCastlingMoves(king Square) []Move {
	var moves []Move
	color := b.ActiveColor
	opponent := color.Opponent()

	var homeRank int
	if color == White {
		homeRank = 0
	} else {
		homeRank = 7
	}
	if king.Rank() != homeRank || king.File() != 4 {
		return moves
	}
	if b.IsSquareAttacked(king, opponent) {
		return moves
	}

	if b.HasKingsideCastlingRights(color) {
		f := NewSquare(5, homeRank)
		g := NewSquare(6, homeRank)
		h := NewSquare(7, homeRank)
		rook := b.Squares[h]
		if b.Squares[f].IsEmpty() && b.Squares[g].IsEmpty() &&
			rook.Type() == Rook && rook.Color() == color &&
			!b.IsSquareAttacked(f, opponent) && !b.IsSquareAttacked(g, opponent) {
			moves = append(moves, Move{From: king, To: g})
		}
	}

	if b.HasQueensideCastlingRights(color) {
		d := NewSquare(3, homeRank)
		c := NewSquare(2, homeRank)
		bSq := NewSquare(1, homeRank)
		a := NewSquare(0, homeRank)
		rook := b.Squares[a]
		if b.Squares[d].IsEmpty() && b.Squares[c].IsEmpty() && b.Squares[bSq].IsEmpty() &&
			rook.Type() == Rook && rook.Color() == color &&
			!b.IsSquareAttacked(d, opponent) && !b.IsSquareAttacked(c, opponent) {
			moves = append(moves, Move{From: king, To: c})
		}
	}

	return moves
}

func (b *Board) generateSlidingMoves(kind PieceType, dirs [][2]int) []Move {
	var moves []Move
	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if piece.IsEmpty() || piece.Type() != kind || piece.Color() != b.ActiveColor {
			continue
		}
		file, rank := sq.File(), sq.Rank()
		for _, dir := range dirs {
			for dist := 1; dist <= 7; dist++ {
				tf, tr := file+dir[0]*dist, rank+dir[1]*dist
				if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
					break
				}
				to := NewSquare(tf, tr)
				target := b.Squares[to]
				if target.IsEmpty() {
					moves = append(moves, Move{From: sq, To: to})
					continue
				}
				if target.Color() != b.ActiveColor {
					moves = append(moves, Move{From: sq, To: to})
				}
				break
			}
		}
	}
	return moves
}

func (b *Board) generateBishopMoves() []Move {
	return b.generateSlidingMoves(Bishop, diagonalDirs[:])
}

func (b *Board) generateRookMoves() []Move {
	return b.generateSlidingMoves(Rook, orthogonalDirs[:])
}

func (b *Board) generateQueenMoves() []Move {
	allDirs := make([][2]int, 0, 8)
	allDirs = append(allDirs, diagonalDirs[:]...)
	allDirs = append(allDirs, orthogonalDirs[:]...)
	return b.generateSlidingMoves(Queen, allDirs)
}

// PseudoLegalMoves returns every move available to the side to move
// without checking whether it leaves that side's own king in check.
func (b *Board) PseudoLegalMoves() []Move {
	var moves []Move
	moves = append(moves, b.generatePawnMoves()...)
	moves = append(moves, b.generateKnightMoves()...)
	moves = append(moves, b.generateBishopMoves()...)
	moves = append(moves, b.generateRookMoves()...)
	moves = append(moves, b.generateQueenMoves()...)
	moves = append(moves, b.generateKingMoves()...)
	return moves
}

// LegalMoves returns every pseudo-legal move that does not leave the
// moving side's own king in check, including after castling.
func (b *Board) LegalMoves() []Move {
	candidates := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(candidates))

	for _, m := range candidates {
		mover := b.ActiveColor
		b.Push(m)
		if !b.IsSquareAttacked(b.KingSquare(mover), mover.Opponent()) {
			legal = append(legal, m)
		}
		b.Pop()
	}

	return legal
}
