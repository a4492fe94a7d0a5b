package board

// IsCheck reports whether the side to move's king is currently
// attacked.
func (b *Board) IsCheck() bool {
	king := b.KingSquare(b.ActiveColor)
	if king == NoSquare {
		return false
	}
	return b.IsSquareAttacked(king, b.ActiveColor.Opponent())
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// byColor: a pawn, knight, or king one step away, or a bishop/rook/
// queen with a clear ray to sq. Shares the same offset tables
// generateKnightMoves/generateKingMoves/generateSlidingMoves use,
// since "can this piece reach sq" and "does this piece move toward
// sq" are the same ray walk run in reverse.
func (b *Board) IsSquareAttacked(sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}

	if b.pawnAttacksSquare(sq, byColor) {
		return true
	}
	if b.rayAttacksSquare(sq, byColor, knightOffsets[:], 1, Knight) {
		return true
	}
	if b.rayAttacksSquare(sq, byColor, kingOffsets[:], 1, King) {
		return true
	}
	if b.rayAttacksSquare(sq, byColor, diagonalDirs[:], 7, Bishop, Queen) {
		return true
	}
	if b.rayAttacksSquare(sq, byColor, orthogonalDirs[:], 7, Rook, Queen) {
		return true
	}
	return false
}

// pawnAttacksSquare reports whether a byColor pawn attacks sq. Pawns
// attack diagonally one rank toward the opponent, so the candidate
// attacker sits one rank behind sq from byColor's perspective.
func (b *Board) pawnAttacksSquare(sq Square, byColor Color) bool {
	file, rank := sq.File(), sq.Rank()

	attackerRank := rank - 1
	if byColor == Black {
		attackerRank = rank + 1
	}
	if attackerRank < 0 || attackerRank > 7 {
		return false
	}

	for _, df := range [2]int{-1, 1} {
		attackerFile := file + df
		if attackerFile < 0 || attackerFile > 7 {
			continue
		}
		p := b.Squares[NewSquare(attackerFile, attackerRank)]
		if p.Type() == Pawn && p.Color() == byColor {
			return true
		}
	}
	return false
}

// rayAttacksSquare walks each offset in offsets up to maxDist squares
// from sq, stopping a ray as soon as it hits any piece. It reports
// true as soon as the first piece found along any ray is byColor and
// matches one of kinds. maxDist is 1 for single-step pieces (knight,
// king) and 7 for sliders (bishop, rook, queen).
func (b *Board) rayAttacksSquare(sq Square, byColor Color, offsets [][2]int, maxDist int, kinds ...PieceType) bool {
	file, rank := sq.File(), sq.Rank()

	for _, off := range offsets {
		for dist := 1; dist <= maxDist; dist++ {
			tf, tr := file+off[0]*dist, rank+off[1]*dist
			if tf < 0 || tf > 7 || tr < 0 || tr > 7 {
				break
			}
			p := b.Squares[NewSquare(tf, tr)]
			if p.IsEmpty() {
				continue
			}
			if p.Color() == byColor && pieceTypeIn(p.Type(), kinds) {
				return true
			}
			break
		}
	}
	return false
}

func pieceTypeIn(t PieceType, kinds []PieceType) bool {
	for _, k := range kinds {
		if k == t {
			return true
		}
	}
	return false
}
