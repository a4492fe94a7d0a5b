package search

import (
	"sort"

	"github.com/kjrosa/mateline/internal/board"
)

// Move-ordering score bands. Earlier bands always outrank later ones;
// within the capture band, MVV-LVA settles ties.
const (
	ttMoveScore      int32 = 1000000
	captureBaseScore int32 = 100000
	queenPromoScore  int32 = 90000
	otherPromoScore  int32 = 80000
)

// moveScore ranks a single move for ordering: the transposition-table
// move first, then captures by MVV-LVA, then queen promotions, then
// other promotions, then killer moves, everything else last. An en
// passant capture (where the destination square is empty) scores zero
// like any other quiet move, since there is no occupant at the
// destination to rank by victim value.
func moveScore(pos *board.Board, m board.Move, ttMove board.Move, hasTTMove bool, killers *KillerTable, depth int) int32 {
	if hasTTMove && m == ttMove {
		return ttMoveScore
	}

	if pos.IsCapture(m) {
		victim := pos.Squares[m.To]
		attacker := pos.Squares[m.From]
		if !victim.IsEmpty() && !attacker.IsEmpty() {
			victimScore := pieceValues[victim.Type()] / 100
			attackerScore := pieceValues[attacker.Type()] / 100
			return captureBaseScore + victimScore*10 - attackerScore
		}
		return 0
	}

	if m.Promotion == board.Queen {
		return queenPromoScore
	}
	if m.Promotion != board.Empty {
		return otherPromoScore
	}

	return killers.Score(m, depth)
}

// OrderMoves sorts moves from most to least promising for alpha-beta
// search, stably so that moves scoring equally keep their relative
// enumeration order.
func OrderMoves(pos *board.Board, moves []board.Move, ttMove board.Move, hasTTMove bool, killers *KillerTable, depth int) []board.Move {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = moveScore(pos, m, ttMove, hasTTMove, killers, depth)
	}

	indices := make([]int, len(moves))
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})

	ordered := make([]board.Move, len(moves))
	for i, idx := range indices {
		ordered[i] = moves[idx]
	}

	return ordered
}
