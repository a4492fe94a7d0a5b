package search

import "github.com/kjrosa/mateline/internal/board"

// maxKillersPerDepth bounds how many killer moves are remembered at
// each ply; only the two most recent cutoff-causing quiet moves are
// kept.
const maxKillersPerDepth = 2

// KillerTable remembers quiet moves (non-captures, non-promotions)
// that caused a beta cutoff at a given search depth, most recent
// first. Move ordering tries killers before other quiet moves on the
// theory that a move good enough to refute one line is often good
// enough to refute a sibling line at the same depth.
type KillerTable struct {
	moves map[int][]board.Move
}

// NewKillerTable returns an empty killer table.
func NewKillerTable() *KillerTable {
	return &KillerTable{moves: make(map[int][]board.Move)}
}

// Add records m as a killer at depth, inserting it at the front and
// evicting the oldest entry past maxKillersPerDepth. A move already
// present at this depth is left in place rather than being duplicated.
func (k *KillerTable) Add(m board.Move, depth int) {
	existing := k.moves[depth]
	for _, km := range existing {
		if km == m {
			return
		}
	}

	updated := append([]board.Move{m}, existing...)
	if len(updated) > maxKillersPerDepth {
		updated = updated[:maxKillersPerDepth]
	}
	k.moves[depth] = updated
}

// Score returns the move-ordering bonus for m at depth: 70000 for the
// most recent killer, 69000 for the second, 0 if m is not a killer at
// this depth.
func (k *KillerTable) Score(m board.Move, depth int) int32 {
	for i, km := range k.moves[depth] {
		if km == m {
			return 70000 - int32(i)*1000
		}
	}
	return 0
}

// Clear empties the table. Called at the start of each GetBestMove
// call so killers from a previous, unrelated position do not leak into
// the next search.
func (k *KillerTable) Clear() {
	k.moves = make(map[int][]board.Move)
}
