package search

import "github.com/kjrosa/mateline/internal/board"

// cacheEntry holds one transposition-cache record: the score and best
// move found the last time this fingerprint was searched, and the
// depth that search reached.
type cacheEntry struct {
	depth    int
	score    int32
	move     board.Move
	hasMove  bool
}

// TranspositionCache memoizes search results keyed by a position's
// Fingerprint (piece placement only, see board.Board.Fingerprint).
// Because the fingerprint ignores side to move, castling rights, and
// en passant, two distinct positions with the same piece layout share
// one entry; this mirrors the engine this package is modeled on and is
// a deliberate simplification, not a bug.
type TranspositionCache struct {
	table map[uint64]cacheEntry
}

// NewTranspositionCache returns an empty cache.
func NewTranspositionCache() *TranspositionCache {
	return &TranspositionCache{table: make(map[uint64]cacheEntry)}
}

// Store records a search result for fingerprint, unless an existing
// entry was produced by a strictly deeper search — a shallower result
// never overwrites a deeper one, while an equal-depth result replaces
// the existing entry.
func (c *TranspositionCache) Store(fingerprint uint64, depth int, score int32, move board.Move, hasMove bool) {
	if existing, ok := c.table[fingerprint]; ok && depth < existing.depth {
		return
	}
	c.table[fingerprint] = cacheEntry{depth: depth, score: score, move: move, hasMove: hasMove}
}

// Lookup returns the cached score for fingerprint if an entry exists
// and was searched to at least depth (hasScore is true in that case).
// If an entry exists but was searched shallower, hasScore is false
// while the remembered move is still returned as a move-ordering hint
// (hasMove), mirroring the source table's two-return-value lookup.
func (c *TranspositionCache) Lookup(fingerprint uint64, depth int) (score int32, hasScore bool, move board.Move, hasMove bool) {
	entry, ok := c.table[fingerprint]
	if !ok {
		return 0, false, board.Move{}, false
	}
	if entry.depth >= depth {
		return entry.score, true, entry.move, entry.hasMove
	}
	return 0, false, entry.move, entry.hasMove
}

// Clear empties the cache. Called at the start of each GetBestMove
// call, since a stale entry from a much shallower iteration could
// otherwise feed a wrong score forward from the previous position.
func (c *TranspositionCache) Clear() {
	c.table = make(map[uint64]cacheEntry)
}
