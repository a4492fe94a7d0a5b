package search

import (
	"math/rand"

	"github.com/kjrosa/mateline/internal/board"
)

// openingLines are the fixed sequences of moves, in coordinate
// notation, that seed the opening book. Each line is replayed from the
// starting position to populate every position along it.
var openingLines = [][]string{
	// Sveshnikov Sicilian
	{"e2e4", "c7c5", "g1f3", "b8c6", "d2d4", "c5d4", "f3d4", "g8f6", "b1c3", "e7e5", "d4b5", "d7d6"},
	// Nimzo-Indian
	{"d2d4", "g8f6", "c2c4", "e7e6", "b1c3", "f8b4", "g1f3", "e8g8"},
	// Ruy Lopez
	{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"},
}

// OpeningBook maps a position's Fingerprint to the set of moves known
// to follow it in book, so the engine can play a varied, named opening
// without searching at all.
type OpeningBook struct {
	entries map[uint64][]board.Move
}

// NewOpeningBook builds a book from the fixed opening lines, replaying
// each from the starting position.
func NewOpeningBook() *OpeningBook {
	b := &OpeningBook{entries: make(map[uint64][]board.Move)}
	for _, line := range openingLines {
		b.addLine(line)
	}
	return b
}

func (b *OpeningBook) addLine(line []string) {
	pos := board.NewBoard()
	for _, uci := range line {
		m, err := board.ParseMove(uci)
		if err != nil {
			// The opening lines are a compile-time constant; a parse
			// failure here means the literal itself is broken.
			panic("search: invalid built-in opening move " + uci + ": " + err.Error())
		}
		b.addEntry(pos, m)
		pos.Push(m)
	}
}

func (b *OpeningBook) addEntry(pos *board.Board, m board.Move) {
	fingerprint := pos.Fingerprint()
	for _, existing := range b.entries[fingerprint] {
		if existing == m {
			return
		}
	}
	b.entries[fingerprint] = append(b.entries[fingerprint], m)
}

// Lookup returns a uniformly random book move for pos and true, or a
// zero move and false if pos is not in the book.
func (b *OpeningBook) Lookup(pos *board.Board) (board.Move, bool) {
	moves, ok := b.entries[pos.Fingerprint()]
	if !ok || len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[rand.Intn(len(moves))], true
}
