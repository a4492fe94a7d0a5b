package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjrosa/mateline/internal/board"
)

func TestKillerScoreZeroWhenAbsent(t *testing.T) {
	k := NewKillerTable()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	assert.Zero(t, k.Score(m, 5))
}

func TestKillerAddThenScorePositive(t *testing.T) {
	k := NewKillerTable()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}

	k.Add(m, 5)

	score := k.Score(m, 5)
	assert.Greater(t, score, int32(0))
	assert.LessOrEqual(t, score, int32(70000))
}

func TestKillerMostRecentScoresHighest(t *testing.T) {
	k := NewKillerTable()
	older := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	newer := board.Move{From: board.NewSquare(3, 1), To: board.NewSquare(3, 3)}

	k.Add(older, 5)
	k.Add(newer, 5)

	assert.Equal(t, int32(70000), k.Score(newer, 5))
	assert.Equal(t, int32(69000), k.Score(older, 5))
}

func TestKillerTableCapsAtTwoPerDepth(t *testing.T) {
	k := NewKillerTable()
	a := board.Move{From: board.NewSquare(0, 1), To: board.NewSquare(0, 3)}
	b := board.Move{From: board.NewSquare(1, 1), To: board.NewSquare(1, 3)}
	c := board.Move{From: board.NewSquare(2, 1), To: board.NewSquare(2, 3)}

	k.Add(a, 1)
	k.Add(b, 1)
	k.Add(c, 1)

	// a was evicted once a third killer arrived at the same depth.
	assert.Zero(t, k.Score(a, 1))
	assert.Greater(t, k.Score(b, 1), int32(0))
	assert.Greater(t, k.Score(c, 1), int32(0))
}

func TestKillerAddIsIdempotent(t *testing.T) {
	k := NewKillerTable()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}

	k.Add(m, 2)
	k.Add(m, 2)

	assert.Equal(t, int32(70000), k.Score(m, 2))
}

func TestKillerScoreIsolatedByDepth(t *testing.T) {
	k := NewKillerTable()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}

	k.Add(m, 3)

	assert.Zero(t, k.Score(m, 4))
}

func TestKillerClear(t *testing.T) {
	k := NewKillerTable()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	k.Add(m, 1)
	k.Clear()
	assert.Zero(t, k.Score(m, 1))
}
