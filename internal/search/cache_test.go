package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjrosa/mateline/internal/board"
)

func TestCacheLookupMiss(t *testing.T) {
	c := NewTranspositionCache()
	score, hasScore, move, hasMove := c.Lookup(42, 3)
	assert.False(t, hasScore)
	assert.False(t, hasMove)
	assert.Zero(t, score)
	assert.Zero(t, move)
}

func TestCacheStoreThenLookupAtOrBelowDepth(t *testing.T) {
	c := NewTranspositionCache()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	c.Store(7, 4, 120, m, true)

	score, hasScore, move, hasMove := c.Lookup(7, 4)
	assert.True(t, hasScore)
	assert.Equal(t, int32(120), score)
	assert.True(t, hasMove)
	assert.Equal(t, m, move)

	score, hasScore, move, hasMove = c.Lookup(7, 2)
	assert.True(t, hasScore)
	assert.Equal(t, int32(120), score)
	assert.Equal(t, m, move)
}

func TestCacheLookupDeeperThanStoredMisses(t *testing.T) {
	c := NewTranspositionCache()
	m := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	c.Store(7, 2, 120, m, true)

	score, hasScore, move, hasMove := c.Lookup(7, 4)
	assert.False(t, hasScore)
	assert.Zero(t, score)
	// The move hint survives an insufficient-depth miss.
	assert.True(t, hasMove)
	assert.Equal(t, m, move)
}

func TestCacheShallowerStoreIsNoOp(t *testing.T) {
	c := NewTranspositionCache()
	deep := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	c.Store(9, 5, 200, deep, true)

	shallow := board.Move{From: board.NewSquare(3, 1), To: board.NewSquare(3, 3)}
	c.Store(9, 3, -50, shallow, true)

	score, hasScore, move, _ := c.Lookup(9, 5)
	assert.True(t, hasScore)
	assert.Equal(t, int32(200), score)
	assert.Equal(t, deep, move)
}

func TestCacheEqualDepthOverwrites(t *testing.T) {
	c := NewTranspositionCache()
	first := board.Move{From: board.NewSquare(4, 1), To: board.NewSquare(4, 3)}
	c.Store(9, 5, 200, first, true)

	second := board.Move{From: board.NewSquare(3, 1), To: board.NewSquare(3, 3)}
	c.Store(9, 5, -10, second, true)

	score, hasScore, move, _ := c.Lookup(9, 5)
	assert.True(t, hasScore)
	assert.Equal(t, int32(-10), score)
	assert.Equal(t, second, move)
}

func TestCacheClear(t *testing.T) {
	c := NewTranspositionCache()
	c.Store(1, 1, 1, board.Move{}, true)
	c.Clear()

	_, hasScore, _, hasMove := c.Lookup(1, 1)
	assert.False(t, hasScore)
	assert.False(t, hasMove)
}
