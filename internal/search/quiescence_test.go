package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjrosa/mateline/internal/board"
	"github.com/kjrosa/mateline/internal/config"
)

func newTestEngine() *Engine {
	return &Engine{
		cache:   NewTranspositionCache(),
		killers: NewKillerTable(),
		cfg:     config.EngineDefaults(),
	}
}

func TestQuiescenceQuietPositionReturnsStandPat(t *testing.T) {
	// White is up a queen with no captures available anywhere on the
	// board; quiescence must settle on the static evaluation without
	// expanding any quiet move.
	pos, err := board.FromFEN("7k/8/8/8/8/8/8/1Q5K w - - 0 1")
	require.NoError(t, err)

	e := newTestEngine()
	standPat := Evaluate(pos)

	score, _, hasMove := e.quiescence(pos, -maxScore, maxScore, true, 0)
	assert.Equal(t, standPat, score)
	assert.False(t, hasMove)
}

func TestQuiescenceScoreWithinWindow(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/3q4/2P5/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	e := newTestEngine()
	alpha, beta := int32(-500), int32(500)
	standPat := Evaluate(pos)

	score, _, _ := e.quiescence(pos, alpha, beta, true, 0)

	lower := alpha
	if standPat < lower {
		lower = standPat
	}
	upper := beta
	if standPat > upper {
		upper = standPat
	}

	assert.GreaterOrEqual(t, score, lower)
	assert.LessOrEqual(t, score, upper)
}

func TestQuiescenceCapStopsRecursion(t *testing.T) {
	// A position with perpetual recapture potential must still
	// terminate once qDepth reaches the cap, returning a plain
	// evaluation rather than recursing forever.
	pos, err := board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	e := newTestEngine()
	score, move, hasMove := e.quiescence(pos, -maxScore, maxScore, true, e.cfg.QuiescenceCap)

	assert.Equal(t, Evaluate(pos), score)
	assert.False(t, hasMove)
	assert.Equal(t, board.Move{}, move)
}

func TestNoisyMovesFiltersToCapturesAndPromotions(t *testing.T) {
	pos, err := board.FromFEN("8/P6k/8/8/8/3p4/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	noisy := noisyMoves(pos, pos.LegalMoves())
	require.NotEmpty(t, noisy)

	for _, m := range noisy {
		isPromo := m.Promotion != board.Empty
		isCapture := pos.IsCapture(m)
		assert.True(t, isPromo || isCapture, "move %s is neither a capture nor a promotion", m)
	}
}

func TestQuiescenceDeltaPruningSkipsHopelessCapture(t *testing.T) {
	// White to move, massively behind, with a single available capture
	// that cannot possibly close the gap even winning a queen. Delta
	// pruning should bail out at alpha without a winning line found.
	pos, err := board.FromFEN("2q1k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	e := newTestEngine()
	alpha := int32(9000)
	score, _, hasMove := e.quiescence(pos, alpha, maxScore, true, 0)

	assert.Equal(t, alpha, score)
	assert.False(t, hasMove)
}
