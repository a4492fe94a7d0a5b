package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjrosa/mateline/internal/board"
)

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	pos := board.NewBoard()
	assert.Equal(t, int32(0), Evaluate(pos))
}

func TestEvaluateIsPure(t *testing.T) {
	pos, err := board.FromFEN("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	require.NoError(t, err)

	first := Evaluate(pos)
	second := Evaluate(pos)
	assert.Equal(t, first, second)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White has an extra queen and no other material difference; the
	// piece-square terms are small next to the queen's value.
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)

	score := Evaluate(pos)
	assert.Greater(t, score, int32(800))
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	// A white pawn on e4 mirrored to a black pawn on e5 (same file,
	// rank flipped, color flipped), kings held fixed. evaluate on the
	// mirrored position must be the exact negation.
	original, err := board.FromFEN("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	mirrored, err := board.FromFEN("4k3/8/8/4p3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, -Evaluate(original), Evaluate(mirrored))
}

func TestEvaluateKingSafetyGatedOffInEndgame(t *testing.T) {
	// Two kings and a rook: well under the 12-piece gate.
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	withoutCastle, err := board.FromFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, Evaluate(pos), Evaluate(withoutCastle), "king safety term must be gated off with <=12 pieces")
}
