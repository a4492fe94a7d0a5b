package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjrosa/mateline/internal/board"
)

func TestOrderMovesTTMoveFirst(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	quiet := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 0)}  // e1d1
	capture := board.Move{From: board.NewSquare(4, 3), To: board.NewSquare(3, 4)} // e4xd5
	ttMove := quiet

	killers := NewKillerTable()
	ordered := OrderMoves(pos, []board.Move{capture, quiet}, ttMove, true, killers, 1)

	assert.Equal(t, ttMove, ordered[0])
}

func TestOrderMovesCapturesBeatQuietsWithoutTTMove(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	quiet := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 0)}
	capture := board.Move{From: board.NewSquare(4, 3), To: board.NewSquare(3, 4)}

	killers := NewKillerTable()
	ordered := OrderMoves(pos, []board.Move{quiet, capture}, board.Move{}, false, killers, 1)

	assert.Equal(t, capture, ordered[0])
}

func TestOrderMovesQueenPromotionBeatsOtherPromotion(t *testing.T) {
	pos, err := board.FromFEN("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	queenPromo := board.Move{From: board.NewSquare(4, 6), To: board.NewSquare(4, 7), Promotion: board.Queen}
	knightPromo := board.Move{From: board.NewSquare(4, 6), To: board.NewSquare(4, 7), Promotion: board.Knight}

	killers := NewKillerTable()
	ordered := OrderMoves(pos, []board.Move{knightPromo, queenPromo}, board.Move{}, false, killers, 1)

	assert.Equal(t, queenPromo, ordered[0])
}

func TestOrderMovesKillerBeatsOtherQuiet(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	killerMove := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 0)}
	otherQuiet := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 1)}

	killers := NewKillerTable()
	killers.Add(killerMove, 2)

	ordered := OrderMoves(pos, []board.Move{otherQuiet, killerMove}, board.Move{}, false, killers, 2)

	assert.Equal(t, killerMove, ordered[0])
}

func TestOrderMovesMVVLVA(t *testing.T) {
	// Two attackers can take the same queen; the cheaper attacker
	// (pawn) should be preferred over the rook.
	pos, err := board.FromFEN("4k3/8/8/3q4/2P5/8/3R4/4K3 w - - 0 1")
	require.NoError(t, err)

	pawnTakesQueen := board.Move{From: board.NewSquare(2, 3), To: board.NewSquare(3, 4)}
	rookTakesQueen := board.Move{From: board.NewSquare(3, 1), To: board.NewSquare(3, 4)}

	killers := NewKillerTable()
	ordered := OrderMoves(pos, []board.Move{rookTakesQueen, pawnTakesQueen}, board.Move{}, false, killers, 1)

	assert.Equal(t, pawnTakesQueen, ordered[0])
}

func TestOrderMovesStableOnTies(t *testing.T) {
	pos, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	a := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 0)}
	b := board.Move{From: board.NewSquare(4, 0), To: board.NewSquare(3, 1)}

	killers := NewKillerTable()
	ordered := OrderMoves(pos, []board.Move{a, b}, board.Move{}, false, killers, 1)

	assert.Equal(t, []board.Move{a, b}, ordered)
}
