// Package search implements the alpha-beta search core: move ordering,
// quiescence search, the transposition cache, killer moves, the
// centipawn evaluator, the opening book, and the iterative-deepening
// driver that ties them together behind Engine.
package search

import (
	"github.com/kjrosa/mateline/internal/board"
	"github.com/kjrosa/mateline/internal/config"
)

// pieceValues gives the material value of each piece kind in
// centipawns. The king is priced at zero; it is never captured.
var pieceValues = [7]int32{
	board.Empty:  0,
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 320,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   0,
}

// Piece-square tables are written from White's point of view with
// rank 8 first: index 0 is a8 and index 63 is h1, the vertical mirror
// of Board.Squares. A White piece on square sq looks up table[sq^56];
// a Black piece looks up table[sq] directly, which mirrors the table
// across the board's equator for Black without a second table.
var pawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// MateScore is the default magnitude used for a forced-mate
// evaluation; actual terminal scores add the remaining depth to it so
// that faster mates score higher than slower ones. An Engine reads its
// own copy from cfg.MateScore (see EngineDefaults), which starts equal
// to this value but can be overridden by ~/.mateline/engine.toml.
var MateScore = config.EngineDefaults().MateScore

// pieceSquareValue returns the positional bonus for a piece kind on a
// square, from the mover's own perspective (White is mirrored via
// sq^56; Black reads the table directly).
func pieceSquareValue(kind board.PieceType, sq board.Square, color board.Color) int32 {
	var table *[64]int32
	switch kind {
	case board.Pawn:
		table = &pawnTable
	case board.Knight:
		table = &knightTable
	case board.Bishop:
		table = &bishopTable
	case board.Rook:
		table = &rookTable
	case board.Queen:
		table = &queenTable
	case board.King:
		table = &kingTable
	default:
		return 0
	}

	if color == board.White {
		return table[int(sq)^56]
	}
	return table[sq]
}

// Evaluate scores pos in centipawns from White's perspective: positive
// favors White, negative favors Black. Terminal positions (checkmate,
// stalemate, draws) are scored by the caller before Evaluate is
// reached during search; Evaluate itself always computes the static
// material-and-positional score regardless of game state, so it is
// also usable directly as a standalone position scorer.
func Evaluate(pos *board.Board) int32 {
	var score int32

	for sq := board.Square(0); sq < 64; sq++ {
		piece := pos.Squares[sq]
		if piece.IsEmpty() {
			continue
		}

		kind := piece.Type()
		value := pieceValues[kind] + pieceSquareValue(kind, sq, piece.Color())

		if piece.Color() == board.White {
			score += value
		} else {
			score -= value
		}
	}

	score += evaluatePawnStructure(pos)
	score += evaluateKingSafety(pos)

	return score
}

// evaluatePawnStructure penalizes doubled pawns and rewards passed
// pawns with a bonus that grows with the pawn's distance from its
// promotion rank (15 plus 5 per rank still to go).
func evaluatePawnStructure(pos *board.Board) int32 {
	whitePawns := pos.Pieces(board.Pawn, board.White)
	blackPawns := pos.Pieces(board.Pawn, board.Black)

	if len(whitePawns) == 0 && len(blackPawns) == 0 {
		return 0
	}

	var score int32

	var whiteFileCounts, blackFileCounts [8]int
	for _, sq := range whitePawns {
		whiteFileCounts[sq.File()]++
	}
	for _, sq := range blackPawns {
		blackFileCounts[sq.File()]++
	}

	for _, count := range whiteFileCounts {
		if count > 1 {
			score -= 15 * int32(count-1)
		}
	}
	for _, count := range blackFileCounts {
		if count > 1 {
			score += 15 * int32(count-1)
		}
	}

	for _, sq := range whitePawns {
		file, rank := sq.File(), sq.Rank()
		passed := true
		for _, enemySq := range blackPawns {
			ef, er := enemySq.File(), enemySq.Rank()
			if abs(ef-file) <= 1 && er > rank {
				passed = false
				break
			}
		}
		if passed {
			score += 15 + int32(7-rank)*5
		}
	}

	for _, sq := range blackPawns {
		file, rank := sq.File(), sq.Rank()
		passed := true
		for _, enemySq := range whitePawns {
			ef, er := enemySq.File(), enemySq.Rank()
			if abs(ef-file) <= 1 && er < rank {
				passed = false
				break
			}
		}
		if passed {
			score -= 15 + int32(rank)*5
		}
	}

	return score
}

// evaluateKingSafety scores castling rights, pawn shelter, and king
// exposure, skipped entirely once the board has thinned to 12 pieces
// or fewer, where king activity matters more than shelter.
func evaluateKingSafety(pos *board.Board) int32 {
	if pos.PieceCount() <= 12 {
		return 0
	}

	whiteKing := pos.KingSquare(board.White)
	blackKing := pos.KingSquare(board.Black)
	if whiteKing == board.NoSquare || blackKing == board.NoSquare {
		return 0
	}

	whitePawns := pos.Pieces(board.Pawn, board.White)
	blackPawns := pos.Pieces(board.Pawn, board.Black)

	var score int32
	score += kingSafetyTerm(pos, whiteKing, board.White, whitePawns, 1)
	score += kingSafetyTerm(pos, blackKing, board.Black, blackPawns, -1)
	return score
}

func kingSafetyTerm(pos *board.Board, kingSq board.Square, color board.Color, pawns []board.Square, multiplier int32) int32 {
	var score int32
	file, rank := kingSq.File(), kingSq.Rank()

	if pos.HasKingsideCastlingRights(color) {
		score += multiplier * 15
	}
	if pos.HasQueensideCastlingRights(color) {
		score += multiplier * 10
	}

	for _, checkFile := range []int{file - 1, file, file + 1} {
		if checkFile < 0 || checkFile > 7 {
			continue
		}
		for _, pawnSq := range pawns {
			pf, pr := pawnSq.File(), pawnSq.Rank()
			if pf != checkFile {
				continue
			}
			goodShelter := (color == board.White && pr >= 1 && pr <= 2) ||
				(color == board.Black && pr >= 5 && pr <= 6)
			if goodShelter {
				bonus := int32(8)
				if checkFile == file {
					bonus = 12
				}
				score += multiplier * bonus
				break
			}
		}
	}

	if color == board.White && rank > 2 {
		score += multiplier * (-int32(rank-2) * 8)
	} else if color == board.Black && rank < 5 {
		score += multiplier * (-int32(5-rank) * 8)
	}

	if file >= 2 && file <= 5 {
		score += multiplier * -10
	}

	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
