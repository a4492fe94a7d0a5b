package search

import "github.com/kjrosa/mateline/internal/board"

// minimax performs an alpha-beta search to depth plies, using the
// transposition cache for memoization, consulting and updating killer
// moves, and dropping into quiescence search at the leaves. maximizing
// is true when White is to move in pos: scores throughout are from
// White's perspective, per Evaluate.
func (e *Engine) minimax(pos *board.Board, depth int, alpha, beta int32, maximizing bool) (int32, board.Move, bool) {
	e.nodesSearched++

	fingerprint := pos.Fingerprint()

	score, hasScore, ttMove, hasTTMove := e.cache.Lookup(fingerprint, depth)
	if hasScore {
		return score, ttMove, hasTTMove
	}

	if pos.IsCheckmate() {
		var score int32
		if pos.ActiveColor == board.White {
			score = -e.cfg.MateScore - int32(depth)
		} else {
			score = e.cfg.MateScore + int32(depth)
		}
		e.cache.Store(fingerprint, depth, score, board.Move{}, false)
		return score, board.Move{}, false
	}

	if pos.IsStalemate() || pos.IsInsufficientMaterial() {
		e.cache.Store(fingerprint, depth, 0, board.Move{}, false)
		return 0, board.Move{}, false
	}

	if depth <= 0 {
		return e.quiescence(pos, alpha, beta, maximizing, 0)
	}

	legal := pos.LegalMoves()
	ordered := OrderMoves(pos, legal, ttMove, hasTTMove, e.killers, depth)

	var bestMove board.Move
	hasBestMove := false

	if maximizing {
		bestScore := int32(-maxScore)
		for _, m := range ordered {
			pos.Push(m)
			score, _, _ := e.minimax(pos, depth-1, alpha, beta, false)
			pos.Pop()

			if score > bestScore {
				bestScore = score
				bestMove = m
				hasBestMove = true
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if beta <= alpha {
				if !pos.IsCapture(m) && m.Promotion == board.Empty {
					e.killers.Add(m, depth)
				}
				break
			}
		}
		e.cache.Store(fingerprint, depth, bestScore, bestMove, hasBestMove)
		return bestScore, bestMove, hasBestMove
	}

	bestScore := int32(maxScore)
	for _, m := range ordered {
		pos.Push(m)
		score, _, _ := e.minimax(pos, depth-1, alpha, beta, true)
		pos.Pop()

		if score < bestScore {
			bestScore = score
			bestMove = m
			hasBestMove = true
		}
		if bestScore < beta {
			beta = bestScore
		}
		if beta <= alpha {
			if !pos.IsCapture(m) && m.Promotion == board.Empty {
				e.killers.Add(m, depth)
			}
			break
		}
	}
	e.cache.Store(fingerprint, depth, bestScore, bestMove, hasBestMove)
	return bestScore, bestMove, hasBestMove
}

// maxScore bounds the initial alpha/beta window; it sits comfortably
// above any mate score so a forced mate is never clipped.
const maxScore int32 = 1 << 30
