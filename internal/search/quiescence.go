package search

import "github.com/kjrosa/mateline/internal/board"

// noisyMoves returns the legal moves that quiescence search considers:
// captures and promotions. Quiet moves are never searched past the
// nominal depth cutoff.
func noisyMoves(pos *board.Board, legal []board.Move) []board.Move {
	var noisy []board.Move
	for _, m := range legal {
		if pos.IsCapture(m) || m.Promotion != board.Empty {
			noisy = append(noisy, m)
		}
	}
	return noisy
}

// quiescence extends search past the nominal depth along noisy lines
// only, using a stand-pat evaluation as a floor/ceiling and delta
// pruning to discard captures with no realistic chance of mattering.
// maximizing follows the same convention as minimax: true when the
// side to move is White. The ply cap and delta-pruning margin come
// from the engine's configuration (e.cfg.QuiescenceCap, e.cfg.BigDelta).
func (e *Engine) quiescence(pos *board.Board, alpha, beta int32, maximizing bool, qDepth int) (int32, board.Move, bool) {
	e.nodesSearched++

	if qDepth >= e.cfg.QuiescenceCap {
		return Evaluate(pos), board.Move{}, false
	}

	standPat := Evaluate(pos)
	bestScore := standPat
	var bestMove board.Move
	hasBestMove := false

	if maximizing {
		if standPat >= beta {
			return beta, board.Move{}, false
		}
		if standPat+e.cfg.BigDelta < alpha {
			return alpha, board.Move{}, false
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha, board.Move{}, false
		}
		if standPat-e.cfg.BigDelta > beta {
			return beta, board.Move{}, false
		}
		if standPat < beta {
			beta = standPat
		}
	}

	noisy := noisyMoves(pos, pos.LegalMoves())
	if len(noisy) == 0 {
		return standPat, board.Move{}, false
	}

	ordered := OrderMoves(pos, noisy, board.Move{}, false, e.killers, 0)

	if maximizing {
		for _, m := range ordered {
			pos.Push(m)
			score, _, _ := e.quiescence(pos, alpha, beta, false, qDepth+1)
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
				break
			}
		}
	} else {
		for _, m := range ordered {
			pos.Push(m)
			score, _, _ := e.quiescence(pos, alpha, beta, true, qDepth+1)
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
				break
			}
		}
	}

	return bestScore, bestMove, hasBestMove
}
