package search

import (
	"errors"

	"github.com/kjrosa/mateline/internal/board"
	"github.com/kjrosa/mateline/internal/config"
)

// ErrNoLegalMoves is returned by GetBestMove when pos has no legal
// move to play (checkmate or stalemate).
var ErrNoLegalMoves = errors.New("search: position has no legal moves")

// IterationReport describes the outcome of one iterative-deepening
// pass: the depth searched, the move and score it settled on, how
// many nodes it visited, and the principal variation read back out of
// the transposition cache.
type IterationReport struct {
	Depth int
	Move  board.Move
	Score int32
	Nodes int
	PV    []board.Move
}

// SearchReport summarizes a complete GetBestMove call: every
// iterative-deepening pass, and whether the final move came from the
// opening book instead of search.
type SearchReport struct {
	Iterations []IterationReport
	FromBook   bool
}

// Engine ties together the transposition cache, killer table, opening
// book, and evaluator behind a single iterative-deepening search
// entry point.
type Engine struct {
	cache   *TranspositionCache
	killers *KillerTable
	book    *OpeningBook
	cfg     config.EngineConfig

	nodesSearched int
	startingDepth int
}

// NewEngine builds an Engine from the given configuration.
func NewEngine(cfg config.EngineConfig) *Engine {
	return &Engine{
		cache:   NewTranspositionCache(),
		killers: NewKillerTable(),
		book:    NewOpeningBook(),
		cfg:     cfg,
	}
}

// NewDefaultEngine builds an Engine using ~/.mateline/engine.toml, or
// built-in defaults if no config file is present.
func NewDefaultEngine() *Engine {
	return NewEngine(config.LoadEngineConfig())
}

// Evaluate exposes the static evaluator directly, for callers (and
// tests) that want a position's score without running a search.
func (e *Engine) Evaluate(pos *board.Board) int32 {
	return Evaluate(pos)
}

// GetBestMove runs iterative deepening from depth 1 up to maxDepth and
// returns the move the deepest completed iteration preferred, along
// with a report of every iteration. maxDepth <= 0 falls back to the
// configured e.cfg.DefaultDepth. If UseBook is enabled and pos is in
// the opening book, a book move is returned immediately without
// searching.
func (e *Engine) GetBestMove(pos *board.Board, maxDepth int) (board.Move, SearchReport, error) {
	if maxDepth <= 0 {
		maxDepth = e.cfg.DefaultDepth
	}

	if e.cfg.UseBook {
		if m, ok := e.book.Lookup(pos); ok {
			return m, SearchReport{FromBook: true}, nil
		}
	}

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		return board.Move{}, SearchReport{}, ErrNoLegalMoves
	}

	var bestMove board.Move
	hasBestMove := false
	var report SearchReport

	maximizing := pos.ActiveColor == board.White

	e.cache.Clear()
	e.killers.Clear()

	for depth := 1; depth <= maxDepth; depth++ {
		e.startingDepth = depth
		e.nodesSearched = 0

		score, move, hasMove := e.minimax(pos, depth, -maxScore, maxScore, maximizing)
		if hasMove {
			bestMove = move
			hasBestMove = true
		}

		report.Iterations = append(report.Iterations, IterationReport{
			Depth: depth,
			Move:  move,
			Score: score,
			Nodes: e.nodesSearched,
			PV:    e.principalVariation(pos, depth),
		})

		if score >= e.mateThreshold() || score <= -e.mateThreshold() {
			break
		}
	}

	if !hasBestMove {
		bestMove = legal[0]
	}

	return bestMove, report, nil
}

func (e *Engine) mateThreshold() int32 {
	return e.cfg.MateScore
}

// principalVariation walks the transposition cache forward from pos,
// following the best move recorded at each position up to depth plies
// or until the line runs out of cached moves or reaches game end.
func (e *Engine) principalVariation(pos *board.Board, depth int) []board.Move {
	var pv []board.Move

	current := pos.Clone()

	for i := 0; i < depth; i++ {
		_, _, move, hasMove := e.cache.Lookup(current.Fingerprint(), 0)
		if !hasMove {
			break
		}

		legal := current.LegalMoves()
		found := false
		for _, m := range legal {
			if m == move {
				found = true
				break
			}
		}
		if !found {
			break
		}

		pv = append(pv, move)
		current.Push(move)

		if current.IsCheckmate() || current.IsStalemate() {
			break
		}
	}

	return pv
}
