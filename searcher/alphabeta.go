package searcher

import (
	"fmt"
	"math"

	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// staticPreference ranks replacement columns when the chosen move would hand
// the opponent an immediate win
var staticPreference = [game.Cols]int{0, 0, 3, 5, 3, 0, 0}

// AlphaBeta is a depth-limited minimax searcher with alpha-beta pruning.
// Each call uses a fresh transposition table.
type AlphaBeta struct {
	depth   int
	rng     *rand.Rand
	metrics Collector
	table   *TranspositionTable
	last    SearchMetric
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 1 {
		panic("Search depth must be positive")
	}
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	return &AlphaBeta{
		depth:   depth,
		rng:     newRand(s.seed),
		metrics: s.metrics,
	}
}

func (a *AlphaBeta) Name() string {
	return fmt.Sprintf("alphabeta-%d", a.depth)
}

func (a *AlphaBeta) Depth() int {
	return a.depth
}

func (a *AlphaBeta) LastMetric() SearchMetric {
	return a.last
}

// Table returns the transposition table of the most recent search
func (a *AlphaBeta) Table() *TranspositionTable {
	return a.table
}

func (a *AlphaBeta) FindNextMove(board game.Board, side game.Side) (int, error) {
	a.metrics.Start(a.Name())
	defer func() { a.last = a.metrics.Complete() }()

	legal := game.OrderByCenter(board.LegalMoves())
	if len(legal) == 0 {
		return -1, game.ErrNoLegalMove
	}
	if len(legal) == 1 {
		a.metrics.SetShortcut(ShortcutOnly)
		return legal[0], nil
	}
	if col, reason := immediate(&board, side, legal, false); reason != NoShortcut {
		a.metrics.SetShortcut(reason)
		return col, nil
	}

	a.table = NewTranspositionTable()
	col, score, err := a.searchRoot(&board, side, legal)
	if err != nil || col < 0 {
		log.Warn().Err(err).Msgf("alpha-beta search failed on\n%s", board)
		a.metrics.SetFallback()
		return legal[a.rng.Intn(len(legal))], nil
	}

	col = avoidSuicide(board, side, legal, col)
	log.Debug().
		Int("column", col).
		Int("score", score).
		Int("table", a.table.Len()).
		Msg("alpha-beta search complete")
	return col, nil
}

func (a *AlphaBeta) searchRoot(board *game.Board, side game.Side, ordered []int) (int, int, error) {
	best, bestScore := -1, math.MinInt
	alpha, beta := math.MinInt+1, math.MaxInt
	for _, col := range ordered {
		row, err := board.Play(col, side)
		if err != nil {
			return -1, 0, err
		}
		score, err := a.minimax(board, a.table, side, a.depth-1, alpha, beta, false)
		board.Undo(col, row)
		if err != nil {
			return -1, 0, err
		}
		if score > bestScore {
			best, bestScore = col, score
		}
		alpha = max(alpha, bestScore)
	}
	return best, bestScore, nil
}

// minimax scores board for side. A nil table disables memoization.
func (a *AlphaBeta) minimax(board *game.Board, table *TranspositionTable, side game.Side, depth, alpha, beta int, maximizing bool) (int, error) {
	a.metrics.AddNode()

	fp := board.Fingerprint()
	if table != nil {
		if score, kind, ok := table.Probe(fp); ok {
			a.metrics.AddTableHit()
			switch kind {
			case Exact:
				return score, nil
			case Lower:
				alpha = max(alpha, score)
			case Upper:
				beta = min(beta, score)
			}
			if alpha >= beta {
				return score, nil
			}
		}
	}

	if board.IsWinningFor(side) {
		return WinScore + depth, nil
	}
	if board.IsWinningFor(side.Opponent()) {
		return -(WinScore + depth), nil
	}
	if board.IsFull() {
		return 0, nil
	}
	if depth == 0 {
		score := game.Score(*board, side)
		if table != nil {
			table.Store(fp, score, Exact)
		}
		return score, nil
	}

	alphaOrig, betaOrig := alpha, beta
	mover := side
	value := math.MinInt + 1
	if !maximizing {
		mover = side.Opponent()
		value = math.MaxInt
	}

	for _, col := range game.OrderByCenter(board.LegalMoves()) {
		row, err := board.Play(col, mover)
		if err != nil {
			return 0, err
		}
		score, err := a.minimax(board, table, side, depth-1, alpha, beta, !maximizing)
		board.Undo(col, row)
		if err != nil {
			return 0, err
		}

		if maximizing {
			value = max(value, score)
			alpha = max(alpha, value)
		} else {
			value = min(value, score)
			beta = min(beta, value)
		}
		if alpha >= beta {
			a.metrics.AddCutoff()
			break
		}
	}

	if table != nil {
		kind := Exact
		if value <= alphaOrig {
			kind = Upper
		} else if value >= betaOrig {
			kind = Lower
		}
		table.Store(fp, value, kind)
	}
	return value, nil
}

// avoidSuicide replaces col when it lets the opponent win next turn.
// Among the safe columns the highest static preference wins, ties go to the
// column nearest the center. If every column is unsafe col is kept.
func avoidSuicide(board game.Board, side game.Side, ordered []int, col int) int {
	if !game.IsSuicide(board, col, side) {
		return col
	}

	replacement, best := -1, -1
	for _, c := range ordered {
		if game.IsSuicide(board, c, side) {
			continue
		}
		if staticPreference[c] > best {
			replacement, best = c, staticPreference[c]
		}
	}
	if replacement < 0 {
		return col
	}
	log.Debug().Msgf("column %d hands the opponent a win, playing %d instead", col, replacement)
	return replacement
}
