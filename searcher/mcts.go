package searcher

import (
	"time"

	"connect4/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS is a single-threaded UCT searcher with heuristic rollouts. It stops
// when the time budget or the episode cap runs out, whichever comes first,
// and always completes at least one episode.
type MCTS struct {
	duration    time.Duration
	episodes    int
	exploration float64
	early       earlyTermination
	rng         *rand.Rand
	metrics     Collector
	tree        *tree
	last        SearchMetric
}

func NewMCTS(options ...Option) *MCTS {
	s := defaultSettings()
	for _, option := range options {
		option(&s)
	}
	if s.episodes <= 0 && s.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return &MCTS{
		duration:    s.duration,
		episodes:    s.episodes,
		exploration: s.exploration,
		early:       s.early,
		rng:         newRand(s.seed),
		metrics:     s.metrics,
	}
}

func (m *MCTS) Name() string {
	return "mcts"
}

func (m *MCTS) LastMetric() SearchMetric {
	return m.last
}

// Policy returns the root visit distribution of the most recent search
func (m *MCTS) Policy() map[int]float64 {
	if m.tree == nil {
		return map[int]float64{}
	}
	return m.tree.Policy()
}

func (m *MCTS) FindNextMove(board game.Board, side game.Side) (int, error) {
	m.metrics.Start(m.Name())
	defer func() { m.last = m.metrics.Complete() }()

	legal := game.OrderByCenter(board.LegalMoves())
	if len(legal) == 0 {
		return -1, game.ErrNoLegalMove
	}
	if len(legal) == 1 {
		m.metrics.SetShortcut(ShortcutOnly)
		return legal[0], nil
	}
	if col, reason := immediate(&board, side, legal, true); reason != NoShortcut {
		m.metrics.SetShortcut(reason)
		return col, nil
	}

	m.tree = newTree(board, side.Opponent())
	deadline := time.Now().Add(m.duration)
	episodes := 0
	for episodes < m.episodes {
		if err := m.simulate(side); err != nil {
			log.Warn().Err(err).Msg("MCTS episode failed")
			break
		}
		episodes++
		m.metrics.AddEpisode()
		if !time.Now().Before(deadline) {
			break
		}
	}

	best := m.tree.mostVisited()
	if best == noParent {
		log.Warn().Msgf("MCTS found no move after %d episodes", episodes)
		m.metrics.SetFallback()
		return rolloutMove(board, legal, side, m.rng), nil
	}

	col := m.tree.nodes[best].move
	log.Debug().
		Int("column", col).
		Int("episodes", episodes).
		Int("nodes", m.tree.size()).
		Msg("MCTS search complete")
	return col, nil
}

// simulate runs one select, expand, rollout and backup pass
func (m *MCTS) simulate(root game.Side) error {
	t := m.tree

	var id int32
	for t.fullyExpanded(id) && !t.leaf(id) {
		id = t.selectChild(id, m.exploration)
	}

	if !t.fullyExpanded(id) {
		n := &t.nodes[id]
		move := expansionMove(n.board, n.untried, t.toMove(id))
		child, err := t.expand(id, move)
		if err != nil {
			return err
		}
		id = child
		m.metrics.AddNode()
	}

	n := &t.nodes[id]
	result, err := m.rollout(n.board, t.toMove(id), root)
	if err != nil {
		return err
	}
	t.backup(id, root, result)
	return nil
}

// rollout plays board out with the rollout policy and returns the outcome
// for root
func (m *MCTS) rollout(board game.Board, player, root game.Side) (float64, error) {
	switch board.Winner() {
	case root:
		m.metrics.AddFullPlayout()
		return Win, nil
	case root.Opponent():
		m.metrics.AddFullPlayout()
		return Loss, nil
	}

	for ply := 0; ply < game.MaxPlies; ply++ {
		legal := board.LegalMoves()
		if len(legal) == 0 {
			m.metrics.AddFullPlayout()
			return Draw, nil
		}

		if m.early.enabled && ply > m.early.minPlies {
			if result, ok := m.early.judge(board, root); ok {
				m.metrics.AddEarlyStop()
				return result, nil
			}
		}

		col := rolloutMove(board, legal, player, m.rng)
		if _, err := board.Play(col, player); err != nil {
			return Draw, err
		}
		if board.IsWinningFor(player) {
			m.metrics.AddFullPlayout()
			if player == root {
				return Win, nil
			}
			return Loss, nil
		}
		player = player.Opponent()
	}
	return Draw, nil
}

// judge maps a lopsided position to a rollout result. A value has to pass a
// threshold, reaching it is not enough. The overwhelming threshold is
// checked first, it is the stricter of the two.
func (e earlyTermination) judge(board game.Board, root game.Side) (float64, bool) {
	value := game.Position(board, root)
	switch {
	case value > e.overwhelming:
		return Win, true
	case value < -e.overwhelming:
		return Loss, true
	case value > e.strong:
		return LikelyWin, true
	case value < -e.strong:
		return LikelyLoss, true
	}
	return 0, false
}
