package agent

import (
	"errors"
	"testing"

	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	col int
	err error
}

func (s stubSearcher) FindNextMove(game.Board, game.Side) (int, error) {
	return s.col, s.err
}

func (s stubSearcher) Name() string {
	return "stub"
}

var fullFirstColumn = game.MustParseBoard(
	"X......",
	"O......",
	"X......",
	"O......",
	"X......",
	"O......",
)

func TestSearchAgentFallback(t *testing.T) {
	obs := game.ObservationFor(fullFirstColumn, game.SideA)

	t.Run("search error", func(t *testing.T) {
		a := NewSearchAgent("stub", stubSearcher{col: -1, err: errors.New("boom")})
		for i := 0; i < 50; i++ {
			col, metric := a.FindMove(obs)
			require.True(t, obs.Mask.Allows(col), "Column %d should be legal", col)
			require.True(t, metric.Fallback)
		}
	})

	t.Run("column outside the mask", func(t *testing.T) {
		a := NewSearchAgent("stub", stubSearcher{col: 0})
		for i := 0; i < 50; i++ {
			col, _ := a.FindMove(obs)
			require.NotEqual(t, 0, col)
			require.True(t, obs.Mask.Allows(col))
		}
	})

	t.Run("overlapping planes", func(t *testing.T) {
		bad := game.ObservationFor(game.NewBoard(), game.SideA)
		bad.Planes[0][5][3] = true
		bad.Planes[1][5][3] = true
		a := NewSearchAgent("stub", stubSearcher{col: 3})
		col, metric := a.FindMove(bad)
		require.True(t, bad.Mask.Allows(col))
		require.True(t, metric.Fallback)
	})

	t.Run("empty mask", func(t *testing.T) {
		a := NewSearchAgent("stub", stubSearcher{col: 3})
		col, _ := a.FindMove(game.Observation{})
		require.Equal(t, -1, col)
	})

	t.Run("legal answer passes through", func(t *testing.T) {
		a := NewSearchAgent("stub", stubSearcher{col: 5})
		col, metric := a.FindMove(obs)
		require.Equal(t, 5, col)
		require.False(t, metric.Fallback)
	})
}

func TestSearchAgentScenarios(t *testing.T) {
	searchers := map[string]func() searcher.Searcher{
		"alphabeta": func() searcher.Searcher {
			return searcher.NewAlphaBeta(4, searcher.WithSeed(1), searcher.WithMetrics())
		},
		"mcts": func() searcher.Searcher {
			return searcher.NewMCTS(searcher.WithEpisodes(1000), searcher.WithSeed(1), searcher.WithMetrics())
		},
	}

	for name, newSearcher := range searchers {
		t.Run(name, func(t *testing.T) {
			a := NewSearchAgent(name, newSearcher())

			col, metric := a.FindMove(game.ObservationFor(game.MustParseBoard("OO.....", "XXX...."), game.SideA))
			require.Equal(t, 3, col, "Should take the win")
			require.Equal(t, searcher.ShortcutWin, metric.Shortcut)

			// The side to move is always plane 0, here the O pieces
			col, _ = a.FindMove(game.ObservationFor(game.MustParseBoard("OO.....", "XXX...."), game.SideB))
			require.Equal(t, 3, col, "Should block")

			col, _ = a.FindMove(game.ObservationFor(game.NewBoard(), game.SideA))
			require.Equal(t, game.Center, col, "Should open in the center")

			obs := game.ObservationFor(fullFirstColumn, game.SideA)
			col, _ = a.FindMove(obs)
			require.NotEqual(t, 0, col)
			require.True(t, obs.Mask.Allows(col))
		})
	}
}
