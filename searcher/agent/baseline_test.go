package agent

import (
	"testing"

	"connect4/game"
	"connect4/searcher"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	a := NewRandomAgent(5)
	obs := game.ObservationFor(fullFirstColumn, game.SideA)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		col, _ := a.FindMove(obs)
		require.True(t, obs.Mask.Allows(col))
		seen[col] = true
	}
	require.Len(t, seen, 6, "Every legal column should come up eventually")

	col, _ := a.FindMove(game.Observation{})
	require.Equal(t, -1, col)
}

func TestRuleAgent(t *testing.T) {
	a := NewRuleAgent()

	t.Run("win", func(t *testing.T) {
		col, metric := a.FindMove(game.ObservationFor(game.MustParseBoard("OO.....", "XXX...."), game.SideA))
		require.Equal(t, 3, col)
		require.Equal(t, searcher.ShortcutWin, metric.Shortcut)
	})

	t.Run("block", func(t *testing.T) {
		col, metric := a.FindMove(game.ObservationFor(game.MustParseBoard("XX.....", "OOO...."), game.SideA))
		require.Equal(t, 3, col)
		require.Equal(t, searcher.ShortcutBlock, metric.Shortcut)
	})

	t.Run("center order", func(t *testing.T) {
		col, _ := a.FindMove(game.ObservationFor(game.NewBoard(), game.SideA))
		require.Equal(t, 3, col)

		b := game.MustParseBoard(
			"...X...",
			"...O...",
			"...X...",
			"...O...",
			"...X...",
			"...O...",
		)
		col, _ = a.FindMove(game.ObservationFor(b, game.SideA))
		require.Equal(t, 2, col)
	})
}
