package searcher

import (
	"testing"

	"connect4/game"

	"github.com/stretchr/testify/require"
)

func TestExpansionMove(t *testing.T) {
	t.Run("win", func(t *testing.T) {
		b := game.MustParseBoard("OO.....", "XXX....")
		require.Equal(t, 3, expansionMove(b, game.OrderByCenter(b.LegalMoves()), game.SideA))
	})

	t.Run("block", func(t *testing.T) {
		b := game.MustParseBoard("XX.....", "OOO....")
		require.Equal(t, 3, expansionMove(b, game.OrderByCenter(b.LegalMoves()), game.SideA))
	})

	t.Run("threat before center", func(t *testing.T) {
		b := game.MustParseBoard("XX.....")
		require.Equal(t, 2, expansionMove(b, []int{4, 6, 2}, game.SideA))
	})

	t.Run("center", func(t *testing.T) {
		require.Equal(t, 4, expansionMove(game.NewBoard(), []int{0, 6, 4}, game.SideA))
	})

	t.Run("first untried", func(t *testing.T) {
		require.Equal(t, 6, expansionMove(game.NewBoard(), []int{6, 0}, game.SideA))
	})
}

func TestRolloutMove(t *testing.T) {
	rng := newRand(7)

	t.Run("win", func(t *testing.T) {
		b := game.MustParseBoard("OO.....", "XXX....")
		for i := 0; i < 20; i++ {
			require.Equal(t, 3, rolloutMove(b, b.LegalMoves(), game.SideA, rng))
		}
	})

	t.Run("block", func(t *testing.T) {
		b := game.MustParseBoard("XX.....", "OOO....")
		for i := 0; i < 20; i++ {
			require.Equal(t, 3, rolloutMove(b, b.LegalMoves(), game.SideA, rng))
		}
	})

	t.Run("double threat", func(t *testing.T) {
		b := game.MustParseBoard(".OO....", ".XX....")
		for i := 0; i < 20; i++ {
			require.Equal(t, 3, rolloutMove(b, b.LegalMoves(), game.SideA, rng))
		}
	})

	t.Run("only legal moves", func(t *testing.T) {
		b := game.MustParseBoard(
			"X......",
			"O......",
			"X......",
			"O......",
			"X......",
			"O......",
		)
		legal := b.LegalMoves()
		for i := 0; i < 200; i++ {
			col := rolloutMove(b, legal, game.SideA, rng)
			require.True(t, b.CanPlay(col), "Column %d should be playable", col)
		}
	})
}

func TestEarlyTermination(t *testing.T) {
	// SideA's single center piece is worth 11, SideB has nothing
	b := game.MustParseBoard("...X...")
	require.Equal(t, 11, game.Position(b, game.SideA))

	tests := []struct {
		name         string
		strong       int
		overwhelming int
		side         game.Side
		result       float64
		ok           bool
	}{
		{"strong advantage", 5, 20, game.SideA, LikelyWin, true},
		{"strong disadvantage", 5, 20, game.SideB, LikelyLoss, true},
		{"overwhelming checked before strong", 5, 10, game.SideA, Win, true},
		{"overwhelming disadvantage", 5, 10, game.SideB, Loss, true},
		{"below thresholds", 12, 20, game.SideA, 0, false},
		{"reaching the strong threshold is not enough", 11, 20, game.SideA, 0, false},
		{"reaching the overwhelming threshold only counts as strong", 5, 11, game.SideB, LikelyLoss, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := earlyTermination{enabled: true, strong: tt.strong, overwhelming: tt.overwhelming}
			result, ok := e.judge(b, tt.side)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.result, result)
		})
	}
}
