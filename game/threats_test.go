package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWinningMoves(t *testing.T) {
	b := MustParseBoard("XXX.OO.")
	require.Equal(t, []int{3}, WinningMoves(b, SideA))
	require.True(t, IsWinningMove(b, 3, SideA))
	require.False(t, IsWinningMove(b, 6, SideA))
	require.Empty(t, WinningMoves(b, SideB))
}

func TestWinningMovesDoesNotMutate(t *testing.T) {
	b := MustParseBoard("XXX....")
	before := b
	WinningMoves(b, SideA)
	IsSuicide(b, 4, SideB)
	CreatesDoubleThreat(b, 4, SideA)
	require.Equal(t, before, b)
}

func TestCreatesThreat(t *testing.T) {
	b := MustParseBoard(".XX.O.O")
	require.True(t, CreatesThreat(b, 3, SideA), "Playing 3 makes an open three")
	require.False(t, CreatesThreat(b, 5, SideA), "Edge move makes no three")
	require.False(t, CreatesThreat(b, 0, SideB))
}

func TestCreatesDoubleThreat(t *testing.T) {
	t.Run("open two on the bottom row becomes a fork", func(t *testing.T) {
		b := MustParseBoard("..XX..O")
		// ..XXX.. leaves 1 and 5 as winning columns
		require.True(t, CreatesDoubleThreat(b, 4, SideA))
		require.True(t, CreatesDoubleThreat(b, 1, SideA))
		require.False(t, CreatesDoubleThreat(b, 0, SideA))
	})

	t.Run("single threat is not a fork", func(t *testing.T) {
		b := MustParseBoard("OXX...O")
		require.False(t, CreatesDoubleThreat(b, 3, SideA))
	})
}

func TestIsSuicide(t *testing.T) {
	// SideB threatens to complete the second row at column 3 once it is supported
	b := MustParseBoard(
		"OOO....",
		"XXO.X.X",
	)
	require.True(t, IsSuicide(b, 3, SideA), "Filling column 3 lets SideB drop the winning piece")
	require.False(t, IsSuicide(b, 5, SideA))
	require.False(t, IsSuicide(b, 4, SideA))
}
