package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayAndUndo(t *testing.T) {
	t.Run("pieces stack from the bottom row", func(t *testing.T) {
		b := NewBoard()

		row, err := b.Play(3, SideA)
		require.NoError(t, err)
		require.Equal(t, Rows-1, row, "First piece should land on the bottom row")

		row, err = b.Play(3, SideB)
		require.NoError(t, err)
		require.Equal(t, Rows-2, row, "Second piece should land on top of the first")
		require.Equal(t, 2, b.Height(3))
		require.Equal(t, SideA, b.At(Rows-1, 3))
		require.Equal(t, SideB, b.At(Rows-2, 3))
	})

	t.Run("full column is rejected", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			_, err := b.Play(0, SideA)
			require.NoError(t, err)
		}

		_, err := b.Play(0, SideB)
		require.ErrorIs(t, err, ErrColumnFull)
		require.False(t, b.CanPlay(0))
		require.NotContains(t, b.LegalMoves(), 0)
	})

	t.Run("out of range column is rejected", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Play(Cols, SideA)
		require.ErrorIs(t, err, ErrInvalidColumn)
		_, err = b.Play(-1, SideA)
		require.ErrorIs(t, err, ErrInvalidColumn)
	})

	t.Run("undo restores the previous position", func(t *testing.T) {
		b := MustParseBoard(
			"...O...",
			"..XXO..",
		)
		before := b

		row, err := b.Play(2, SideB)
		require.NoError(t, err)
		b.Undo(2, row)

		require.Equal(t, before, b, "Undo should be the exact inverse of Play")
		require.NoError(t, b.Validate())
	})
}

func TestLegalMoves(t *testing.T) {
	b := MustParseBoard(
		"X.....O",
		"O.....X",
		"X.....O",
		"O.....X",
		"X.....O",
		"O.....X",
	)
	require.Equal(t, []int{1, 2, 3, 4, 5}, b.LegalMoves())
}

func TestIsWinningFor(t *testing.T) {
	tests := []struct {
		name  string
		cells [4][2]int
	}{
		{"horizontal bottom left", [4][2]int{{5, 0}, {5, 1}, {5, 2}, {5, 3}}},
		{"horizontal top right", [4][2]int{{0, 3}, {0, 4}, {0, 5}, {0, 6}}},
		{"vertical bottom", [4][2]int{{5, 6}, {4, 6}, {3, 6}, {2, 6}}},
		{"vertical top", [4][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"diagonal down right", [4][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"diagonal down right corner", [4][2]int{{2, 3}, {3, 4}, {4, 5}, {5, 6}}},
		{"diagonal up right", [4][2]int{{5, 0}, {4, 1}, {3, 2}, {2, 3}}},
		{"diagonal up right corner", [4][2]int{{3, 3}, {2, 4}, {1, 5}, {0, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for i, c := range tt.cells {
				require.False(t, b.IsWinningFor(SideA), "No win expected before the fourth piece")
				b.cells[c[0]][c[1]] = SideA
				if i == 2 {
					require.False(t, b.IsWinningFor(SideA), "Three pieces should not win")
				}
			}
			require.True(t, b.IsWinningFor(SideA), "Four in a row should win")
			require.False(t, b.IsWinningFor(SideB), "Other side should not win")
			require.Equal(t, SideA, b.Winner())
		})
	}

	t.Run("every window is detected", func(t *testing.T) {
		for i, w := range windows {
			var b Board
			for _, c := range w {
				b.cells[c.row][c.col] = SideB
			}
			require.True(t, b.IsWinningFor(SideB), "Window %d should be a win", i)
		}
	})

	t.Run("window count", func(t *testing.T) {
		require.Equal(t, 69, WindowCount())
	})
}

func TestIsTerminal(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsTerminal())
	})

	t.Run("full board without winner", func(t *testing.T) {
		b := MustParseBoard(
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
		)
		require.Equal(t, Empty, b.Winner())
		require.True(t, b.IsFull())
		require.True(t, b.IsTerminal())
		require.Empty(t, b.LegalMoves())
	})

	t.Run("won board", func(t *testing.T) {
		b := MustParseBoard("OOOO.XX", "XXXOXXX")
		require.True(t, b.IsTerminal())
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("independent of move order", func(t *testing.T) {
		b1, b2 := NewBoard(), NewBoard()
		for _, m := range []struct {
			col  int
			side Side
		}{{3, SideA}, {2, SideB}, {4, SideA}, {3, SideB}} {
			_, err := b1.Play(m.col, m.side)
			require.NoError(t, err)
		}
		for _, m := range []struct {
			col  int
			side Side
		}{{4, SideA}, {3, SideA}, {2, SideB}, {3, SideB}} {
			_, err := b2.Play(m.col, m.side)
			require.NoError(t, err)
		}
		require.Equal(t, b1.Fingerprint(), b2.Fingerprint())
	})

	t.Run("distinguishes owners", func(t *testing.T) {
		a := MustParseBoard("...X...")
		o := MustParseBoard("...O...")
		require.NotEqual(t, a.Fingerprint(), o.Fingerprint())
	})

	t.Run("distinguishes heights", func(t *testing.T) {
		low := MustParseBoard("X.....X")
		high := MustParseBoard("X......", "X......")
		require.NotEqual(t, low.Fingerprint(), high.Fingerprint())
	})

	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, Fingerprint{}, NewBoard().Fingerprint())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("floating piece", func(t *testing.T) {
		_, err := ParseBoard("...X...", ".......")
		require.ErrorIs(t, err, ErrFloatingPiece)
	})

	t.Run("round trip through String", func(t *testing.T) {
		b := MustParseBoard(
			"...O...",
			"..XXO..",
			".OXOX..",
		)
		again := MustParseBoard(splitLines(b.String())...)
		require.Equal(t, b, again)
	})

	t.Run("bad width", func(t *testing.T) {
		_, err := ParseBoard("....")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	b := MustParseBoard("XXX....")
	require.ErrorIs(t, b.Validate(), ErrUnbalanced)

	b = MustParseBoard("XXO....")
	require.NoError(t, b.Validate())
	require.Equal(t, SideB, b.NextSide())
	require.Equal(t, 3, b.Plies())
}

func TestOrderByCenter(t *testing.T) {
	require.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, OrderByCenter([]int{0, 1, 2, 3, 4, 5, 6}))
	require.Equal(t, []int{5, 0, 6}, OrderByCenter([]int{6, 5, 0}))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
