package console

import (
	"bytes"
	"testing"

	"connect4/game"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	r := Plain(&buf)

	b := game.MustParseBoard("..XO...")
	require.NoError(t, r.Board(b, 3))

	expected := "" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . X O . . . |\n" +
		"+---------------+\n" +
		"  0 1 2 3 4 5 6\n"
	require.Equal(t, expected, buf.String())
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	r := Plain(&buf)

	require.NoError(t, r.Result(""))
	require.NoError(t, r.Result("mcts"))
	require.Equal(t, "Draw\nmcts wins\n", buf.String())
}
