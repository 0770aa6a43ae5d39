package console

import (
	"fmt"
	"io"
	"strings"

	"connect4/game"

	"github.com/muesli/termenv"
)

// Renderer draws boards on a terminal, colouring each side
type Renderer struct {
	out    *termenv.Output
	colors [3]termenv.Color
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)
	return &Renderer{
		out: out,
		colors: [3]termenv.Color{
			game.Empty: out.Color("8"),
			game.SideA: out.Color("1"),
			game.SideB: out.Color("3"),
		},
	}
}

// Plain renders without escape sequences
func Plain(w io.Writer) *Renderer {
	return NewRenderer(w, termenv.WithProfile(termenv.Ascii))
}

func (r *Renderer) symbol(side game.Side) string {
	var s string
	switch side {
	case game.SideA:
		s = "X"
	case game.SideB:
		s = "O"
	default:
		s = "."
	}
	return r.out.String(s).Foreground(r.colors[side]).String()
}

// Board draws b with column numbers underneath. last, if in range, marks
// the most recently played column.
func (r *Renderer) Board(b game.Board, last int) error {
	var sb strings.Builder
	for row := 0; row < game.Rows; row++ {
		sb.WriteString("|")
		for col := 0; col < game.Cols; col++ {
			sb.WriteString(" ")
			sb.WriteString(r.symbol(b.At(row, col)))
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("+")
	sb.WriteString(strings.Repeat("--", game.Cols))
	sb.WriteString("-+\n ")
	for col := 0; col < game.Cols; col++ {
		label := fmt.Sprintf(" %d", col)
		if col == last {
			label = " " + r.out.String(fmt.Sprint(col)).Bold().String()
		}
		sb.WriteString(label)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Result prints the outcome line of a game
func (r *Renderer) Result(winner string) error {
	line := "Draw"
	if winner != "" {
		line = r.out.String(winner + " wins").Bold().String()
	}
	_, err := fmt.Fprintln(r.out, line)
	return err
}
