package agent

import (
	"connect4/game"
	"connect4/searcher"
)

type Agent interface {
	// FindMove returns a column and search metrics (if collected) for the observation.
	// The column is legal under the observation's mask, or -1 when nothing is.
	FindMove(obs game.Observation) (int, searcher.SearchMetric)
	Name() string
}
