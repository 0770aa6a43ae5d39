package agent

import (
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

// ruleOrder is the column preference of the rule agent
var ruleOrder = [game.Cols]int{3, 2, 4, 1, 5, 0, 6}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays a uniformly random legal column
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return "random"
}

func (a *randomAgent) FindMove(obs game.Observation) (int, searcher.SearchMetric) {
	legal := obs.Mask.Legal()
	if len(legal) == 0 {
		return -1, searcher.SearchMetric{}
	}
	return legal[a.rng.Intn(len(legal))], searcher.SearchMetric{Searcher: a.Name()}
}

type ruleAgent struct{}

// NewRuleAgent wins when it can, blocks when it must and otherwise takes the
// column closest to the center
func NewRuleAgent() Agent {
	return ruleAgent{}
}

func (a ruleAgent) Name() string {
	return "rules"
}

func (a ruleAgent) FindMove(obs game.Observation) (int, searcher.SearchMetric) {
	metric := searcher.SearchMetric{Searcher: a.Name()}
	legal := obs.Mask.Legal()
	if len(legal) == 0 {
		return -1, metric
	}

	board, err := game.FromPlanes(obs.Planes)
	if err == nil {
		for _, side := range []game.Side{game.SideA, game.SideB} {
			for _, col := range legal {
				if game.IsWinningMove(board, col, side) {
					if side == game.SideA {
						metric.Shortcut = searcher.ShortcutWin
					} else {
						metric.Shortcut = searcher.ShortcutBlock
					}
					return col, metric
				}
			}
		}
	}

	// legal is not empty, so some column in ruleOrder is allowed
	for _, col := range ruleOrder {
		if obs.Mask.Allows(col) {
			return col, metric
		}
	}
	return legal[0], metric
}
