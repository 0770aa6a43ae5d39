package agent

import (
	"time"

	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type searchAgent struct {
	name     string
	searcher searcher.Searcher
	rng      *rand.Rand
}

// NewSearchAgent wraps a searcher behind the observation contract. Any
// failure of the searcher degrades to a random legal column.
func NewSearchAgent(name string, s searcher.Searcher) Agent {
	return &searchAgent{
		name:     name,
		searcher: s,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (a *searchAgent) Name() string {
	return a.name
}

func (a *searchAgent) FindMove(obs game.Observation) (int, searcher.SearchMetric) {
	legal := obs.Mask.Legal()
	if len(legal) == 0 {
		return -1, searcher.SearchMetric{}
	}

	board, err := game.FromPlanes(obs.Planes)
	if err != nil {
		log.Warn().Err(err).Str("agent", a.name).Msg("unreadable observation, playing a random column")
		return a.fallback(legal), searcher.SearchMetric{Fallback: true}
	}

	col, err := a.searcher.FindNextMove(board, game.SideA)
	metric := a.metric()
	if err != nil {
		log.Warn().Err(err).Str("agent", a.name).Msg("search failed, playing a random column")
		metric.Fallback = true
		return a.fallback(legal), metric
	}
	if !obs.Mask.Allows(col) {
		log.Warn().Str("agent", a.name).Msgf("search returned column %d outside mask %v", col, obs.Mask)
		metric.Fallback = true
		return a.fallback(legal), metric
	}
	return col, metric
}

func (a *searchAgent) metric() searcher.SearchMetric {
	if r, ok := a.searcher.(searcher.MetricsReporter); ok {
		return r.LastMetric()
	}
	return searcher.SearchMetric{}
}

func (a *searchAgent) fallback(legal []int) int {
	return legal[a.rng.Intn(len(legal))]
}
