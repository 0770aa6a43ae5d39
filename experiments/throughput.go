package experiments

import (
	"context"
	"fmt"
	"math"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
)

// throughputOpening is the position searched by the throughput experiment
var throughputOpening = []int{3, 3, 2}

// RunThroughput measures MCTS episodes per time budget on a fixed opening.
// The episode cap is lifted so only the budget stops a search.
func RunThroughput(ctx context.Context, budgets []time.Duration, repeats int) ([]metrics.ThroughputRecord, error) {
	board := game.NewBoard()
	side := game.SideA
	for _, col := range throughputOpening {
		if _, err := board.Play(col, side); err != nil {
			return nil, fmt.Errorf("failed to set up opening: %w", err)
		}
		side = side.Opponent()
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.ThroughputRecord{}
	for _, budget := range budgets {
		for i := 0; i < max(repeats, 1); i++ {
			if err := ctx.Err(); err != nil {
				return records, err
			}

			m := searcher.NewMCTS(
				searcher.WithDuration(budget),
				searcher.WithEpisodes(math.MaxInt32),
				searcher.WithSeed(uint64(i)),
				searcher.WithMetrics(),
			)
			if _, err := m.FindNextMove(board, side); err != nil {
				return records, fmt.Errorf("throughput search failed: %w", err)
			}

			metric := m.LastMetric()
			record := metrics.ThroughputRecord{
				Budget:       budget,
				Episodes:     metric.Episodes,
				Nodes:        metric.Nodes,
				FullPlayouts: metric.FullPlayouts,
				EarlyStops:   metric.EarlyStops,
				Elapsed:      metric.Duration,
			}
			records = append(records, record)
			log.Info().Msgf("budget %s run %d: %d episodes, %.0f episodes/s", budget, i+1, record.Episodes, record.Rate())
		}
	}

	log.Info().Msg("completed throughput experiment")
	return records, nil
}
