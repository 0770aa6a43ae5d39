package experiments

import (
	"fmt"
	"time"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/searcher"
	"connect4/searcher/agent"
)

const remoteTimeout = 30 * time.Second

// NewAgent builds the agent described by cfg. salt is mixed into the seed so
// repeated games do not replay the same random choices.
func NewAgent(cfg config.AgentConfig, salt uint64) (agent.Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed + salt

	switch cfg.Kind {
	case config.AlphaBeta:
		return agent.NewSearchAgent(cfg.Name, searcher.NewAlphaBeta(cfg.Depth, searcher.WithSeed(seed), searcher.WithMetrics())), nil
	case config.MCTS:
		return agent.NewSearchAgent(cfg.Name, createMCTS(cfg, seed)), nil
	case config.Random:
		return named{cfg.Name, agent.NewRandomAgent(seed)}, nil
	case config.Rules:
		return named{cfg.Name, agent.NewRuleAgent()}, nil
	case config.Remote:
		timeout := cfg.Duration
		if timeout <= 0 {
			timeout = remoteTimeout
		}
		return engine.NewRemoteAgent(cfg.Name, cfg.URL, timeout), nil
	}
	return nil, fmt.Errorf("agent %q kind %q: %w", cfg.Name, cfg.Kind, config.ErrInvalidConfig)
}

func createMCTS(cfg config.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{}

	if cfg.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(cfg.Episodes))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	if cfg.Exploration > 0 {
		options = append(options, searcher.WithExploration(cfg.Exploration))
	}

	options = append(options, searcher.WithSeed(seed), searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}

// named gives a baseline agent its configured name
type named struct {
	name string
	agent.Agent
}

func (n named) Name() string {
	return n.name
}

func agentRecords(configs []config.AgentConfig) []metrics.AgentConfig {
	records := make([]metrics.AgentConfig, 0, len(configs))
	for i, c := range configs {
		records = append(records, metrics.AgentConfig{
			ID:          i + 1,
			Name:        c.Name,
			Kind:        c.Kind,
			Depth:       c.Depth,
			Duration:    c.Duration,
			Episodes:    c.Episodes,
			Exploration: c.Exploration,
			Seed:        c.Seed,
		})
	}
	return records
}
