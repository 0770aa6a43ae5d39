package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	duration    time.Duration
	episodes    int
	exploration float64
	early       earlyTermination
	seed        uint64
	metrics     Collector
}

type earlyTermination struct {
	enabled      bool
	minPlies     int
	strong       int
	overwhelming int
}

func defaultSettings() settings {
	return settings{
		duration:    DefaultDuration,
		episodes:    MaxEpisodes,
		exploration: ExplorationParam,
		early: earlyTermination{
			enabled:      true,
			minPlies:     EarlyTerminationPlies,
			strong:       StrongAdvantage,
			overwhelming: OverwhelmingAdvantage,
		},
		seed:    uint64(time.Now().UnixNano()),
		metrics: NewDummyCollector(),
	}
}

func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		if c >= 0 {
			s.exploration = c
		}
	}
}

// WithEarlyTermination stops rollouts past minPlies once the position
// value reaches strong or overwhelming
func WithEarlyTermination(minPlies, strong, overwhelming int) Option {
	return func(s *settings) {
		if minPlies < 0 || strong <= 0 || overwhelming < strong {
			return
		}
		s.early = earlyTermination{
			enabled:      true,
			minPlies:     minPlies,
			strong:       strong,
			overwhelming: overwhelming,
		}
	}
}

func WithoutEarlyTermination() Option {
	return func(s *settings) {
		s.early.enabled = false
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = NewCollector()
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
