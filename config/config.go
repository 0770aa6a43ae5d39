package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Agent kinds
const (
	AlphaBeta = "alphabeta"
	MCTS      = "mcts"
	Random    = "random"
	Rules     = "rules"
	Remote    = "remote"
)

type AgentConfig struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind"`
	Depth       int           `yaml:"depth,omitempty"`
	Duration    time.Duration `yaml:"duration,omitempty"`
	Episodes    int           `yaml:"episodes,omitempty"`
	Exploration float64       `yaml:"exploration,omitempty"`
	Seed        uint64        `yaml:"seed,omitempty"`
	URL         string        `yaml:"url,omitempty"`
}

type Tournament struct {
	Games     int    `yaml:"games"` // per pairing and starting side
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
	Database  string `yaml:"database"`
}

type Server struct {
	Addr  string `yaml:"addr"`
	Agent string `yaml:"agent"`
}

type Throughput struct {
	Budgets []time.Duration `yaml:"budgets"`
	Repeats int             `yaml:"repeats"`
}

type Config struct {
	LogLevel   string        `yaml:"log_level"`
	Agents     []AgentConfig `yaml:"agents"`
	Tournament Tournament    `yaml:"tournament"`
	Server     Server        `yaml:"server"`
	Throughput Throughput    `yaml:"throughput"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Agents: []AgentConfig{
			{Name: "alphabeta", Kind: AlphaBeta, Depth: 5},
			{Name: "mcts", Kind: MCTS, Duration: time.Second, Episodes: 50000, Exploration: 1.41},
			{Name: "rules", Kind: Rules},
			{Name: "random", Kind: Random},
		},
		Tournament: Tournament{
			Games:     2,
			Workers:   1,
			OutputDir: "results",
		},
		Server: Server{
			Addr:  ":8080",
			Agent: "alphabeta",
		},
		Throughput: Throughput{
			Budgets: []time.Duration{10 * time.Millisecond, 100 * time.Millisecond, time.Second},
			Repeats: 3,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d has no name: %w", i, ErrInvalidConfig)
		}
		if seen[a.Name] {
			return fmt.Errorf("agent %q is defined twice: %w", a.Name, ErrInvalidConfig)
		}
		seen[a.Name] = true
		if err := a.Validate(); err != nil {
			return err
		}
	}

	if c.Tournament.Games < 1 {
		return fmt.Errorf("tournament games %d: %w", c.Tournament.Games, ErrInvalidConfig)
	}
	if c.Tournament.Workers < 1 {
		return fmt.Errorf("tournament workers %d: %w", c.Tournament.Workers, ErrInvalidConfig)
	}
	if c.Server.Agent != "" && !seen[c.Server.Agent] {
		return fmt.Errorf("server agent %q is not defined: %w", c.Server.Agent, ErrInvalidConfig)
	}
	for _, b := range c.Throughput.Budgets {
		if b <= 0 {
			return fmt.Errorf("throughput budget %s: %w", b, ErrInvalidConfig)
		}
	}
	return nil
}

func (a AgentConfig) Validate() error {
	switch a.Kind {
	case AlphaBeta:
		if a.Depth < 1 {
			return fmt.Errorf("agent %q depth %d: %w", a.Name, a.Depth, ErrInvalidConfig)
		}
	case MCTS:
		if a.Duration <= 0 && a.Episodes <= 0 {
			return fmt.Errorf("agent %q needs a duration or episodes: %w", a.Name, ErrInvalidConfig)
		}
		if a.Exploration < 0 {
			return fmt.Errorf("agent %q exploration %g: %w", a.Name, a.Exploration, ErrInvalidConfig)
		}
	case Remote:
		if a.URL == "" {
			return fmt.Errorf("agent %q has no url: %w", a.Name, ErrInvalidConfig)
		}
	case Random, Rules:
	default:
		return fmt.Errorf("agent %q kind %q: %w", a.Name, a.Kind, ErrInvalidConfig)
	}
	return nil
}

// Agent returns the agent configured under name
func (c Config) Agent(name string) (AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentConfig{}, false
}
