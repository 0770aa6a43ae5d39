package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"connect4/config"
	"connect4/console"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: connect4 [-config file] <command> [flags]

commands:
  play        play one game between two configured agents
  tournament  round robin between all configured agents
  throughput  measure MCTS episodes per time budget
  serve       serve one configured agent over HTTP
`

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults are used when empty")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	setupLogging(cfg.LogLevel)

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "play":
		err = runPlay(cfg, args)
	case "tournament":
		err = runTournament(ctx, cfg, args)
	case "throughput":
		err = runThroughput(ctx, cfg, args)
	case "serve":
		err = runServe(cfg, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", flag.Arg(0))
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}

func newAgent(cfg config.Config, name string, salt uint64) (agent.Agent, error) {
	a, ok := cfg.Agent(name)
	if !ok {
		return nil, fmt.Errorf("agent %q is not configured: %w", name, config.ErrInvalidConfig)
	}
	return experiments.NewAgent(a, salt)
}

func runPlay(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	first := fs.String("first", "alphabeta", "agent moving first")
	second := fs.String("second", "mcts", "agent moving second")
	quiet := fs.Bool("quiet", false, "only print the result")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAgent(cfg, *first, 0)
	if err != nil {
		return err
	}
	b, err := newAgent(cfg, *second, 0)
	if err != nil {
		return err
	}

	renderer := console.NewRenderer(os.Stdout)
	e := engine.LocalEngine(a, b)
	if !*quiet {
		e.Observer = func(board game.Board, side game.Side, col int) {
			mover := e.Agents[0]
			if side == game.SideB {
				mover = e.Agents[1]
			}
			fmt.Fprintf(os.Stdout, "\n%s (%s) plays %d\n", mover.Name(), side, col)
			_ = renderer.Board(board, col)
		}
	}

	_, gameMetric, _ := e.Run()
	return renderer.Result(gameMetric.Winner)
}

func runTournament(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	games := fs.Int("games", cfg.Tournament.Games, "games per pairing and starting side")
	workers := fs.Int("workers", cfg.Tournament.Workers, "games played at once")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.Tournament.Games = *games
	cfg.Tournament.Workers = *workers
	if err := cfg.Validate(); err != nil {
		return err
	}

	result, err := experiments.RunTournament(ctx, cfg.Tournament, cfg.Agents)
	if err != nil {
		return err
	}
	return experiments.Persist(ctx, cfg.Tournament, result)
}

func runThroughput(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("throughput", flag.ExitOnError)
	repeats := fs.Int("repeats", cfg.Throughput.Repeats, "searches per budget")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := experiments.RunThroughput(ctx, cfg.Throughput.Budgets, *repeats)
	if err != nil {
		return err
	}
	writer, err := metrics.NewWriter(cfg.Tournament.OutputDir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughput(records); err != nil {
		return fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msgf("stored throughput records in %s", writer.Dir())
	return nil
}

func runServe(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	name := fs.String("agent", cfg.Server.Agent, "configured agent to serve")
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := newAgent(cfg, *name, 0)
	if err != nil {
		return err
	}
	return agent.StartAgentServer(*addr, a)
}
