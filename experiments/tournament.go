package experiments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Tournament scoring
const (
	WinPoints  = 3
	DrawPoints = 1
)

var ErrTooFewAgents = errors.New("a tournament needs at least two agents")

type Result struct {
	Agents    []metrics.AgentConfig
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Standings []metrics.Standing
}

type matchUp struct {
	first  int
	second int
}

type playedGame struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// RunTournament plays a round robin: every pair of agents meets cfg.Games
// times with each agent starting. Games run on cfg.Workers goroutines, each
// game owns its agents.
func RunTournament(ctx context.Context, cfg config.Tournament, agents []config.AgentConfig) (Result, error) {
	if len(agents) < 2 {
		return Result{}, ErrTooFewAgents
	}
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return Result{}, err
		}
	}

	matchUps := []matchUp{}
	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			for g := 0; g < cfg.Games; g++ {
				matchUps = append(matchUps, matchUp{i, j}, matchUp{j, i})
			}
		}
	}

	log.Info().Msgf("starting tournament with %d agents and %d games...", len(agents), len(matchUps))

	played := make([]playedGame, len(matchUps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, m := range matchUps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			game, err := playGame(i+1, m, agents)
			if err != nil {
				return err
			}
			played[i] = game
			log.Info().Msgf("completed game %d of %d between %s and %s, winner: %q",
				i+1, len(matchUps), agents[m.first].Name, agents[m.second].Name, game.record.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("tournament aborted: %w", err)
	}

	result := Result{Agents: agentRecords(agents)}
	for _, p := range played {
		result.Games = append(result.Games, p.record)
		result.Moves = append(result.Moves, p.moves...)
	}

	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}
	result.Standings = Score(result.Games, names)

	log.Info().Msg("completed tournament")
	for i, s := range result.Standings {
		log.Info().Msgf("%d. %-12s played %3d  won %3d  drew %3d  lost %3d  points %4d",
			i+1, s.Agent, s.Played, s.Wins, s.Draws, s.Losses, s.Points)
	}
	return result, nil
}

func playGame(index int, m matchUp, agents []config.AgentConfig) (playedGame, error) {
	salt := uint64(index)
	first, err := NewAgent(agents[m.first], salt)
	if err != nil {
		return playedGame{}, err
	}
	second, err := NewAgent(agents[m.second], salt)
	if err != nil {
		return playedGame{}, err
	}

	_, gameMetric, moveMetrics := engine.LocalEngine(first, second).Run()

	record := metrics.GameRecord{
		ID:         uuid.New().String(),
		Index:      index,
		Agent1:     m.first + 1,
		Agent2:     m.second + 1,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{
			Game:       record.ID,
			MoveMetric: mm,
		})
	}
	return playedGame{record: record, moves: moves}, nil
}

// Score builds the standings table, best first. Ties are broken by wins,
// then by name.
func Score(games []metrics.GameRecord, names []string) []metrics.Standing {
	byName := make(map[string]*metrics.Standing, len(names))
	standings := make([]metrics.Standing, len(names))
	for i, name := range names {
		standings[i].Agent = name
		byName[name] = &standings[i]
	}

	for _, g := range games {
		if g.Agent1 < 1 || g.Agent1 > len(names) || g.Agent2 < 1 || g.Agent2 > len(names) {
			log.Warn().Msgf("game %s references unknown agents %d and %d", g.ID, g.Agent1, g.Agent2)
			continue
		}
		players := []*metrics.Standing{byName[names[g.Agent1-1]], byName[names[g.Agent2-1]]}
		for _, p := range players {
			p.Played++
			switch g.Winner {
			case "":
				p.Draws++
				p.Points += DrawPoints
			case p.Agent:
				p.Wins++
				p.Points += WinPoints
			default:
				p.Losses++
			}
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Agent < b.Agent
	})
	return standings
}

// Persist writes the result as CSV files under cfg.OutputDir and into the
// SQLite database at cfg.Database. Empty settings skip that output.
func Persist(ctx context.Context, cfg config.Tournament, result Result) error {
	if cfg.OutputDir != "" {
		writer, err := metrics.NewWriter(cfg.OutputDir, "tournament")
		if err != nil {
			return fmt.Errorf("failed to create experiment writer: %w", err)
		}
		if err := writer.WriteAgentConfigs(result.Agents); err != nil {
			return fmt.Errorf("failed to store agent configs: %w", err)
		}
		if err := writer.WriteGameRecords(result.Games); err != nil {
			return fmt.Errorf("failed to write game records: %w", err)
		}
		if err := writer.WriteMoveRecords(result.Moves); err != nil {
			return fmt.Errorf("failed to write move records: %w", err)
		}
		if err := writer.WriteStandings(result.Standings); err != nil {
			return fmt.Errorf("failed to write standings: %w", err)
		}
		log.Info().Msgf("stored tournament records in %s", writer.Dir())
	}

	if cfg.Database != "" {
		store, err := metrics.OpenStore(cfg.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		moves := make(map[string][]metrics.MoveRecord, len(result.Games))
		for _, m := range result.Moves {
			moves[m.Game] = append(moves[m.Game], m)
		}
		for _, g := range result.Games {
			if err := store.SaveGame(ctx, g, moves[g.ID]); err != nil {
				return err
			}
		}
		log.Info().Msgf("stored %d games in %s", len(result.Games), cfg.Database)
	}
	return nil
}
