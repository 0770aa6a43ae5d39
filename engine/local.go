package engine

import (
	"time"

	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher/agent"

	"github.com/rs/zerolog/log"
)

// LocalGame plays two agents against each other on one board. The first
// agent plays SideA and moves first.
type LocalGame struct {
	Board  game.Board
	Agents [2]agent.Agent
	// Observer, if set, sees the board after every move
	Observer func(board game.Board, side game.Side, col int)
}

func LocalEngine(first, second agent.Agent) *LocalGame {
	if first == nil || second == nil {
		panic("need two agents")
	}
	return &LocalGame{
		Board:  game.NewBoard(),
		Agents: [2]agent.Agent{first, second},
	}
}

func (e *LocalGame) agentOf(side game.Side) agent.Agent {
	if side == game.SideA {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the game loop until a side connects four, the board fills
// up or an agent answers with an illegal column, which forfeits the game.
func (e *LocalGame) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingAgent: e.Agents[0].Name(),
		StartTime:     time.Now(),
		Termination:   metrics.BoardFull,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting against %s", e.Agents[0].Name(), e.Agents[1].Name())

	winner := game.Empty
	side := e.Board.NextSide()
	for step := 1; step <= MaxMoves && !e.Board.IsTerminal(); step++ {
		current := e.agentOf(side)
		col, searchMetric := current.FindMove(game.ObservationFor(e.Board, side))
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side.String(),
			Agent:        current.Name(),
			Column:       col,
			SearchMetric: searchMetric,
		})

		if _, err := e.Board.Play(col, side); err != nil {
			log.Warn().Err(err).Msgf("%s forfeits with column %d", current.Name(), col)
			winner = side.Opponent()
			gameMetric.Termination = metrics.IllegalMove
			break
		}
		if e.Observer != nil {
			e.Observer(e.Board, side, col)
		}

		if e.Board.IsWinningFor(side) {
			winner = side
			gameMetric.Termination = metrics.ConnectFour
			break
		}
		side = side.Opponent()
	}

	if winner != game.Empty {
		gameMetric.Winner = e.agentOf(winner).Name()
		log.Info().Msgf("game over after %d moves, winner: %s", len(moveMetrics), gameMetric.Winner)
	} else {
		log.Info().Msgf("game drawn after %d moves", len(moveMetrics))
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

var _ Engine = (*LocalGame)(nil)
