package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// MaxMoves bounds a game, a board cannot take more pieces
const MaxMoves = game.MaxPlies

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
