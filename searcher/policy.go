package searcher

import (
	"connect4/game"

	"golang.org/x/exp/rand"
)

// Rollout move preferences
const (
	threatProbability     = 0.7
	centerProbability     = 0.4
	nearCenterProbability = 0.3
	innerProbability      = 0.6
)

// expansionMove picks which untried move to expand: a win, a block, a move
// creating a threat, a center column, then the first untried move
func expansionMove(board game.Board, untried []int, side game.Side) int {
	for _, col := range untried {
		if game.IsWinningMove(board, col, side) {
			return col
		}
	}
	for _, col := range untried {
		if game.IsWinningMove(board, col, side.Opponent()) {
			return col
		}
	}
	for _, col := range untried {
		if game.CreatesThreat(board, col, side) {
			return col
		}
	}
	for _, col := range untried {
		if col >= game.Center-1 && col <= game.Center+1 {
			return col
		}
	}
	return untried[0]
}

// rolloutMove is the playout policy. legal must not be empty.
func rolloutMove(board game.Board, legal []int, side game.Side, rng *rand.Rand) int {
	opponent := side.Opponent()

	for _, col := range legal {
		if game.IsWinningMove(board, col, side) {
			return col
		}
	}
	for _, col := range legal {
		if game.IsWinningMove(board, col, opponent) {
			return col
		}
	}
	for _, col := range legal {
		if game.CreatesDoubleThreat(board, col, side) {
			return col
		}
	}
	for _, col := range legal {
		if game.CreatesDoubleThreat(board, col, opponent) {
			return col
		}
	}

	if threats := filter(legal, func(col int) bool { return game.CreatesThreat(board, col, side) }); len(threats) > 0 && rng.Float64() < threatProbability {
		return threats[rng.Intn(len(threats))]
	}
	if board.CanPlay(game.Center) && rng.Float64() < centerProbability {
		return game.Center
	}
	if near := filter(legal, func(col int) bool { return col == game.Center-1 || col == game.Center+1 }); len(near) > 0 && rng.Float64() < nearCenterProbability {
		return near[rng.Intn(len(near))]
	}
	if inner := filter(legal, func(col int) bool { return col > 0 && col < game.Cols-1 }); len(inner) > 0 && rng.Float64() < innerProbability {
		return inner[rng.Intn(len(inner))]
	}
	return legal[rng.Intn(len(legal))]
}

func filter(moves []int, keep func(int) bool) []int {
	var kept []int
	for _, col := range moves {
		if keep(col) {
			kept = append(kept, col)
		}
	}
	return kept
}
