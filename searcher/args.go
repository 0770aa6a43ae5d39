package searcher

import "time"

// Hyperparameters for MCTS

// ExplorationParam is the UCB1 exploration constant C
const ExplorationParam = 1.41

// MaxEpisodes caps the iterations of a single search
const MaxEpisodes = 50000

const DefaultDuration = time.Second

// Rollout outcomes, seen from the searching side
const (
	Win        = 1.0
	Loss       = 1 - Win
	Draw       = 0.5
	LikelyWin  = 0.9
	LikelyLoss = 1 - LikelyWin
)

// Early termination of rollouts on lopsided positions
const (
	EarlyTerminationPlies = 6
	StrongAdvantage       = 500
	OverwhelmingAdvantage = 1000
)

// Alpha-beta terminal scores, remaining depth is added on top
const WinScore = 10_000_000

const DefaultDepth = 5
