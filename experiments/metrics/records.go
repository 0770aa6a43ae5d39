package metrics

import (
	"time"

	"connect4/searcher"
)

// Termination reasons of a game
const (
	ConnectFour = "connect-four"
	BoardFull   = "board-full"
	IllegalMove = "illegal-move"
)

type AgentConfig struct {
	ID          int
	Name        string
	Kind        string
	Depth       int
	Duration    time.Duration
	Episodes    int
	Exploration float64
	Seed        uint64
}

type MoveMetric struct {
	Step   int
	Side   string
	Agent  string
	Column int
	searcher.SearchMetric
}

type GameMetric struct {
	StartingAgent string
	Winner        string // Agent name, empty on a draw
	Termination   string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type GameRecord struct {
	ID     string // uuid
	Index  int
	Agent1 int // AgentConfig.ID, plays first
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// Standing is one row of a tournament table
type Standing struct {
	Agent  string
	Played int
	Wins   int
	Draws  int
	Losses int
	Points int
}

type ThroughputRecord struct {
	Budget       time.Duration
	Episodes     int
	Nodes        int
	FullPlayouts int
	EarlyStops   int
	Elapsed      time.Duration
}

// Rate is episodes per second of search time
func (r ThroughputRecord) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Episodes) / r.Elapsed.Seconds()
}
