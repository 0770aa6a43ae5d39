package game

// Static evaluation weights, from the evaluated side's perspective
const (
	CenterWeight     = 6
	NearCenterWeight = 3
	FourWeight       = 100000
	OpenThreeWeight  = 100
	OpenTwoWeight    = 10
	// Kept below OpenThreeWeight so the search does not freeze into purely
	// defensive lines that are already lost
	OpponentThreePenalty = 80
)

// Lightweight position weights used to cut rollouts short
const (
	positionCenter     = 4
	positionNearCenter = 2
	positionThree      = 100
	positionTwo        = 10
	positionOne        = 1
)

// Evaluate scores a board for side, higher is better for side
type Evaluate func(b Board, side Side) int

// Score is the static heuristic used at minimax leaves: center control plus
// open windows of side, minus the opponent's open threes
func Score(b Board, side Side) int {
	score := 0

	for row := 0; row < Rows; row++ {
		if b.cells[row][Center] == side {
			score += CenterWeight
		}
		if b.cells[row][Center-1] == side {
			score += NearCenterWeight
		}
		if b.cells[row][Center+1] == side {
			score += NearCenterWeight
		}
	}

	for i := range windows {
		own, empty := b.tally(&windows[i], side)
		switch {
		case own == 4:
			score += FourWeight
		case own == 3 && empty == 1:
			score += OpenThreeWeight
		case own == 2 && empty == 2:
			score += OpenTwoWeight
		}

		if theirs := Connect - own - empty; theirs == 3 && empty == 1 {
			score -= OpponentThreePenalty
		}
	}
	return score
}

// Position is a symmetric evaluation: side's position value minus the
// opponent's, counting only windows the other side has not blocked
func Position(b Board, side Side) int {
	return positionValue(&b, side) - positionValue(&b, side.Opponent())
}

func positionValue(b *Board, side Side) int {
	value := 0
	for row := 0; row < Rows; row++ {
		if b.cells[row][Center] == side {
			value += positionCenter
		}
		if b.cells[row][Center-1] == side || b.cells[row][Center+1] == side {
			value += positionNearCenter
		}
	}

	for i := range windows {
		own, empty := b.tally(&windows[i], side)
		if own+empty != Connect {
			continue // blocked by the other side
		}
		switch own {
		case 3:
			value += positionThree
		case 2:
			value += positionTwo
		case 1:
			value += positionOne
		}
	}
	return value
}
