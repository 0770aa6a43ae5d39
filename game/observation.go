package game

import "fmt"

// Planes is the environment's view of the board: plane 0 holds the pieces
// of the side asked to move, plane 1 the other side. Row 0 is the top row.
type Planes [2][Rows][Cols]bool

// Mask marks playable columns with 1
type Mask [Cols]int8

// Observation is what an environment hands to an agent for one decision
type Observation struct {
	Planes Planes `json:"planes"`
	Mask   Mask   `json:"mask"`
}

// FromPlanes converts planes into a board where SideA is the side to move
func FromPlanes(planes Planes) (Board, error) {
	var b Board
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			own, other := planes[0][row][col], planes[1][row][col]
			switch {
			case own && other:
				return Board{}, fmt.Errorf("row %d column %d: %w", row, col, ErrOverlappingPlanes)
			case own:
				b.cells[row][col] = SideA
			case other:
				b.cells[row][col] = SideB
			}
		}
	}
	if err := b.recomputeHeights(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ObservationFor builds the observation seen by side on board
func ObservationFor(b Board, side Side) Observation {
	var obs Observation
	opponent := side.Opponent()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch b.cells[row][col] {
			case side:
				obs.Planes[0][row][col] = true
			case opponent:
				obs.Planes[1][row][col] = true
			}
		}
	}
	obs.Mask = MaskOf(b)
	return obs
}

// MaskOf returns the legal-move mask of b
func MaskOf(b Board) Mask {
	var mask Mask
	for col := 0; col < Cols; col++ {
		if b.CanPlay(col) {
			mask[col] = 1
		}
	}
	return mask
}

// Legal returns the columns the mask allows, ascending
func (m Mask) Legal() []int {
	moves := make([]int, 0, Cols)
	for col, v := range m {
		if v == 1 {
			moves = append(moves, col)
		}
	}
	return moves
}

func (m Mask) Allows(col int) bool {
	return col >= 0 && col < Cols && m[col] == 1
}
