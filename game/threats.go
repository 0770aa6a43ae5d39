package game

// IsWinningMove reports whether dropping side's piece into col wins at once
func IsWinningMove(b Board, col int, side Side) bool {
	row, err := b.Play(col, side)
	if err != nil {
		return false
	}
	return b.completesWindow(row, col, side)
}

// completesWindow reports whether a window through (row, col) is fully owned by side
func (b *Board) completesWindow(row, col int, side Side) bool {
	for _, i := range windowsAt[row][col] {
		if own, _ := b.tally(&windows[i], side); own == Connect {
			return true
		}
	}
	return false
}

// WinningMoves lists the columns where side wins immediately
func WinningMoves(b Board, side Side) []int {
	var wins []int
	for col := 0; col < Cols; col++ {
		if !b.CanPlay(col) {
			continue
		}
		row, _ := b.Play(col, side)
		if b.completesWindow(row, col, side) {
			wins = append(wins, col)
		}
		b.Undo(col, row)
	}
	return wins
}

// countWins counts side's immediate winning columns, stopping at limit
func countWins(b *Board, side Side, limit int) int {
	n := 0
	for col := 0; col < Cols && n < limit; col++ {
		if !b.CanPlay(col) {
			continue
		}
		row, _ := b.Play(col, side)
		if b.completesWindow(row, col, side) {
			n++
		}
		b.Undo(col, row)
	}
	return n
}

// CreatesThreat reports whether the move leaves a window through the placed
// piece with three of side's pieces and one empty cell
func CreatesThreat(b Board, col int, side Side) bool {
	row, err := b.Play(col, side)
	if err != nil {
		return false
	}
	for _, i := range windowsAt[row][col] {
		if own, empty := b.tally(&windows[i], side); own == 3 && empty == 1 {
			return true
		}
	}
	return false
}

// CreatesDoubleThreat reports whether side would have two or more distinct
// immediate wins after playing col
func CreatesDoubleThreat(b Board, col int, side Side) bool {
	if _, err := b.Play(col, side); err != nil {
		return false
	}
	return countWins(&b, side, 2) >= 2
}

// IsSuicide reports whether playing col hands the opponent an immediate win
func IsSuicide(b Board, col int, side Side) bool {
	if _, err := b.Play(col, side); err != nil {
		return false
	}
	return countWins(&b, side.Opponent(), 1) > 0
}
