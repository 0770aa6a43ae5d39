package game

type cell struct {
	row, col int
}

// window is a run of Connect cells along one of the four directions
type window [Connect]cell

// windows holds every horizontal, vertical and diagonal window of the board
var windows = buildWindows()

// windowsAt indexes windows by the cells they cover
var windowsAt = indexWindows(windows)

func buildWindows() []window {
	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal \
		{-1, 1}, // diagonal /
	}

	var all []window
	for _, d := range directions {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Cols; col++ {
				endRow := row + d[0]*(Connect-1)
				endCol := col + d[1]*(Connect-1)
				if endRow < 0 || endRow >= Rows || endCol < 0 || endCol >= Cols {
					continue
				}
				var w window
				for i := 0; i < Connect; i++ {
					w[i] = cell{row: row + d[0]*i, col: col + d[1]*i}
				}
				all = append(all, w)
			}
		}
	}
	return all
}

func indexWindows(all []window) [Rows][Cols][]int {
	var index [Rows][Cols][]int
	for i, w := range all {
		for _, c := range w {
			index[c.row][c.col] = append(index[c.row][c.col], i)
		}
	}
	return index
}

// WindowCount is the number of distinct four-cell windows on the board
func WindowCount() int {
	return len(windows)
}

// tally counts the cells of w owned by side and the empty ones
func (b *Board) tally(w *window, side Side) (own, empty int) {
	for _, c := range w {
		switch b.cells[c.row][c.col] {
		case side:
			own++
		case Empty:
			empty++
		}
	}
	return own, empty
}
