package game

import (
	"fmt"
	"strings"
)

const (
	Rows    = 6
	Cols    = 7
	Center  = Cols / 2
	Connect = 4
	// MaxPlies is the number of cells, the longest a game can last
	MaxPlies = Rows * Cols
)

// Side owns a cell. Empty marks an unoccupied cell.
type Side int8

const (
	Empty Side = iota
	SideA
	SideB
)

func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	}
	return Empty
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	}
	return "-"
}

// Fingerprint is an exact encoding of the cells: one bitboard per side,
// bit col*(Rows+1)+height for each piece. Move history and side to move
// are not part of it.
type Fingerprint [2]uint64

// Board is a 6x7 grid, row 0 at the top. Pieces fall towards row Rows-1.
// A Board is a value: copying it copies the position.
type Board struct {
	cells   [Rows][Cols]Side
	heights [Cols]int8
}

func NewBoard() Board {
	return Board{}
}

// ParseBoard reads a board from top to bottom rows, using '.' for empty,
// 'X' for SideA and 'O' for SideB. Missing top rows are treated as empty.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Rows {
		return b, fmt.Errorf("parse board: %d rows, want at most %d", len(rows), Rows)
	}
	offset := Rows - len(rows)
	for i, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != Cols {
			return b, fmt.Errorf("parse board: row %d has %d cells, want %d", i, len(line), Cols)
		}
		for col, ch := range line {
			switch ch {
			case '.':
			case 'X', 'x':
				b.cells[offset+i][col] = SideA
			case 'O', 'o':
				b.cells[offset+i][col] = SideB
			default:
				return b, fmt.Errorf("parse board: unexpected cell %q", ch)
			}
		}
	}
	if err := b.recomputeHeights(); err != nil {
		return Board{}, fmt.Errorf("parse board: %w", err)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures, it panics on malformed input
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// recomputeHeights derives the column heights from the cells and checks gravity
func (b *Board) recomputeHeights() error {
	for col := 0; col < Cols; col++ {
		height := 0
		for row := Rows - 1; row >= 0; row-- {
			if b.cells[row][col] == Empty {
				break
			}
			height++
		}
		for row := Rows - 1 - height; row >= 0; row-- {
			if b.cells[row][col] != Empty {
				return fmt.Errorf("column %d row %d: %w", col, row, ErrFloatingPiece)
			}
		}
		b.heights[col] = int8(height)
	}
	return nil
}

func (b *Board) At(row, col int) Side {
	return b.cells[row][col]
}

func (b *Board) Height(col int) int {
	return int(b.heights[col])
}

func (b *Board) CanPlay(col int) bool {
	return col >= 0 && col < Cols && b.heights[col] < Rows
}

// LegalMoves returns the playable columns in ascending order
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.heights[col] < Rows {
			moves = append(moves, col)
		}
	}
	return moves
}

// Play drops a piece for side into col and returns the row it landed on
func (b *Board) Play(col int, side Side) (int, error) {
	if col < 0 || col >= Cols {
		return -1, fmt.Errorf("play column %d: %w", col, ErrInvalidColumn)
	}
	if b.heights[col] >= Rows {
		return -1, fmt.Errorf("play column %d: %w", col, ErrColumnFull)
	}
	row := Rows - 1 - int(b.heights[col])
	b.cells[row][col] = side
	b.heights[col]++
	return row, nil
}

// Undo clears the cell written by the immediately preceding Play(col).
// The caller owns correctness of row.
func (b *Board) Undo(col, row int) {
	b.cells[row][col] = Empty
	b.heights[col]--
}

func (b *Board) IsWinningFor(side Side) bool {
	for i := range windows {
		w := &windows[i]
		if b.cells[w[0].row][w[0].col] == side &&
			b.cells[w[1].row][w[1].col] == side &&
			b.cells[w[2].row][w[2].col] == side &&
			b.cells[w[3].row][w[3].col] == side {
			return true
		}
	}
	return false
}

// Winner returns the side with four in a row, or Empty
func (b *Board) Winner() Side {
	if b.IsWinningFor(SideA) {
		return SideA
	}
	if b.IsWinningFor(SideB) {
		return SideB
	}
	return Empty
}

func (b *Board) IsFull() bool {
	for col := 0; col < Cols; col++ {
		if b.heights[col] < Rows {
			return false
		}
	}
	return true
}

func (b *Board) IsTerminal() bool {
	return b.IsFull() || b.Winner() != Empty
}

func (b Board) Fingerprint() Fingerprint {
	var fp Fingerprint
	for col := 0; col < Cols; col++ {
		for h := 0; h < int(b.heights[col]); h++ {
			switch b.cells[Rows-1-h][col] {
			case SideA:
				fp[0] |= 1 << uint(col*(Rows+1)+h)
			case SideB:
				fp[1] |= 1 << uint(col*(Rows+1)+h)
			}
		}
	}
	return fp
}

// Count returns the number of pieces owned by side
func (b *Board) Count(side Side) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] == side {
				n++
			}
		}
	}
	return n
}

// Plies is the number of pieces on the board
func (b *Board) Plies() int {
	n := 0
	for col := 0; col < Cols; col++ {
		n += int(b.heights[col])
	}
	return n
}

// NextSide infers whose turn it is on a board played from empty with SideA first
func (b *Board) NextSide() Side {
	if b.Count(SideA) > b.Count(SideB) {
		return SideB
	}
	return SideA
}

// Validate checks gravity, height bookkeeping and that the piece counts
// of the two sides differ by at most one
func (b *Board) Validate() error {
	check := *b
	if err := check.recomputeHeights(); err != nil {
		return err
	}
	if check.heights != b.heights {
		return fmt.Errorf("height bookkeeping %v, cells say %v: %w", b.heights, check.heights, ErrFloatingPiece)
	}
	diff := b.Count(SideA) - b.Count(SideB)
	if diff > 1 || diff < -1 {
		return fmt.Errorf("piece difference %d: %w", diff, ErrUnbalanced)
	}
	return nil
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			switch b.cells[row][col] {
			case SideA:
				sb.WriteByte('X')
			case SideB:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// OrderByCenter sorts columns by distance from the center column, lower
// column first on ties. It sorts in place and returns moves.
func OrderByCenter(moves []int) []int {
	// insertion sort, at most 7 elements
	for i := 1; i < len(moves); i++ {
		for j := i; j > 0 && centerLess(moves[j], moves[j-1]); j-- {
			moves[j], moves[j-1] = moves[j-1], moves[j]
		}
	}
	return moves
}

func centerLess(a, b int) bool {
	da, db := abs(a-Center), abs(b-Center)
	if da != db {
		return da < db
	}
	return a < b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
