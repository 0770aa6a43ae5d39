package searcher

import "connect4/game"

// Searcher picks a column for side on board. It returns game.ErrNoLegalMove
// when the board has no playable column.
type Searcher interface {
	FindNextMove(board game.Board, side game.Side) (int, error)
	Name() string
}

// MetricsReporter is implemented by searchers that collect statistics
type MetricsReporter interface {
	LastMetric() SearchMetric
}

// Shortcut names the tactical rule that decided a move without search
type Shortcut string

// ShortcutOpening plays the center column on an empty board, ShortcutBlock
// plays into the opponent's immediate win
const (
	NoShortcut      Shortcut = ""
	ShortcutWin     Shortcut = "win"
	ShortcutBlock   Shortcut = "block"
	ShortcutFork    Shortcut = "fork"
	ShortcutOnly    Shortcut = "only-move"
	ShortcutOpening Shortcut = "opening"
)

// immediate opens in the center on an empty board. Otherwise it scans the
// center-ordered legal columns for a winning move, then for the opponent's
// winning move. With forks set it also looks for a move creating a double
// threat.
func immediate(board *game.Board, side game.Side, ordered []int, forks bool) (int, Shortcut) {
	if board.Plies() == 0 && board.CanPlay(game.Center) {
		return game.Center, ShortcutOpening
	}

	for _, col := range ordered {
		if game.IsWinningMove(*board, col, side) {
			return col, ShortcutWin
		}
	}

	opponent := side.Opponent()
	for _, col := range ordered {
		if game.IsWinningMove(*board, col, opponent) {
			return col, ShortcutBlock
		}
	}

	if forks {
		for _, col := range ordered {
			if game.CreatesDoubleThreat(*board, col, side) {
				return col, ShortcutFork
			}
		}
	}
	return -1, NoShortcut
}
