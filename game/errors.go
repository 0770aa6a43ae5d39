package game

import "errors"

var (
	// ErrColumnFull is returned when a piece is dropped into a full column
	ErrColumnFull = errors.New("column is full")
	// ErrInvalidColumn is returned for a column outside the board
	ErrInvalidColumn = errors.New("column out of range")
	// ErrNoLegalMove is returned when a decision is requested on a board without playable columns
	ErrNoLegalMove = errors.New("no legal move")
	// ErrFloatingPiece reports a piece with an empty cell below it
	ErrFloatingPiece = errors.New("piece is not supported")
	// ErrOverlappingPlanes reports a cell claimed by both observation planes
	ErrOverlappingPlanes = errors.New("cell occupied in both planes")
	// ErrUnbalanced reports piece counts that cannot arise from alternating play
	ErrUnbalanced = errors.New("piece counts differ by more than one")
)
