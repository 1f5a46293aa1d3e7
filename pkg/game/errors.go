package game

import "errors"

// Placement failures. All of them are recoverable: the caller re-asks
// for input and tries again, except that ErrOccupied may leave a
// partially drawn ship behind (see Board.PlaceShip).
var (
	ErrOutOfBounds = errors.New("square outside the board")
	ErrDiagonal    = errors.New("ship must lie on a single row or column")
	ErrWrongLength = errors.New("placement does not match the ship length")
	ErrDegenerate  = errors.New("ship start and end squares are the same")
	ErrOccupied    = errors.New("square already holds a ship")
)
