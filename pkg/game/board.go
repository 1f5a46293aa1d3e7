package game

import "fmt"

// Size is the side length of the square board.
const Size = 10

// Cell is the state of a single board square. Cells only ever move
// forward: once marked, a square never returns to Empty.
type Cell uint8

const (
	// Empty is untouched water.
	Empty Cell = iota
	// OwnShip is an intact segment of the player's own fleet.
	OwnShip
	// OwnShipHit is a segment of the player's own fleet the opponent has hit.
	OwnShipHit
	// EnemyShipHit marks a square where one of the player's shots struck
	// an enemy ship.
	EnemyShipHit
	// Miss marks a square the player shot at and found only water.
	Miss
)

// Coord addresses a single square, x running across the columns and y
// down the rows.
type Coord struct {
	X, Y int
}

// InBounds reports whether the square lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Board is a fixed 10x10 grid of cell states indexed [y][x]. Each player
// keeps two: a private board holding their own fleet and its damage, and
// an observation board accumulating what their shots have revealed about
// the opponent. The observation board only ever holds Empty, EnemyShipHit
// and Miss.
type Board [Size][Size]Cell

// PlaceShip draws a ship square by square along the straight line from
// start to end inclusive. The walk stops at the first occupied square,
// leaving the squares drawn so far in place, so callers validate before
// calling or discard the board on failure.
func (b *Board) PlaceShip(start, end Coord) error {
	if !start.InBounds() || !end.InBounds() {
		return ErrOutOfBounds
	}
	if start.X != end.X && start.Y != end.Y {
		return ErrDiagonal
	}
	if start == end {
		return ErrDegenerate
	}

	x, y := start.X, start.Y
	for {
		if b[y][x] == OwnShip {
			return fmt.Errorf("square (%d,%d): %w", x, y, ErrOccupied)
		}
		b[y][x] = OwnShip
		if x == end.X && y == end.Y {
			return nil
		}
		switch {
		case x < end.X:
			x++
		case x > end.X:
			x--
		case y < end.Y:
			y++
		default:
			y--
		}
	}
}

// ApplyIncomingShot applies an opponent's shot to the private board and
// reports whether it hit. Only intact ship squares register: water and
// already-hit squares stay as they are and count as a miss, as do
// squares off the board.
func (b *Board) ApplyIncomingShot(target Coord) bool {
	if !target.InBounds() {
		return false
	}
	if b[target.Y][target.X] == OwnShip {
		b[target.Y][target.X] = OwnShipHit
		return true
	}
	return false
}

// RecordShotResult writes the acknowledged outcome of one of the
// player's own shots onto the observation board. A later shot at the
// same square silently overwrites the mark.
func (b *Board) RecordShotResult(target Coord, hit bool) {
	if !target.InBounds() {
		return
	}
	if hit {
		b[target.Y][target.X] = EnemyShipHit
	} else {
		b[target.Y][target.X] = Miss
	}
}

// HasSurvivingShip reports whether any ship segment is still afloat.
func (b *Board) HasSurvivingShip() bool {
	for _, row := range b {
		for _, cell := range row {
			if cell == OwnShip {
				return true
			}
		}
	}
	return false
}
