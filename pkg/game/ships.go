package game

import (
	"fmt"
	"strings"
)

// ShipClass is an entry of the fixed fleet catalogue, valued by its
// length in squares.
type ShipClass int

const (
	Submarine  ShipClass = 2
	Destroyer  ShipClass = 3
	Cruiser    ShipClass = 4
	Battleship ShipClass = 5
)

// Length is the number of squares the ship covers.
func (c ShipClass) Length() int { return int(c) }

func (c ShipClass) String() string {
	switch c {
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	case Cruiser:
		return "Cruiser"
	case Battleship:
		return "Battleship"
	}
	return fmt.Sprintf("ShipClass(%d)", int(c))
}

// ParseShipClass resolves a catalogue name, ignoring case and
// surrounding space.
func ParseShipClass(name string) (ShipClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "submarine":
		return Submarine, nil
	case "destroyer":
		return Destroyer, nil
	case "cruiser":
		return Cruiser, nil
	case "battleship":
		return Battleship, nil
	}
	return 0, fmt.Errorf("unknown ship class %q", name)
}

// DefaultFleet is the fleet both players place when none is configured.
func DefaultFleet() []ShipClass {
	return []ShipClass{Battleship, Submarine}
}

// Place validates the two end squares for this ship class and draws the
// ship onto the board. Checks run in a fixed order: board bounds, then
// orientation, then length, with per-square occupancy left to the board
// itself. Callers re-ask for input and retry on any failure.
func (c ShipClass) Place(b *Board, start, end Coord) error {
	if !start.InBounds() || !end.InBounds() {
		return ErrOutOfBounds
	}
	if start.X != end.X && start.Y != end.Y {
		return ErrDiagonal
	}
	span := abs(end.X - start.X)
	if dy := abs(end.Y - start.Y); dy > span {
		span = dy
	}
	if span != c.Length()-1 {
		return fmt.Errorf("%s covers %d squares, got %d: %w", c, c.Length(), span+1, ErrWrongLength)
	}
	return b.PlaceShip(start, end)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
