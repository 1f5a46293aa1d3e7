package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipCatalogue(t *testing.T) {
	lengths := map[ShipClass]int{
		Submarine:  2,
		Destroyer:  3,
		Cruiser:    4,
		Battleship: 5,
	}
	for class, length := range lengths {
		assert.Equal(t, length, class.Length())
	}
	assert.Equal(t, []ShipClass{Battleship, Submarine}, DefaultFleet())
}

func TestParseShipClass(t *testing.T) {
	class, err := ParseShipClass("battleship")
	require.NoError(t, err)
	assert.Equal(t, Battleship, class)

	class, err = ParseShipClass("  Submarine ")
	require.NoError(t, err)
	assert.Equal(t, Submarine, class)

	_, err = ParseShipClass("canoe")
	assert.Error(t, err)
}

func TestPlaceDrawsShip(t *testing.T) {
	var b Board
	require.NoError(t, Destroyer.Place(&b, Coord{X: 4, Y: 4}, Coord{X: 6, Y: 4}))
	for x := 4; x <= 6; x++ {
		assert.Equal(t, OwnShip, b[4][x], "cell (%d,4)", x)
	}
}

func TestPlaceRejectsOutOfBounds(t *testing.T) {
	var b Board
	err := Battleship.Place(&b, Coord{X: 6, Y: 0}, Coord{X: 10, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	err = Submarine.Place(&b, Coord{X: -1, Y: 3}, Coord{X: 0, Y: 3})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPlaceRejectsDiagonal(t *testing.T) {
	var b Board
	err := Battleship.Place(&b, Coord{X: 0, Y: 0}, Coord{X: 4, Y: 4})
	assert.ErrorIs(t, err, ErrDiagonal)

	// Orientation is checked before length, so a short diagonal still
	// reports the diagonal failure.
	err = Battleship.Place(&b, Coord{X: 0, Y: 0}, Coord{X: 2, Y: 2})
	assert.ErrorIs(t, err, ErrDiagonal)
}

func TestPlaceRejectsWrongLength(t *testing.T) {
	var b Board
	err := Battleship.Place(&b, Coord{X: 0, Y: 0}, Coord{X: 0, Y: 2})
	assert.ErrorIs(t, err, ErrWrongLength)

	err = Submarine.Place(&b, Coord{X: 0, Y: 0}, Coord{X: 0, Y: 4})
	assert.ErrorIs(t, err, ErrWrongLength)
}

// Bounds are checked before orientation, so a placement that is both off
// the board and diagonal reports the bounds failure.
func TestPlaceChecksBoundsFirst(t *testing.T) {
	var b Board
	err := Battleship.Place(&b, Coord{X: 6, Y: 6}, Coord{X: 10, Y: 10})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestPlaceDelegatesOverlap(t *testing.T) {
	var b Board
	require.NoError(t, Battleship.Place(&b, Coord{X: 0, Y: 0}, Coord{X: 0, Y: 4}))

	err := Destroyer.Place(&b, Coord{X: 0, Y: 2}, Coord{X: 2, Y: 2})
	assert.ErrorIs(t, err, ErrOccupied)
}
