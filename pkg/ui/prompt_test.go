package ui

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M0r13n/battleships/pkg/game"
)

func testPrompter(input string) *Prompter {
	return &Prompter{in: bufio.NewScanner(strings.NewReader(input)), out: io.Discard}
}

func testRenderer() *Renderer {
	return &Renderer{out: io.Discard}
}

func TestParseCoord(t *testing.T) {
	cases := map[string]game.Coord{
		"A4":    {X: 0, Y: 4},
		"a4":    {X: 0, Y: 4},
		" J 9 ": {X: 9, Y: 9},
		"c0":    {X: 2, Y: 0},
	}
	for input, want := range cases {
		got, err := ParseCoord(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, input := range []string{"", "A", "A12", "K4", "4A", "??", "AA"} {
		_, err := ParseCoord(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParsePlacement(t *testing.T) {
	start, end, err := ParsePlacement("A1-A5")
	require.NoError(t, err)
	assert.Equal(t, game.Coord{X: 0, Y: 1}, start)
	assert.Equal(t, game.Coord{X: 0, Y: 5}, end)

	start, end, err = ParsePlacement(" b2 - e2 ")
	require.NoError(t, err)
	assert.Equal(t, game.Coord{X: 1, Y: 2}, start)
	assert.Equal(t, game.Coord{X: 4, Y: 2}, end)

	for _, input := range []string{"A1A5", "A1-A5-A9", "A1-K4", "-A5", ""} {
		_, _, err := ParsePlacement(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNextTargetRetriesUntilValid(t *testing.T) {
	p := testPrompter("banana\nZ9\nA4\n")
	target, quit, err := p.NextTarget()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, game.Coord{X: 0, Y: 4}, target)
}

func TestNextTargetQuit(t *testing.T) {
	for _, input := range []string{"q\n", "QUIT\n", "exit\n", ""} {
		p := testPrompter(input)
		_, quit, err := p.NextTarget()
		require.NoError(t, err, "input %q", input)
		assert.True(t, quit, "input %q", input)
	}
}

func TestPlaceFleetPlacesEveryShip(t *testing.T) {
	p := testPrompter("A0-A1\nC3-F3\n")
	var own, enemy game.Board

	quit, err := p.PlaceFleet(&own, &enemy, []game.ShipClass{game.Submarine, game.Cruiser}, testRenderer())
	require.NoError(t, err)
	assert.False(t, quit)

	assert.Equal(t, game.OwnShip, own[0][0])
	assert.Equal(t, game.OwnShip, own[1][0])
	for x := 2; x <= 5; x++ {
		assert.Equal(t, game.OwnShip, own[3][x], "cell (%d,3)", x)
	}
}

func TestPlaceFleetRetriesRejectedPlacement(t *testing.T) {
	// Wrong length first, then diagonal, then a valid submarine.
	p := testPrompter("A0-A5\nA0-B1\nA0-A1\n")
	var own, enemy game.Board

	quit, err := p.PlaceFleet(&own, &enemy, []game.ShipClass{game.Submarine}, testRenderer())
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, game.OwnShip, own[0][0])
	assert.Equal(t, game.OwnShip, own[1][0])
}

func TestPlaceFleetQuit(t *testing.T) {
	p := testPrompter("A0-A1\nq\n")
	var own, enemy game.Board

	quit, err := p.PlaceFleet(&own, &enemy, []game.ShipClass{game.Submarine, game.Cruiser}, testRenderer())
	require.NoError(t, err)
	assert.True(t, quit)
}
