package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/M0r13n/battleships/pkg/game"
)

// Prompter reads the player's moves from a line-oriented input. Any of
// "q", "quit" or "exit", or the end of the input, counts as quitting.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads from standard input.
func NewPrompter() *Prompter {
	return &Prompter{in: bufio.NewScanner(os.Stdin), out: os.Stdout}
}

// NextTarget asks for a square like A4 until the player names a valid
// one or quits.
func (p *Prompter) NextTarget() (game.Coord, bool, error) {
	for {
		fmt.Fprint(p.out, "Your shot (e.g. A4, q to quit): ")
		line, ok, err := p.readLine()
		if err != nil {
			return game.Coord{}, false, err
		}
		if !ok || isQuit(line) {
			return game.Coord{}, true, nil
		}
		target, err := ParseCoord(line)
		if err != nil {
			color.New(color.FgRed).Fprintln(p.out, err)
			continue
		}
		return target, false, nil
	}
}

// PlaceFleet walks the player through placing every ship of the fleet in
// order, re-asking until each placement lands. It reports quit when the
// player abandons setup, leaving the board partially placed.
func (p *Prompter) PlaceFleet(own, enemy *game.Board, fleet []game.ShipClass, view *Renderer) (bool, error) {
	for _, class := range fleet {
		for {
			view.Render(own, enemy)
			fmt.Fprintf(p.out, "Place your %s, %d squares (e.g. A1-A%d, q to quit): ",
				class, class.Length(), class.Length())

			line, ok, err := p.readLine()
			if err != nil {
				return false, err
			}
			if !ok || isQuit(line) {
				return true, nil
			}
			start, end, err := ParsePlacement(line)
			if err != nil {
				view.Reject(err)
				continue
			}
			if err := class.Place(own, start, end); err != nil {
				view.Reject(err)
				continue
			}
			break
		}
	}
	view.Render(own, enemy)
	return false, nil
}

// ParseCoord turns a square like "A4" or "j9" into a board coordinate,
// the letter picking the column and the digit the row.
func ParseCoord(s string) (game.Coord, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if len(s) != 2 {
		return game.Coord{}, fmt.Errorf("%q is not a square like A4", s)
	}
	target := game.Coord{X: int(s[0]) - 'a', Y: int(s[1]) - '0'}
	if !target.InBounds() {
		return game.Coord{}, fmt.Errorf("%q is not a square on the board", s)
	}
	return target, nil
}

// ParsePlacement splits a placement like "A1-A5" into its end squares.
func ParsePlacement(s string) (start, end game.Coord, err error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), "-")
	if len(parts) != 2 {
		return start, end, fmt.Errorf("%q is not a placement like A1-A5", s)
	}
	if start, err = ParseCoord(parts[0]); err != nil {
		return start, end, err
	}
	if end, err = ParseCoord(parts[1]); err != nil {
		return start, end, err
	}
	return start, end, nil
}

func (p *Prompter) readLine() (string, bool, error) {
	if !p.in.Scan() {
		return "", false, p.in.Err()
	}
	return strings.TrimSpace(p.in.Text()), true, nil
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
