package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"github.com/M0r13n/battleships/pkg/game"
)

// colHeader labels the columns players aim with.
const colHeader = " |A|B|C|D|E|F|G|H|I|J|"

// boardGap separates the two boards on a row.
const boardGap = "   "

var cellPaint = map[game.Cell]*color.Color{
	game.Empty:        color.New(color.BgBlack),
	game.OwnShip:      color.New(color.BgGreen),
	game.OwnShipHit:   color.New(color.BgGreen, color.FgRed, color.Bold),
	game.EnemyShipHit: color.New(color.BgRed),
	game.Miss:         color.New(color.BgYellow),
}

// Renderer redraws the player's two boards between turns: their own
// fleet on the left, everything learnt about the opponent on the right.
type Renderer struct {
	out   io.Writer
	clear []byte
}

// NewRenderer builds a renderer for the terminal. The clear sequence is
// resolved once up front; when no clear binary exists the ANSI home-and
// -wipe sequence stands in.
func NewRenderer() *Renderer {
	seq, err := exec.Command("clear").Output()
	if err != nil {
		seq = []byte("\033[H\033[2J")
	}
	return &Renderer{out: os.Stdout, clear: seq}
}

// Render wipes the screen and draws both boards side by side.
func (r *Renderer) Render(own, enemy *game.Board) {
	r.out.Write(r.clear)
	title := color.New(color.Bold)
	fmt.Fprintf(r.out, "%s%s%s\n",
		title.Sprintf("%-*s", len(colHeader), "Your Board"),
		boardGap,
		title.Sprint("Enemy Board"))
	fmt.Fprintf(r.out, "%s%s%s\n", colHeader, boardGap, colHeader)
	for y := 0; y < game.Size; y++ {
		fmt.Fprintf(r.out, "%s%s%s\n", boardRow(own, y), boardGap, boardRow(enemy, y))
	}
	fmt.Fprintln(r.out)
}

// Waiting tells the player the opponent is aiming.
func (r *Renderer) Waiting() {
	fmt.Fprintln(r.out, "Waiting for the opponent's shot...")
}

// Reject prints a red line explaining why the last input was refused.
func (r *Renderer) Reject(err error) {
	color.New(color.FgRed).Fprintln(r.out, err)
}

func boardRow(b *game.Board, y int) string {
	var row strings.Builder
	fmt.Fprintf(&row, "%d|", y)
	for x := 0; x < game.Size; x++ {
		row.WriteString(paintCell(b[y][x]))
		row.WriteByte('|')
	}
	return row.String()
}

func paintCell(c game.Cell) string {
	glyph := " "
	if c == game.OwnShipHit {
		glyph = "X"
	}
	return cellPaint[c].Sprint(glyph)
}
