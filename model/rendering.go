package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	// cellAlive is the glyph for a live cell in the text form
	cellAlive = '0'
	// cellDead is the glyph for a dead cell in the text form
	cellDead = '·'

	clearCmd = "clear"
)

// ParseGrid builds a grid from a textual seed pattern.
// Each line of text is one row; '·' marks a dead cell and '0' a live one.
// Blank lines before and after the pattern are ignored. The seed must
// yield at least one row, all rows must have equal length, and no other
// characters are accepted.
func ParseGrid(text string) (*Grid, error) {
	lines := trimBlankEdges(strings.Split(text, "\n"))
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrMalformedSeed, "[ParseGrid] seed contains no rows")
	}

	cells := make([][]Cell, 0, len(lines))
	width := -1
	for i, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			switch r {
			case cellAlive:
				row = append(row, Alive)
			case cellDead:
				row = append(row, Dead)
			default:
				return nil, errors.Wrapf(ErrMalformedSeed, "[ParseGrid] unrecognized character %q in row %d", r, i)
			}
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, errors.Wrapf(ErrMalformedSeed, "[ParseGrid] row %d has %d cells, want %d", i, len(row), width)
		}
		cells = append(cells, row)
	}
	if width == 0 {
		return nil, errors.Wrap(ErrMalformedSeed, "[ParseGrid] seed rows are empty")
	}

	return &Grid{
		height: len(cells),
		width:  width,
		cells:  cells,
	}, nil
}

// trimBlankEdges drops empty lines from the start and end of a seed.
// Empty lines between content rows are kept; they fail the equal-length
// check in ParseGrid rather than being silently dropped.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// Render returns the text form of the grid: one line per row, top to
// bottom, using the same alphabet ParseGrid reads. Round-trips with
// ParseGrid.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for row := range g.cells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range g.cells[row] {
			if cell == Alive {
				b.WriteRune(cellAlive)
			} else {
				b.WriteRune(cellDead)
			}
		}
	}
	return b.String()
}

// String implements fmt.Stringer
func (g *Grid) String() string {
	return g.Render()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Println(g.Render())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
