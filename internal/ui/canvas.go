package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/playingicon/pkg/playingicon"
)

// Lower block elements, indexed by eighths of a cell filled from the bottom
var eighthBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type cell struct {
	r     rune
	color string
}

// CellCanvas rasterizes widget rectangles onto a grid of terminal cells.
// One widget unit is one cell in both directions.
type CellCanvas struct {
	cols, rows int
	cells      []cell
}

// NewCellCanvas creates a blank canvas.
func NewCellCanvas(cols, rows int) *CellCanvas {
	c := &CellCanvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size and clears it.
func (c *CellCanvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
	c.Clear()
}

// Size returns the grid size in cells.
func (c *CellCanvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear blanks every cell.
func (c *CellCanvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
}

// FillRect paints r. A column is painted when r covers at least half of it;
// the topmost row of a column may be partially filled. A rect narrower than
// that still paints the column holding its midpoint.
func (c *CellCanvas) FillRect(r playingicon.Rect, color string) {
	if r.Empty() {
		return
	}

	x0 := max(int(math.Floor(r.Left)), 0)
	x1 := min(int(math.Ceil(r.Right)), c.cols)

	painted := false
	for x := x0; x < x1; x++ {
		cover := math.Min(r.Right, float64(x+1)) - math.Max(r.Left, float64(x))
		if cover < 0.5 {
			continue
		}
		c.fillColumn(x, r, color)
		painted = true
	}

	if !painted {
		if x := int(math.Floor((r.Left + r.Right) / 2)); x >= 0 && x < c.cols {
			c.fillColumn(x, r, color)
		}
	}
}

func (c *CellCanvas) fillColumn(x int, r playingicon.Rect, color string) {
	y0 := max(int(math.Floor(r.Top)), 0)
	y1 := min(int(math.Ceil(r.Bottom)), c.rows)

	for y := y0; y < y1; y++ {
		fill := math.Min(r.Bottom, float64(y+1)) - math.Max(r.Top, float64(y))
		level := min(int(math.Round(fill*8)), 8)
		if level <= 0 {
			continue
		}
		c.cells[y*c.cols+x] = cell{r: eighthBlocks[level], color: color}
	}
}

// Rune returns the glyph at x, y, or a space outside the grid.
func (c *CellCanvas) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return ' '
	}
	return c.cells[y*c.cols+x].r
}

// Lines returns the grid as plain text rows.
func (c *CellCanvas) Lines() []string {
	lines := make([]string, c.rows)
	for y := range lines {
		var b strings.Builder
		for x := 0; x < c.cols; x++ {
			b.WriteRune(c.cells[y*c.cols+x].r)
		}
		lines[y] = b.String()
	}
	return lines
}

// Render returns the grid with each run of same-colored cells styled.
func (c *CellCanvas) Render() string {
	lines := make([]string, c.rows)
	for y := range lines {
		var b strings.Builder
		row := c.cells[y*c.cols : (y+1)*c.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].color == row[start].color {
				end++
			}
			var run strings.Builder
			for _, cl := range row[start:end] {
				run.WriteRune(cl.r)
			}
			if row[start].color == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(row[start].color)).
					Render(run.String()))
			}
			start = end
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
