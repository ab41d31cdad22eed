package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Grid is the brick wall. Column index c advances down the canvas and row
// index r across it; the layout is fixed when the grid is built.
type Grid struct {
	layout config.BreakoutBricks
	alive  []bool // c*rows + r
}

// NewGrid allocates a wall with every brick alive.
func NewGrid(layout config.BreakoutBricks) *Grid {
	g := &Grid{
		layout: layout,
		alive:  make([]bool, layout.Columns*layout.Rows),
	}
	for i := range g.alive {
		g.alive[i] = true
	}
	return g
}

// Columns returns the number of brick columns.
func (g *Grid) Columns() int { return g.layout.Columns }

// Rows returns the number of brick rows.
func (g *Grid) Rows() int { return g.layout.Rows }

// Total returns the number of bricks the wall started with.
func (g *Grid) Total() int { return len(g.alive) }

func (g *Grid) index(c, r int) int {
	return c*g.layout.Rows + r
}

// Alive reports whether brick (c, r) is still standing.
// Out-of-range indices are never alive.
func (g *Grid) Alive(c, r int) bool {
	if c < 0 || c >= g.layout.Columns || r < 0 || r >= g.layout.Rows {
		return false
	}
	return g.alive[g.index(c, r)]
}

// Kill marks brick (c, r) destroyed. It returns false if the brick was
// already dead, so a brick is only ever counted once.
func (g *Grid) Kill(c, r int) bool {
	if !g.Alive(c, r) {
		return false
	}
	g.alive[g.index(c, r)] = false
	return true
}

// AliveCount returns the number of bricks still standing.
func (g *Grid) AliveCount() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// Rect returns the canvas rectangle of brick (c, r), alive or not.
func (g *Grid) Rect(c, r int) core.RectF {
	l := g.layout
	return core.RectF{
		X: float64(r)*(l.Width+l.Padding) + l.OffsetLeft,
		Y: float64(c)*(l.Height+l.Padding) + l.OffsetTop,
		W: l.Width,
		H: l.Height,
	}
}
