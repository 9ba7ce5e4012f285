package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Axis selects which coordinate MoveAxis displaces.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Box is the size of an actor's axis-aligned rectangle. The rectangle
// anchored at position p covers [p.X, p.X+W) x [p.Y, p.Y+H).
type Box struct {
	W float64
	H float64
}

// groundProbe is how far below the actor IsGrounded looks.
const groundProbe = 1.0

// MoveAxis displaces pos by delta along axis. The leading edge of the
// destination rectangle is sampled against the grid; if it lands in a solid
// cell the edge is snapped flush onto that cell's boundary and collided is
// true. Only the destination is sampled, so a delta larger than a cell can
// pass through thin walls.
func MoveAxis(g *Grid, box Box, pos cp.Vector, axis Axis, delta float64) (cp.Vector, bool) {
	if delta == 0 || math.IsNaN(delta) {
		return pos, false
	}

	switch axis {
	case Vertical:
		next := pos
		next.Y += delta
		left, right := pos.X, below(pos.X+box.W)
		if delta > 0 {
			edge := below(next.Y + box.H)
			if !g.rowSpanSolid(edge, left, right) {
				return next, false
			}
			row := math.Floor(edge / g.tileH)
			next.Y = row*g.tileH - box.H
			return next, true
		}
		edge := next.Y
		if !g.rowSpanSolid(edge, left, right) {
			return next, false
		}
		row := math.Floor(edge / g.tileH)
		next.Y = (row + 1) * g.tileH
		return next, true

	case Horizontal:
		next := pos
		next.X += delta
		top, bottom := pos.Y, below(pos.Y+box.H)
		if delta > 0 {
			edge := below(next.X + box.W)
			if !g.colSpanSolid(edge, top, bottom) {
				return next, false
			}
			col := math.Floor(edge / g.tileW)
			next.X = col*g.tileW - box.W
			return next, true
		}
		edge := next.X
		if !g.colSpanSolid(edge, top, bottom) {
			return next, false
		}
		col := math.Floor(edge / g.tileW)
		next.X = (col + 1) * g.tileW
		return next, true
	}

	return pos, false
}

// IsGrounded reports whether a one-unit downward probe from pos would be
// blocked. pos itself is not changed.
func IsGrounded(g *Grid, box Box, pos cp.Vector) bool {
	_, collided := MoveAxis(g, box, pos, Vertical, groundProbe)
	return collided
}

// rowSpanSolid reports whether any cell of the horizontal edge at y
// between x0 and x1 is solid. Every cell the edge crosses is checked, so a
// box wider than a tile can't straddle a solid cell between its corners.
// The loop runs over cell indices clamped to the grid.
func (g *Grid) rowSpanSolid(y, x0, x1 float64) bool {
	if g == nil {
		return false
	}
	row, ok := cellIndex(y, g.tileH, g.rows)
	if !ok {
		return false
	}
	c0, c1, ok := cellSpan(x0, x1, g.tileW, g.cols)
	if !ok {
		return false
	}
	for col := c0; col <= c1; col++ {
		if g.cells[row*g.cols+col] {
			return true
		}
	}
	return false
}

// colSpanSolid is rowSpanSolid for a vertical edge at x.
func (g *Grid) colSpanSolid(x, y0, y1 float64) bool {
	if g == nil {
		return false
	}
	col, ok := cellIndex(x, g.tileW, g.cols)
	if !ok {
		return false
	}
	r0, r1, ok := cellSpan(y0, y1, g.tileH, g.rows)
	if !ok {
		return false
	}
	for row := r0; row <= r1; row++ {
		if g.cells[row*g.cols+col] {
			return true
		}
	}
	return false
}

// below returns the largest float strictly less than v: the last point
// inside a half-open extent ending at v.
func below(v float64) float64 {
	return math.Nextafter(v, math.Inf(-1))
}
