package collision

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfig is matched by every ConfigError returned from Build.
var ErrConfig = errors.New("collision: invalid grid config")

// ConfigError reports malformed grid construction input.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("collision: invalid grid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Grid is a static occupancy map of solid and empty cells. It is immutable
// once built; every query outside the authored extent is empty.
type Grid struct {
	tileW float64
	tileH float64
	cols  int
	rows  int
	cells []bool
}

// Build creates a grid from a row-major occupancy slice of length cols*rows.
func Build(occupancy []bool, tileWidth, tileHeight float64, cols, rows int) (*Grid, error) {
	if !(tileWidth > 0) || math.IsInf(tileWidth, 0) {
		return nil, &ConfigError{Field: "tile width", Reason: fmt.Sprintf("must be positive, got %v", tileWidth)}
	}
	if !(tileHeight > 0) || math.IsInf(tileHeight, 0) {
		return nil, &ConfigError{Field: "tile height", Reason: fmt.Sprintf("must be positive, got %v", tileHeight)}
	}
	if cols < 0 || rows < 0 {
		return nil, &ConfigError{Field: "dimensions", Reason: fmt.Sprintf("negative size %dx%d", cols, rows)}
	}
	if len(occupancy) != cols*rows {
		return nil, &ConfigError{
			Field:  "occupancy",
			Reason: fmt.Sprintf("have %d cells, want %d (%dx%d)", len(occupancy), cols*rows, cols, rows),
		}
	}

	cells := make([]bool, len(occupancy))
	copy(cells, occupancy)
	return &Grid{tileW: tileWidth, tileH: tileHeight, cols: cols, rows: rows, cells: cells}, nil
}

func (g *Grid) TileWidth() float64  { return g.tileW }
func (g *Grid) TileHeight() float64 { return g.tileH }
func (g *Grid) Cols() int           { return g.cols }
func (g *Grid) Rows() int           { return g.rows }

// Size returns the pixel extent of the authored grid.
func (g *Grid) Size() (float64, float64) {
	return float64(g.cols) * g.tileW, float64(g.rows) * g.tileH
}

// CellAt maps a world point to the cell containing it. ok is false when
// the point lies outside the grid.
func (g *Grid) CellAt(worldX, worldY float64) (col, row int, ok bool) {
	if g == nil {
		return 0, 0, false
	}
	col, okX := cellIndex(worldX, g.tileW, g.cols)
	row, okY := cellIndex(worldY, g.tileH, g.rows)
	return col, row, okX && okY
}

// IsSolidCell reports the stored flag for a cell; out of range is empty.
func (g *Grid) IsSolidCell(col, row int) bool {
	if g == nil {
		return false
	}
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return false
	}
	return g.cells[row*g.cols+col]
}

// IsSolidAt reports whether the world point falls inside a solid cell.
func (g *Grid) IsSolidAt(worldX, worldY float64) bool {
	col, row, ok := g.CellAt(worldX, worldY)
	return ok && g.cells[row*g.cols+col]
}

// cellIndex floors v/size into [0, n). The range check is done on the
// float so huge or NaN coordinates never reach the int conversion.
func cellIndex(v, size float64, n int) (int, bool) {
	f := math.Floor(v / size)
	if !(f >= 0 && f < float64(n)) {
		return 0, false
	}
	return int(f), true
}

// cellSpan returns the cells covered by [lo, hi] clamped to [0, n).
func cellSpan(lo, hi, size float64, n int) (int, int, bool) {
	f0 := math.Floor(lo / size)
	f1 := math.Floor(hi / size)
	if !(f1 >= 0 && f0 < float64(n)) || math.IsNaN(f0) || math.IsNaN(f1) {
		return 0, 0, false
	}
	f0 = math.Max(f0, 0)
	f1 = math.Min(f1, float64(n-1))
	return int(f0), int(f1), true
}
