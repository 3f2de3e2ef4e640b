package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/planar/pkg/geom"
)

// DefaultCells is the grid resolution along the longer side of a region's
// bounding box.
const DefaultCells = 200

// ErrEmptyBounds is returned when a region has no extent to sample.
var ErrEmptyBounds = errors.New("kernel: region bounds are empty")

// Coverage is a raster of a region: one bit per grid cell, set when the
// cell center lies inside the region.
type Coverage struct {
	Bounds geom.Bounds `json:"bounds"`
	Cols   int         `json:"cols"`
	Rows   int         `json:"rows"`
	Filled int         `json:"filled"`
	Area   float64     `json:"area"`
	Name   string      `json:"name"` // which scene shape this came from

	cells []bool
}

// SampleGrid rasterizes inside over b with cells along the longer side.
// Cells are square; the grid may overhang b by less than one cell.
func SampleGrid(b geom.Bounds, cells int, inside func(geom.Point) bool) (*Coverage, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	w, h := b.Width(), b.Height()
	if !(w > 0) || !(h > 0) {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyBounds, b)
	}
	size := math.Max(w, h) / float64(cells)
	cols := int(math.Ceil(w/size - 1e-9))
	rows := int(math.Ceil(h/size - 1e-9))

	c := &Coverage{
		Bounds: geom.NewBounds(b.XMin, b.XMin+float64(cols)*size, b.YMin, b.YMin+float64(rows)*size),
		Cols:   cols,
		Rows:   rows,
		cells:  make([]bool, cols*rows),
	}
	for row := 0; row < rows; row++ {
		y := b.YMin + (float64(row)+0.5)*size
		for col := 0; col < cols; col++ {
			x := b.XMin + (float64(col)+0.5)*size
			if inside(geom.Pt(x, y)) {
				c.cells[row*cols+col] = true
				c.Filled++
			}
		}
	}
	c.Area = float64(c.Filled) * c.CellArea()
	return c, nil
}

// CellArea returns the area of one grid cell.
func (c *Coverage) CellArea() float64 {
	if c.Cols == 0 || c.Rows == 0 {
		return 0
	}
	return c.Bounds.Width() / float64(c.Cols) * c.Bounds.Height() / float64(c.Rows)
}

// At reports whether the cell at (col, row) is filled. Row 0 is the
// bottom of the bounds.
func (c *Coverage) At(col, row int) bool {
	if col < 0 || col >= c.Cols || row < 0 || row >= c.Rows {
		return false
	}
	return c.cells[row*c.Cols+col]
}

// CellCount returns the number of grid cells.
func (c *Coverage) CellCount() int {
	return c.Cols * c.Rows
}

// IsEmpty returns true if no cell is filled.
func (c *Coverage) IsEmpty() bool {
	return c.Filled == 0
}
