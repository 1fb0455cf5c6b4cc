// Package core provides fundamental types and utilities for the crossing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Viewport maps world coordinates onto a grid of terminal cells.
// The world keeps its own resolution (e.g. 1920x1080) no matter how
// large the terminal is.
type Viewport struct {
	WorldW, WorldH int
	CellsW, CellsH int
}

// NewViewport creates a viewport for the given world and cell dimensions.
func NewViewport(worldW, worldH, cellsW, cellsH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, CellsW: cellsW, CellsH: cellsH}
}

// ToCells projects a world rectangle onto the cell grid.
// Any rectangle with positive size covers at least one cell.
func (v Viewport) ToCells(r Rect) Rect {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*v.CellsW, v.WorldW)
	y0 := floorDiv(r.Y*v.CellsH, v.WorldH)
	x1 := ceilDiv(r.Right()*v.CellsW, v.WorldW)
	y1 := ceilDiv(r.Bottom()*v.CellsH, v.WorldH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld maps a cell position to the world coordinate of the cell's center.
func (v Viewport) ToWorld(col, row int) (int, int) {
	if v.CellsW <= 0 || v.CellsH <= 0 {
		return 0, 0
	}
	x := (2*col + 1) * v.WorldW / (2 * v.CellsW)
	y := (2*row + 1) * v.WorldH / (2 * v.CellsH)
	return x, y
}

// RowOf returns the cell row containing world y.
func (v Viewport) RowOf(y int) int {
	if v.WorldH <= 0 {
		return 0
	}
	return floorDiv(y*v.CellsH, v.WorldH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
