package fov

import "github.com/Faultbox/lumen/pkg/geom"

// Grid is a fixed-size 2D array indexed by tile position. Reads outside the
// grid return the sentinel given at construction.
type Grid[T any] struct {
	width, height int
	cells         []T
	sentinel      T
}

// NewGrid allocates a width x height grid. Every cell starts at the zero
// value of T; out-of-range reads return sentinel.
func NewGrid[T any](width, height int, sentinel T) *Grid[T] {
	return &Grid[T]{
		width:    width,
		height:   height,
		cells:    make([]T, width*height),
		sentinel: sentinel,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p addresses a cell.
func (g *Grid[T]) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the value at p, or the sentinel when p is out of range.
func (g *Grid[T]) At(p geom.Point) T {
	if !g.InBounds(p) {
		return g.sentinel
	}
	return g.cells[p.Y*g.width+p.X]
}

// Ref returns a pointer to the cell at p, or nil when p is out of range.
func (g *Grid[T]) Ref(p geom.Point) *T {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[p.Y*g.width+p.X]
}

// Set stores v at p. Out-of-range writes are dropped and reported as false.
func (g *Grid[T]) Set(p geom.Point, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// FillRect sets every cell in the w x h block at origin to v, clipped to
// the grid.
func (g *Grid[T]) FillRect(origin geom.Point, w, h int, v T) {
	x0, y0 := max(origin.X, 0), max(origin.Y, 0)
	x1, y1 := min(origin.X+w, g.width), min(origin.Y+h, g.height)
	for y := y0; y < y1; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p geom.Point, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(geom.Point{X: x, Y: y}, g.cells[y*g.width+x])
		}
	}
}
