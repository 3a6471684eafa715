// Package geom provides integer tile coordinates and distance metrics.
package geom

import (
	"fmt"
	"math"
)

// Point is a tile position on a single level.
type Point struct {
	X, Y int
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Scale returns p * s.
func (p Point) Scale(s int) Point {
	return Point{p.X * s, p.Y * s}
}

// WithZ lifts p onto level z.
func (p Point) WithZ(z int) Tripoint {
	return Tripoint{p.X, p.Y, z}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cardinal neighbour offsets. Y grows southwards.
var (
	North = Point{0, -1}
	East  = Point{1, 0}
	South = Point{0, 1}
	West  = Point{-1, 0}
)

// Bearing returns the compass bearing from p to other in degrees,
// clockwise from north, in [0, 360).
func (p Point) Bearing(other Point) float64 {
	d := other.Sub(p)
	deg := math.Atan2(float64(d.X), float64(-d.Y)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
