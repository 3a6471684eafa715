package geom

import "fmt"

// Tripoint is a tile position including its level.
type Tripoint struct {
	X, Y, Z int
}

// XY drops the level.
func (t Tripoint) XY() Point {
	return Point{t.X, t.Y}
}

// String implements fmt.Stringer.
func (t Tripoint) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.X, t.Y, t.Z)
}
