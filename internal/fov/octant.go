package fov

import "github.com/Faultbox/lumen/pkg/geom"

// Octant maps (row, column) offsets into world offsets. Row is the distance
// along the primary axis, column the offset along the secondary axis, with
// 0 <= column <= row.
type Octant struct {
	Primary   geom.Point
	Secondary geom.Point
}

// Octants lists the eight planar octants, paired by primary axis.
var Octants = [8]Octant{
	{geom.North, geom.East}, {geom.North, geom.West},
	{geom.East, geom.North}, {geom.East, geom.South},
	{geom.South, geom.East}, {geom.South, geom.West},
	{geom.West, geom.North}, {geom.West, geom.South},
}

// OctantsToward returns the two octants whose primary axis is dir.
func OctantsToward(dir geom.Point) [2]Octant {
	var out [2]Octant
	n := 0
	for _, o := range Octants {
		if o.Primary == dir && n < 2 {
			out[n] = o
			n++
		}
	}
	return out
}

// Offset converts a row/column pair into a world offset.
func (o Octant) Offset(row, col int) geom.Point {
	return o.Primary.Scale(row).Add(o.Secondary.Scale(col))
}

// Facing returns the quadrants of a tile in this octant that face back
// toward the origin along the primary axis.
func (o Octant) Facing() [2]Quadrant {
	return FacingSide(geom.Point{X: -o.Primary.X, Y: -o.Primary.Y})
}

// Incidence describes how a ray reached a tile.
type Incidence struct {
	Octant Octant
	// HeadOn is set when the tile lies on the octant's primary axis.
	HeadOn bool
}

// slope is the exact ratio of a column offset to a row distance.
type slope struct {
	num, den int
}

var (
	axisSlope     = slope{0, 1}
	diagonalSlope = slope{1, 1}
)

// tileEdge is the slope of the edge of tile (row, col) nearest the axis.
func tileEdge(row, col int) slope {
	return slope{2*col - 1, 2 * row}
}

// firstCol is row*s rounded half up: the first column of a row inside a
// wedge starting at s.
func (s slope) firstCol(row int) int {
	return floorDiv(2*row*s.num+s.den, 2*s.den)
}

// lastCol is row*s rounded half down: the last column of a row inside a
// wedge ending at s.
func (s slope) lastCol(row int) int {
	return -floorDiv(s.den-2*row*s.num, 2*s.den)
}

// centreInside reports whether the centre of tile (row, col) lies inside
// the wedge [start, end]. Only such tiles are reached symmetrically.
func centreInside(row, col int, start, end slope) bool {
	return col*start.den >= row*start.num && col*end.den <= row*end.num
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
