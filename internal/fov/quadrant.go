package fov

import "github.com/Faultbox/lumen/pkg/geom"

// Quadrant is one corner sector of a tile.
type Quadrant uint8

// Quadrants, clockwise from the north-east corner.
const (
	NE Quadrant = iota
	SE
	SW
	NW
)

// String implements fmt.Stringer.
func (q Quadrant) String() string {
	switch q {
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	default:
		return "?"
	}
}

// FacingSide returns the two quadrants of a tile that face the side in
// direction dir, which must be a cardinal offset.
func FacingSide(dir geom.Point) [2]Quadrant {
	switch {
	case dir.Y < 0:
		return [2]Quadrant{NE, NW}
	case dir.X > 0:
		return [2]Quadrant{NE, SE}
	case dir.Y > 0:
		return [2]Quadrant{SE, SW}
	default:
		return [2]Quadrant{SW, NW}
	}
}

// FacingCorner returns the quadrant of a tile that faces the diagonal
// neighbour in direction dir.
func FacingCorner(dir geom.Point) Quadrant {
	switch {
	case dir.X > 0 && dir.Y < 0:
		return NE
	case dir.X > 0:
		return SE
	case dir.Y > 0:
		return SW
	default:
		return NW
	}
}

// FourQuadrants holds one light value per corner sector of a tile.
type FourQuadrants [4]float32

// Uniform returns a value with all quadrants set to v.
func Uniform(v float32) FourQuadrants {
	return FourQuadrants{v, v, v, v}
}

// Max returns the brightest quadrant.
func (f FourQuadrants) Max() float32 {
	return max(f[NE], f[SE], f[SW], f[NW])
}

// Raise lifts every quadrant to at least v.
func (f *FourQuadrants) Raise(v float32) {
	for i := range f {
		f[i] = max(f[i], v)
	}
}

// RaiseQuadrants lifts the given quadrants to at least v.
func (f *FourQuadrants) RaiseQuadrants(v float32, qs ...Quadrant) {
	for _, q := range qs {
		f[q] = max(f[q], v)
	}
}

// Apply merges an incoming intensity arriving with the given incidence.
// A head-on ray lights the whole tile; any other ray lights only the two
// quadrants facing back toward the source.
func (f *FourQuadrants) Apply(intensity float32, in Incidence) {
	if in.HeadOn {
		f.Raise(intensity)
		return
	}
	q := in.Octant.Facing()
	f.RaiseQuadrants(intensity, q[0], q[1])
}
