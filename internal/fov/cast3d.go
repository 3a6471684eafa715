package fov

import (
	"math"

	"github.com/Faultbox/lumen/pkg/geom"
)

// Layer is one level's input to a 3D cast. A floor on a tile separates it
// from the level below.
type Layer struct {
	Transparency *Grid[float32]
	Floor        *Grid[bool]
	Diagonal     *Grid[DiagonalBits]
}

// Volume is a vertical stack of layers.
type Volume struct {
	MinZ   int
	Layers []*Layer
	Tables *Tables
}

// Layer returns the layer at z, or nil when z is outside the stack.
func (v *Volume) Layer(z int) *Layer {
	i := z - v.MinZ
	if i < 0 || i >= len(v.Layers) {
		return nil
	}
	return v.Layers[i]
}

// Cast3D describes one shadowcast across levels.
type Cast3D struct {
	Origin    geom.Tripoint
	Numerator float32
	Radius    int
	Offset    int
	Policy    Policy
	Update    func(p geom.Tripoint, intensity float32)
}

// Run performs the cast in both vertical hemispheres and reports whether
// it started on the table fast path. The origin tile is not updated.
func (v *Volume) Run(cast Cast3D) bool {
	origin := v.Layer(cast.Origin.Z)
	if origin == nil {
		return false
	}
	seed := origin.Transparency.At(cast.Origin.XY())
	if seed <= Solid {
		seed = OpenAir
	}
	lut := v.Tables.Lookup(seed)
	for _, zdir := range [2]int{1, -1} {
		for _, oct := range Octants {
			s := volumeScan{volume: v, cast: &cast, oct: oct, zdir: zdir}
			s.scan(1, axisSlope, diagonalSlope, 0, 1, seed, lut)
		}
		v.column(&cast, zdir, seed, lut)
	}
	return lut != nil
}

// column lights the tiles straight above or below the origin.
func (v *Volume) column(cast *Cast3D, zdir int, cumulative float32, lut *DecayTable) {
	xy := cast.Origin.XY()
	for k := 1; k <= cast.Radius; k++ {
		z := cast.Origin.Z + zdir*k
		layer := v.Layer(z)
		if layer == nil || v.floorClosed(cast.Origin, zdir, k, xy, xy) {
			return
		}
		t := layer.Transparency.At(xy)
		rng := rangeOf(0, 0, k, cast.Offset)
		intensity := cast.Policy.Attenuate(cast.Numerator, falloff(lut, cumulative, rng.Steps), rng)
		cast.Update(xy.WithZ(z), intensity)
		if !cast.Policy.Continue(t, intensity) {
			return
		}
		cumulative, lut = accumulate(cast.Policy, cumulative, t, k, lut)
	}
}

// floorBlocked reports whether the ray from the origin to the centre of
// the tile at planar offset off, k levels away along zdir, meets a floor.
// Each level boundary is tested at the tiles the ray crosses it in; a ray
// crossing exactly between two tiles passes if either is open.
func (v *Volume) floorBlocked(origin geom.Tripoint, zdir int, off geom.Point, k int) bool {
	xy := origin.XY()
	for j := 1; j <= k; j++ {
		// The boundary lies (2j-1)/2k of the way to the target.
		x0, x1 := nearest(off.X*(2*j-1), 2*k)
		y0, y1 := nearest(off.Y*(2*j-1), 2*k)
		a := xy.Add(geom.Point{X: x0, Y: y0})
		b := xy.Add(geom.Point{X: x1, Y: y1})
		if v.floorClosed(origin, zdir, j, a, b) {
			return true
		}
	}
	return false
}

// floorClosed reports whether boundary j (between levels j-1 and j along
// zdir) is floored across the whole box spanned by a and b.
func (v *Volume) floorClosed(origin geom.Tripoint, zdir, j int, a, b geom.Point) bool {
	// A floor belongs to the upper of the two levels it separates.
	z := origin.Z + j
	if zdir < 0 {
		z = origin.Z - j + 1
	}
	layer := v.Layer(z)
	if layer == nil || layer.Floor == nil {
		return true
	}
	for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			if !layer.Floor.At(geom.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// nearest returns the integers nearest n/d for d > 0: one value twice, or
// both neighbours when n/d lies halfway between them.
func nearest(n, d int) (int, int) {
	q := floorDiv(2*n+d, 2*d)
	if (2*n+d)%(2*d) == 0 {
		return q - 1, q
	}
	return q, q
}

type volumeScan struct {
	volume *Volume
	cast   *Cast3D
	oct    Octant
	zdir   int
}

// scan processes row r of the wedge [start, end] x [zlo, zhi]. The vertical
// wedge is cut into one slice per level it crosses; inside a slice the row
// is scanned like the planar caster, and every span that still transmits
// continues as its own narrower wedge. A tile on another level is reached
// only when the ray to its centre passes every floor in between.
func (s *volumeScan) scan(r int, start, end slope, zlo, zhi float64, cumulative float32, lut *DecayTable) {
	if r > s.cast.Radius || zlo > zhi {
		return
	}
	rf := float64(r)
	kLo := int(math.Floor(zlo*rf + 0.5))
	kHi := int(math.Floor(zhi*rf + 0.5))
	for k := kLo; k <= kHi; k++ {
		sliceLo := max(zlo, (float64(k)-0.5)/rf)
		sliceHi := min(zhi, (float64(k)+0.5)/rf)
		if sliceLo > sliceHi || (k > kLo && sliceLo == sliceHi) {
			continue
		}
		layer := s.volume.Layer(s.cast.Origin.Z + s.zdir*k)
		if layer == nil {
			continue
		}
		s.row(layer, r, k, start, end, sliceLo, sliceHi, cumulative, lut)
	}
}

func (s *volumeScan) row(layer *Layer, r, k int, start, end slope, zlo, zhi float64, cumulative float32, lut *DecayTable) {
	first, last := max(start.firstCol(r), 0), min(end.lastCol(r), r)
	if first > last {
		return
	}
	policy := s.cast.Policy
	z := s.cast.Origin.Z + s.zdir*k
	var spanT, brightest float32
	for col := first; col <= last; col++ {
		off := s.oct.Offset(r, col)
		pos := s.cast.Origin.XY().Add(off)
		t := layer.Transparency.At(pos)
		blocked := (col > 0 && DiagonalBlocked(layer.Diagonal, pos.Sub(diagonalStep(off)), pos)) ||
			s.volume.floorBlocked(s.cast.Origin, s.zdir, off, k)
		if blocked {
			t = Solid
		}

		rng := rangeOf(off.X, off.Y, k, s.cast.Offset)
		v := policy.Attenuate(s.cast.Numerator, falloff(lut, cumulative, rng.Steps), rng)
		reached := t <= Solid || centreInside(r, col, start, end)
		if reached && !blocked && layer.Transparency.InBounds(pos) && rng.Steps-s.cast.Offset <= s.cast.Radius {
			s.cast.Update(pos.WithZ(z), v)
		}

		switch {
		case col == first:
			spanT, brightest = t, v
		case t == spanT:
			brightest = max(brightest, v)
		default:
			edge := tileEdge(r, col)
			if policy.Continue(spanT, brightest) {
				nextCum, nextLut := accumulate(policy, cumulative, spanT, r, lut)
				s.scan(r+1, start, edge, zlo, zhi, nextCum, nextLut)
			}
			start = edge
			spanT, brightest = t, v
		}
	}
	if !policy.Continue(spanT, brightest) {
		return
	}
	nextCum, nextLut := accumulate(policy, cumulative, spanT, r, lut)
	s.scan(r+1, start, end, zlo, zhi, nextCum, nextLut)
}
