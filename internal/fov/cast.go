package fov

import (
	"math"

	"github.com/Faultbox/lumen/pkg/geom"
)

// UpdateFunc receives the intensity computed for a visited tile.
type UpdateFunc func(p geom.Point, intensity float32, in Incidence)

// Cast describes one shadowcast from a single origin on a single level.
type Cast struct {
	Origin    geom.Point
	Numerator float32
	Radius    int
	// Offset is added to every tile's distance, for casts that continue a
	// path which already travelled some way, such as a mirror.
	Offset int
	Policy Policy
	// Octants limits the cast; nil casts all eight.
	Octants []Octant
	Update  UpdateFunc
}

// Caster runs 2D shadowcasts over one level's caches.
type Caster struct {
	Transparency *Grid[float32]
	Diagonal     *Grid[DiagonalBits]
	Tables       *Tables
}

// Run performs the cast and reports whether it started on the table fast
// path. The origin tile itself is not updated.
func (c *Caster) Run(cast Cast) bool {
	seed := c.Transparency.At(cast.Origin)
	if seed <= Solid {
		seed = OpenAir
	}
	lut := c.Tables.Lookup(seed)
	octants := cast.Octants
	if octants == nil {
		octants = Octants[:]
	}
	for _, oct := range octants {
		s := octantScan{caster: c, cast: &cast, oct: oct}
		s.scan(1, axisSlope, diagonalSlope, seed, lut)
	}
	return lut != nil
}

type octantScan struct {
	caster *Caster
	cast   *Cast
	oct    Octant
}

// scan sweeps rows outward from row inside the wedge [start, end]. Opaque
// tiles are updated whenever the wedge touches them; other tiles only when
// the wedge contains their centre, which makes sight reciprocal. Every
// change of transparency inside a row closes the current span: a span that
// still transmits is continued by a recursive scan of the narrower wedge,
// and the rest of the row starts at the edge of the next tile.
func (s *octantScan) scan(row int, start, end slope, cumulative float32, lut *DecayTable) {
	policy := s.cast.Policy
	grid := s.caster.Transparency
	for r := row; r <= s.cast.Radius; r++ {
		first, last := max(start.firstCol(r), 0), min(end.lastCol(r), r)
		if first > last {
			return
		}
		var spanT, brightest float32
		for col := first; col <= last; col++ {
			off := s.oct.Offset(r, col)
			pos := s.cast.Origin.Add(off)
			t := grid.At(pos)
			blocked := col > 0 && DiagonalBlocked(s.caster.Diagonal, pos.Sub(diagonalStep(off)), pos)
			if blocked {
				t = Solid
			}

			rng := rangeOf(off.X, off.Y, 0, s.cast.Offset)
			v := policy.Attenuate(s.cast.Numerator, falloff(lut, cumulative, rng.Steps), rng)
			reached := t <= Solid || centreInside(r, col, start, end)
			if reached && !blocked && grid.InBounds(pos) && rng.Steps-s.cast.Offset <= s.cast.Radius {
				s.cast.Update(pos, v, Incidence{Octant: s.oct, HeadOn: col == 0})
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
					s.scan(r+1, start, edge, nextCum, nextLut)
				}
				start = edge
				spanT, brightest = t, v
			}
		}
		if !policy.Continue(spanT, brightest) {
			return
		}
		cumulative, lut = accumulate(policy, cumulative, spanT, r, lut)
	}
}

// accumulate folds a span's transparency into the running value. The fast
// path survives only while every span matches the table's constant.
func accumulate(p Policy, cumulative, current float32, distance int, lut *DecayTable) (float32, *DecayTable) {
	if current == cumulative {
		return cumulative, lut
	}
	return p.Accumulate(cumulative, current, distance), nil
}

func falloff(lut *DecayTable, cumulative float32, steps int) float32 {
	if lut != nil {
		return lut.At(steps)
	}
	return Falloff(cumulative, steps)
}

func rangeOf(dx, dy, dz, offset int) Range {
	exact := geom.Hypot3(dx, dy, dz)
	return Range{
		Steps: int(math.Round(exact)) + offset,
		Exact: float32(exact) + float32(offset),
	}
}

// diagonalStep is the unit step that brought a ray into a tile at off.
func diagonalStep(off geom.Point) geom.Point {
	return geom.Point{X: sign(off.X), Y: sign(off.Y)}
}
