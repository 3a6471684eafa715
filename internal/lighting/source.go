// Package lighting describes light sources and the outdoor light level.
package lighting

import (
	"math"
	"sync"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

// Kind is the emission pattern of a source.
type Kind uint8

// Source kinds.
const (
	Point Kind = iota
	Directional
	Arc
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Directional:
		return "directional"
	case Arc:
		return "arc"
	default:
		return "unknown"
	}
}

// Beam widths in degrees.
const (
	DirectionalWidth float32 = 90
	HeadlightWidth   float32 = 45
	WidelightWidth   float32 = 90
)

// Source is one light emitted this turn.
type Source struct {
	Pos       geom.Tripoint
	Kind      Kind
	Luminance float32
	// Bearing is the beam centre in degrees clockwise from north.
	Bearing float32
	// Width is the full beam width in degrees.
	Width float32
}

// NewPoint returns an omnidirectional source.
func NewPoint(pos geom.Tripoint, luminance float32) Source {
	return Source{Pos: pos, Kind: Point, Luminance: luminance}
}

// NewDirectional returns a beam of DirectionalWidth degrees.
func NewDirectional(pos geom.Tripoint, bearing, luminance float32) Source {
	return Source{Pos: pos, Kind: Directional, Luminance: luminance, Bearing: bearing, Width: DirectionalWidth}
}

// NewArc returns a beam of width degrees.
func NewArc(pos geom.Tripoint, bearing, luminance, width float32) Source {
	return Source{Pos: pos, Kind: Arc, Luminance: luminance, Bearing: bearing, Width: width}
}

// Covers reports whether the tile at p lies inside the source's beam. Point
// sources cover everything, as does any beam of 360 degrees or more.
func (s Source) Covers(p geom.Point) bool {
	if s.Kind == Point || s.Width >= 360 {
		return true
	}
	origin := s.Pos.XY()
	if p == origin {
		return true
	}
	diff := math.Abs(origin.Bearing(p) - float64(s.Bearing))
	diff = math.Mod(diff, 360)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= float64(s.Width)/2
}

// Radius is how far the source's light can carry, capped at maxRadius.
func (s Source) Radius(maxRadius int) int {
	return min(maxRadius, fov.LightRange(s.Luminance))
}

// ClampLuminance adjusts a weak source before casting. ownTile is set when
// the source is too weak to light anything but the tile it stands on.
func ClampLuminance(lum float32) (clamped float32, ownTile bool) {
	switch {
	case lum <= 1:
		return lum, true
	case lum <= 2:
		return 1.49, false
	case lum <= 3:
		return 2.49, false
	default:
		return lum, false
	}
}

// FromEmitter converts a carried light into a source.
func FromEmitter(e world.Emitter) Source {
	switch {
	case e.Arc <= 0 || e.Arc >= 360:
		return NewPoint(e.Pos, e.Luminance)
	case e.Arc == DirectionalWidth:
		return NewDirectional(e.Pos, e.Bearing, e.Luminance)
	default:
		return NewArc(e.Pos, e.Bearing, e.Luminance, e.Arc)
	}
}

// FromVehicle returns the sources of every working lamp on v.
func FromVehicle(v *world.Vehicle) []Source {
	var out []Source
	for _, part := range v.Parts {
		if !part.Emits() {
			continue
		}
		pos := part.Pos.WithZ(v.Z)
		switch part.Light {
		case world.OverheadLight, world.DomeLight, world.AisleLight:
			out = append(out, NewPoint(pos, part.Luminance))
		case world.Headlight:
			out = append(out, NewArc(pos, part.Bearing, part.Luminance, HeadlightWidth))
		case world.Widelight:
			out = append(out, NewArc(pos, part.Bearing, part.Luminance, WidelightWidth))
		case world.Floodlight:
			out = append(out, NewDirectional(pos, part.Bearing, part.Luminance))
		}
	}
	return out
}

// Queue collects the sources emitted during one turn. It is safe for
// concurrent use so that levels can drain it in parallel.
type Queue struct {
	mu      sync.Mutex
	sources []Source
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add queues s. Sources without luminance are dropped and reported as false.
func (q *Queue) Add(s Source) bool {
	if s.Luminance <= 0 {
		return false
	}
	q.mu.Lock()
	q.sources = append(q.sources, s)
	q.mu.Unlock()
	return true
}

// Clear removes every source.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.sources = q.sources[:0]
	q.mu.Unlock()
}

// Take removes the sources on level z and returns them.
func (q *Queue) Take(z int) []Source {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []Source
	kept := q.sources[:0]
	for _, s := range q.sources {
		if s.Pos.Z == z {
			out = append(out, s)
		} else {
			kept = append(kept, s)
		}
	}
	q.sources = kept
	return out
}
