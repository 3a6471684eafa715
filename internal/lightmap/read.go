package lightmap

import (
	"math"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/lighting"
	"github.com/Faultbox/lumen/pkg/geom"
)

// LitLevel is the discrete brightness of a tile as shown to a viewer.
type LitLevel uint8

// Lit levels, darkest first. Blank marks a tile the viewer cannot see.
const (
	Dark LitLevel = iota
	Low
	BrightOnly
	Lit
	Bright
	Blank
)

var litLevelNames = [...]string{"dark", "low", "bright_only", "lit", "bright", "blank"}

// String implements fmt.Stringer.
func (l LitLevel) String() string {
	if int(l) < len(litLevelNames) {
		return litLevelNames[l]
	}
	return "unknown"
}

// obstructedVisibility is the scaled visibility at or below which a tile
// counts as unseen.
const obstructedVisibility = fov.Solid + 0.1

// Viewer is the vision of whoever looks at the map.
type Viewer struct {
	Pos geom.Tripoint
	// Clairvoyance is the radius inside which everything is seen clearly.
	Clairvoyance int
	// VisionThreshold is the least light the viewer needs to see a tile
	// as lit.
	VisionThreshold float32
	// UnimpairedRange is how far the viewer sees unaided; beyond it only
	// light sources show. Zero means unlimited.
	UnimpairedRange int
}

// LightAt classifies the light falling on p.
func (m *Map) LightAt(p geom.Tripoint) LitLevel {
	lc := m.level(p.Z)
	if lc == nil || !lc.Light.InBounds(p.XY()) {
		return Dark
	}
	if lc.Sources.At(p.XY()) >= fov.LightSourceBright {
		return Bright
	}
	switch light := lc.Light.At(p.XY()).Max(); {
	case light >= fov.LightAmbientLit:
		return Lit
	case light >= fov.LightAmbientLow:
		return Low
	}
	return Dark
}

// AmbientLightAt returns the brightest quadrant of p.
func (m *Map) AmbientLightAt(p geom.Tripoint) float32 {
	lc := m.level(p.Z)
	if lc == nil {
		return 0
	}
	return lc.Light.At(p.XY()).Max()
}

// IsTransparent reports whether sight and light pass through p.
func (m *Map) IsTransparent(p geom.Tripoint) bool {
	lc := m.level(p.Z)
	return lc != nil && lc.Transparency.At(p.XY()) > fov.Solid
}

// visibility is the seen or camera value of p, stretched so the falloff
// keeps its shape at any configured view distance.
func (m *Map) visibility(lc *LevelCache, p geom.Point) float32 {
	vis := max(lc.Seen.At(p), lc.Camera.At(p))
	if vis <= 0 {
		return 0
	}
	exp := float64(m.opts.BaselineDistance) / float64(m.opts.MaxViewDistance)
	return float32(math.Pow(float64(vis), exp))
}

// PlayerSees reports whether the last seen cache shows p within maxRange of
// its viewer. A negative maxRange means no limit.
func (m *Map) PlayerSees(p geom.Tripoint, maxRange int) bool {
	if maxRange >= 0 && geom.RLDist(m.viewer, p) > maxRange {
		return false
	}
	lc := m.level(p.Z)
	return lc != nil && m.visibility(lc, p.XY()) > obstructedVisibility
}

// ApparentLightAt classifies p as the viewer perceives it.
func (m *Map) ApparentLightAt(p geom.Tripoint, v Viewer) LitLevel {
	dist := geom.Chebyshev(v.Pos, p)
	if v.Clairvoyance > 0 && dist <= v.Clairvoyance {
		return Bright
	}
	lc := m.level(p.Z)
	if lc == nil || !lc.Transparency.InBounds(p.XY()) {
		return Blank
	}
	xy := p.XY()
	vis := m.visibility(lc, xy)
	obstructed := vis <= obstructedVisibility
	sources := lc.Sources.At(xy)

	if v.UnimpairedRange > 0 && dist > v.UnimpairedRange {
		if !obstructed && sources > 0 {
			return BrightOnly
		}
		return Dark
	}
	if obstructed {
		return Blank
	}

	apparent := vis * m.seenLight(lc, xy)
	switch {
	case (apparent >= fov.LightAmbientLit && apparent > m.ambient(lc, xy)) || sources >= fov.LightSourceBright:
		return Bright
	case apparent >= v.VisionThreshold:
		return Lit
	case apparent >= fov.LightAmbientLow:
		return Low
	case sources > 0:
		return BrightOnly
	}
	return Dark
}

// ambient is the natural light level at p.
func (m *Map) ambient(lc *LevelCache, p geom.Point) float32 {
	if lc.Outside.At(p) {
		return m.outdoor
	}
	return lighting.IndoorLight(m.outdoor)
}

// seenLight is the light of p that reaches the viewer. An opaque tile only
// shows the quadrants facing its visible, non-opaque neighbours.
func (m *Map) seenLight(lc *LevelCache, p geom.Point) float32 {
	light := lc.Light.At(p)
	if lc.Transparency.At(p) > fov.Solid {
		return light.Max()
	}
	var mask fov.FourQuadrants
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dir := geom.Point{X: dx, Y: dy}
			if dir == (geom.Point{}) {
				continue
			}
			n := p.Add(dir)
			if lc.Transparency.At(n) <= fov.Solid || m.visibility(lc, n) <= obstructedVisibility {
				continue
			}
			if dx != 0 && dy != 0 {
				mask.RaiseQuadrants(1, fov.FacingCorner(dir))
			} else {
				side := fov.FacingSide(dir)
				mask.RaiseQuadrants(1, side[0], side[1])
			}
		}
	}
	var out float32
	for q := range light {
		out = max(out, light[q]*mask[q])
	}
	return out
}
