package lightmap

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/lighting"
	"github.com/Faultbox/lumen/pkg/geom"
)

var cardinals = [4]geom.Point{geom.North, geom.East, geom.South, geom.West}

// BuildSunlightCache seeds level z's light map with natural light. With
// z-levels the sweep runs top-down: each call reads the level above, so the
// levels must be built from MaxZ downwards, after their transparency.
// Without z-levels every level is lit from its own outside cache.
func (m *Map) BuildSunlightCache(z int) {
	lc, err := m.Level(z)
	if err != nil {
		m.log.Debug("sunlight build skipped", zap.Error(err))
		return
	}
	outdoor := m.outdoor
	indoor := lighting.IndoorLight(outdoor)

	if !m.opts.ZLevels {
		m.fillFromOutside(lc, outdoor, indoor)
		return
	}

	above, _ := m.Level(z + 1)
	switch {
	case above == nil:
		m.sun = sunSweep{fullyOutside: true}
		m.fillFromOutside(lc, outdoor, indoor)
	case m.sun.fullyInside:
		lc.Light.Fill(fov.Uniform(indoor))
	case m.sun.fullyOutside:
		lc.Light.Fill(fov.Uniform(outdoor))
	default:
		m.sunlightFromAbove(lc, above, indoor)
	}

	outside, inside := true, true
	lc.Transparency.Each(func(p geom.Point, t float32) {
		floor := lc.Floor.At(p)
		outside = outside && t > fov.Solid && !floor
		inside = inside && (t <= fov.Solid || floor)
	})
	m.sun.fullyOutside = m.sun.fullyOutside && outside
	m.sun.fullyInside = m.sun.fullyInside || inside
}

// fillFromOutside lights a level from its own sky access.
func (m *Map) fillFromOutside(lc *LevelCache, outdoor, indoor float32) {
	lc.Light.Each(func(p geom.Point, _ fov.FourQuadrants) {
		v := indoor
		if lc.Outside.At(p) {
			v = outdoor
		}
		lc.Light.Set(p, fov.Uniform(v))
	})
}

// sunlightFromAbove lights each tile from the tile straight above and its
// four orthogonal neighbours. Light that falls through a side neighbour only
// reaches the quadrants facing it.
func (m *Map) sunlightFromAbove(lc, above *LevelCache, indoor float32) {
	lc.Light.Each(func(p geom.Point, _ fov.FourQuadrants) {
		q := fov.Uniform(indoor)
		if v, ok := fallingLight(above, p, indoor); ok {
			q.Raise(v)
		}
		for _, dir := range cardinals {
			v, ok := fallingLight(above, p.Add(dir), indoor)
			if !ok {
				continue
			}
			side := fov.FacingSide(dir)
			q.RaiseQuadrants(v, side[0], side[1])
		}
		lc.Light.Set(p, q)
	})
}

// fallingLight is the natural light passing down through tile p of the level
// above. Media thicker than open air dim it, but never below indoor.
func fallingLight(above *LevelCache, p geom.Point, indoor float32) (float32, bool) {
	t := above.Transparency.At(p)
	if t <= fov.Solid || above.Floor.At(p) {
		return 0, false
	}
	source := above.Light.At(p).Max()
	v := source * (fov.OpenAir / t)
	return min(max(v, indoor), source), true
}
