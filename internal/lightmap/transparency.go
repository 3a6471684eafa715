package lightmap

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

// BuildTransparencyCache refreshes the transparency, floor, outside and
// diagonal caches of level z from its dirty submaps. The first build, and
// any build after the weather's sight penalty changed, redoes every
// submap. It reports whether anything was rebuilt.
func (m *Map) BuildTransparencyCache(z int) bool {
	lc, err := m.Level(z)
	if err != nil {
		m.log.Debug("transparency build skipped", zap.Error(err))
		return false
	}
	l := m.world.Level(z)
	penalty := m.world.Weather.SightPenalty
	rebuildAll := !lc.built || lc.sightPenalty != penalty
	if !rebuildAll && !l.AnyDirty() {
		return false
	}
	weather := m.tables.Nudge(fov.WeatherTransparency(penalty))

	if rebuildAll {
		lc.Transparency.Fill(fov.OpenAir)
		lc.Floor.Fill(true)
		lc.Outside.Fill(false)
	}

	rebuilt := 0
	for sy := 0; sy < l.SubmapsHigh(); sy++ {
		for sx := 0; sx < l.SubmapsWide(); sx++ {
			if !rebuildAll && !l.Dirty(sx, sy) {
				continue
			}
			m.buildSubmap(lc, l.Submap(sx, sy), geom.Point{X: sx * world.SubmapSize, Y: sy * world.SubmapSize}, weather)
			rebuilt++
		}
	}

	lc.Diagonal.Fill(0)
	l.Diagonals(func(p geom.Point, bits fov.DiagonalBits) {
		if !lc.Diagonal.Set(p, bits) {
			m.log.Warn("diagonal block outside level", zap.Stringer("pos", p), zap.Int("z", z))
		}
	})

	l.ClearDirty()
	lc.built = true
	lc.sightPenalty = penalty
	m.metrics.SubmapsRebuilt(rebuilt)
	return true
}

// buildSubmap fills one submap's block of the caches. An unloaded submap is
// solid and floored.
func (m *Map) buildSubmap(lc *LevelCache, sm *world.Submap, origin geom.Point, weather float32) {
	const n = world.SubmapSize
	if sm == nil {
		lc.Transparency.FillRect(origin, n, n, fov.Solid)
		lc.Floor.FillRect(origin, n, n, true)
		lc.Outside.FillRect(origin, n, n, false)
		return
	}
	if sm.IsUniform() {
		t := sm.At(0, 0)
		lc.Transparency.FillRect(origin, n, n, m.tileTransparency(t, weather))
		lc.Floor.FillRect(origin, n, n, t.HasFloor())
		lc.Outside.FillRect(origin, n, n, t.Outside())
		return
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t := sm.At(x, y)
			p := origin.Add(geom.Point{X: x, Y: y})
			lc.Transparency.Set(p, m.tileTransparency(t, weather))
			lc.Floor.Set(p, t.HasFloor())
			lc.Outside.Set(p, t.Outside())
		}
	}
}

// tileTransparency is the attenuation coefficient of one tile. Fields
// scale the coefficient by the inverse of their translucency, so thinner
// fields attenuate more; a field without translucency is opaque.
func (m *Map) tileTransparency(t world.Tile, weather float32) float32 {
	if !t.Transparent() {
		return fov.Solid
	}
	value := fov.OpenAir
	if t.Outside() {
		value = weather
	}
	for _, f := range t.Fields {
		if f.Transparent {
			continue
		}
		if f.Translucency <= 0 {
			return fov.Solid
		}
		value /= f.Translucency
	}
	return m.tables.Nudge(value)
}
