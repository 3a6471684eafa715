package lightmap

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/lighting"
	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/pkg/geom"
)

// AddLightSource buffers a point source for the next lightmap generation.
// Colocated sources merge into the brightest.
func (m *Map) AddLightSource(p geom.Tripoint, luminance float32) {
	lc := m.level(p.Z)
	if lc == nil || luminance <= 0 {
		return
	}
	ref := lc.Buffer.Ref(p.XY())
	if ref == nil {
		m.log.Debug("light source outside level", zap.Stringer("pos", p))
		return
	}
	*ref = max(*ref, luminance)
}

// AddDirectionalLight queues a 90 degree beam.
func (m *Map) AddDirectionalLight(p geom.Tripoint, bearing, luminance float32) {
	m.queue.Add(lighting.NewDirectional(p, bearing, luminance))
}

// AddLightArc queues a beam of width degrees.
func (m *Map) AddLightArc(p geom.Tripoint, bearing, luminance, width float32) {
	m.queue.Add(lighting.NewArc(p, bearing, luminance, width))
}

// GenerateLightmap casts every light on level z on top of its sunlight:
// tile contents, carried emitters, vehicle lamps, buffered point sources
// and queued beams. Queued beams for z are consumed. It writes only level
// z's caches.
func (m *Map) GenerateLightmap(z int) error {
	lc, err := m.Level(z)
	if err != nil {
		return err
	}
	l := m.world.Level(z)

	lc.Sources.Fill(0)
	beams := m.queue.Take(z)

	lc.Transparency.Each(func(p geom.Point, _ float32) {
		if t, ok := l.Tile(p); ok {
			if lum := t.Luminance(); lum > 0 {
				*lc.Buffer.Ref(p) = max(lc.Buffer.At(p), lum)
			}
		}
	})
	for _, e := range m.world.Emitters {
		if e.Pos.Z != z {
			continue
		}
		beams = m.bufferOrQueue(lc, beams, lighting.FromEmitter(e))
	}
	for _, v := range m.world.Vehicles {
		if v.Z != z {
			continue
		}
		for _, s := range lighting.FromVehicle(v) {
			beams = m.bufferOrQueue(lc, beams, s)
		}
	}

	m.flushBuffer(lc)
	for _, s := range beams {
		m.castBeam(lc, s)
	}
	return nil
}

// bufferOrQueue buffers point sources and appends beams to beams.
func (m *Map) bufferOrQueue(lc *LevelCache, beams []lighting.Source, s lighting.Source) []lighting.Source {
	if s.Kind != lighting.Point {
		return append(beams, s)
	}
	if ref := lc.Buffer.Ref(s.Pos.XY()); ref != nil {
		*ref = max(*ref, s.Luminance)
	}
	return beams
}

// flushBuffer casts every buffered point source and clears the buffer. A
// source skips the octants facing a cardinal neighbour whose buffered
// luminance is at least its own; that neighbour lights them instead.
func (m *Map) flushBuffer(lc *LevelCache) {
	lc.Buffer.Each(func(p geom.Point, lum float32) {
		if lum <= 0 {
			return
		}
		var octants []fov.Octant
		for _, dir := range cardinals {
			if lum <= lc.Buffer.At(p.Add(dir)) {
				continue
			}
			pair := fov.OctantsToward(dir)
			octants = append(octants, pair[0], pair[1])
		}
		m.castLight(lc, lighting.NewPoint(p.WithZ(lc.Z), lum), octants)
	})
	lc.Buffer.Fill(0)
}

// castBeam casts a directional or arc source, lighting only tiles inside
// its beam.
func (m *Map) castBeam(lc *LevelCache, s lighting.Source) {
	m.castLight(lc, s, fov.Octants[:])
}

// castLight lights the source tile and casts s through octants.
func (m *Map) castLight(lc *LevelCache, s lighting.Source, octants []fov.Octant) {
	origin := s.Pos.XY()
	ref := lc.Light.Ref(origin)
	if ref == nil {
		m.log.Debug("light outside level", zap.Stringer("pos", s.Pos))
		return
	}
	ref.Raise(max(1, s.Luminance))
	lc.Sources.Set(origin, max(lc.Sources.At(origin), s.Luminance))

	lum, ownTile := lighting.ClampLuminance(s.Luminance)
	if ownTile || len(octants) == 0 {
		return
	}
	s.Luminance = lum
	fast := lc.caster(m.tables).Run(fov.Cast{
		Origin:    origin,
		Numerator: lum,
		Radius:    s.Radius(m.opts.MaxViewDistance),
		Policy:    fov.DefaultLight,
		Octants:   octants,
		Update: func(p geom.Point, intensity float32, in fov.Incidence) {
			if s.Covers(p) {
				lc.Light.Ref(p).Apply(intensity, in)
			}
		},
	})
	m.metrics.Cast(metrics.CastLight, fast)
}
