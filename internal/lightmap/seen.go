package lightmap

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/pkg/geom"
)

// BuildSeenCache computes what viewer sees. With z-levels every level is
// cast in 3D; otherwise only targetZ is, and only when the viewer stands on
// it. Registered cameras that the viewer can see then cast into the camera
// cache.
func (m *Map) BuildSeenCache(viewer geom.Tripoint, targetZ int) error {
	target, err := m.Level(targetZ)
	if err != nil {
		return err
	}
	done := m.metrics.Phase(metrics.PhaseSeen)
	defer done()
	m.viewer = viewer

	if m.opts.ZLevels {
		for _, lc := range m.levels {
			lc.Seen.Fill(0)
			lc.Camera.Fill(0)
		}
		m.castSeen3D(viewer)
	} else {
		target.Seen.Fill(0)
		target.Camera.Fill(0)
		if viewer.Z != targetZ {
			m.log.Debug("viewer not on target level",
				zap.Stringer("viewer", viewer),
				zap.Int("target", targetZ))
			return nil
		}
		m.castSeen2D(target, viewer.XY())
	}

	for _, c := range m.cameras {
		if !m.opts.ZLevels && c.Z != targetZ {
			continue
		}
		m.castCamera(viewer, c)
	}
	return nil
}

func (m *Map) castSeen2D(lc *LevelCache, origin geom.Point) {
	if !lc.Seen.Set(origin, fov.VisibilityFull) {
		return
	}
	fast := lc.caster(m.tables).Run(fov.Cast{
		Origin:    origin,
		Numerator: fov.VisibilityFull,
		Radius:    m.opts.MaxViewDistance,
		Policy:    fov.Sight{},
		Update: func(p geom.Point, v float32, _ fov.Incidence) {
			if ref := lc.Seen.Ref(p); *ref < v {
				*ref = v
			}
		},
	})
	m.metrics.Cast(metrics.CastSight, fast)
}

func (m *Map) castSeen3D(viewer geom.Tripoint) {
	lc := m.level(viewer.Z)
	if lc == nil || !lc.Seen.Set(viewer.XY(), fov.VisibilityFull) {
		return
	}
	vol := &fov.Volume{MinZ: m.world.MinZ, Tables: m.tables}
	for _, l := range m.levels {
		vol.Layers = append(vol.Layers, l.layer())
	}
	fast := vol.Run(fov.Cast3D{
		Origin:    viewer,
		Numerator: fov.VisibilityFull,
		Radius:    m.opts.MaxViewDistance,
		Policy:    fov.Sight{},
		Update: func(p geom.Tripoint, v float32) {
			if ref := m.level(p.Z).Seen.Ref(p.XY()); *ref < v {
				*ref = v
			}
		},
	})
	m.metrics.Cast(metrics.CastSight, fast)
}

// castCamera casts from a camera the viewer can see. Distances continue
// from the viewer's distance to the camera.
func (m *Map) castCamera(viewer, camera geom.Tripoint) {
	lc := m.level(camera.Z)
	if lc == nil {
		return
	}
	seen := lc.Seen.At(camera.XY())
	if seen <= 0 {
		return
	}
	offset := geom.RLDist(viewer, camera)
	radius := m.opts.MaxViewDistance - offset
	if radius <= 0 {
		return
	}
	lc.Camera.Set(camera.XY(), max(lc.Camera.At(camera.XY()), seen))
	fast := lc.caster(m.tables).Run(fov.Cast{
		Origin:    camera.XY(),
		Numerator: fov.VisibilityFull,
		Radius:    radius,
		Offset:    offset,
		Policy:    fov.Sight{},
		Update: func(p geom.Point, v float32, _ fov.Incidence) {
			if ref := lc.Camera.Ref(p); *ref < v {
				*ref = v
			}
		},
	})
	m.metrics.Cast(metrics.CastCamera, fast)
}
