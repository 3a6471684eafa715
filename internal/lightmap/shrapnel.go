package lightmap

import (
	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/pkg/geom"
)

// ShrapnelField casts a fragment burst of the given power from origin and
// returns the fragment energy reaching each tile of its level. Energy
// spreads over the square of the distance, is limited by the densest
// medium crossed and stops below one unit.
func (m *Map) ShrapnelField(origin geom.Tripoint, power float32, radius int) (*fov.Grid[float32], error) {
	lc, err := m.Level(origin.Z)
	if err != nil {
		return nil, err
	}
	field := fov.NewGrid[float32](lc.Transparency.Width(), lc.Transparency.Height(), 0)
	if !field.Set(origin.XY(), power) {
		return field, nil
	}
	fast := lc.caster(m.tables).Run(fov.Cast{
		Origin:    origin.XY(),
		Numerator: power,
		Radius:    min(radius, m.opts.MaxViewDistance),
		Policy:    fov.Shrapnel{},
		Update: func(p geom.Point, v float32, _ fov.Incidence) {
			if ref := field.Ref(p); *ref < v {
				*ref = v
			}
		},
	})
	m.metrics.Cast(metrics.CastShrapnel, fast)
	return field, nil
}
