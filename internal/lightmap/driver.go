package lightmap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/pkg/geom"
)

// BuildMapCache rebuilds every cache for one turn in dependency order:
// transparency on all levels, the weather table, sunlight from the top
// down, the lightmaps of all levels in parallel, and finally the viewer's
// seen cache. Queued beams are consumed.
func (m *Map) BuildMapCache(ctx context.Context, viewer geom.Tripoint) error {
	done := m.metrics.Phase(metrics.PhaseTransparency)
	changed := 0
	for _, lc := range m.levels {
		if m.BuildTransparencyCache(lc.Z) {
			changed++
		}
	}
	done()

	if m.RefreshWeather() {
		m.log.Debug("weather table refreshed", zap.Float32("sight_penalty", m.world.Weather.SightPenalty))
	}

	done = m.metrics.Phase(metrics.PhaseSunlight)
	for z := m.world.MaxZ(); z >= m.world.MinZ; z-- {
		m.BuildSunlightCache(z)
	}
	done()

	if err := m.generateLightmaps(ctx); err != nil {
		return err
	}

	if err := m.BuildSeenCache(viewer, viewer.Z); err != nil {
		return fmt.Errorf("seen cache: %w", err)
	}
	m.log.Debug("map cache rebuilt",
		zap.Int("levels_changed", changed),
		zap.Stringer("viewer", viewer))
	return nil
}

// generateLightmaps runs GenerateLightmap on every level, at most
// opts.Workers at a time. Each worker writes only its own level.
func (m *Map) generateLightmaps(ctx context.Context) error {
	done := m.metrics.Phase(metrics.PhaseLightmap)
	defer done()
	defer m.queue.Clear()

	g, ctx := errgroup.WithContext(ctx)
	if m.opts.Workers > 0 {
		g.SetLimit(m.opts.Workers)
	}
	for _, lc := range m.levels {
		z := lc.Z
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.GenerateLightmap(z); err != nil {
				return fmt.Errorf("lightmap z=%d: %w", z, err)
			}
			return nil
		})
	}
	return g.Wait()
}
