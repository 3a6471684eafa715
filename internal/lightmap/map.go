// Package lightmap builds the per-turn transparency, sunlight, light and
// visibility caches of a world and answers light and sight queries.
package lightmap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/lighting"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/internal/metrics"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

// ErrUnknownLevel is returned for a z-level outside the loaded stack.
var ErrUnknownLevel = errors.New("unknown level")

// Options tunes cache construction.
type Options struct {
	// MaxViewDistance bounds every cast and sizes the decay tables.
	MaxViewDistance int
	// BaselineDistance is the view distance the visibility falloff was
	// tuned for.
	BaselineDistance int
	// ZLevels enables cross-level sight and the sunlight sweep.
	ZLevels bool
	// Workers bounds the parallel lightmap phase; 0 means one per level.
	Workers int
	// SunElevation is the sun's height above the horizon in degrees.
	SunElevation float32
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		MaxViewDistance:  60,
		BaselineDistance: 60,
		ZLevels:          true,
		SunElevation:     45,
	}
}

// sunSweep carries the whole-level shortcuts of the sunlight sweep from one
// level to the one below it.
type sunSweep struct {
	fullyOutside bool
	fullyInside  bool
}

// Map owns the caches of every level of a world.
type Map struct {
	world   *world.World
	opts    Options
	tables  *fov.Tables
	levels  []*LevelCache
	queue   *lighting.Queue
	cameras []geom.Tripoint
	viewer  geom.Tripoint
	metrics *metrics.Metrics
	log     *zap.Logger

	outdoor float32
	sun     sunSweep
}

// New creates empty caches sized to w. m may be nil.
func New(w *world.World, opts Options, m *metrics.Metrics) *Map {
	if opts.MaxViewDistance <= 0 {
		opts.MaxViewDistance = DefaultOptions().MaxViewDistance
	}
	if opts.BaselineDistance <= 0 {
		opts.BaselineDistance = DefaultOptions().BaselineDistance
	}
	mp := &Map{
		world:   w,
		opts:    opts,
		tables:  fov.NewTables(opts.MaxViewDistance * 2),
		queue:   lighting.NewQueue(),
		metrics: m,
		log:     logger.Named("lightmap"),
	}
	for _, l := range w.Levels() {
		mp.levels = append(mp.levels, newLevelCache(l.Z, l.Width(), l.Height()))
	}
	mp.outdoor = lighting.OutdoorLight(opts.SunElevation, w.Weather.LightModifier)
	return mp
}

// Options returns the tuning the map was built with.
func (m *Map) Options() Options { return m.opts }

// Level returns the caches of level z.
func (m *Map) Level(z int) (*LevelCache, error) {
	i := z - m.world.MinZ
	if i < 0 || i >= len(m.levels) {
		return nil, fmt.Errorf("level %d: %w", z, ErrUnknownLevel)
	}
	return m.levels[i], nil
}

// level is Level without the error, for read-side queries.
func (m *Map) level(z int) *LevelCache {
	lc, _ := m.Level(z)
	return lc
}

// OutdoorLight returns the light level under open sky this turn.
func (m *Map) OutdoorLight() float32 { return m.outdoor }

// SetSunElevation moves the sun. It takes effect at the next sunlight
// rebuild.
func (m *Map) SetSunElevation(elevation float32) {
	m.opts.SunElevation = elevation
	m.outdoor = lighting.OutdoorLight(elevation, m.world.Weather.LightModifier)
}

// RefreshWeather rebuilds the weather decay table and the outdoor light
// level from the world's weather. It must not run concurrently with any
// cast.
func (m *Map) RefreshWeather() bool {
	m.outdoor = lighting.OutdoorLight(m.opts.SunElevation, m.world.Weather.LightModifier)
	return m.tables.Refresh(m.world.Weather.SightPenalty)
}

// AddCamera registers a mirror or camera viewpoint for the seen cache.
func (m *Map) AddCamera(p geom.Tripoint) {
	m.cameras = append(m.cameras, p)
}
