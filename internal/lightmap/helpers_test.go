package lightmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lumen/internal/lightmap"
	"github.com/Faultbox/lumen/internal/scenario"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

// night keeps the outdoor level at its minimum so indoor tiles sit at
// ambient-low.
const night = -30

func load(t *testing.T, doc string) (*scenario.Scenario, *world.World) {
	t.Helper()
	s, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)
	w, err := s.Build()
	require.NoError(t, err)
	return s, w
}

func options(zlevels bool, sun float32) lightmap.Options {
	opts := lightmap.DefaultOptions()
	opts.ZLevels = zlevels
	opts.SunElevation = sun
	return opts
}

// turn builds every cache for a flat scenario as seen from viewer.
func turn(t *testing.T, doc string, viewer geom.Tripoint, opts lightmap.Options) (*lightmap.Map, *lightmap.LevelCache) {
	t.Helper()
	s, w := load(t, doc)
	m := lightmap.New(w, opts, nil)
	for _, c := range s.CameraPositions() {
		m.AddCamera(c)
	}
	require.NoError(t, m.BuildMapCache(context.Background(), viewer))
	lc, err := m.Level(viewer.Z)
	require.NoError(t, err)
	return m, lc
}

func pt(x, y int) geom.Point { return geom.Point{X: x, Y: y} }

func tp(x, y, z int) geom.Tripoint { return geom.Tripoint{X: x, Y: y, Z: z} }
