package lightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/lightmap"
	"github.com/Faultbox/lumen/pkg/geom"
)

const hallDoc = `
sun_elevation: -30
levels:
  - z: 0
    fill: "."
    rows:
      - "############"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "#....#.....#"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "############"
`

func TestPointLightOrthogonalBrighterThanDiagonal(t *testing.T) {
	_, w := load(t, hallDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.AddLightSource(tp(3, 8, 0), 8)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	orthogonal := []geom.Tripoint{tp(3, 7, 0), tp(4, 8, 0), tp(3, 9, 0), tp(2, 8, 0)}
	diagonal := []geom.Tripoint{tp(2, 7, 0), tp(4, 7, 0), tp(4, 9, 0), tp(2, 9, 0)}
	for _, o := range orthogonal {
		for _, d := range diagonal {
			assert.Greater(t, m.AmbientLightAt(o), m.AmbientLightAt(d), "orthogonal %v vs diagonal %v", o, d)
		}
	}
	assert.Equal(t, float32(8), m.AmbientLightAt(tp(3, 8, 0)), "source tile")
	assert.Equal(t, lightmap.Low, m.LightAt(tp(3, 8, 0)))
	assert.Equal(t, fov.LightAmbientLow, m.AmbientLightAt(tp(9, 2, 0)), "out of reach stays at indoor ambient")
}

func TestQuadrantAsymmetryAtWall(t *testing.T) {
	_, w := load(t, hallDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.AddLightSource(tp(2, 5, 0), 100)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	lc, err := m.Level(0)
	require.NoError(t, err)
	wall := lc.Light.At(pt(5, 4))
	assert.Greater(t, wall[fov.NW], fov.LightAmbientLow)
	assert.Equal(t, wall[fov.NW], wall[fov.SW])
	assert.Equal(t, fov.LightAmbientLow, wall[fov.NE])
	assert.Equal(t, fov.LightAmbientLow, wall[fov.SE])
}

func TestBrightSourceAndBufferFlush(t *testing.T) {
	_, w := load(t, hallDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.AddLightSource(tp(3, 2, 0), 40)
	m.AddLightSource(tp(4, 2, 0), 40)
	m.AddLightSource(tp(3, 2, 0), 20)
	m.AddLightSource(tp(40, 2, 0), 20)
	m.AddLightSource(tp(3, 2, 9), 20)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	lc, err := m.Level(0)
	require.NoError(t, err)
	assert.Equal(t, float32(40), lc.Sources.At(pt(3, 2)), "colocated sources merge to the brightest")
	assert.Equal(t, lightmap.Bright, m.LightAt(tp(4, 2, 0)))
	assert.Greater(t, m.AmbientLightAt(tp(8, 2, 0)), fov.LightAmbientLow, "east of the pair is lit")
	assert.Greater(t, m.AmbientLightAt(tp(1, 2, 0)), fov.LightAmbientLow, "west of the pair is lit")
	assert.Zero(t, lc.Buffer.At(pt(3, 2)), "buffer is flushed")

	require.NoError(t, m.GenerateLightmap(0))
	assert.Zero(t, lc.Sources.At(pt(3, 2)), "nothing left to flush")
}

func TestWeakSourceLightsOnlyItsTile(t *testing.T) {
	_, w := load(t, hallDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.AddLightSource(tp(5, 8, 0), 1)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	assert.Equal(t, fov.LightAmbientLow, m.AmbientLightAt(tp(6, 8, 0)))
	lc, err := m.Level(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), lc.Sources.At(pt(5, 8)))
}

func TestDirectionalLight(t *testing.T) {
	_, w := load(t, hallDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.AddDirectionalLight(tp(5, 8, 0), 90, 60)
	m.AddLightArc(tp(5, 8, 3), 90, 60, 30)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	assert.Greater(t, m.AmbientLightAt(tp(8, 8, 0)), fov.LightAmbientLow, "inside the beam")
	assert.Greater(t, m.AmbientLightAt(tp(8, 6, 0)), fov.LightAmbientLow, "beam edge")
	assert.Equal(t, fov.LightAmbientLow, m.AmbientLightAt(tp(2, 8, 0)), "behind the lamp")
	assert.Equal(t, fov.LightAmbientLow, m.AmbientLightAt(tp(5, 5, 0)), "beside the lamp")

	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))
	assert.Equal(t, fov.LightAmbientLow, m.AmbientLightAt(tp(8, 8, 0)), "a beam is cast once")
}

const garageDoc = `
sun_elevation: -30
levels:
  - z: 0
    fill: "."
    rows:
      - "############"
      - "#..........#"
      - "#..........#"
      - "#..........#"
      - "############"
lights:
  - pos: [2, 1, 0]
    luminance: 30
vehicles:
  - name: van
    z: 0
    parts:
      - pos: [6, 2]
        light: headlight
        luminance: 80
        bearing: 270
        hp: 3
      - pos: [9, 3]
        light: dome
        luminance: 50
        hp: 0
`

func TestWorldEmittersAndVehicles(t *testing.T) {
	_, w := load(t, garageDoc)
	m := lightmap.New(w, options(false, night), nil)
	m.BuildTransparencyCache(0)
	m.BuildSunlightCache(0)
	require.NoError(t, m.GenerateLightmap(0))

	lc, err := m.Level(0)
	require.NoError(t, err)
	assert.Equal(t, float32(30), lc.Sources.At(pt(2, 1)), "carried lamp")
	assert.Equal(t, float32(80), lc.Sources.At(pt(6, 2)), "headlight")
	assert.Zero(t, lc.Sources.At(pt(9, 3)), "broken dome light")
	assert.Greater(t, m.AmbientLightAt(tp(4, 2, 0)), m.AmbientLightAt(tp(8, 2, 0)), "headlight points west")
}
