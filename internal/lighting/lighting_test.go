package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

func TestSourceCovers(t *testing.T) {
	origin := geom.Tripoint{X: 5, Y: 5}
	tests := []struct {
		name   string
		source Source
		target geom.Point
		want   bool
	}{
		{"point covers behind", NewPoint(origin, 10), geom.Point{X: 5, Y: 9}, true},
		{"east beam ahead", NewDirectional(origin, 90, 10), geom.Point{X: 9, Y: 5}, true},
		{"east beam wide", NewDirectional(origin, 90, 10), geom.Point{X: 9, Y: 4}, true},
		{"east beam behind", NewDirectional(origin, 90, 10), geom.Point{X: 1, Y: 5}, false},
		{"north arc wraps", NewArc(origin, 350, 10, 45), geom.Point{X: 6, Y: 0}, true},
		{"narrow arc misses", NewArc(origin, 0, 10, 10), geom.Point{X: 7, Y: 3}, false},
		{"origin always", NewArc(origin, 0, 10, 10), geom.Point{X: 5, Y: 5}, true},
		{"full circle", NewArc(origin, 0, 10, 360), geom.Point{X: 5, Y: 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.Covers(tt.target))
		})
	}
}

func TestClampLuminance(t *testing.T) {
	tests := []struct {
		in      float32
		want    float32
		ownTile bool
	}{
		{0.5, 0.5, true},
		{1, 1, true},
		{1.8, 1.49, false},
		{3, 2.49, false},
		{8, 8, false},
	}
	for _, tt := range tests {
		got, own := ClampLuminance(tt.in)
		assert.Equal(t, tt.want, got, "luminance %v", tt.in)
		assert.Equal(t, tt.ownTile, own, "luminance %v", tt.in)
	}
}

func TestSourceRadius(t *testing.T) {
	s := NewPoint(geom.Tripoint{}, 1000)
	assert.Equal(t, 60, s.Radius(60))
	assert.Equal(t, fov.LightRange(8), NewPoint(geom.Tripoint{}, 8).Radius(60))
}

func TestFromVehicle(t *testing.T) {
	v := &world.Vehicle{
		Z: 2,
		Parts: []world.VehiclePart{
			{Pos: geom.Point{X: 1, Y: 1}, Light: world.DomeLight, Luminance: 20, HP: 5, Enabled: true},
			{Pos: geom.Point{X: 1, Y: 0}, Light: world.Headlight, Luminance: 200, Bearing: 0, HP: 5, Enabled: true},
			{Pos: geom.Point{X: 2, Y: 0}, Light: world.Widelight, Luminance: 200, HP: 5, Enabled: true},
			{Pos: geom.Point{X: 3, Y: 0}, Light: world.Floodlight, Luminance: 200, HP: 5, Enabled: true},
			{Pos: geom.Point{X: 4, Y: 0}, Light: world.Headlight, Luminance: 200, HP: 0, Enabled: true},
			{Pos: geom.Point{X: 5, Y: 0}, Light: world.NoLight, HP: 5},
		},
	}

	sources := FromVehicle(v)
	if assert.Len(t, sources, 4) {
		assert.Equal(t, Point, sources[0].Kind)
		assert.Equal(t, geom.Tripoint{X: 1, Y: 1, Z: 2}, sources[0].Pos)
		assert.Equal(t, Arc, sources[1].Kind)
		assert.Equal(t, HeadlightWidth, sources[1].Width)
		assert.Equal(t, WidelightWidth, sources[2].Width)
		assert.Equal(t, Directional, sources[3].Kind)
	}
}

func TestFromEmitter(t *testing.T) {
	pos := geom.Tripoint{X: 1}
	assert.Equal(t, Point, FromEmitter(world.Emitter{Pos: pos, Luminance: 5}).Kind)
	assert.Equal(t, Directional, FromEmitter(world.Emitter{Pos: pos, Luminance: 5, Arc: 90}).Kind)
	assert.Equal(t, Arc, FromEmitter(world.Emitter{Pos: pos, Luminance: 5, Arc: 30}).Kind)
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	assert.True(t, q.Add(NewPoint(geom.Tripoint{Z: 0}, 5)))
	assert.True(t, q.Add(NewPoint(geom.Tripoint{Z: 1}, 5)))
	assert.False(t, q.Add(NewPoint(geom.Tripoint{Z: 1}, 0)))
	assert.Len(t, q.Take(1), 1)
	assert.Empty(t, q.Take(1), "taken sources are gone")

	q.Clear()
	assert.Empty(t, q.Take(0))
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name               string
		azimuth, elevation float64
		want               [3]float32
	}{
		{"zenith", 0, 90, [3]float32{0, 0, 1}},
		{"north horizon", 0, 0, [3]float32{0, 1, 0}},
		{"east horizon", 90, 0, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}
}

func TestOutdoorLight(t *testing.T) {
	assert.Equal(t, nightLight, OutdoorLight(-30, 0))
	assert.InDelta(t, fov.DaylightLevel, OutdoorLight(60, 0), 1e-4)
	assert.InDelta(t, fov.DaylightLevel-20, OutdoorLight(60, -20), 1e-4)
	assert.Equal(t, float32(0), OutdoorLight(-30, -10))

	dusk := OutdoorLight(5, 0)
	assert.Greater(t, dusk, nightLight)
	assert.Less(t, dusk, fov.DaylightLevel)

	assert.Equal(t, fov.LightAmbientDim*0.8, IndoorLight(fov.DaylightLevel))
	assert.Equal(t, fov.LightAmbientLow, IndoorLight(nightLight))
}
