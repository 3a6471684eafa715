package fov

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/lumen/pkg/geom"
)

// stack builds a volume of open levels from minZ upwards. floors[i] lists
// the floored tiles of level minZ+i; nil floors every tile.
func stack(w, h, minZ int, floors ...[]geom.Point) *Volume {
	v := &Volume{MinZ: minZ}
	for _, f := range floors {
		floor := NewGrid[bool](w, h, true)
		if f == nil {
			floor.Fill(true)
		}
		for _, p := range f {
			floor.Set(p, true)
		}
		v.Layers = append(v.Layers, &Layer{Transparency: openGrid(w, h), Floor: floor})
	}
	return v
}

func seenVolume(v *Volume, origin geom.Tripoint) map[geom.Tripoint]float32 {
	out := make(map[geom.Tripoint]float32)
	v.Run(Cast3D{
		Origin:    origin,
		Numerator: VisibilityFull,
		Radius:    20,
		Policy:    Sight{},
		Update: func(p geom.Tripoint, in float32) {
			out[p] = max(out[p], in)
		},
	})
	return out
}

func TestVolumeFloorBlocksUpwardSight(t *testing.T) {
	v := stack(11, 11, 0, nil, nil)
	seen := seenVolume(v, geom.Tripoint{X: 3, Y: 5, Z: 0})

	assert.Greater(t, seen[geom.Tripoint{X: 6, Y: 5, Z: 0}], float32(0), "same level is visible")
	for p := range seen {
		assert.Equal(t, 0, p.Z, "nothing above a solid ceiling is visible: %v", p)
	}
}

func TestVolumeSeesThroughFloorOpening(t *testing.T) {
	v := stack(11, 11, 0, nil, ceilingWith(11, 11, geom.Point{X: 4, Y: 5}))
	seen := seenVolume(v, geom.Tripoint{X: 3, Y: 5, Z: 0})

	assert.Greater(t, seen[geom.Tripoint{X: 4, Y: 5, Z: 1}], float32(0), "the opening itself is visible")
	assert.Zero(t, seen[geom.Tripoint{X: 3, Y: 2, Z: 1}], "floored tiles above stay hidden")
}

// ceilingWith floors every tile of a w x h level except the openings.
func ceilingWith(w, h int, openings ...geom.Point) []geom.Point {
	open := make(map[geom.Point]bool, len(openings))
	for _, p := range openings {
		open[p] = true
	}
	tiles := make([]geom.Point, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if p := (geom.Point{X: x, Y: y}); !open[p] {
				tiles = append(tiles, p)
			}
		}
	}
	return tiles
}

func TestVolumeFloorCheckedWhereRayCrosses(t *testing.T) {
	v := stack(11, 11, 0, nil, ceilingWith(11, 11, geom.Point{X: 4, Y: 5}, geom.Point{X: 10, Y: 5}))
	seen := seenVolume(v, geom.Tripoint{X: 3, Y: 5, Z: 0})

	assert.Greater(t, seen[geom.Tripoint{X: 4, Y: 5, Z: 1}], float32(0), "near opening")
	assert.Greater(t, seen[geom.Tripoint{X: 5, Y: 5, Z: 1}], float32(0), "seen through the near opening")
	assert.Zero(t, seen[geom.Tripoint{X: 10, Y: 5, Z: 1}], "the far opening is above a floored crossing")
	assert.Zero(t, seen[geom.Tripoint{X: 8, Y: 5, Z: 1}])
}

func TestVolumeOpenLevelsAreVisible(t *testing.T) {
	v := stack(11, 11, -1, nil, nil, []geom.Point{})
	seen := seenVolume(v, geom.Tripoint{X: 5, Y: 5, Z: 0})

	assert.Greater(t, seen[geom.Tripoint{X: 7, Y: 5, Z: 1}], float32(0))
	assert.Greater(t, seen[geom.Tripoint{X: 5, Y: 5, Z: 1}], float32(0), "straight up through open sky")
	assert.Zero(t, seen[geom.Tripoint{X: 7, Y: 5, Z: -1}], "the origin level floor hides the level below")
}

func TestVolumeLayerLookup(t *testing.T) {
	v := stack(3, 3, -2, nil, nil)
	assert.NotNil(t, v.Layer(-2))
	assert.NotNil(t, v.Layer(-1))
	assert.Nil(t, v.Layer(0))
	assert.False(t, v.Run(Cast3D{Origin: geom.Tripoint{Z: 4}, Policy: Sight{}}))
}
