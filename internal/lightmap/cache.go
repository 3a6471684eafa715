package lightmap

import "github.com/Faultbox/lumen/internal/fov"

// LevelCache holds every per-turn cache of one level. Out-of-range reads
// return an opaque, floored, unseen and unlit sentinel.
type LevelCache struct {
	Z int

	Transparency *fov.Grid[float32]
	Floor        *fov.Grid[bool]
	Outside      *fov.Grid[bool]
	Diagonal     *fov.Grid[fov.DiagonalBits]

	Seen   *fov.Grid[float32]
	Camera *fov.Grid[float32]

	// Light is the four-quadrant light map; Sources holds the luminance of
	// the brightest source standing on each tile.
	Light   *fov.Grid[fov.FourQuadrants]
	Sources *fov.Grid[float32]
	// Buffer collects point sources until the next lightmap flush.
	Buffer *fov.Grid[float32]

	built        bool
	sightPenalty float32
}

func newLevelCache(z, width, height int) *LevelCache {
	return &LevelCache{
		Z:            z,
		Transparency: fov.NewGrid[float32](width, height, fov.Solid),
		Floor:        fov.NewGrid[bool](width, height, true),
		Outside:      fov.NewGrid[bool](width, height, false),
		Diagonal:     fov.NewGrid[fov.DiagonalBits](width, height, 0),
		Seen:         fov.NewGrid[float32](width, height, 0),
		Camera:       fov.NewGrid[float32](width, height, 0),
		Light:        fov.NewGrid[fov.FourQuadrants](width, height, fov.FourQuadrants{}),
		Sources:      fov.NewGrid[float32](width, height, 0),
		Buffer:       fov.NewGrid[float32](width, height, 0),
	}
}

// caster returns a planar caster over this level.
func (lc *LevelCache) caster(tables *fov.Tables) *fov.Caster {
	return &fov.Caster{
		Transparency: lc.Transparency,
		Diagonal:     lc.Diagonal,
		Tables:       tables,
	}
}

// layer returns this level's input to a 3D cast.
func (lc *LevelCache) layer() *fov.Layer {
	return &fov.Layer{
		Transparency: lc.Transparency,
		Floor:        lc.Floor,
		Diagonal:     lc.Diagonal,
	}
}
