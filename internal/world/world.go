package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/internal/logger"
	"github.com/Faultbox/lumen/pkg/geom"
)

// Weather is the current weather's effect on light and sight.
type Weather struct {
	// SightPenalty multiplies the attenuation of outside tiles; 1 is clear.
	SightPenalty float32
	// LightModifier is added to the outdoor light level.
	LightModifier float32
}

// ClearWeather has no effect on light or sight.
var ClearWeather = Weather{SightPenalty: 1}

// Emitter is a light carried by a creature or item. Arc is the beam width
// in degrees; zero emits in every direction.
type Emitter struct {
	Pos       geom.Tripoint
	Luminance float32
	Bearing   float32
	Arc       float32
}

// World is the loaded map window: a stack of equally sized levels plus
// the dynamic content that affects light.
type World struct {
	MinZ     int
	levels   []*Level
	Weather  Weather
	Vehicles []*Vehicle
	Emitters []Emitter

	log *zap.Logger
}

// New creates a world of unloaded levels minZ..maxZ, each subW x subH
// submaps.
func New(subW, subH, minZ, maxZ int) *World {
	w := &World{
		MinZ:    minZ,
		Weather: ClearWeather,
		log:     logger.Named("world"),
	}
	for z := minZ; z <= maxZ; z++ {
		w.levels = append(w.levels, NewLevel(z, subW, subH))
	}
	return w
}

// MaxZ returns the highest level.
func (w *World) MaxZ() int { return w.MinZ + len(w.levels) - 1 }

// Width returns the level width in tiles.
func (w *World) Width() int { return w.levels[0].Width() }

// Height returns the level height in tiles.
func (w *World) Height() int { return w.levels[0].Height() }

// Level returns the level at z, or nil when z is outside the stack.
func (w *World) Level(z int) *Level {
	i := z - w.MinZ
	if i < 0 || i >= len(w.levels) {
		return nil
	}
	return w.levels[i]
}

// Levels returns every level from the bottom up.
func (w *World) Levels() []*Level {
	return w.levels
}

// Tile returns the tile at p.
func (w *World) Tile(p geom.Tripoint) (Tile, bool) {
	l := w.Level(p.Z)
	if l == nil {
		return Tile{}, false
	}
	return l.Tile(p.XY())
}

// SetDiagonalBlock closes the diagonal step between from and to. Steps that
// are not between diagonal neighbours on one level are logged and ignored.
func (w *World) SetDiagonalBlock(from, to geom.Tripoint) bool {
	l := w.Level(from.Z)
	owner, flag, ok := fov.DiagonalStep(from.XY(), to.XY())
	if l == nil || from.Z != to.Z || !ok {
		w.log.Warn("diagonal block not on a diagonal",
			zap.Stringer("from", from),
			zap.Stringer("to", to))
		return false
	}
	l.diagonal[owner] |= flag
	l.MarkDirty(owner.X/SubmapSize, owner.Y/SubmapSize)
	return true
}

// AddVehicle places v and closes its hull corners.
func (w *World) AddVehicle(v *Vehicle) {
	w.Vehicles = append(w.Vehicles, v)
	for _, c := range v.HullCorners {
		w.SetDiagonalBlock(c[0].WithZ(v.Z), c[1].WithZ(v.Z))
	}
}

// AddEmitter registers a carried light.
func (w *World) AddEmitter(e Emitter) {
	if w.Level(e.Pos.Z) == nil {
		w.log.Debug("emitter outside loaded levels", zap.Stringer("pos", e.Pos))
		return
	}
	w.Emitters = append(w.Emitters, e)
}
