// Package scenario loads YAML scenario files: ASCII levels, lights,
// vehicles, cameras, weather and a viewer, and builds a world from them.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/lumen/internal/world"
	"github.com/Faultbox/lumen/pkg/geom"
)

var (
	// ErrNoLevels is returned for a scenario without levels.
	ErrNoLevels = errors.New("scenario has no levels")
	// ErrUnknownGlyph is returned for a map character without a legend entry.
	ErrUnknownGlyph = errors.New("unknown glyph")
	// ErrDuplicateLevel is returned when two levels share a z.
	ErrDuplicateLevel = errors.New("duplicate level")
)

// Scenario is the file format.
type Scenario struct {
	Name         string      `yaml:"name"`
	SunElevation *float32    `yaml:"sun_elevation,omitempty"`
	Weather      Weather     `yaml:"weather"`
	Levels       []Level     `yaml:"levels"`
	Lights       []Light     `yaml:"lights"`
	Vehicles     []Vehicle   `yaml:"vehicles"`
	Cameras      [][3]int    `yaml:"cameras"`
	Diagonals    [][2][3]int `yaml:"diagonal_blocks"`
	Viewer       Viewer      `yaml:"viewer"`
}

// Weather overrides the clear default.
type Weather struct {
	SightPenalty  float32 `yaml:"sight_penalty"`
	LightModifier float32 `yaml:"light_modifier"`
}

// Level is one z-level drawn in ASCII. Tiles past the drawn rows use Fill.
type Level struct {
	Z    int      `yaml:"z"`
	Fill string   `yaml:"fill"`
	Rows []string `yaml:"rows"`
}

// Light is a carried light. Arc is the beam width; zero is omnidirectional.
type Light struct {
	Pos       [3]int  `yaml:"pos"`
	Luminance float32 `yaml:"luminance"`
	Bearing   float32 `yaml:"bearing"`
	Arc       float32 `yaml:"arc"`
}

// Vehicle places a vehicle's lamps and hull corners on level Z.
type Vehicle struct {
	Name        string      `yaml:"name"`
	Z           int         `yaml:"z"`
	Parts       []Part      `yaml:"parts"`
	HullCorners [][2][2]int `yaml:"hull_corners"`
}

// Part is one lamp-carrying vehicle part.
type Part struct {
	Pos       [2]int  `yaml:"pos"`
	Light     string  `yaml:"light"`
	Luminance float32 `yaml:"luminance"`
	Bearing   float32 `yaml:"bearing"`
	HP        int     `yaml:"hp"`
	Enabled   *bool   `yaml:"enabled,omitempty"`
}

// Viewer describes who looks at the map.
type Viewer struct {
	Pos             [3]int  `yaml:"pos"`
	Clairvoyance    int     `yaml:"clairvoyance"`
	VisionThreshold float32 `yaml:"vision_threshold"`
	UnimpairedRange int     `yaml:"unimpaired_range"`
}

// Position returns the viewer's tile.
func (v Viewer) Position() geom.Tripoint {
	return tripoint(v.Pos)
}

// Parse decodes a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if len(s.Levels) == 0 {
		return nil, ErrNoLevels
	}
	return &s, nil
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build creates the world described by the scenario.
func (s *Scenario) Build() (*world.World, error) {
	if len(s.Levels) == 0 {
		return nil, ErrNoLevels
	}
	minZ, maxZ := s.Levels[0].Z, s.Levels[0].Z
	width, height := 1, 1
	byZ := make(map[int]Level, len(s.Levels))
	for _, l := range s.Levels {
		if _, dup := byZ[l.Z]; dup {
			return nil, fmt.Errorf("z=%d: %w", l.Z, ErrDuplicateLevel)
		}
		byZ[l.Z] = l
		minZ, maxZ = min(minZ, l.Z), max(maxZ, l.Z)
		height = max(height, len(l.Rows))
		for _, row := range l.Rows {
			width = max(width, len(row))
		}
	}
	subW := (width + world.SubmapSize - 1) / world.SubmapSize
	subH := (height + world.SubmapSize - 1) / world.SubmapSize

	w := world.New(subW, subH, minZ, maxZ)
	for z := minZ; z <= maxZ; z++ {
		l, ok := byZ[z]
		if !ok {
			l = Level{Z: z, Fill: " "}
		}
		if err := buildLevel(w.Level(z), l); err != nil {
			return nil, fmt.Errorf("level z=%d: %w", z, err)
		}
	}

	if s.Weather.SightPenalty > 0 {
		w.Weather = world.Weather{SightPenalty: s.Weather.SightPenalty, LightModifier: s.Weather.LightModifier}
	}
	for _, l := range s.Lights {
		w.AddEmitter(world.Emitter{Pos: tripoint(l.Pos), Luminance: l.Luminance, Bearing: l.Bearing, Arc: l.Arc})
	}
	for _, v := range s.Vehicles {
		veh, err := v.build()
		if err != nil {
			return nil, fmt.Errorf("vehicle %q: %w", v.Name, err)
		}
		w.AddVehicle(veh)
	}
	for _, d := range s.Diagonals {
		w.SetDiagonalBlock(tripoint(d[0]), tripoint(d[1]))
	}
	return w, nil
}

// CameraPositions returns the camera tiles.
func (s *Scenario) CameraPositions() []geom.Tripoint {
	out := make([]geom.Tripoint, 0, len(s.Cameras))
	for _, c := range s.Cameras {
		out = append(out, tripoint(c))
	}
	return out
}

func buildLevel(l *world.Level, def Level) error {
	fillGlyph := "#"
	if def.Fill != "" {
		fillGlyph = def.Fill
	}
	fill, err := Glyph(rune(fillGlyph[0]))
	if err != nil {
		return err
	}
	l.Fill(fill)
	for y, row := range def.Rows {
		for x, r := range row {
			t, err := Glyph(r)
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			l.SetTile(geom.Point{X: x, Y: y}, t)
		}
	}
	return nil
}

func (v Vehicle) build() (*world.Vehicle, error) {
	veh := &world.Vehicle{Name: v.Name, Z: v.Z}
	for _, p := range v.Parts {
		kind, ok := world.ParseLightKind(strings.ToLower(p.Light))
		if !ok {
			return nil, fmt.Errorf("unknown light %q", p.Light)
		}
		enabled := p.Enabled == nil || *p.Enabled
		veh.Parts = append(veh.Parts, world.VehiclePart{
			Pos:       geom.Point{X: p.Pos[0], Y: p.Pos[1]},
			Light:     kind,
			Luminance: p.Luminance,
			Bearing:   p.Bearing,
			HP:        p.HP,
			Enabled:   enabled,
		})
	}
	for _, c := range v.HullCorners {
		veh.HullCorners = append(veh.HullCorners, [2]geom.Point{
			{X: c[0][0], Y: c[0][1]},
			{X: c[1][0], Y: c[1][1]},
		})
	}
	return veh, nil
}

func tripoint(v [3]int) geom.Tripoint {
	return geom.Tripoint{X: v[0], Y: v[1], Z: v[2]}
}
