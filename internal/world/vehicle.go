package world

import "github.com/Faultbox/lumen/pkg/geom"

// LightKind is the kind of lamp mounted on a vehicle part.
type LightKind uint8

// Vehicle lamp kinds.
const (
	NoLight LightKind = iota
	OverheadLight
	DomeLight
	AisleLight
	Headlight
	Widelight
	Floodlight
)

var lightKindNames = [...]string{"none", "overhead", "dome", "aisle", "headlight", "widelight", "floodlight"}

// String implements fmt.Stringer.
func (k LightKind) String() string {
	if int(k) < len(lightKindNames) {
		return lightKindNames[k]
	}
	return "unknown"
}

// ParseLightKind maps a lamp name back to its kind.
func ParseLightKind(name string) (LightKind, bool) {
	for i, n := range lightKindNames {
		if n == name {
			return LightKind(i), true
		}
	}
	return NoLight, false
}

// VehiclePart is one mounted part. Pos is in map coordinates.
type VehiclePart struct {
	Pos       geom.Point
	Light     LightKind
	Luminance float32
	// Bearing is the direction the lamp faces, in degrees clockwise from
	// north.
	Bearing float32
	HP      int
	Enabled bool
}

// Emits reports whether the part currently gives off light.
func (p VehiclePart) Emits() bool {
	return p.Light != NoLight && p.Enabled && p.HP > 0 && p.Luminance > 0
}

// Vehicle is a vehicle on one level.
type Vehicle struct {
	Name  string
	Z     int
	Parts []VehiclePart
	// HullCorners lists diagonal steps closed off by the hull.
	HullCorners [][2]geom.Point
}
