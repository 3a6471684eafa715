// Package world holds the tile world consumed by the light and sight caches:
// levels of submaps, terrain, furniture and field definitions, weather,
// vehicles and carried light emitters.
package world

// TerrainDef describes the attributes of a terrain type that affect light
// and sight.
type TerrainDef struct {
	ID          string
	Transparent bool
	// NoFloor marks terrain that does not separate its tile from the level
	// below, such as open air or a stair opening.
	NoFloor bool
	// Indoors marks terrain under a roof; everything else is outside.
	Indoors   bool
	Luminance float32
}

// FurnitureDef describes the attributes of a furniture type that affect
// light and sight.
type FurnitureDef struct {
	ID          string
	Transparent bool
	Luminance   float32
}

// FieldType describes a field such as smoke or fire.
type FieldType struct {
	ID          string
	Transparent bool
	// Translucency is in (0, 1]. The tile's attenuation coefficient is
	// divided by it, so smaller values attenuate more and zero is opaque.
	// Ignored when Transparent is set.
	Translucency float32
	Luminance    float32
}

// Common definitions.
var (
	OpenAir    = &TerrainDef{ID: "t_open_air", Transparent: true, NoFloor: true}
	Grass      = &TerrainDef{ID: "t_grass", Transparent: true}
	FloorTile  = &TerrainDef{ID: "t_floor", Transparent: true, Indoors: true}
	Wall       = &TerrainDef{ID: "t_wall", Indoors: true}
	Window     = &TerrainDef{ID: "t_window", Transparent: true, Indoors: true}
	Rock       = &TerrainDef{ID: "t_rock", Indoors: true}
	StairsDown = &TerrainDef{ID: "t_stairs_down", Transparent: true, NoFloor: true, Indoors: true}

	Bookcase = &FurnitureDef{ID: "f_bookcase"}
	Table    = &FurnitureDef{ID: "f_table", Transparent: true}
	Lamp     = &FurnitureDef{ID: "f_floor_lamp", Transparent: true, Luminance: 20}

	Smoke = &FieldType{ID: "fd_smoke", Translucency: 0.2}
	Fog   = &FieldType{ID: "fd_fog", Translucency: 0.5}
	Fire  = &FieldType{ID: "fd_fire", Transparent: true, Luminance: 15}
)
