package scenario

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/world"
)

// legend maps map characters to tiles.
var legend = map[rune]world.Tile{
	'#': {Terrain: world.Wall},
	'R': {Terrain: world.Rock},
	'.': {Terrain: world.FloorTile},
	',': {Terrain: world.Grass},
	'+': {Terrain: world.Window},
	' ': {Terrain: world.OpenAir},
	'>': {Terrain: world.StairsDown},
	'B': {Terrain: world.FloorTile, Furniture: world.Bookcase},
	'T': {Terrain: world.FloorTile, Furniture: world.Table},
	'L': {Terrain: world.FloorTile, Furniture: world.Lamp},
	'~': {Terrain: world.FloorTile, Fields: []*world.FieldType{world.Smoke}},
	'%': {Terrain: world.Grass, Fields: []*world.FieldType{world.Fog}},
	'*': {Terrain: world.Grass, Fields: []*world.FieldType{world.Fire}},
}

// Glyph returns the tile drawn by r.
func Glyph(r rune) (world.Tile, error) {
	t, ok := legend[r]
	if !ok {
		return world.Tile{}, fmt.Errorf("%q: %w", r, ErrUnknownGlyph)
	}
	return t, nil
}
