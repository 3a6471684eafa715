package world

import "slices"

// SubmapSize is the edge length of a submap in tiles.
const SubmapSize = 12

// Tile is the content of one map square.
type Tile struct {
	Terrain   *TerrainDef
	Furniture *FurnitureDef
	Fields    []*FieldType
}

// Equal reports whether both tiles carry the same definitions.
func (t Tile) Equal(o Tile) bool {
	return t.Terrain == o.Terrain && t.Furniture == o.Furniture && slices.Equal(t.Fields, o.Fields)
}

// Transparent reports whether terrain and furniture both let light through.
// Fields are not considered.
func (t Tile) Transparent() bool {
	if t.Terrain == nil || !t.Terrain.Transparent {
		return false
	}
	return t.Furniture == nil || t.Furniture.Transparent
}

// HasFloor reports whether the tile separates itself from the level below.
func (t Tile) HasFloor() bool {
	return t.Terrain == nil || !t.Terrain.NoFloor
}

// Outside reports whether the tile has sky access.
func (t Tile) Outside() bool {
	return t.Terrain != nil && !t.Terrain.Indoors
}

// Luminance is the brightest light emitted by the tile's contents.
func (t Tile) Luminance() float32 {
	var lum float32
	if t.Terrain != nil {
		lum = t.Terrain.Luminance
	}
	if t.Furniture != nil {
		lum = max(lum, t.Furniture.Luminance)
	}
	for _, f := range t.Fields {
		lum = max(lum, f.Luminance)
	}
	return lum
}

// Submap is a SubmapSize x SubmapSize block of tiles.
type Submap struct {
	tiles [SubmapSize][SubmapSize]Tile
}

// NewSubmap returns a submap filled with fill.
func NewSubmap(fill Tile) *Submap {
	s := &Submap{}
	for y := range s.tiles {
		for x := range s.tiles[y] {
			s.tiles[y][x] = fill
		}
	}
	return s
}

// At returns the tile at local coordinates.
func (s *Submap) At(x, y int) Tile {
	return s.tiles[y][x]
}

// Set replaces the tile at local coordinates.
func (s *Submap) Set(x, y int, t Tile) {
	s.tiles[y][x] = t
}

// IsUniform reports whether every tile equals the first.
func (s *Submap) IsUniform() bool {
	first := s.tiles[0][0]
	for y := range s.tiles {
		for x := range s.tiles[y] {
			if !s.tiles[y][x].Equal(first) {
				return false
			}
		}
	}
	return true
}
