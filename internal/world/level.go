package world

import (
	"github.com/Faultbox/lumen/internal/fov"
	"github.com/Faultbox/lumen/pkg/geom"
)

// Level is one z-level of the loaded map window. Submaps that are not
// loaded are nil.
type Level struct {
	Z          int
	subW, subH int
	submaps    []*Submap
	dirty      []uint64
	diagonal   map[geom.Point]fov.DiagonalBits
}

// NewLevel creates an unloaded level of subW x subH submaps. Every submap
// starts dirty.
func NewLevel(z, subW, subH int) *Level {
	l := &Level{
		Z:        z,
		subW:     subW,
		subH:     subH,
		submaps:  make([]*Submap, subW*subH),
		dirty:    make([]uint64, (subW*subH+63)/64),
		diagonal: make(map[geom.Point]fov.DiagonalBits),
	}
	l.MarkAllDirty()
	return l
}

// Width returns the level width in tiles.
func (l *Level) Width() int { return l.subW * SubmapSize }

// Height returns the level height in tiles.
func (l *Level) Height() int { return l.subH * SubmapSize }

// SubmapsWide returns the level width in submaps.
func (l *Level) SubmapsWide() int { return l.subW }

// SubmapsHigh returns the level height in submaps.
func (l *Level) SubmapsHigh() int { return l.subH }

func (l *Level) submapIndex(sx, sy int) (int, bool) {
	if sx < 0 || sy < 0 || sx >= l.subW || sy >= l.subH {
		return 0, false
	}
	return sy*l.subW + sx, true
}

// Submap returns the submap at submap coordinates, or nil when it is out
// of range or not loaded.
func (l *Level) Submap(sx, sy int) *Submap {
	i, ok := l.submapIndex(sx, sy)
	if !ok {
		return nil
	}
	return l.submaps[i]
}

// SetSubmap loads s at submap coordinates and marks it dirty.
func (l *Level) SetSubmap(sx, sy int, s *Submap) {
	i, ok := l.submapIndex(sx, sy)
	if !ok {
		return
	}
	l.submaps[i] = s
	l.MarkDirty(sx, sy)
}

// Fill loads every submap with a fresh copy filled with t.
func (l *Level) Fill(t Tile) {
	for sy := 0; sy < l.subH; sy++ {
		for sx := 0; sx < l.subW; sx++ {
			l.SetSubmap(sx, sy, NewSubmap(t))
		}
	}
}

func split(p geom.Point) (sx, sy, lx, ly int) {
	return p.X / SubmapSize, p.Y / SubmapSize, p.X % SubmapSize, p.Y % SubmapSize
}

// Tile returns the tile at p. ok is false when p is out of range or its
// submap is not loaded.
func (l *Level) Tile(p geom.Point) (t Tile, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return Tile{}, false
	}
	sx, sy, lx, ly := split(p)
	s := l.Submap(sx, sy)
	if s == nil {
		return Tile{}, false
	}
	return s.At(lx, ly), true
}

// SetTile replaces the tile at p and marks its submap dirty. It reports
// false when the submap is not loaded.
func (l *Level) SetTile(p geom.Point, t Tile) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	sx, sy, lx, ly := split(p)
	s := l.Submap(sx, sy)
	if s == nil {
		return false
	}
	s.Set(lx, ly, t)
	l.MarkDirty(sx, sy)
	return true
}

// AddField places a field on the tile at p.
func (l *Level) AddField(p geom.Point, f *FieldType) bool {
	t, ok := l.Tile(p)
	if !ok {
		return false
	}
	t.Fields = append(append([]*FieldType(nil), t.Fields...), f)
	return l.SetTile(p, t)
}

// MarkDirty flags a submap for transparency rebuild.
func (l *Level) MarkDirty(sx, sy int) {
	if i, ok := l.submapIndex(sx, sy); ok {
		l.dirty[i/64] |= 1 << (i % 64)
	}
}

// MarkAllDirty flags every submap.
func (l *Level) MarkAllDirty() {
	for i := range l.dirty {
		l.dirty[i] = ^uint64(0)
	}
}

// Dirty reports whether a submap is flagged.
func (l *Level) Dirty(sx, sy int) bool {
	i, ok := l.submapIndex(sx, sy)
	return ok && l.dirty[i/64]&(1<<(i%64)) != 0
}

// AnyDirty reports whether any submap is flagged.
func (l *Level) AnyDirty() bool {
	for sy := 0; sy < l.subH; sy++ {
		for sx := 0; sx < l.subW; sx++ {
			if l.Dirty(sx, sy) {
				return true
			}
		}
	}
	return false
}

// ClearDirty resets every flag.
func (l *Level) ClearDirty() {
	clear(l.dirty)
}

// Diagonals calls fn for every tile carrying diagonal-block bits.
func (l *Level) Diagonals(fn func(p geom.Point, bits fov.DiagonalBits)) {
	for p, bits := range l.diagonal {
		fn(p, bits)
	}
}
