package fov

import "github.com/Faultbox/lumen/pkg/geom"

// DiagonalBits marks diagonal passages out of a tile that are blocked
// regardless of transparency, such as a vehicle hull corner.
type DiagonalBits uint8

// Diagonal flags, relative to the tile carrying them.
const (
	BlockNE DiagonalBits = 1 << iota
	BlockNW
)

// diagonalFlag returns the tile and flag that guard the diagonal step
// from -> to. ok is false when the step is not diagonal.
func diagonalFlag(from, to geom.Point) (owner geom.Point, flag DiagonalBits, ok bool) {
	d := to.Sub(from)
	if abs(d.X) != 1 || abs(d.Y) != 1 {
		return geom.Point{}, 0, false
	}
	// Flags live on the southern tile of the pair.
	south, north := from, to
	if d.Y > 0 {
		south, north = to, from
	}
	if north.X > south.X {
		return south, BlockNE, true
	}
	return south, BlockNW, true
}

// DiagonalStep resolves a diagonal step into the cell and flag that record
// it. ok is false when from and to are not diagonal neighbours.
func DiagonalStep(from, to geom.Point) (owner geom.Point, flag DiagonalBits, ok bool) {
	return diagonalFlag(from, to)
}

// DiagonalBlocked reports whether the diagonal step from -> to is blocked
// in bits. Non-diagonal steps are never blocked.
func DiagonalBlocked(bits *Grid[DiagonalBits], from, to geom.Point) bool {
	if bits == nil {
		return false
	}
	owner, flag, ok := diagonalFlag(from, to)
	if !ok {
		return false
	}
	return bits.At(owner)&flag != 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
