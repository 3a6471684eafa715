package geom

import "math"

// Chebyshev returns the king-move distance between a and b.
func Chebyshev(a, b Tripoint) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z))
}

// TrigDist returns the Euclidean distance between a and b.
func TrigDist(a, b Tripoint) float64 {
	return Hypot3(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

// RLDist returns the Euclidean distance between a and b rounded to the
// nearest whole tile.
func RLDist(a, b Tripoint) int {
	return int(math.Round(TrigDist(a, b)))
}

// Hypot3 returns sqrt(dx*dx + dy*dy + dz*dz).
func Hypot3(dx, dy, dz int) float64 {
	return math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
