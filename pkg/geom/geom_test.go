package geom

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	got := Point{1, 2}.Add(Point{3, 4})
	want := Point{4, 6}
	if got != want {
		t.Errorf("Point.Add() = %v, want %v", got, want)
	}
}

func TestTripointXY(t *testing.T) {
	got := Tripoint{3, 4, -2}.XY()
	want := Point{3, 4}
	if got != want {
		t.Errorf("Tripoint.XY() = %v, want %v", got, want)
	}
}

func TestDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Tripoint
		chebyshev int
		rl        int
	}{
		{"same", Tripoint{}, Tripoint{}, 0, 0},
		{"orthogonal", Tripoint{}, Tripoint{3, 0, 0}, 3, 3},
		{"diagonal", Tripoint{}, Tripoint{1, 1, 0}, 1, 1},
		{"long diagonal", Tripoint{}, Tripoint{2, 2, 0}, 2, 3},
		{"vertical", Tripoint{0, 0, 1}, Tripoint{0, 0, -1}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chebyshev(tt.a, tt.b); got != tt.chebyshev {
				t.Errorf("Chebyshev() = %d, want %d", got, tt.chebyshev)
			}
			if got := RLDist(tt.a, tt.b); got != tt.rl {
				t.Errorf("RLDist() = %d, want %d", got, tt.rl)
			}
		})
	}
}

func TestTrigDistSymmetric(t *testing.T) {
	a := Tripoint{1, 7, 0}
	b := Tripoint{-4, 2, 1}
	if TrigDist(a, b) != TrigDist(b, a) {
		t.Error("TrigDist should be symmetric")
	}
	if d := TrigDist(Tripoint{}, Tripoint{3, 4, 0}); math.Abs(d-5) > 1e-9 {
		t.Errorf("TrigDist() = %v, want 5", d)
	}
}

func TestBearing(t *testing.T) {
	origin := Point{5, 5}
	tests := []struct {
		to   Point
		want float64
	}{
		{Point{5, 0}, 0},
		{Point{9, 5}, 90},
		{Point{5, 9}, 180},
		{Point{1, 5}, 270},
	}
	for _, tt := range tests {
		if got := origin.Bearing(tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Bearing(%v) = %v, want %v", tt.to, got, tt.want)
		}
	}
}
