package fov

import "math"

// Range is the distance of a tile from the cast origin.
type Range struct {
	// Steps is the rounded Euclidean distance plus any cast offset. It is
	// the exponent of the medium attenuation and indexes decay tables.
	Steps int
	// Exact is the unrounded Euclidean distance plus any cast offset.
	Exact float32
}

// Policy supplies the numeric behaviour of a cast.
type Policy interface {
	// Attenuate returns the intensity at a tile given the source numerator
	// and the medium falloff 1/exp(transparency*steps).
	Attenuate(numerator, falloff float32, r Range) float32
	// Continue reports whether propagation goes on past a span with the
	// given transparency whose last tile received intensity.
	Continue(transparency, intensity float32) bool
	// Accumulate folds a row's transparency into the running value.
	Accumulate(cumulative, current float32, distance int) float32
}

// Falloff returns 1/exp(transparency*steps).
func Falloff(transparency float32, steps int) float32 {
	return float32(1 / math.Exp(float64(transparency)*float64(steps)))
}

// Decay evaluates p without a lookup table.
func Decay(p Policy, numerator, transparency float32, r Range) float32 {
	return p.Attenuate(numerator, Falloff(transparency, r.Steps), r)
}

// averageTransparency is the running mean used by sight and light.
func averageTransparency(cumulative, current float32, distance int) float32 {
	return (float32(distance-1)*cumulative + current) / float32(distance)
}

// Sight decays visibility through the medium only.
type Sight struct{}

// Attenuate implements Policy.
func (Sight) Attenuate(numerator, falloff float32, _ Range) float32 {
	return numerator * falloff
}

// Continue implements Policy.
func (Sight) Continue(transparency, _ float32) bool {
	return transparency > Solid
}

// Accumulate implements Policy.
func (Sight) Accumulate(cumulative, current float32, distance int) float32 {
	return averageTransparency(cumulative, current, distance)
}

// Light decays luminance through the medium and spreads it with distance.
// Propagation stops once intensity drops to Cutoff.
type Light struct {
	Cutoff float32
}

// DefaultLight stops light once it falls to ambient-low.
var DefaultLight = Light{Cutoff: LightAmbientLow}

// Attenuate implements Policy.
func (Light) Attenuate(numerator, falloff float32, r Range) float32 {
	d := max(r.Exact, 1)
	return numerator * falloff / d
}

// Continue implements Policy.
func (l Light) Continue(transparency, intensity float32) bool {
	return transparency > Solid && intensity > l.Cutoff
}

// Accumulate implements Policy.
func (Light) Accumulate(cumulative, current float32, distance int) float32 {
	return averageTransparency(cumulative, current, distance)
}

// Shrapnel spreads fragment energy over the area of the burst front and
// is limited by the densest medium crossed.
type Shrapnel struct{}

// Attenuate implements Policy.
func (Shrapnel) Attenuate(numerator, falloff float32, r Range) float32 {
	d := max(r.Exact, 1)
	return numerator * falloff / (d * d)
}

// Continue implements Policy.
func (Shrapnel) Continue(transparency, intensity float32) bool {
	return transparency > Solid && intensity >= 1
}

// Accumulate implements Policy.
func (Shrapnel) Accumulate(cumulative, current float32, _ int) float32 {
	return max(cumulative, current)
}

// LightRange returns how far a source of the given luminance can reach
// through open air before falling to ambient-low.
func LightRange(luminance float32) int {
	if luminance <= LightAmbientLow {
		return 1
	}
	r := -math.Log(float64(LightAmbientLow/luminance)) / float64(OpenAir)
	return int(r)
}
