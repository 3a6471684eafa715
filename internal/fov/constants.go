// Package fov implements recursive symmetric shadowcasting over tile grids.
//
// A single caster serves sight, light and shrapnel propagation; the numeric
// behaviour of each is supplied as a Policy. Per-tile transparency values are
// attenuation coefficients: Solid blocks everything, OpenAir is the thinnest
// medium, and larger values attenuate more.
package fov

// Transparency constants.
const (
	Solid   float32 = 0
	OpenAir float32 = 0.038376418216
)

// VisibilityFull is the numerator of a sight cast.
const VisibilityFull float32 = 1

// Light levels, in luminance units.
const (
	LightSourceLocal  float32 = 0.1
	LightSourceBright float32 = 10
	LightAmbientLow   float32 = 3.5
	LightAmbientMin   float32 = 3.7
	LightAmbientDim   float32 = 5
	LightAmbientLit   float32 = 10
	DaylightLevel     float32 = 100
)

// nudgeEpsilon is how close a computed transparency must be to a table
// constant to be snapped onto it.
const nudgeEpsilon = 1e-6
