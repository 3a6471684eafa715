package lighting

import (
	"math"

	"github.com/Faultbox/lumen/internal/fov"
)

// twilight is the sun elevation, in degrees below the horizon, at which
// the sky goes fully dark.
const twilight = 6

// nightLight is the outdoor light level with the sun below twilight.
const nightLight float32 = 1

// SunDirection converts an azimuth (degrees clockwise from north) and an
// elevation above the horizon into a unit vector pointing at the sun.
// X points east, Y north, Z up.
func SunDirection(azimuth, elevation float64) [3]float32 {
	az := azimuth * math.Pi / 180.0
	el := elevation * math.Pi / 180.0

	x := float32(math.Cos(el) * math.Sin(az))
	y := float32(math.Cos(el) * math.Cos(az))
	z := float32(math.Sin(el))

	return [3]float32{x, y, z}
}

// OutdoorLight returns the light level under open sky for a sun at the
// given elevation, plus the weather modifier. The result is clamped to
// [0, DaylightLevel].
func OutdoorLight(elevation, modifier float32) float32 {
	light := nightLight
	if elevation > -twilight {
		// Full daylight once the sun is 30 degrees up.
		up := SunDirection(0, float64(min(elevation, 30)))[2]
		horizon := float32(math.Sin(-twilight * math.Pi / 180))
		top := float32(math.Sin(30 * math.Pi / 180))
		light += (fov.DaylightLevel - nightLight) * (up - horizon) / (top - horizon)
	}
	return min(max(light+modifier, 0), fov.DaylightLevel)
}

// IndoorLight is the fixed light level under a roof for a given outdoor
// level.
func IndoorLight(outdoor float32) float32 {
	if outdoor > fov.LightSourceBright {
		return fov.LightAmbientDim * 0.8
	}
	return fov.LightAmbientLow
}
