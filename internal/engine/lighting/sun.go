// Package lighting provides the directional light shared by the GPU viewer
// and the software preview.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// Sun is a directional light described by compass angles in degrees.
type Sun struct {
	Azimuth   float32 // rotation around +Y, 0 points along +Z
	Elevation float32 // angle above the horizon
	Color     [3]float32
	Intensity float32
}

// DefaultSun lights the rock from the upper front right.
func DefaultSun() Sun {
	return Sun{
		Azimuth:   35,
		Elevation: 40,
		Color:     [3]float32{1, 0.97, 0.92},
		Intensity: 1,
	}
}

// Direction returns the unit vector pointing from the surface towards the sun.
func (s Sun) Direction() math.Vec3 {
	return SunDirection(s.Azimuth, s.Elevation)
}

// Radiance returns Color scaled by Intensity.
func (s Sun) Radiance() [3]float32 {
	return [3]float32{s.Color[0] * s.Intensity, s.Color[1] * s.Intensity, s.Color[2] * s.Intensity}
}

// SunDirection converts azimuth/elevation degrees to a unit direction.
func SunDirection(azimuth, elevation float32) math.Vec3 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180
	sinEl, cosEl := math32.Sincos(el)
	sinAz, cosAz := math32.Sincos(az)
	return math.Vec3{
		X: cosEl * sinAz,
		Y: sinEl,
		Z: cosEl * cosAz,
	}
}
