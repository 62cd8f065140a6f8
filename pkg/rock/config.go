package rock

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// MaxSubdivisionSteps bounds Steps. Eight steps already yields 655362 vertices.
const MaxSubdivisionSteps = 8

// GenerationConfig holds the shape parameters of a rock.
type GenerationConfig struct {
	// Ellipsoid radii.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`

	// Steps is the number of icosphere subdivisions.
	Steps int `yaml:"steps"`
	// Planes is the number of faceting iterations.
	Planes int `yaml:"planes"`

	// Cut-plane angle range in degrees. Angles are drawn as integers in [MinAngle, MaxAngle).
	MinAngle float32 `yaml:"min_angle"`
	MaxAngle float32 `yaml:"max_angle"`
	// MaxOffsetPercent pulls each plane origin toward the center by [0, MaxOffsetPercent) percent.
	MaxOffsetPercent float32 `yaml:"max_offset_percent"`

	// Accepted and validated but not consumed by any stage.
	MaxRandShift  float32 `yaml:"max_rand_shift"`
	MinPlaneVerts int     `yaml:"min_plane_verts"`
	MaxPlaneVerts int     `yaml:"max_plane_verts"`

	// Seed drives plane selection. Equal seeds produce equal rocks.
	Seed int64 `yaml:"seed"`
}

// DefaultGenerationConfig returns a unit rock with a moderate amount of faceting.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Width:            1,
		Height:           1,
		Depth:            1,
		Steps:            3,
		Planes:           12,
		MinAngle:         0,
		MaxAngle:         360,
		MaxOffsetPercent: 20,
		Seed:             1,
	}
}

// Radii returns the ellipsoid radii as a vector.
func (c GenerationConfig) Radii() math.Vec3 {
	return math.Vec3{X: c.Width, Y: c.Height, Z: c.Depth}
}

// AverageRadius returns the mean of the three radii.
func (c GenerationConfig) AverageRadius() float32 {
	return (c.Width + c.Height + c.Depth) / 3
}

// Validate checks the configuration. All failures wrap ErrInvalidConfiguration.
func (c GenerationConfig) Validate() error {
	radii := []struct {
		name string
		v    float32
	}{{"width", c.Width}, {"height", c.Height}, {"depth", c.Depth}}
	for _, r := range radii {
		if !(r.v > 0) || math32.IsInf(r.v, 0) {
			return fmt.Errorf("%w: %s must be a positive finite radius, got %v", ErrInvalidConfiguration, r.name, r.v)
		}
	}

	if c.Steps < 0 || c.Steps > MaxSubdivisionSteps {
		return fmt.Errorf("%w: steps must be in [0, %d], got %d", ErrInvalidConfiguration, MaxSubdivisionSteps, c.Steps)
	}
	if c.Planes < 0 {
		return fmt.Errorf("%w: planes must be non-negative, got %d", ErrInvalidConfiguration, c.Planes)
	}
	if math32.IsNaN(c.MinAngle) || math32.IsNaN(c.MaxAngle) || c.MaxAngle < c.MinAngle {
		return fmt.Errorf("%w: angle range [%v, %v) is empty", ErrInvalidConfiguration, c.MinAngle, c.MaxAngle)
	}
	if !(c.MaxOffsetPercent >= 0 && c.MaxOffsetPercent <= 100) {
		return fmt.Errorf("%w: max offset percent must be in [0, 100], got %v", ErrInvalidConfiguration, c.MaxOffsetPercent)
	}
	if c.MaxRandShift < 0 || c.MinPlaneVerts < 0 || c.MaxPlaneVerts < 0 {
		return fmt.Errorf("%w: shift and plane vertex limits must be non-negative", ErrInvalidConfiguration)
	}
	return nil
}
