package rock

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGenerationConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultGenerationConfig().Validate())
}

func TestGenerationConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GenerationConfig)
	}{
		{"zero width", func(c *GenerationConfig) { c.Width = 0 }},
		{"negative height", func(c *GenerationConfig) { c.Height = -1 }},
		{"NaN depth", func(c *GenerationConfig) { c.Depth = math32.NaN() }},
		{"infinite width", func(c *GenerationConfig) { c.Width = math32.Inf(1) }},
		{"negative steps", func(c *GenerationConfig) { c.Steps = -1 }},
		{"too many steps", func(c *GenerationConfig) { c.Steps = MaxSubdivisionSteps + 1 }},
		{"negative planes", func(c *GenerationConfig) { c.Planes = -3 }},
		{"inverted angles", func(c *GenerationConfig) { c.MinAngle, c.MaxAngle = 90, 10 }},
		{"offset above 100", func(c *GenerationConfig) { c.MaxOffsetPercent = 101 }},
		{"negative offset", func(c *GenerationConfig) { c.MaxOffsetPercent = -1 }},
		{"negative shift", func(c *GenerationConfig) { c.MaxRandShift = -1 }},
		{"negative plane verts", func(c *GenerationConfig) { c.MinPlaneVerts = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGenerationConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}
}

func TestGenerationConfigEdgeValues(t *testing.T) {
	cfg := DefaultGenerationConfig()
	cfg.Steps = 0
	cfg.Planes = 0
	cfg.MinAngle, cfg.MaxAngle = 45, 45
	cfg.MaxOffsetPercent = 0
	assert.NoError(t, cfg.Validate())
}

func TestGenerationConfigRadii(t *testing.T) {
	cfg := GenerationConfig{Width: 3, Height: 2, Depth: 1}
	assert.Equal(t, float32(3), cfg.Radii().X)
	assert.Equal(t, float32(2), cfg.AverageRadius())
}
