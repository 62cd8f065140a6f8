package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name    string
		az, el  float32
		x, y, z float32
	}{
		{"forward horizon", 0, 0, 0, 0, 1},
		{"zenith", 123, 90, 0, 1, 0},
		{"east horizon", 90, 0, 1, 0, 0},
		{"behind", 180, 0, 0, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := SunDirection(tt.az, tt.el)
			assert.InDelta(t, tt.x, d.X, 1e-5)
			assert.InDelta(t, tt.y, d.Y, 1e-5)
			assert.InDelta(t, tt.z, d.Z, 1e-5)
			assert.InDelta(t, 1, d.Length(), 1e-5)
		})
	}
}

func TestDefaultSunAboveHorizon(t *testing.T) {
	s := DefaultSun()
	assert.Greater(t, s.Direction().Y, float32(0))
	assert.Equal(t, s.Color, s.Radiance())
}
