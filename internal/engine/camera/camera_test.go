package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rockgen/pkg/math"
)

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Yaw = 0
	c.Distance = 5
	c.Center = math.V3(1, 2, 3)

	pos := c.Position()
	assert.InDelta(t, 1, pos.X, 1e-5)
	assert.InDelta(t, 2, pos.Y, 1e-5)
	assert.InDelta(t, 8, pos.Z, 1e-5)

	// The center ends up straight ahead in view space.
	center := c.ViewMatrix().TransformVec3(c.Center)
	assert.InDelta(t, 0, center.X, 1e-5)
	assert.InDelta(t, 0, center.Y, 1e-5)
	assert.InDelta(t, -5, center.Z, 1e-5)
}

func TestOrbitCameraClamps(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.Pitch)

	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestOrbitCameraPanKeepsDistance(t *testing.T) {
	c := NewOrbitCamera()
	before := c.Position().Distance(c.Center)

	c.HandlePan(100, -50)
	assert.NotEqual(t, math.Vec3{}, c.Center)
	assert.InDelta(t, before, c.Position().Distance(c.Center), 1e-4)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds(math.V3(-2, -1, -1), math.V3(2, 1, 1))

	assert.Equal(t, math.Vec3{}, c.Center)
	assert.Greater(t, c.Distance, float32(2.4))

	c.FitToBounds(math.V3(1, 1, 1), math.V3(1, 1, 1))
	assert.Equal(t, math.V3(1, 1, 1), c.Center)
	assert.Positive(t, c.Distance)
}

func TestProjectionMatrixZeroViewport(t *testing.T) {
	c := NewOrbitCamera()
	assert.Equal(t, c.ProjectionMatrix(100, 100), c.ProjectionMatrix(0, 0))
}
