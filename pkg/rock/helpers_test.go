package rock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rockgen/pkg/math"
)

func assertVec3InDelta(t *testing.T, expected, actual math.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

// sphereMesh returns a mapped, unfaceted icosphere with its pole sets.
func sphereMesh(steps int, radii math.Vec3) (*Mesh, PoleSets) {
	unit, triangles := BuildIcosphere(steps)
	vertices, poles := MapEllipsoid(unit, radii)
	return &Mesh{Vertices: vertices, Indices: flattenTriangles(triangles)}, poles
}

func unitRadii() math.Vec3 {
	return math.Vec3{X: 1, Y: 1, Z: 1}
}
