package rock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rockgen/pkg/math"
)

func TestMapEllipsoidScalesPerAxis(t *testing.T) {
	radii := math.V3(2, 0.5, 1.25)
	unit, _ := BuildIcosphere(2)
	vertices, _ := MapEllipsoid(unit, radii)

	assert.Len(t, vertices, len(unit))
	for i, v := range vertices {
		assert.Equal(t, unit[i].X*radii.X, v.Position.X)
		assert.Equal(t, unit[i].Y*radii.Y, v.Position.Y)
		assert.Equal(t, unit[i].Z*radii.Z, v.Position.Z)
		assert.Equal(t, v.Position.Normalize(), v.Normal)
		assert.Equal(t, math.Vec3{}, v.Tangent)
		assert.Equal(t, SphericalUV(unit[i]), v.TexCoord, "uv comes from the unit point")
	}
}

func TestMapEllipsoidPoleSets(t *testing.T) {
	tests := []struct {
		steps        int
		north, south int
	}{
		{0, 0, 0},
		{1, 1, 1},
		{3, 1, 1},
	}
	for _, tt := range tests {
		unit, _ := BuildIcosphere(tt.steps)
		vertices, poles := MapEllipsoid(unit, math.V3(3, 2, 1))

		assert.Len(t, poles.North, tt.north, "steps %d", tt.steps)
		assert.Len(t, poles.South, tt.south, "steps %d", tt.steps)

		for i, v := range vertices {
			_, north := poles.North[uint32(i)]
			_, south := poles.South[uint32(i)]
			assert.Equal(t, v.TexCoord.Y == 0, north, "vertex %d", i)
			assert.Equal(t, v.TexCoord.Y == 1, south, "vertex %d", i)
			assert.False(t, north && south)
		}
	}
}

func TestPoleSetsContains(t *testing.T) {
	poles := NewPoleSets()
	poles.North[3] = struct{}{}
	poles.South[9] = struct{}{}

	assert.True(t, poles.Contains(3))
	assert.True(t, poles.Contains(9))
	assert.False(t, poles.Contains(4))
	assert.Equal(t, 2, poles.Len())
}
