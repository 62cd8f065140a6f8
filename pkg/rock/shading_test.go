package rock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rockgen/pkg/math"
)

func TestBuildNormalsSingleTriangle(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math.V3(0, 0, 0), Normal: math.V3(5, 5, 5)},
			{Position: math.V3(0, 2, 0)},
			{Position: math.V3(2, 0, 0)},
		},
		Indices: []uint32{0, 1, 2},
	}
	face := FaceNormal(m.Vertices[0].Position, m.Vertices[1].Position, m.Vertices[2].Position)

	BuildNormals(m)

	for i, v := range m.Vertices {
		assert.Equal(t, face, v.Normal, "vertex %d", i)
	}
}

func TestBuildNormalsAveragesSharedVertices(t *testing.T) {
	// Two triangles folded 90 degrees along the shared edge 0-1.
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math.V3(0, 0, 0)},
			{Position: math.V3(1, 0, 0)},
			{Position: math.V3(0, 0, 1)},
			{Position: math.V3(0, 1, 0)},
		},
		Indices: []uint32{0, 1, 2, 0, 3, 1},
	}
	BuildNormals(m)

	a := FaceNormal(m.Vertices[0].Position, m.Vertices[1].Position, m.Vertices[2].Position)
	b := FaceNormal(m.Vertices[0].Position, m.Vertices[3].Position, m.Vertices[1].Position)
	shared := a.Add(b).Normalize()

	assertVec3InDelta(t, shared, m.Vertices[0].Normal, 1e-6)
	assertVec3InDelta(t, shared, m.Vertices[1].Normal, 1e-6)
	assertVec3InDelta(t, a, m.Vertices[2].Normal, 1e-6)
	assertVec3InDelta(t, b, m.Vertices[3].Normal, 1e-6)
}

func TestBuildNormalsUnreferencedVertex(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math.V3(0, 0, 0)},
			{Position: math.V3(0, 1, 0)},
			{Position: math.V3(1, 0, 0)},
			{Position: math.V3(9, 9, 9), Normal: math.V3(1, 0, 0)},
		},
		Indices: []uint32{0, 1, 2},
	}
	BuildNormals(m)
	assert.Equal(t, math.Vec3{}, m.Vertices[3].Normal)
}

func TestBuildNormalsOnSphereAreRadial(t *testing.T) {
	m, _ := sphereMesh(3, unitRadii())
	BuildNormals(m)
	for i, v := range m.Vertices {
		assert.InDelta(t, 1, v.Normal.Length(), 1e-5, "vertex %d", i)
		assert.Greater(t, v.Normal.Dot(v.Position), float32(0.99), "vertex %d", i)
	}
}

func TestBuildTangentsSingleTriangle(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math.V3(0, 0, 0), TexCoord: math.Vec2{X: 0, Y: 0}, Tangent: math.V3(0, 7, 0)},
			{Position: math.V3(1, 0, 0), TexCoord: math.Vec2{X: 1, Y: 0}},
			{Position: math.V3(0, 1, 0), TexCoord: math.Vec2{X: 0, Y: 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
	BuildTangents(m)
	for i, v := range m.Vertices {
		assertVec3InDelta(t, math.V3(1, 0, 0), v.Tangent, 1e-6, "vertex %d", i)
	}
}

func TestBuildTangentsDegenerateUVStaysFinite(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{
			{Position: math.V3(0, 0, 0), TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
			{Position: math.V3(1, 0, 0), TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
			{Position: math.V3(0, 1, 0), TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
		},
		Indices: []uint32{0, 1, 2},
	}
	BuildTangents(m)
	for _, v := range m.Vertices {
		assert.True(t, v.Tangent.IsFinite())
	}
}
