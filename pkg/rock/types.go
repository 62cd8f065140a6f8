// Package rock procedurally generates faceted rock meshes from a deformed icosphere.
//
// The pipeline is BuildIcosphere, MapEllipsoid, Facet, Expand, BuildNormals,
// CorrectUV and BuildTangents. Generator runs it on demand and hands the finished
// buffers to an Uploader.
package rock

import "github.com/Faultbox/rockgen/pkg/math"

// Vertex is a rock mesh vertex. The field order and float32 layout match the GPU
// input layout: position@0, normal@12, tangent@24, texcoord@36 (44 bytes).
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Tangent  math.Vec3
	TexCoord math.Vec2
}

// Triangle holds three vertex indices.
type Triangle [3]uint32

// Mesh owns an ordered vertex list and a flat triangle-list index buffer.
// Counts are always derived from the slices, never cached.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.Indices) }

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Triangle returns the indices of triangle t.
func (m *Mesh) Triangle(t int) Triangle {
	i := t * 3
	return Triangle{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]Vertex(nil), m.Vertices...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// PoleSets records which mapped vertices sit exactly on the north (v == 0) and
// south (v == 1) texture poles. Indices refer to the vertex list as mapped,
// before any UV duplication.
type PoleSets struct {
	North map[uint32]struct{}
	South map[uint32]struct{}
}

// NewPoleSets returns empty pole sets.
func NewPoleSets() PoleSets {
	return PoleSets{
		North: make(map[uint32]struct{}),
		South: make(map[uint32]struct{}),
	}
}

// Contains reports whether idx is a north or south pole vertex.
func (p PoleSets) Contains(idx uint32) bool {
	if _, ok := p.North[idx]; ok {
		return true
	}
	_, ok := p.South[idx]
	return ok
}

// Len returns the total number of pole vertices.
func (p PoleSets) Len() int {
	return len(p.North) + len(p.South)
}
