package rock

import "github.com/Faultbox/rockgen/pkg/math"

// BuildNormals replaces every vertex normal with the normalized sum of the face
// normals of the triangles that use it. Vertices referenced by no triangle end
// up with a zero normal.
func BuildNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math.Vec3{}
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		n := FaceNormal(
			m.Vertices[tri[0]].Position,
			m.Vertices[tri[1]].Position,
			m.Vertices[tri[2]].Position,
		)
		for _, idx := range tri {
			m.Vertices[idx].Normal = m.Vertices[idx].Normal.Add(n)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// BuildTangents replaces every vertex tangent with the normalized sum of the
// UV-derived tangents of its triangles. Run it after CorrectUV.
func BuildTangents(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Tangent = math.Vec3{}
	}

	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		v0, v1, v2 := &m.Vertices[tri[0]], &m.Vertices[tri[1]], &m.Vertices[tri[2]]
		tangent := FaceTangent(
			v0.Position, v1.Position, v2.Position,
			v0.TexCoord, v1.TexCoord, v2.TexCoord,
		)
		v0.Tangent = v0.Tangent.Add(tangent)
		v1.Tangent = v1.Tangent.Add(tangent)
		v2.Tangent = v2.Tangent.Add(tangent)
	}

	for i := range m.Vertices {
		m.Vertices[i].Tangent = m.Vertices[i].Tangent.Normalize()
	}
}
