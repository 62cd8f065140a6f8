package rock

// expandDivisor sets the outward push to averageRadius/expandDivisor.
const expandDivisor = 100

// Expand pushes the three vertices of every triangle outward along the
// triangle's face normal by averageRadius/100. Triangles are processed in index
// order and each sees the positions left by the previous ones, so shared
// vertices move once per adjacent triangle.
func Expand(m *Mesh, averageRadius float32) {
	push := averageRadius / expandDivisor
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		v0 := &m.Vertices[tri[0]]
		v1 := &m.Vertices[tri[1]]
		v2 := &m.Vertices[tri[2]]

		offset := FaceNormal(v0.Position, v1.Position, v2.Position).Scale(push)
		v0.Position = v0.Position.Add(offset)
		v1.Position = v1.Position.Add(offset)
		v2.Position = v2.Position.Add(offset)
	}
}
