package rock

// seamThreshold is the largest u that is shifted by +1 on a seam triangle.
const seamThreshold = 0.1

// UVCorrection reports how many vertices CorrectUV appended.
type UVCorrection struct {
	SeamDuplicates int
	PoleDuplicates int
}

// Total returns the number of appended vertices.
func (c UVCorrection) Total() int {
	return c.SeamDuplicates + c.PoleDuplicates
}

// CorrectUV splits vertices so every triangle samples one continuous patch of
// the equirectangular texture. Only the triangles present on entry are visited.
//
// A triangle whose UV winding is reversed straddles the u seam: each corner with
// u < 0.1 is replaced by a copy with u+1. Copies are shared between triangles
// through a cache keyed by the original vertex index.
//
// A triangle touching a pole gets its first pole corner replaced by a copy whose
// u is the mean of the other two corners. Other pole corners in the same
// triangle are left alone.
func CorrectUV(m *Mesh, poles PoleSets) UVCorrection {
	var stats UVCorrection
	seamCopies := make(map[uint32]uint32)
	triangles := m.TriangleCount()

	for t := 0; t < triangles; t++ {
		base := t * 3
		original := m.Triangle(t)

		uv0 := m.Vertices[original[0]].TexCoord
		uv1 := m.Vertices[original[1]].TexCoord
		uv2 := m.Vertices[original[2]].TexCoord

		if uv1.Sub(uv0).Cross(uv2.Sub(uv0)) > 0 {
			for corner, idx := range original {
				if m.Vertices[idx].TexCoord.X >= seamThreshold {
					continue
				}
				copyIdx, ok := seamCopies[idx]
				if !ok {
					v := m.Vertices[idx]
					v.TexCoord.X += 1
					copyIdx = m.appendVertex(v)
					seamCopies[idx] = copyIdx
					stats.SeamDuplicates++
				}
				m.Indices[base+corner] = copyIdx
			}
		}

		for corner, idx := range original {
			if !poles.Contains(idx) {
				continue
			}
			a := m.Vertices[m.Indices[base+(corner+1)%3]].TexCoord.X
			b := m.Vertices[m.Indices[base+(corner+2)%3]].TexCoord.X

			v := m.Vertices[m.Indices[base+corner]]
			v.TexCoord.X = (a + b) / 2
			m.Indices[base+corner] = m.appendVertex(v)
			stats.PoleDuplicates++
			break
		}
	}
	return stats
}

func (m *Mesh) appendVertex(v Vertex) uint32 {
	m.Vertices = append(m.Vertices, v)
	return uint32(len(m.Vertices) - 1)
}

// seamSpan returns the widest u distance between corners of triangle t.
func seamSpan(m *Mesh, t int) float32 {
	tri := m.Triangle(t)
	lo := m.Vertices[tri[0]].TexCoord.X
	hi := lo
	for _, idx := range tri[1:] {
		u := m.Vertices[idx].TexCoord.X
		lo = min(lo, u)
		hi = max(hi, u)
	}
	return hi - lo
}
