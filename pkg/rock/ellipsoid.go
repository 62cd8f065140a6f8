package rock

import "github.com/Faultbox/rockgen/pkg/math"

// MapEllipsoid turns unit-sphere points into rock vertices. Positions are scaled
// per axis by radii, normals point along the scaled position (an approximation of
// the true ellipsoid normal), tangents start at zero and UVs come from the unit
// point. Vertices whose v is exactly 0 or 1 are recorded as poles.
func MapEllipsoid(unit []math.Vec3, radii math.Vec3) ([]Vertex, PoleSets) {
	vertices := make([]Vertex, len(unit))
	poles := NewPoleSets()

	for i, p := range unit {
		pos := p.Mul(radii)
		uv := SphericalUV(p)

		switch uv.Y {
		case 0:
			poles.North[uint32(i)] = struct{}{}
		case 1:
			poles.South[uint32(i)] = struct{}{}
		}

		vertices[i] = Vertex{
			Position: pos,
			Normal:   pos.Normalize(),
			TexCoord: uv,
		}
	}
	return vertices, poles
}

// flattenTriangles copies triangles into a flat index buffer.
func flattenTriangles(triangles []Triangle) []uint32 {
	indices := make([]uint32, 0, len(triangles)*3)
	for _, t := range triangles {
		indices = append(indices, t[0], t[1], t[2])
	}
	return indices
}
