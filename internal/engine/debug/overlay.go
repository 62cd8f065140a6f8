package debug

import (
	"github.com/Faultbox/rockgen/pkg/math"
	"github.com/Faultbox/rockgen/pkg/rock"
)

// BoundsVertexCount is the number of vertices BoundsLines returns (12 edges x 2).
const BoundsVertexCount = 24

// BoundsLines returns line vertices for a wireframe box, [x, y, z] per vertex.
func BoundsLines(min, max math.Vec3) []float32 {
	x0, y0, z0 := min.X, min.Y, min.Z
	x1, y1, z1 := max.X, max.Y, max.Z
	return []float32{
		// Bottom
		x0, y0, z0, x1, y0, z0,
		x1, y0, z0, x1, y0, z1,
		x1, y0, z1, x0, y0, z1,
		x0, y0, z1, x0, y0, z0,
		// Top
		x0, y1, z0, x1, y1, z0,
		x1, y1, z0, x1, y1, z1,
		x1, y1, z1, x0, y1, z1,
		x0, y1, z1, x0, y1, z0,
		// Vertical
		x0, y0, z0, x0, y1, z0,
		x1, y0, z0, x1, y1, z0,
		x1, y0, z1, x1, y1, z1,
		x0, y0, z1, x0, y1, z1,
	}
}

// NormalLines returns one segment per vertex from its position along its
// normal, scaled by length.
func NormalLines(vertices []rock.Vertex, length float32) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		tip := v.Position.Add(v.Normal.Scale(length))
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			tip.X, tip.Y, tip.Z,
		)
	}
	return out
}

// GridLines returns a square grid of cells x cells on the plane y, centered
// on the origin with the given total size.
func GridLines(size float32, cells int, y float32) []float32 {
	if cells < 1 {
		return nil
	}
	half := size / 2
	step := size / float32(cells)
	out := make([]float32, 0, (cells+1)*12)
	for i := 0; i <= cells; i++ {
		c := -half + float32(i)*step
		out = append(out,
			c, y, -half, c, y, half,
			-half, y, c, half, y, c,
		)
	}
	return out
}
