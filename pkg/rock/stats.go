package rock

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// Stats summarizes a generated mesh.
type Stats struct {
	Vertices       int
	Triangles      int
	BaseVertices   int
	SeamDuplicates int
	PoleDuplicates int
	Planes         int

	MinEdge float32
	MaxEdge float32
	// MaxUSpan is the widest u range over any triangle after correction.
	MaxUSpan float32

	BoundsMin math.Vec3
	BoundsMax math.Vec3
}

// Size returns the extent of the bounding box.
func (s Stats) Size() math.Vec3 {
	return s.BoundsMax.Sub(s.BoundsMin)
}

func (s Stats) String() string {
	size := s.Size()
	return fmt.Sprintf("%d vertices (%d base, %d seam, %d pole), %d triangles, %d planes, edges %.4f..%.4f, size %.3fx%.3fx%.3f",
		s.Vertices, s.BaseVertices, s.SeamDuplicates, s.PoleDuplicates,
		s.Triangles, s.Planes, s.MinEdge, s.MaxEdge, size.X, size.Y, size.Z)
}

// MeasureMesh fills the geometric fields of Stats from m.
func MeasureMesh(m *Mesh) Stats {
	s := Stats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
	}
	if len(m.Vertices) == 0 {
		return s
	}

	s.BoundsMin = m.Vertices[0].Position
	s.BoundsMax = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		s.BoundsMin = s.BoundsMin.Min(v.Position)
		s.BoundsMax = s.BoundsMax.Max(v.Position)
	}

	s.MinEdge = math32.Inf(1)
	for t := 0; t < m.TriangleCount(); t++ {
		tri := m.Triangle(t)
		lo, hi := edgeLengths(
			m.Vertices[tri[0]].Position,
			m.Vertices[tri[1]].Position,
			m.Vertices[tri[2]].Position,
		)
		s.MinEdge = math32.Min(s.MinEdge, lo)
		s.MaxEdge = math32.Max(s.MaxEdge, hi)
		s.MaxUSpan = math32.Max(s.MaxUSpan, seamSpan(m, t))
	}
	if s.Triangles == 0 {
		s.MinEdge = 0
	}
	return s
}
