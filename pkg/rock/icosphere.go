package rock

import "github.com/Faultbox/rockgen/pkg/math"

// Regular icosahedron with unit circumradius.
const (
	icoX = 0.525731112119133606
	icoZ = 0.850650808352039932
)

var icosahedronVertices = [12]math.Vec3{
	{X: -icoX, Y: 0, Z: icoZ}, {X: icoX, Y: 0, Z: icoZ}, {X: -icoX, Y: 0, Z: -icoZ}, {X: icoX, Y: 0, Z: -icoZ},
	{X: 0, Y: icoZ, Z: icoX}, {X: 0, Y: icoZ, Z: -icoX}, {X: 0, Y: -icoZ, Z: icoX}, {X: 0, Y: -icoZ, Z: -icoX},
	{X: icoZ, Y: icoX, Z: 0}, {X: -icoZ, Y: icoX, Z: 0}, {X: icoZ, Y: -icoX, Z: 0}, {X: -icoZ, Y: -icoX, Z: 0},
}

var icosahedronTriangles = [20]Triangle{
	{0, 4, 1}, {0, 9, 4}, {9, 5, 4}, {4, 5, 8}, {4, 8, 1},
	{8, 10, 1}, {8, 3, 10}, {5, 3, 8}, {5, 2, 3}, {2, 7, 3},
	{7, 10, 3}, {7, 6, 10}, {7, 11, 6}, {11, 0, 6}, {0, 1, 6},
	{6, 1, 10}, {9, 0, 11}, {9, 11, 2}, {9, 2, 5}, {7, 2, 11},
}

// IcosphereVertexCount returns 10*4^steps + 2.
func IcosphereVertexCount(steps int) int {
	return 10*pow4(steps) + 2
}

// IcosphereTriangleCount returns 20*4^steps.
func IcosphereTriangleCount(steps int) int {
	return 20 * pow4(steps)
}

func pow4(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 4
	}
	return r
}

// edgeKey identifies an undirected edge. The smaller index always comes first.
type edgeKey struct {
	a, b uint32
}

func newEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// BuildIcosphere subdivides the unit icosahedron steps times. Every vertex lies
// on the unit sphere. Negative steps behave like zero.
func BuildIcosphere(steps int) ([]math.Vec3, []Triangle) {
	if steps < 0 {
		steps = 0
	}

	vertices := make([]math.Vec3, len(icosahedronVertices), IcosphereVertexCount(steps))
	copy(vertices, icosahedronVertices[:])
	triangles := append([]Triangle(nil), icosahedronTriangles[:]...)

	for i := 0; i < steps; i++ {
		vertices, triangles = Subdivide(vertices, triangles)
	}
	return vertices, triangles
}

// Subdivide splits every triangle into four, appending one welded midpoint per
// unique edge to vertices. Midpoints are projected onto the unit sphere.
func Subdivide(vertices []math.Vec3, triangles []Triangle) ([]math.Vec3, []Triangle) {
	lookup := make(map[edgeKey]uint32, len(triangles)*3/2)
	result := make([]Triangle, 0, len(triangles)*4)

	for _, tri := range triangles {
		var mid [3]uint32
		for edge := 0; edge < 3; edge++ {
			mid[edge] = midpoint(lookup, &vertices, tri[edge], tri[(edge+1)%3])
		}
		result = append(result,
			Triangle{tri[0], mid[0], mid[2]},
			Triangle{tri[1], mid[1], mid[0]},
			Triangle{tri[2], mid[2], mid[1]},
			Triangle{mid[0], mid[1], mid[2]},
		)
	}
	return vertices, result
}

// midpoint returns the index of the welded midpoint of edge (first, second),
// creating it on first use.
func midpoint(lookup map[edgeKey]uint32, vertices *[]math.Vec3, first, second uint32) uint32 {
	key := newEdgeKey(first, second)
	if idx, ok := lookup[key]; ok {
		return idx
	}

	vs := *vertices
	idx := uint32(len(vs))
	*vertices = append(vs, vs[first].Add(vs[second]).Normalize())
	lookup[key] = idx
	return idx
}
