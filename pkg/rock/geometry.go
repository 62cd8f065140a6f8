package rock

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// degenerateUVArea is the |s1*t2 - s2*t1| threshold below which the tangent
// solve uses a scale of 1 instead of the reciprocal determinant.
const degenerateUVArea = 1e-4

// FaceNormal returns the unit normal of triangle (p0, p1, p2).
// Counter-clockwise icosphere triangles yield outward normals.
func FaceNormal(p0, p1, p2 math.Vec3) math.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	return e2.Cross(e1).Normalize()
}

// FaceTangent returns the unit tangent of a triangle from its edge vectors and
// UV deltas, solving
//
//	e1 = s1*T + t1*B
//	e2 = s2*T + t2*B
//
// for T. Near-zero UV areas fall back to a scale of 1 so the result stays finite.
func FaceTangent(p0, p1, p2 math.Vec3, uv0, uv1, uv2 math.Vec2) math.Vec3 {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)

	s1 := uv1.X - uv0.X
	t1 := uv1.Y - uv0.Y
	s2 := uv2.X - uv0.X
	t2 := uv2.Y - uv0.Y

	det := s1*t2 - s2*t1
	r := float32(1)
	if math32.Abs(det) > degenerateUVArea {
		r = 1 / det
	}

	return e1.Scale(t2).Sub(e2.Scale(t1)).Scale(r).Normalize()
}

// SphericalUV returns the equirectangular texture coordinate of a point on the
// unit sphere: u = atan2(z, x)/(2*pi), v = acos(y)/pi.
// The math is done in float64 so the poles land on exactly 0 and 1.
func SphericalUV(p math.Vec3) math.Vec2 {
	y := gomath.Max(-1, gomath.Min(1, float64(p.Y)))
	u := gomath.Atan2(float64(p.Z), float64(p.X)) / gomath.Pi * 0.5
	v := gomath.Acos(y) / gomath.Pi
	return math.Vec2{X: float32(u), Y: float32(v)}
}

// edgeLengths returns the shortest and longest edge of a triangle.
func edgeLengths(p0, p1, p2 math.Vec3) (minLen, maxLen float32) {
	a := p0.Distance(p1)
	b := p1.Distance(p2)
	c := p2.Distance(p0)
	return math32.Min(a, math32.Min(b, c)), math32.Max(a, math32.Max(b, c))
}
