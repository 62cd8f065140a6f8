package rock

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// CuttingPlane is one faceting plane. It lives for a single iteration.
type CuttingPlane struct {
	// Origin sits on the ellipsoid, pulled toward the center by the offset.
	Origin math.Vec3
	// Normal is the unit radial direction through Origin.
	Normal math.Vec3
	// Diameter is the reference size the curvature falloff is measured against.
	Diameter float32
}

// NewRandSource returns the generator used for plane selection. Equal seeds give
// equal plane sequences.
func NewRandSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// randomAngle draws an integer number of degrees in [min, max). An empty range
// yields min.
func randomAngle(rng *rand.Rand, min, max float32) float32 {
	lo := int(min)
	span := int(max) - lo
	if span <= 0 {
		return float32(lo)
	}
	return float32(lo + rng.IntN(span))
}

// randomOffset draws an integer percentage in [0, max). Zero max yields 0.
func randomOffset(rng *rand.Rand, max float32) float32 {
	n := int(max)
	if n <= 0 {
		return 0
	}
	return float32(rng.IntN(n))
}

// NewCuttingPlane builds the plane at the given spherical angles (radians) with
// the origin pulled offsetPercent percent toward the center. lat rotates toward
// the Z axis, lon rotates around it.
func NewCuttingPlane(lat, lon, offsetPercent float32, radii math.Vec3) CuttingPlane {
	origin := ellipsoidPoint(lat, lon, radii)
	// The reference point at angle+pi on both axes only provides a size.
	reference := ellipsoidPoint(lat+math32.Pi, lon+math32.Pi, radii)

	origin = origin.Scale((100 - offsetPercent) / 100)

	return CuttingPlane{
		Origin:   origin,
		Normal:   origin.Normalize(),
		Diameter: reference.Length() / 2,
	}
}

func ellipsoidPoint(lat, lon float32, radii math.Vec3) math.Vec3 {
	sinLat, cosLat := math32.Sincos(lat)
	sinLon, cosLon := math32.Sincos(lon)
	return math.Vec3{
		X: radii.X * cosLat * cosLon,
		Y: radii.Y * cosLat * sinLon,
		Z: radii.Z * sinLat,
	}
}

// RandomPlane draws one cutting plane from cfg. Draw order is latitude,
// longitude, then offset.
func RandomPlane(cfg GenerationConfig, rng *rand.Rand) CuttingPlane {
	lat := randomAngle(rng, cfg.MinAngle, cfg.MaxAngle)
	lon := randomAngle(rng, cfg.MinAngle, cfg.MaxAngle)
	offset := randomOffset(rng, cfg.MaxOffsetPercent)
	return NewCuttingPlane(degToRad(lat), degToRad(lon), offset, cfg.Radii())
}

// Apply flattens every vertex on or in front of the plane toward it and gives
// it the plane normal. Vertices behind the plane are untouched. Points whose
// projection is close to the origin are pulled flat; farther ones keep more
// of their curvature.
func (p CuttingPlane) Apply(vertices []Vertex) (affected int) {
	for i := range vertices {
		point := vertices[i].Position
		dist := point.Sub(p.Origin).Dot(p.Normal)
		if dist < 0 {
			continue
		}

		projected := point.Sub(p.Normal.Scale(dist))
		strength := projected.Distance(p.Origin)/p.Diameter - 1

		vertices[i].Position = point.Sub(p.Normal.Scale(dist / 2 * strength))
		vertices[i].Normal = p.Normal
		affected++
	}
	return affected
}

// Facet runs planeCount faceting iterations over the mesh, drawing each plane
// from rng. It returns the planes in the order they were applied.
func Facet(m *Mesh, cfg GenerationConfig, planeCount int, rng *rand.Rand) []CuttingPlane {
	planes := make([]CuttingPlane, 0, max(planeCount, 0))
	for i := 0; i < planeCount; i++ {
		plane := RandomPlane(cfg, rng)
		plane.Apply(m.Vertices)
		planes = append(planes, plane)
	}
	return planes
}

func degToRad(deg float32) float32 {
	return deg / 180 * math32.Pi
}
