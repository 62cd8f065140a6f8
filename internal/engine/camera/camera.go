// Package camera provides the orbit camera used to inspect a rock.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates around Center.
	Distance float32
	Pitch    float32 // radians, positive looks down
	Yaw      float32 // radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	FOV  float32 // vertical, radians
	Near float32
	Far  float32
}

// NewOrbitCamera creates an orbit camera framing a unit-sized object.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        4,
		Pitch:           0.35,
		MinDistance:     0.25,
		MaxDistance:     100,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.008,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
		FOV:             math32.Pi / 4,
		Near:            0.01,
		Far:             200,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)
	offset := math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given viewport.
func (c *OrbitCamera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center in the view plane. Speed scales with distance.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	forward := c.Center.Sub(c.Position()).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	speed := c.Distance * c.PanSensitivity
	c.Center = c.Center.
		Sub(right.Scale(deltaX * speed)).
		Add(up.Scale(deltaY * speed))
}

// FitToBounds centers the camera on a bounding box and backs off far enough
// to see all of it.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	radius := max.Sub(min).Length() / 2
	if radius <= 0 {
		radius = 1
	}
	c.Distance = clamp(radius/math32.Sin(c.FOV/2)*1.1, c.MinDistance, c.MaxDistance)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
