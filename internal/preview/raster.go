package preview

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/pkg/math"
	"github.com/Faultbox/rockgen/pkg/rock"
)

// screenVertex is a vertex after projection.
type screenVertex struct {
	x, y, z float32 // pixels, pixels, NDC depth
	world   math.Vec3
	normal  math.Vec3
	u, v    float32
	visible bool
}

// project maps vertices into pixel space of fb.
func project(vertices []rock.Vertex, mvp math.Mat4, width, height int) []screenVertex {
	out := make([]screenVertex, len(vertices))
	for i, v := range vertices {
		ndc := mvp.TransformVec3(v.Position)
		out[i] = screenVertex{
			x:       (ndc.X + 1) / 2 * float32(width),
			y:       (1 - ndc.Y) / 2 * float32(height),
			z:       ndc.Z,
			world:   v.Position,
			normal:  v.Normal,
			u:       v.TexCoord.X,
			v:       v.TexCoord.Y,
			visible: ndc.IsFinite() && ndc.Z >= -1 && ndc.Z <= 1,
		}
	}
	return out
}

// rasterizeTriangle fills one triangle with smooth-normal lighting and a
// z-test. Triangles facing away from the camera are culled.
func rasterizeTriangle(fb *frameBuffer, a, b, c *screenVertex, tex *image.NRGBA, base [3]float32, light Light, eye math.Vec3) {
	if !a.visible || !b.visible || !c.visible {
		return
	}

	// Outward faces wind clockwise in view space, which is positive area once
	// y points down.
	det := (b.y-c.y)*(a.x-c.x) + (c.x-b.x)*(a.y-c.y)
	if det < 1e-8 {
		return
	}
	invDet := 1 / det

	minX := max(int(math32.Floor(math32.Min(a.x, math32.Min(b.x, c.x)))), 0)
	maxX := min(int(math32.Ceil(math32.Max(a.x, math32.Max(b.x, c.x)))), fb.width-1)
	minY := max(int(math32.Floor(math32.Min(a.y, math32.Min(b.y, c.y)))), 0)
	maxY := min(int(math32.Ceil(math32.Max(a.y, math32.Max(b.y, c.y)))), fb.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	dy12 := b.y - c.y
	dx21 := c.x - b.x
	dy20 := c.y - a.y
	dx02 := a.x - c.x

	for sy := minY; sy <= maxY; sy++ {
		py := float32(sy) + 0.5 - c.y
		row := sy * fb.width
		for sx := minX; sx <= maxX; sx++ {
			px := float32(sx) + 0.5 - c.x
			w0 := (dy12*px + dx21*py) * invDet
			w1 := (dy20*px + dx02*py) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			idx := row + sx
			if z >= fb.depth[idx] {
				continue
			}
			fb.depth[idx] = z

			normal := a.normal.Scale(w0).Add(b.normal.Scale(w1)).Add(c.normal.Scale(w2)).Normalize()
			world := a.world.Scale(w0).Add(b.world.Scale(w1)).Add(c.world.Scale(w2))
			intensity := light.shade(normal, eye.Sub(world).Normalize())

			r, g, bl := base[0], base[1], base[2]
			if tex != nil {
				u := w0*a.u + w1*b.u + w2*c.u
				v := w0*a.v + w1*b.v + w2*c.v
				tr, tg, tb, _ := sample(tex, u, v)
				r, g, bl = r*tr/255, g*tg/255, bl*tb/255
			}

			p := idx * 4
			fb.color[p] = clamp255(r * intensity * 255)
			fb.color[p+1] = clamp255(g * intensity * 255)
			fb.color[p+2] = clamp255(bl * intensity * 255)
			fb.color[p+3] = 255
		}
	}
}
