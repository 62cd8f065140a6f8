package preview

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/Faultbox/rockgen/internal/engine/lighting"
	"github.com/Faultbox/rockgen/pkg/math"
)

// Light is a directional light with an ambient term.
type Light struct {
	Direction math.Vec3 // toward the light
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

// DefaultLight returns a key light along the default sun.
func DefaultLight() Light {
	return Light{
		Direction: lighting.DefaultSun().Direction(),
		Ambient:   0.25,
		Diffuse:   0.85,
		Specular:  0.15,
		Shininess: 24,
	}
}

// shade returns the Blinn-Phong intensity for a unit normal seen from view.
func (l Light) shade(normal, view math.Vec3) float32 {
	ndl := math32.Max(normal.Dot(l.Direction), 0)
	intensity := l.Ambient + l.Diffuse*ndl
	if ndl > 0 && l.Specular > 0 {
		half := l.Direction.Add(view).Normalize()
		intensity += l.Specular * math32.Pow(math32.Max(normal.Dot(half), 0), l.Shininess)
	}
	return intensity
}

// sample does a bilinear lookup with u wrapping and v clamping, matching an
// equirectangular texture.
func sample(tex *image.NRGBA, u, v float32) (r, g, b, a float32) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u -= math32.Floor(u)
	v = math32.Max(0, math32.Min(1, v))

	fx := u * float32(w-1)
	fy := v * float32(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := min(y0+1, h-1)
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	texel := func(x, y int) (float32, float32, float32, float32) {
		i := tex.PixOffset(tex.Rect.Min.X+x, tex.Rect.Min.Y+y)
		p := tex.Pix[i : i+4 : i+4]
		return float32(p[0]), float32(p[1]), float32(p[2]), float32(p[3])
	}

	r00, g00, b00, a00 := texel(x0, y0)
	r10, g10, b10, a10 := texel(x1, y0)
	r01, g01, b01, a01 := texel(x0, y1)
	r11, g11, b11, a11 := texel(x1, y1)

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	r = r00*w00 + r10*w10 + r01*w01 + r11*w11
	g = g00*w00 + g10*w10 + g01*w01 + g11*w11
	b = b00*w00 + b10*w10 + b01*w01 + b11*w11
	a = a00*w00 + a10*w10 + a01*w01 + a11*w11
	return r, g, b, a
}

func clamp255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
