// Package preview renders rock meshes on the CPU for headless previews.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/chewxy/math32"
	"golang.org/x/image/draw"

	"github.com/Faultbox/rockgen/pkg/math"
	"github.com/Faultbox/rockgen/pkg/rock"
)

// ErrUnsupportedFormat is returned by Save for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported preview format")

// Options controls a preview render.
type Options struct {
	Width  int
	Height int
	// Supersample renders at this multiple of the output size and scales down.
	Supersample int

	// Camera orbit around the mesh center, radians.
	Yaw   float32
	Pitch float32
	FOV   float32

	Light      Light
	BaseColor  [3]float32
	Texture    *image.NRGBA // optional, sampled with the mesh UVs
	Background color.NRGBA
}

// DefaultOptions returns a 512x512 2x supersampled three-quarter view.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Supersample: 2,
		Yaw:         0.6,
		Pitch:       0.35,
		FOV:         math32.Pi / 4,
		Light:       DefaultLight(),
		BaseColor:   [3]float32{0.62, 0.58, 0.53},
		Background:  color.NRGBA{R: 32, G: 34, B: 40, A: 255},
	}
}

// Render rasterizes the mesh and returns an image of opts.Width x opts.Height.
// The camera is placed so the whole bounding sphere of the mesh is in view.
func Render(vertices []rock.Vertex, indices []uint32, opts Options) *image.NRGBA {
	ss := max(opts.Supersample, 1)
	w, h := max(opts.Width, 1)*ss, max(opts.Height, 1)*ss

	bg := opts.Background
	fb := newFrameBuffer(w, h, [4]uint8{bg.R, bg.G, bg.B, bg.A})

	if len(vertices) > 0 {
		eye, mvp := frame(vertices, opts, w, h)
		projected := project(vertices, mvp, w, h)
		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if int(max(a, b, c)) >= len(projected) {
				continue
			}
			rasterizeTriangle(fb, &projected[a], &projected[b], &projected[c], opts.Texture, opts.BaseColor, opts.Light, eye)
		}
	}

	img := &image.NRGBA{
		Pix:    fb.color,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}
	if ss == 1 {
		return img
	}
	return Downsample(img, opts.Width, opts.Height)
}

// frame returns the eye position and model-view-projection matrix that fit
// the mesh bounds into a w x h viewport.
func frame(vertices []rock.Vertex, opts Options, w, h int) (math.Vec3, math.Mat4) {
	lo, hi := vertices[0].Position, vertices[0].Position
	for _, v := range vertices[1:] {
		lo = lo.Min(v.Position)
		hi = hi.Max(v.Position)
	}
	center := lo.Add(hi).Scale(0.5)
	radius := math32.Max(hi.Sub(lo).Length()/2, 1e-3)

	fov := opts.FOV
	if fov <= 0 {
		fov = math32.Pi / 4
	}
	distance := radius / math32.Sin(fov/2) * 1.05

	sinPitch, cosPitch := math32.Sincos(opts.Pitch)
	sinYaw, cosYaw := math32.Sincos(opts.Yaw)
	eye := center.Add(math.Vec3{
		X: distance * cosPitch * sinYaw,
		Y: distance * sinPitch,
		Z: distance * cosPitch * cosYaw,
	})

	view := math.LookAt(eye, center, math.Vec3{Y: 1})
	near := math32.Max(distance-radius*1.5, distance*0.01)
	proj := math.Perspective(fov, float32(w)/float32(h), near, distance+radius*1.5)
	return eye, proj.Mul(view)
}

// Downsample scales img to width x height with premultiplied-alpha CatmullRom
// filtering.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}

	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	draw.Draw(out, out.Bounds(), dst, image.Point{}, draw.Src)
	return out
}

// Save writes img as PNG or WebP depending on the path extension, creating
// parent directories as needed.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".webp" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ext, err)
	}
	return f.Close()
}
