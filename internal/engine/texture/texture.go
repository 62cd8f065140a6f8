// Package texture loads material images and builds procedural fallbacks.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported texture format")

// Load reads a PNG, JPEG or TGA file and returns it as NRGBA.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes r according to the file extension ext (".png", ".jpg",
// ".jpeg" or ".tga", case-insensitive). Decoders are picked by extension
// because TGA has no magic number to sniff.
func Decode(r io.Reader, ext string) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(ext) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	case ".tga":
		img, err = tga.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return ToNRGBA(img), nil
}

// ToNRGBA converts any image to NRGBA with its origin moved to (0, 0).
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Checker returns a size x size checkerboard with cells squares per side.
// It is the diffuse fallback, so UV seams and pole pinching stay visible.
func Checker(size, cells int, a, b color.NRGBA) *image.NRGBA {
	if cells < 1 {
		cells = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := max(size/cells, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Solid returns a 1x1 image of c, used where a material slot has no texture.
func Solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}

// FlipGreen inverts the green channel in place, converting between OpenGL and
// DirectX normal map conventions.
func FlipGreen(img *image.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+1] = 255 - img.Pix[i+1]
		}
	}
}

// FlipVertical mirrors the image top to bottom in place. GL expects the first
// row at the bottom.
func FlipVertical(img *image.NRGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := b.Min.Y, b.Max.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		ti := img.PixOffset(b.Min.X, top)
		bi := img.PixOffset(b.Min.X, bottom)
		copy(tmp, img.Pix[ti:ti+rowLen])
		copy(img.Pix[ti:ti+rowLen], img.Pix[bi:bi+rowLen])
		copy(img.Pix[bi:bi+rowLen], tmp)
	}
}
