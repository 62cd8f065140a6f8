package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// uncompressedTGA builds a 24-bit type 2 TGA with a top-left origin.
func uncompressedTGA(width, height int, pixel func(x, y int) color.NRGBA) []byte {
	var buf bytes.Buffer
	header := make([]byte, 18)
	header[2] = 2
	header[12] = byte(width)
	header[13] = byte(width >> 8)
	header[14] = byte(height)
	header[15] = byte(height >> 8)
	header[16] = 24
	header[17] = 0x20
	buf.Write(header)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixel(x, y)
			buf.Write([]byte{c.B, c.G, c.R})
		}
	}
	return buf.Bytes()
}

func TestDecodeTGA(t *testing.T) {
	data := uncompressedTGA(2, 2, func(x, y int) color.NRGBA {
		if x == 0 {
			return red
		}
		return blue
	})

	img, err := Decode(bytes.NewReader(data), ".TGA")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, red, img.NRGBAAt(0, 1))
	assert.Equal(t, blue, img.NRGBAAt(1, 0))
}

func TestLoadPNG(t *testing.T) {
	src := Checker(8, 2, red, blue)
	path := filepath.Join(t.TempDir(), "checker.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, img.Pix)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	_, err = Decode(bytes.NewReader(nil), ".bmp")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Decode(bytes.NewReader([]byte("not a png")), ".png")
	assert.Error(t, err)
}

func TestChecker(t *testing.T) {
	img := Checker(8, 4, red, blue)
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(1, 1))
	assert.Equal(t, blue, img.NRGBAAt(2, 0))
	assert.Equal(t, blue, img.NRGBAAt(0, 2))
	assert.Equal(t, red, img.NRGBAAt(2, 2))

	// Degenerate cell counts still produce a usable image.
	assert.Equal(t, red, Checker(4, 0, red, blue).NRGBAAt(3, 3))
	assert.Equal(t, red, Checker(2, 8, red, blue).NRGBAAt(0, 0))
}

func TestFlipGreen(t *testing.T) {
	img := Solid(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	FlipGreen(img)
	assert.Equal(t, color.NRGBA{R: 10, G: 235, B: 30, A: 255}, img.NRGBAAt(0, 0))
}

func TestFlipVertical(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(0, 2, blue)

	FlipVertical(img)
	assert.Equal(t, blue, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(0, 2))
}

func TestToNRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(5, 5, color.RGBA{G: 255, A: 255})

	dst := ToNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Bounds())
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, dst.NRGBAAt(0, 0))
}
