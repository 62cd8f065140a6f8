// Package debug provides viewer debug utilities: screenshots and line overlays.
package debug

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/Faultbox/rockgen/internal/preview"
)

// ScreenshotCapture writes timestamped screenshots to a directory.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	ext       string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing PNG files.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		ext:       ".png",
		now:       time.Now,
	}
}

// SetFormat selects "png" or "webp".
func (sc *ScreenshotCapture) SetFormat(format string) {
	sc.ext = "." + format
}

// CaptureFromPixels saves bottom-up RGBA rows as read back from OpenGL.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := ImageFromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves img under a generated file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	filename := sc.GenerateFilename()
	if err := preview.Save(filename, img); err != nil {
		return "", fmt.Errorf("saving screenshot: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the path the next capture would use.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s%s", sc.prefix, timestamp, sc.ext)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// ImageFromPixels copies width*height RGBA pixels into an image, flipping
// rows since OpenGL has its origin at the bottom left.
func ImageFromPixels(pixels []byte, width, height int) (*image.NRGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
