package preview

import "github.com/chewxy/math32"

// frameBuffer holds the render target as flat slices.
type frameBuffer struct {
	width  int
	height int
	color  []uint8   // RGBA interleaved
	depth  []float32 // NDC z per pixel, +inf when empty
}

func newFrameBuffer(w, h int, clear [4]uint8) *frameBuffer {
	n := w * h
	fb := &frameBuffer{
		width:  w,
		height: h,
		color:  make([]uint8, n*4),
		depth:  make([]float32, n),
	}
	for i := 0; i < n; i++ {
		copy(fb.color[i*4:], clear[:])
		fb.depth[i] = math32.Inf(1)
	}
	return fb
}
