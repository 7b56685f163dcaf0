package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // view depth per pixel, +Inf where nothing was hit
}

// NewFrameBuffer allocates a zeroed color buffer and +Inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float64, n)
	for i := range depth {
		depth[i] = math.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func (fb *FrameBuffer) set(x, y int, c [3]float64, depth float64) {
	i := (y*fb.Width + x) * 4
	fb.Color[i] = to8(c[0])
	fb.Color[i+1] = to8(c[1])
	fb.Color[i+2] = to8(c[2])
	fb.Color[i+3] = 255
	fb.Depth[y*fb.Width+x] = depth
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
