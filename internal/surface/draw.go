package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// canvas wraps an NRGBA surface with the handful of 2D primitives the
// corridor recipes need. Every primitive composites with source-over.
type canvas struct {
	img *image.NRGBA
	z   *vector.Rasterizer
}

func newCanvas(w, h int) *canvas {
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	return &canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h)), z: z}
}

func (c *canvas) size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) fill(col color.NRGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// fillRect composites a pixel-aligned rectangle.
func (c *canvas) fillRect(x, y, w, h int, col color.NRGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// fillPath rasterizes the current path with anti-aliasing and resets it.
func (c *canvas) fillPath(col color.NRGBA) {
	w, h := c.size()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
}

// vline strokes a vertical line centered on x with the given width.
func (c *canvas) vline(x, width float64, col color.NRGBA) {
	_, h := c.size()
	c.rectPath(x-width/2, 0, x+width/2, float64(h))
	c.fillPath(col)
}

// hline strokes a horizontal line centered on y with the given width.
func (c *canvas) hline(y, width float64, col color.NRGBA) {
	w, _ := c.size()
	c.rectPath(0, y-width/2, float64(w), y+width/2)
	c.fillPath(col)
}

func (c *canvas) rectPath(x0, y0, x1, y1 float64) {
	c.z.MoveTo(float32(x0), float32(y0))
	c.z.LineTo(float32(x1), float32(y0))
	c.z.LineTo(float32(x1), float32(y1))
	c.z.LineTo(float32(x0), float32(y1))
	c.z.ClosePath()
}

// dot fills a circle of radius r centered on (cx, cy).
func (c *canvas) dot(cx, cy, r float64, col color.NRGBA) {
	const segments = 16
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := float32(cx + r*math.Cos(a))
		y := float32(cy + r*math.Sin(a))
		if i == 0 {
			c.z.MoveTo(x, y)
		} else {
			c.z.LineTo(x, y)
		}
	}
	c.z.ClosePath()
	c.fillPath(col)
}

// verticalGradient composites a top-to-bottom linear gradient over the surface.
func (c *canvas) verticalGradient(top, bottom color.NRGBA) {
	w, h := c.size()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		col := color.NRGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: lerp8(top.A, bottom.A, t),
		}
		c.fillRect(0, y, w, 1, col)
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
