package postprocess

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"hallway-gallery/internal/portfolio"
)

// Fit scales img into a w×h box according to the display mode:
// contain letterboxes onto bg, cover fills and crops around the centre,
// cover-top fills and crops keeping the top edge. An empty mode is cover.
// A nil or empty img yields the plain bg box.
func Fit(img *image.NRGBA, w, h int, mode portfolio.ImageDisplay, bg color.NRGBA) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	if img == nil {
		return canvas
	}
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 || w <= 0 || h <= 0 {
		return canvas
	}

	sx := float64(w) / float64(srcW)
	sy := float64(h) / float64(srcH)
	scaleF := math.Min(sx, sy)
	if mode != portfolio.DisplayContain {
		scaleF = math.Max(sx, sy)
	}
	newW := max(int(float64(srcW)*scaleF+0.5), 1)
	newH := max(int(float64(srcH)*scaleF+0.5), 1)

	offX := (w - newW) / 2
	offY := (h - newH) / 2
	if mode == portfolio.DisplayCoverTop {
		offY = 0
	}

	dst := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.CatmullRom.Scale(canvas, dst, img, b, draw.Over, nil)
	return canvas
}
