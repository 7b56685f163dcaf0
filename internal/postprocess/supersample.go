package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled render to w×h. Images already no larger
// than w×h are returned unchanged.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	// Filter in premultiplied space so transparent edges do not darken.
	premul := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(premul, premul.Bounds(), img, b, draw.Src, nil)

	out := image.NewNRGBA(premul.Bounds())
	draw.Draw(out, out.Bounds(), premul, image.Point{}, draw.Src)
	return out
}
