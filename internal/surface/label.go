package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label placard dimensions in pixels.
const (
	LabelWidth  = 256
	LabelHeight = 32
)

// Label rasterizes a frame placard: a translucent dark plate with the title
// on the first line and the client name on the second, both centered.
func Label(title, client string) *image.NRGBA {
	c := newCanvas(LabelWidth, LabelHeight)
	plate := PlacardColor
	plate.A = 217 // 0.85 opacity
	c.fill(plate)

	drawCentered(c.img, title, 13, TitleColor)
	drawCentered(c.img, client, 27, ClientColor)
	return c.img
}

func drawCentered(dst *image.NRGBA, s string, baseline int, col color.NRGBA) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(s).Ceil()
	x := (dst.Bounds().Dx() - w) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
}
