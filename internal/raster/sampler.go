package raster

import (
	"image"
	"image/color"
)

// SampleTexture performs bilinear filtering with UV wrapping and returns
// linear RGB plus alpha, all in [0,1]. Accesses tex.Pix directly for
// performance.
func SampleTexture(tex *image.NRGBA, u, v float64) (rgb [3]float64, a float64) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return rgb, 0
	}

	u = wrap01(u)
	v = wrap01(v)

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	if fx < 0 {
		fx += float64(w)
	}
	if fy < 0 {
		fy += float64(h)
	}
	x0 := int(fx) % w
	y0 := int(fy) % h
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(int(fx))
	dy := fy - float64(int(fy))

	stride := tex.Stride
	pix := tex.Pix
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	for k := 0; k < 3; k++ {
		rgb[k] = srgbToLinear[pix[i00+k]]*w00 + srgbToLinear[pix[i10+k]]*w10 +
			srgbToLinear[pix[i01+k]]*w01 + srgbToLinear[pix[i11+k]]*w11
	}
	a = (float64(pix[i00+3])*w00 + float64(pix[i10+3])*w10 +
		float64(pix[i01+3])*w01 + float64(pix[i11+3])*w11) / 255
	return rgb, a
}

// Linear converts an sRGB color to linear RGB.
func Linear(c color.NRGBA) [3]float64 {
	return [3]float64{srgbToLinear[c.R], srgbToLinear[c.G], srgbToLinear[c.B]}
}

func wrap01(x float64) float64 {
	x -= float64(int(x))
	if x < 0 {
		x += 1
	}
	return x
}
