package surface

import (
	"image/color"
	"strconv"
	"strings"
)

// Corridor palette.
var (
	WallColor        = Hex("#252540")
	FloorColor       = Hex("#1e1e32")
	CeilingColor     = Hex("#1a1a2e")
	FrameBorderColor = Hex("#3a3a5a")
	PlacardColor     = Hex("#0f0f1a")
	TitleColor       = Hex("#d4d4e0")
	ClientColor      = Hex("#9090a8")
	BackgroundColor  = Hex("#0a0a15")
	FarWallColor     = Hex("#151528")
)

// Hex parses "#rrggbb" into an opaque color. Malformed input yields black.
func Hex(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// rgba builds a color from canvas-style components (alpha in 0..1).
func rgba(r, g, b int, a float64) color.NRGBA {
	return color.NRGBA{R: clampByte(r), G: clampByte(g), B: clampByte(b), A: uint8(a*255 + 0.5)}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
