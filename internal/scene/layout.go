package scene

import (
	"fmt"
	"math"
	"strings"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/portfolio"
)

// Corridor and frame dimensions in world units.
const (
	HallwayWidth  = 8.0
	HallwayHeight = 5.0
	FrameSpacing  = 6.0
	FrameWidth    = 3.5
	FrameHeight   = 2.5
	EyeHeight     = 1.8

	// Margin is the corridor length beyond the last frame slot.
	Margin = 10.0
	// FirstFrameOffset is the distance from the entrance to frame 0.
	FirstFrameOffset = 4.0
	// WallInset keeps frames just off the wall surface.
	WallInset = 0.1

	FloorY = -0.5

	LightStripSpacing = 8.0
	FloorLightSpacing = 12.0

	TitleBudget = 30
)

// Side is the wall a frame hangs on.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// FramedItem places one portfolio item on the corridor wall.
type FramedItem struct {
	Item     *portfolio.Item
	Side     Side
	Position mathutil.Vec3
}

// CorridorLength returns the corridor length for n items.
// An empty list gives a margin-only corridor.
func CorridorLength(n int) float64 {
	if n < 0 {
		n = 0
	}
	return float64(n)*FrameSpacing + Margin
}

// Layout assigns sides and positions. Even indices hang on the left wall,
// odd on the right. The returned items point into items.
func Layout(items []portfolio.Item) []FramedItem {
	out := make([]FramedItem, len(items))
	for i := range items {
		side := Left
		x := -HallwayWidth/2 + WallInset
		if i%2 == 1 {
			side = Right
			x = HallwayWidth/2 - WallInset
		}
		out[i] = FramedItem{
			Item:     &items[i],
			Side:     side,
			Position: mathutil.Vec3{x, EyeHeight, -(float64(i)*FrameSpacing + FirstFrameOffset)},
		}
	}
	return out
}

// TruncateTitle shortens titles over the placard budget, keeping room for
// an ellipsis.
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= TitleBudget {
		return title
	}
	return string(r[:TitleBudget-2]) + "..."
}

// lightSlots returns ceil(length/spacing).
func lightSlots(length, spacing float64) int {
	return int(math.Ceil(length / spacing))
}

// Describe renders a stable, line-oriented listing of the layout.
func Describe(length float64, framed []FramedItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "corridor length %.1f, %d frames\n", length, len(framed))
	for i, f := range framed {
		fmt.Fprintf(&b, "%03d %-5s z=%7.1f %s | %s\n", i, f.Side, f.Position[2], f.Item.ID, f.Item.Title)
	}
	return b.String()
}
