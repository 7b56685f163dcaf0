package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hallway-gallery/internal/joystick"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/scene"
)

var (
	overlayShade = color.NRGBA{0, 0, 0, 150}
	crossIdle    = color.NRGBA{255, 255, 255, 128}
	crossAimed   = color.NRGBA{99, 102, 241, 255}
	stickRing    = color.NRGBA{255, 255, 255, 50}
	stickThumb   = color.NRGBA{255, 255, 255, 64}
)

var desktopHelp = []string{
	"Click to explore",
	"",
	"W A S D  to move",
	"Mouse to look around",
	"Click artwork to view details",
	"ESC  to exit",
}

var touchHelp = []string{
	"Tap to explore",
	"",
	"Use touch controls to navigate the gallery",
}

// exitButton is the touch-mode Exit button in the top-right corner.
func exitButton(w int) image.Rectangle {
	return image.Rect(w-76, 12, w-12, 40)
}

func drawPanel(screen *ebiten.Image, lines []string) {
	b := screen.Bounds()
	pw, ph := 300, 24+len(lines)*16
	x, y := (b.Dx()-pw)/2, (b.Dy()-ph)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), overlayShade, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+16, y+12+i*16)
	}
}

func drawCrosshair(screen *ebiten.Image, aimed *portfolio.Item) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2
	size := float32(12)
	clr := crossIdle
	if aimed != nil {
		size = 18
		clr = crossAimed
	}
	vector.StrokeLine(screen, cx-size/2, cy, cx+size/2, cy, 2, clr, true)
	vector.StrokeLine(screen, cx, cy-size/2, cx, cy+size/2, 2, clr, true)

	if aimed != nil {
		msg := "Click to view: " + scene.TruncateTitle(aimed.Title)
		w := len(msg)*6 + 16
		x := int(cx) - w/2
		y := int(cy) + 28
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 22, overlayShade, false)
		ebitenutil.DebugPrintAt(screen, msg, x+8, y+3)
	}
}

func drawJoystick(screen *ebiten.Image, j *joystick.Joystick) {
	cx, cy := float32(j.CenterX), float32(j.CenterY)
	r := float32(j.Radius)
	vector.DrawFilledCircle(screen, cx, cy, r+6, overlayShade, true)
	vector.StrokeCircle(screen, cx, cy, r+6, 2, stickRing, true)
	dx, dy := j.Thumb()
	vector.DrawFilledCircle(screen, cx+float32(dx), cy+float32(dy), 24, stickThumb, true)
}

func drawExit(screen *ebiten.Image) {
	r := exitButton(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), overlayShade, false)
	ebitenutil.DebugPrintAt(screen, "Exit", r.Min.X+20, r.Min.Y+6)
}
