// Package viewer hosts the gallery in a desktop window: it turns ebiten
// input into gallery events, renders the corridor each frame and draws the
// crosshair, instructions and the lightbox for a selected item.
package viewer

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hallway-gallery/internal/gallery"
	"hallway-gallery/internal/joystick"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/raster"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/texture"
	"hallway-gallery/internal/viewmatrix"
)

// Options configure the window.
type Options struct {
	Title       string
	Width       int
	Height      int
	RenderScale int // the corridor renders at Width/RenderScale
	FOV         float64
	Seed        int64
	Touch       bool // show touch instructions and controls
}

// Run opens the window and blocks until it is closed.
func Run(items []portfolio.Item, res texture.Resolver, opt Options) error {
	g := newGame(items, res, opt)
	defer g.gallery.Unmount()

	ebiten.SetWindowTitle(opt.Title)
	ebiten.SetWindowSize(opt.Width, opt.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

type game struct {
	opt      Options
	gallery  *gallery.Gallery
	renderer *raster.Renderer
	hl       *raster.Highlighter
	box      lightbox

	locked bool
	aimed  *portfolio.Item

	lastX, lastY int
	touches      []ebiten.TouchID

	fb     *raster.FrameBuffer
	canvas *ebiten.Image
}

func newGame(items []portfolio.Item, res texture.Resolver, opt Options) *game {
	if opt.Width <= 0 {
		opt.Width = 1280
	}
	if opt.Height <= 0 {
		opt.Height = 720
	}
	if opt.RenderScale <= 0 {
		opt.RenderScale = 4
	}
	if opt.Title == "" {
		opt.Title = "Gallery"
	}

	g := &game{opt: opt}
	g.box.res = res
	cb := gallery.Callbacks{
		OnSelectItem: func(it portfolio.Item) {
			log.Printf("viewer: selected %s", it.ID)
			g.box.show(it)
		},
		OnLockChange:      func(locked bool) { g.locked = locked },
		OnAimedItemChange: func(it *portfolio.Item) { g.aimed = it },
	}
	g.gallery = gallery.Mount(items, res, cursorLock{}, cb, gallery.Options{
		Surfaces:  surface.NewGenerator(opt.Seed),
		JoystickX: 96,
		JoystickY: float64(opt.Height - 96),
	})
	g.renderer = raster.New(g.gallery.Scene())
	g.hl = raster.NewHighlighter(g.gallery.Scene().Frames, g.gallery.Aim())
	return g
}

func (g *game) Update() error {
	if g.box.open {
		g.updateLightbox()
	} else {
		g.updateMouse()
		g.updateKeys()
		g.updateTouches()
	}

	g.gallery.Tick(1 / float64(ebiten.TPS()))
	g.hl.Step()
	return nil
}

func (g *game) updateLightbox() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0:
		g.box.close()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.box.next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.box.prev()
	}
}

func (g *game) updateMouse() {
	x, y := ebiten.CursorPosition()
	if g.locked {
		g.gallery.MouseMove(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY = x, y

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.gallery.Click(); err != nil {
			log.Printf("viewer: pointer lock: %v", err)
		}
		// Captured cursors report positions in a new space.
		g.lastX, g.lastY = ebiten.CursorPosition()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.gallery.Wheel(wheelDelta(wy))
	}
}

func (g *game) updateKeys() {
	for _, k := range keyMap {
		if inpututil.IsKeyJustPressed(k.key) {
			g.gallery.KeyDown(k.code)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.gallery.KeyUp(k.code)
		}
	}
}

func (g *game) updateTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		switch {
		case !g.locked:
			g.gallery.Tap()
		case image.Pt(x, y).In(exitButton(g.opt.Width)):
			g.gallery.Release()
		default:
			g.gallery.TouchStart(joystick.TouchID(id), float64(x), float64(y))
		}
	}

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		g.gallery.TouchMove(joystick.TouchID(id), float64(x), float64(y))
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		g.gallery.TouchEnd(joystick.TouchID(id))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	w := max(g.opt.Width/g.opt.RenderScale, 1)
	h := max(g.opt.Height/g.opt.RenderScale, 1)
	if g.fb == nil || g.fb.Width != w || g.fb.Height != h {
		g.fb = raster.NewFrameBuffer(w, h)
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
	}

	pose := g.gallery.Pose()
	cam := viewmatrix.New(pose.Position, pose.Orientation, g.opt.FOV, w, h)
	g.renderer.RenderInto(g.fb, cam, g.hl)
	g.canvas.WritePixels(g.fb.Color)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opt.Width)/float64(w), float64(g.opt.Height)/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.canvas, op)

	switch {
	case g.box.open:
		g.box.draw(screen)
	case g.locked:
		drawCrosshair(screen, g.aimed)
		if g.opt.Touch {
			drawJoystick(screen, g.gallery.Joystick())
			drawExit(screen)
		}
	case g.opt.Touch:
		drawPanel(screen, touchHelp)
	default:
		drawPanel(screen, desktopHelp)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opt.Width, g.opt.Height
}
