package viewer

import (
	"fmt"
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/postprocess"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/texture"
)

// lightbox shows one selected item with cyclic image navigation.
type lightbox struct {
	open  bool
	item  portfolio.Item
	index int

	res    texture.Resolver
	cached *ebiten.Image
	key    string
}

func (lb *lightbox) show(it portfolio.Item) {
	lb.open = true
	lb.item = it
	lb.index = 0
	lb.key = ""
}

func (lb *lightbox) close() {
	lb.open = false
}

func (lb *lightbox) next() {
	lb.index = portfolio.Next(lb.index, len(lb.item.Images))
}

func (lb *lightbox) prev() {
	lb.index = portfolio.Prev(lb.index, len(lb.item.Images))
}

// current returns the reference of the image on display, or "".
func (lb *lightbox) current() string {
	if len(lb.item.Images) == 0 {
		return ""
	}
	return lb.item.Images[portfolio.Wrap(lb.index, len(lb.item.Images))]
}

// caption lists the text shown under the image.
func (lb *lightbox) caption() []string {
	it := &lb.item
	lines := []string{it.Title}
	meta := it.Client
	if it.Year != 0 {
		meta = fmt.Sprintf("%s  %d", meta, it.Year)
	}
	if it.Category != "" {
		meta = fmt.Sprintf("%s  [%s]", meta, it.Category)
	}
	lines = append(lines, meta)
	if it.Description != "" {
		lines = append(lines, it.Description)
	}
	if len(it.Services) > 0 {
		lines = append(lines, strings.Join(it.Services, " / "))
	}
	if n := len(it.Images); n > 1 {
		lines = append(lines, fmt.Sprintf("%d / %d   <- ->", portfolio.Wrap(lb.index, n)+1, n))
	}
	return lines
}

func (lb *lightbox) draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayShade, false)

	boxW, boxH := w*3/4, h*3/5
	x0, y0 := (w-boxW)/2, h/10

	ref := lb.current()
	key := fmt.Sprintf("%s|%dx%d", ref, boxW, boxH)
	if key != lb.key {
		var src *image.NRGBA
		if lb.res != nil && ref != "" {
			src = lb.res.Resolve(ref)
		}
		mode := lb.item.ImageDisplay
		if mode == "" {
			mode = portfolio.DisplayContain
		}
		fitted := postprocess.Fit(src, boxW, boxH, mode, surface.BackgroundColor)
		if lb.cached != nil {
			lb.cached.Deallocate()
		}
		lb.cached = ebiten.NewImageFromImage(fitted)
		lb.key = key
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x0), float64(y0))
	screen.DrawImage(lb.cached, op)

	y := y0 + boxH + 12
	for _, line := range lb.caption() {
		ebitenutil.DebugPrintAt(screen, line, x0, y)
		y += 16
	}
	ebitenutil.DebugPrintAt(screen, "Esc or click to close", x0, h-24)
}
