package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"testing"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/picking"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/viewmatrix"
)

func testScene(n int) *scene.Scene {
	items := make([]portfolio.Item, n)
	for i := range items {
		items[i] = portfolio.Item{ID: fmt.Sprintf("item-%d", i), Title: fmt.Sprintf("Project %d", i)}
	}
	return scene.Build(items, nil, nil)
}

func TestSampleTextureWraps(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{uint8(x * 80), 0, 0, 255})
	}
	a, _ := SampleTexture(img, 0.375, 0.5)
	b, _ := SampleTexture(img, 1.375, 0.5)
	c, _ := SampleTexture(img, -0.625, 0.5)
	if math.Abs(a[0]-b[0]) > 1e-12 || math.Abs(a[0]-c[0]) > 1e-12 {
		t.Fatalf("wrapped samples differ: %v %v %v", a[0], b[0], c[0])
	}
	// Texel centre 1 is exact.
	if math.Abs(a[0]-srgbToLinear[80]) > 1e-12 {
		t.Fatalf("texel centre = %v, want %v", a[0], srgbToLinear[80])
	}
}

func TestSampleTextureUniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], []uint8{200, 100, 50, 128})
	}
	rgb, a := SampleTexture(img, 0.9, 0.1)
	want := Linear(color.NRGBA{200, 100, 50, 255})
	for k := 0; k < 3; k++ {
		if math.Abs(rgb[k]-want[k]) > 1e-12 {
			t.Fatalf("rgb = %v, want %v", rgb, want)
		}
	}
	if math.Abs(a-128.0/255) > 1e-12 {
		t.Fatalf("alpha = %v", a)
	}
}

func TestToneCurve(t *testing.T) {
	prev := -1.0
	for x := 0.0; x < 20; x += 0.25 {
		y := ACESTonemap(x)
		if y < prev || y < 0 || y > 1 {
			t.Fatalf("ACES(%v) = %v not monotonic in [0,1]", x, y)
		}
		prev = y
	}
	if v := LinearToSRGB(1); math.Abs(v-1) > 1e-9 {
		t.Fatalf("sRGB(1) = %v", v)
	}
	for i := 0; i < 256; i += 17 {
		back := LinearToSRGB(srgbToLinear[i]) * 255
		if math.Abs(back-float64(i)) > 1e-6 {
			t.Fatalf("sRGB round trip %d -> %v", i, back)
		}
	}
}

func TestAttenuation(t *testing.T) {
	if attenuation(0, 5) != 1 || attenuation(5, 5) != 0 || attenuation(7, 5) != 0 {
		t.Fatal("window endpoints wrong")
	}
	if math.Abs(attenuation(2.5, 5)-0.5) > 1e-12 {
		t.Fatal("midpoint wrong")
	}
}

func TestLightIndexRange(t *testing.T) {
	lights := []scene.Light{{
		Position:  mathutil.Vec3{0, 4.7, -20},
		Intensity: 2,
		Distance:  14,
		Color:     color.NRGBA{255, 255, 255, 255},
	}}
	idx := newLightIndex(lights, 40)
	down := mathutil.Vec3{0, 1, 0}
	if c := idx.direct(mathutil.Vec3{0, -0.5, -20}, down); c[0] <= 0 {
		t.Fatal("floor under the light is unlit")
	}
	if c := idx.direct(mathutil.Vec3{0, -0.5, -36}, down); c[0] != 0 {
		t.Fatalf("light reached beyond its range: %v", c)
	}
	if c := idx.direct(mathutil.Vec3{0, -0.5, -20}, mathutil.Vec3{0, -1, 0}); c[0] != 0 {
		t.Fatal("back-facing point lit")
	}
}

func TestHighlighterEases(t *testing.T) {
	s := testScene(3)
	var aim picking.AimState
	hl := NewHighlighter(s.Frames, &aim)
	aim.Store(s.Frames[1].Item)
	hl.Step()
	if got := hl.Level(1); math.Abs(got-(IdleGlow+(AimedGlow-IdleGlow)*GlowEasing)) > 1e-12 {
		t.Fatalf("level after one step = %v", got)
	}
	for i := 0; i < 200; i++ {
		hl.Step()
	}
	if math.Abs(hl.Level(1)-AimedGlow) > 1e-6 || hl.Level(0) != IdleGlow {
		t.Fatalf("levels = %v %v", hl.Level(0), hl.Level(1))
	}
	aim.Store(nil)
	for i := 0; i < 200; i++ {
		hl.Step()
	}
	if math.Abs(hl.Level(1)-IdleGlow) > 1e-6 {
		t.Fatalf("level did not ease back: %v", hl.Level(1))
	}
	var none *Highlighter
	if none.Level(0) != IdleGlow {
		t.Fatal("nil highlighter level")
	}
}

func entranceCamera(w, h int) viewmatrix.Camera {
	return viewmatrix.New(mathutil.Vec3{0, 1.8, 2}, mathutil.QuatIdentity(), viewmatrix.DefaultFOV, w, h)
}

func TestRenderDepthDownCorridor(t *testing.T) {
	s := testScene(5)
	r := New(s)
	fb := r.Render(entranceCamera(33, 19), nil)
	d := fb.Depth[9*fb.Width+16]
	if math.Abs(d-42) > 1e-6 {
		t.Fatalf("centre depth = %v, want 42 (back wall)", d)
	}
	// Bottom row sees the floor, top row the ceiling, both nearer.
	if fb.Depth[18*fb.Width+16] >= d || fb.Depth[16] >= d {
		t.Fatal("floor or ceiling not in front of the back wall")
	}
	for i := 3; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 255 {
			t.Fatal("output not opaque")
		}
	}
}

func luminance(fb *FrameBuffer, x, y int) int {
	i := (y*fb.Width + x) * 4
	return int(fb.Color[i]) + int(fb.Color[i+1]) + int(fb.Color[i+2])
}

type grayArt struct{}

func (grayArt) Resolve(string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	return img
}

func TestAimedArtworkGlowsBrighter(t *testing.T) {
	items := []portfolio.Item{{ID: "a", Title: "A", Images: []string{"a.png"}}}
	s := scene.Build(items, grayArt{}, nil)
	r := New(s)
	cam := viewmatrix.New(mathutil.Vec3{0, 1.8, -4}, mathutil.QuatFromYawPitch(math.Pi/2, 0), viewmatrix.DefaultFOV, 21, 21)

	var aim picking.AimState
	hl := NewHighlighter(s.Frames, &aim)
	idle := r.Render(cam, hl)
	if d := idle.Depth[10*21+10]; math.Abs(d-3.9) > 1e-6 {
		t.Fatalf("centre depth = %v, want the artwork at 3.9", d)
	}

	aim.Store(s.Frames[0].Item)
	for i := 0; i < 100; i++ {
		hl.Step()
	}
	lit := r.Render(cam, hl)
	if luminance(lit, 10, 10) <= luminance(idle, 10, 10) {
		t.Fatalf("aimed %d not brighter than idle %d", luminance(lit, 10, 10), luminance(idle, 10, 10))
	}
}

func TestConcurrentRendersAgree(t *testing.T) {
	r := New(testScene(4))
	cam := entranceCamera(24, 16)
	out := make([]*FrameBuffer, 4)
	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = r.Render(cam, nil)
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(out); i++ {
		for j := range out[0].Color {
			if out[i].Color[j] != out[0].Color[j] {
				t.Fatalf("render %d differs at byte %d", i, j)
			}
		}
	}
}
