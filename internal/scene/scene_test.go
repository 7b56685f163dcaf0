package scene

import (
	"fmt"
	"image"
	"math"
	"strings"
	"testing"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/portfolio"
)

func makeItems(n int) []portfolio.Item {
	items := make([]portfolio.Item, n)
	for i := range items {
		items[i] = portfolio.Item{
			ID:     fmt.Sprintf("item-%d", i),
			Title:  fmt.Sprintf("Project %d", i),
			Client: "Client",
			Images: []string{fmt.Sprintf("img-%d.png", i)},
		}
	}
	return items
}

type stubResolver map[string]*image.NRGBA

func (s stubResolver) Resolve(ref string) *image.NRGBA { return s[ref] }

func TestFiveItemScenario(t *testing.T) {
	s := Build(makeItems(5), nil, nil)
	if s.Length != 40 {
		t.Fatalf("Length = %v, want 40", s.Length)
	}
	if got := s.Framed[0]; got.Side != Left || got.Position[2] != -4 {
		t.Errorf("item 0 = %v z=%v, want left z=-4", got.Side, got.Position[2])
	}
	if got := s.Framed[4]; got.Side != Left || got.Position[2] != -28 {
		t.Errorf("item 4 = %v z=%v, want left z=-28", got.Side, got.Position[2])
	}
}

func TestLayoutProperties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		items := makeItems(n)
		length := CorridorLength(n)
		if want := float64(n)*FrameSpacing + Margin; length != want {
			t.Fatalf("n=%d: length %v, want %v", n, length, want)
		}
		for i, f := range Layout(items) {
			z := f.Position[2]
			if !(z > -length && z <= 0) {
				t.Errorf("n=%d item %d: z=%v outside (-%v, 0]", n, i, z, length)
			}
			wantSide := Left
			if i%2 == 1 {
				wantSide = Right
			}
			if f.Side != wantSide {
				t.Errorf("n=%d item %d: side %v, want %v", n, i, f.Side, wantSide)
			}
			if f.Position[1] != EyeHeight {
				t.Errorf("item %d: y=%v", i, f.Position[1])
			}
			if f.Item != &items[i] {
				t.Errorf("item %d: back-reference does not point at the source item", i)
			}
		}
	}
}

func TestEmptyPortfolio(t *testing.T) {
	s := Build(nil, nil, nil)
	if s.Length != Margin {
		t.Errorf("Length = %v, want %v", s.Length, Margin)
	}
	if len(s.Frames) != 0 || len(s.Framed) != 0 {
		t.Errorf("frames = %d, want 0", len(s.Frames))
	}
	if len(s.Surfaces) != 5 {
		t.Errorf("surfaces = %d, want 5", len(s.Surfaces))
	}
}

func TestMissingArtworkKeepsFrame(t *testing.T) {
	items := makeItems(3)
	res := stubResolver{"img-0.png": image.NewNRGBA(image.Rect(0, 0, 10, 20))}
	s := Build(items, res, nil)

	if len(s.Frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(s.Frames))
	}
	portrait := s.Frames[0]
	if portrait.Image == nil {
		t.Fatal("frame 0 should have its image")
	}
	if math.Abs(portrait.Width-1.25) > 1e-9 || math.Abs(portrait.Height-2.5) > 1e-9 {
		t.Errorf("portrait size %vx%v, want 1.25x2.5", portrait.Width, portrait.Height)
	}

	for _, f := range s.Frames[1:] {
		if f.Image != nil {
			t.Errorf("%s: image should be nil", f.Item.ID)
		}
		if f.Width != FrameWidth || f.Height != FrameHeight {
			t.Errorf("%s: size %vx%v, want default", f.Item.ID, f.Width, f.Height)
		}
		if f.Label == nil {
			t.Errorf("%s: label missing", f.Item.ID)
		}
	}
}

func TestFrameFacesCorridor(t *testing.T) {
	s := Build(makeItems(2), nil, nil)
	left, right := s.Frames[0], s.Frames[1]
	if n := left.Artwork.Normal; math.Abs(n[0]-1) > 1e-9 {
		t.Errorf("left normal = %v, want +X", n)
	}
	if n := right.Artwork.Normal; math.Abs(n[0]+1) > 1e-9 {
		t.Errorf("right normal = %v, want -X", n)
	}
	if math.Abs(left.Artwork.Width()-FrameWidth) > 1e-9 || math.Abs(left.Artwork.Height()-FrameHeight) > 1e-9 {
		t.Errorf("artwork quad %vx%v", left.Artwork.Width(), left.Artwork.Height())
	}
	if left.Placard.Center[1] >= left.Artwork.Center[1] {
		t.Error("placard should hang below the artwork")
	}
}

func TestLights(t *testing.T) {
	s := Build(makeItems(5), nil, nil)
	if len(s.Strips) != 10 {
		t.Errorf("strips = %d, want 10", len(s.Strips))
	}
	if len(s.Lights) != 5+8 {
		t.Errorf("lights = %d, want 13", len(s.Lights))
	}
	if got := len(s.AllLights()); got != 13+2*5 {
		t.Errorf("all lights = %d, want 23", got)
	}
	spot := FrameLights(&s.Frames[0])[0]
	if spot.Position[0] <= s.Frames[0].Position[0] {
		t.Errorf("left frame spotlight should sit toward the corridor: %v", spot.Position)
	}
}

func TestQuadIntersect(t *testing.T) {
	q := NewQuad(mathutil.Vec3{0, 0, -5}, mathutil.Mat3Identity(), 2, 2)

	tHit, u, v, ok := q.Intersect(mathutil.Vec3{}, mathutil.Vec3{0, 0, -1})
	if !ok || math.Abs(tHit-5) > 1e-9 || math.Abs(u-0.5) > 1e-9 || math.Abs(v-0.5) > 1e-9 {
		t.Errorf("center hit = %v %v %v %v", tHit, u, v, ok)
	}

	_, u, v, ok = q.Intersect(mathutil.Vec3{-0.9, 0.9, 0}, mathutil.Vec3{0, 0, -1})
	if !ok || u > 0.1 || v > 0.1 {
		t.Errorf("top-left hit u=%v v=%v ok=%v", u, v, ok)
	}

	if _, _, _, ok := q.Intersect(mathutil.Vec3{1.5, 0, 0}, mathutil.Vec3{0, 0, -1}); ok {
		t.Error("ray beside the quad should miss")
	}
	if _, _, _, ok := q.Intersect(mathutil.Vec3{}, mathutil.Vec3{0, 0, 1}); ok {
		t.Error("quad behind the origin should miss")
	}
	if _, _, _, ok := q.Intersect(mathutil.Vec3{}, mathutil.Vec3{1, 0, 0}); ok {
		t.Error("parallel ray should miss")
	}
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Short", "Short"},
		{strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{strings.Repeat("a", 31), strings.Repeat("a", 28) + "..."},
		{strings.Repeat("é", 40), strings.Repeat("é", 28) + "..."},
	}
	for _, tt := range tests {
		if got := TruncateTitle(tt.in); got != tt.want {
			t.Errorf("TruncateTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildCopiesItems(t *testing.T) {
	items := makeItems(2)
	s := Build(items, nil, nil)
	items[0].Title = "changed"
	if s.Frames[0].Item.Title == "changed" {
		t.Error("scene should own its item copy")
	}
	if s.FrameByID("item-1") != &s.Frames[1] || s.FrameByID("nope") != nil {
		t.Error("FrameByID lookup")
	}
}

func TestDescribe(t *testing.T) {
	s := Build(makeItems(2), nil, nil)
	out := s.Describe()
	if !strings.HasPrefix(out, "corridor length 22.0, 2 frames\n") {
		t.Errorf("header = %q", out)
	}
	if !strings.Contains(out, "001 right z=  -10.0 item-1 | Project 1") {
		t.Errorf("listing = %q", out)
	}
}

func TestDiffLayouts(t *testing.T) {
	a := Build(makeItems(2), nil, nil).Describe()
	b := Build(makeItems(3), nil, nil).Describe()

	if got := DiffLayouts(a, a); got != "" {
		t.Errorf("identical layouts diff = %q", got)
	}

	out := DiffLayouts(a, b)
	if !strings.Contains(out, "-corridor length 22.0, 2 frames\n") {
		t.Errorf("missing removed header in %q", out)
	}
	if !strings.Contains(out, " 001 right") {
		t.Errorf("unchanged frame not kept in %q", out)
	}
	if !strings.Contains(out, "+002 left") {
		t.Errorf("added frame missing in %q", out)
	}
	if PatchLayouts(a, b) == "" {
		t.Error("PatchLayouts returned empty patch")
	}
}
