package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestIndexResolvePath(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "web", "ROI-Home.png"), 4, 2)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	idx := BuildIndex(dir)
	if idx.Len() != 1 {
		t.Fatalf("Len = %d, want 1", idx.Len())
	}

	for _, ref := range []string{"web/roi-home.png", "./web/ROI-Home.png", "web\\roi-home.png", "other/roi-home.jpg"} {
		if _, ok := idx.ResolvePath(ref); !ok {
			t.Errorf("ResolvePath(%q) not found", ref)
		}
	}
	if _, ok := idx.ResolvePath("missing.png"); ok {
		t.Error("missing reference resolved")
	}
	if _, ok := idx.ResolvePath(""); ok {
		t.Error("empty reference resolved")
	}
}

func TestBuildIndex_MissingDir(t *testing.T) {
	idx := BuildIndex(filepath.Join(t.TempDir(), "absent"))
	if idx.Len() != 0 {
		t.Errorf("Len = %d, want 0", idx.Len())
	}
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 6, 3)
	os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644)

	var failures []string
	c := NewCache(BuildIndex(dir), func(ref string, err error) {
		failures = append(failures, ref)
	})

	img := c.Resolve("a.png")
	if img == nil {
		t.Fatal("Resolve(a.png) = nil")
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if again := c.Resolve("a.png"); again != img {
		t.Error("second Resolve should hit the cache")
	}

	if c.Resolve("broken.png") != nil {
		t.Error("broken image should resolve to nil")
	}
	if c.Resolve("missing.png") != nil {
		t.Error("missing image should resolve to nil")
	}
	c.Resolve("missing.png")

	if len(failures) != 2 {
		t.Errorf("failures = %v, want one per bad reference", failures)
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestToNRGBA_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.Set(5, 5, color.RGBA{255, 0, 0, 255})
	dst := ToNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 2, 3) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	if c := dst.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %v", c)
	}
}

func TestLoadTextureByExtension(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 180
	}

	pngPath := filepath.Join(dir, "a.png")
	writePNG(t, pngPath, 8, 4)

	jpgPath := filepath.Join(dir, "b.jpg")
	f, err := os.Create(jpgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, path := range []string{pngPath, jpgPath} {
		img, err := LoadTexture(path)
		if err != nil {
			t.Fatalf("%s: %v", filepath.Base(path), err)
		}
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
			t.Errorf("%s: bounds = %v", filepath.Base(path), img.Bounds())
		}
	}

	os.WriteFile(filepath.Join(dir, "c.txt"), []byte("x"), 0644)
	if _, err := LoadTexture(filepath.Join(dir, "c.txt")); err == nil {
		t.Error("unknown extension decoded")
	}
}
