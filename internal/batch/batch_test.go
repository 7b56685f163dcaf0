package batch

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/raster"
	"hallway-gallery/internal/scene"
)

func tourScene(n int) *scene.Scene {
	items := make([]portfolio.Item, n)
	for i := range items {
		items[i] = portfolio.Item{
			ID:       fmt.Sprintf("p%d", i),
			Title:    fmt.Sprintf("Project %d", i),
			Category: portfolio.Categories[i%len(portfolio.Categories)],
		}
	}
	return scene.Build(items, nil, nil)
}

func TestViewPoseFacesArtwork(t *testing.T) {
	s := tourScene(2)
	for i := range s.Frames {
		f := &s.Frames[i]
		pos, q := ViewPose(f)
		if math.Abs(pos[0]) > 3.5 {
			t.Errorf("frame %d: camera x %v outside the walkable width", i, pos[0])
		}
		toArt := f.Artwork.Center.Sub(pos).Normalize()
		if q.Forward().Dot(toArt) < 0.9999 {
			t.Errorf("frame %d: forward %v, want %v", i, q.Forward(), toArt)
		}
	}
}

func TestRunWritesStillsAndManifest(t *testing.T) {
	s := tourScene(3)
	out := t.TempDir()
	cfg := Config{
		OutputDir:   out,
		Format:      "png",
		Renderer:    raster.New(s),
		Width:       16,
		Height:      9,
		FOV:         65,
		Supersample: 2,
		Workers:     2,
	}
	results := Run(cfg)
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d failed: %s", i, r.Error)
		}
		if r.Image != ImageName(i, s.Frames[i].Item.ID, "png") {
			t.Errorf("image name %q", r.Image)
		}
		if _, err := os.Stat(filepath.Join(out, r.Image)); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}

	path := filepath.Join(out, "manifest.json")
	if err := WriteManifest(path, s, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m.Length != 28 || len(m.Frames) != 3 {
		t.Fatalf("manifest = %+v", m)
	}
	if e := m.Frames[1]; e.Side != "right" || e.Z != -10 || e.Image != "001-p1.png" {
		t.Errorf("entry 1 = %+v", e)
	}
}

func TestManifestRecordsFailures(t *testing.T) {
	s := tourScene(2)
	m := BuildManifest(s, []Result{{Index: 0, Success: true, Image: "a.webp"}, {Index: 1, Error: "boom"}})
	if m.Frames[0].Image != "a.webp" || m.Frames[1].Error != "boom" || m.Frames[1].Image != "" {
		t.Fatalf("frames = %+v", m.Frames)
	}
}
