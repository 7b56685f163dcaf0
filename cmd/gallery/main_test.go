package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hallway-gallery/internal/config"
	"hallway-gallery/internal/portfolio"
)

func TestLayoutDiff(t *testing.T) {
	a := []portfolio.Item{
		{ID: "a", Title: "Alpha", Images: []string{"a.png"}},
		{ID: "b", Title: "Beta", Images: []string{"b.png"}},
	}
	b := []portfolio.Item{a[1], a[0]}

	if got := layoutDiff(describe(a), describe(a), false); got != "" {
		t.Errorf("same layout diff = %q", got)
	}

	out := layoutDiff(describe(a), describe(b), false)
	if !strings.Contains(out, "-000 left ") || !strings.Contains(out, "+000 left ") {
		t.Errorf("swap not reported: %q", out)
	}

	if p := layoutDiff(describe(a), describe(b), true); !strings.HasPrefix(p, "@@ ") {
		t.Errorf("patch output = %q", p)
	}
}

func TestLoadConfigFromPortfolioFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "works.json")
	if err := os.WriteFile(path, []byte(`[{"id":"x","title":"X","images":["x.png"],"featured":true},{"id":"y","title":"Y","images":["y.png"]}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	g := &globalFlags{cfg: config.Flags{Portfolio: path, Featured: true}}
	cfg, err := loadConfig(g)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.AssetsDir != filepath.Join(dir, "public") {
		t.Errorf("AssetsDir = %q", cfg.AssetsDir)
	}

	items, err := loadItems(cfg)
	if err != nil {
		t.Fatalf("loadItems: %v", err)
	}
	if len(items) != 1 || items[0].ID != "x" {
		t.Errorf("featured items = %+v", items)
	}
}
