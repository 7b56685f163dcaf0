package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	Portfolio string `json:"portfolio"`
	AssetsDir string `json:"assets_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FOV         float64 `json:"fov"`
	Supersample int     `json:"supersample"`
	WebPQuality int     `json:"webp_quality"`
	Workers     int     `json:"workers"`
	Seed        int64   `json:"seed"`
	Featured    bool    `json:"featured_only"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir   string
	Portfolio string
	AssetsDir string
	OutputDir string
	Width     int
	Height    int
	Quality   int
	Workers   int
	Seed      int64
	Featured  bool
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.Portfolio != "" {
		c.Portfolio = flags.Portfolio
	}
	if flags.AssetsDir != "" {
		c.AssetsDir = flags.AssetsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Featured {
		c.Featured = true
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		c.Portfolio = under(c.BaseDir, c.Portfolio, "portfolio.json")
		c.AssetsDir = under(c.BaseDir, c.AssetsDir, "public")
		c.OutputDir = under(c.BaseDir, c.OutputDir, "renders")
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.FOV <= 0 {
		c.FOV = 65
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
}

// under returns p resolved against base, or base/def when p is empty.
func under(base, p, def string) string {
	if p == "" {
		return filepath.Join(base, def)
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func detectBaseDir() string {
	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir), filepath.Join(dir, "..", "..")} {
			if hasPortfolio(base) {
				return base
			}
		}
	}

	// Try current working directory and its parent
	cwd, _ := os.Getwd()
	if hasPortfolio(cwd) {
		return cwd
	}
	if parent := filepath.Dir(cwd); hasPortfolio(parent) {
		return parent
	}

	return ""
}

func hasPortfolio(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "portfolio.json"))
	return err == nil
}
