package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hallway-gallery/internal/batch"
	"hallway-gallery/internal/config"
	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/raster"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/texture"
	"hallway-gallery/internal/viewer"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags are shared by every command.
type globalFlags struct {
	configFile string
	cfg        config.Flags
}

func main() {
	root := &cobra.Command{
		Use:          "gallery",
		Short:        "Walk a portfolio hung in a 3D corridor",
		Long:         "gallery lays a portfolio out along a corridor and lets you walk it, or renders stills of every frame.",
		SilenceUsage: true,
	}

	var g globalFlags
	pf := root.PersistentFlags()
	pf.StringVar(&g.configFile, "config", "", "Path to config.json file")
	pf.StringVar(&g.cfg.BaseDir, "base", "", "Base directory (default: auto-detect)")
	pf.StringVar(&g.cfg.Portfolio, "portfolio", "", "Portfolio JSON (default: <base>/portfolio.json)")
	pf.StringVar(&g.cfg.AssetsDir, "assets", "", "Image directory (default: <base>/public)")
	pf.StringVar(&g.cfg.OutputDir, "output", "", "Output directory (default: <base>/renders)")
	pf.IntVar(&g.cfg.Width, "width", 0, "Output width (default: 1280)")
	pf.IntVar(&g.cfg.Height, "height", 0, "Output height (default: 720)")
	pf.Int64Var(&g.cfg.Seed, "seed", 0, "Surface noise seed (default: 1)")
	pf.BoolVar(&g.cfg.Featured, "featured", false, "Only hang featured items")

	root.AddCommand(
		viewCmd(&g),
		texturesCmd(&g),
		snapshotCmd(&g),
		tourCmd(&g),
		layoutCmd(&g),
	)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func viewCmd(g *globalFlags) *cobra.Command {
	var (
		touch bool
		scale int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the gallery in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			items, err := loadItems(cfg)
			if err != nil {
				return err
			}
			return viewer.Run(items, newResolver(cfg), viewer.Options{
				Title:       "Gallery",
				Width:       cfg.Width,
				Height:      cfg.Height,
				RenderScale: scale,
				FOV:         cfg.FOV,
				Seed:        cfg.Seed,
				Touch:       touch,
			})
		},
	}
	f := cmd.Flags()
	f.BoolVar(&touch, "touch", false, "Show the on-screen joystick and touch instructions")
	f.IntVar(&scale, "scale", 4, "Render the corridor at 1/scale of the window size")
	return cmd
}

func texturesCmd(g *globalFlags) *cobra.Command {
	var (
		format string
		length float64
	)
	cmd := &cobra.Command{
		Use:   "textures",
		Short: "Write the generated floor, wall and ceiling textures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if length <= 0 {
				items, err := loadItems(cfg)
				if err != nil {
					return err
				}
				length = scene.CorridorLength(len(items))
			}

			set := surface.Generate(length, cfg.Seed)
			for _, t := range []struct {
				name string
				tex  surface.Texture
			}{
				{"floor", set.Floor},
				{"wall", set.Wall},
				{"ceiling", set.Ceiling},
			} {
				path := filepath.Join(cfg.OutputDir, t.name+"."+format)
				if err := texture.SaveImage(path, t.tex.Image); err != nil {
					return codeError(2, "%s", err)
				}
				fmt.Printf("%-8s %s (repeat %.1f×%.1f)\n", t.name, path, t.tex.RepeatU, t.tex.RepeatV)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&format, "format", "png", "Image format: webp, png or tga")
	f.Float64Var(&length, "length", 0, "Corridor length (default: derived from the portfolio)")
	return cmd
}

func snapshotCmd(g *globalFlags) *cobra.Command {
	var (
		x, z       float64
		yaw, pitch float64
		frame      string
	)
	cmd := &cobra.Command{
		Use:   "snapshot <out-file>",
		Short: "Render one still from a camera pose",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			items, err := loadItems(cfg)
			if err != nil {
				return err
			}
			s := scene.Build(items, newResolver(cfg), surface.NewGenerator(cfg.Seed))
			r := raster.New(s)

			pos := mathutil.Vec3{x, scene.EyeHeight, z}
			q := mathutil.QuatFromYawPitch(mathutil.Deg2Rad(yaw), mathutil.Deg2Rad(pitch))
			if frame != "" {
				f := s.FrameByID(frame)
				if f == nil {
					return codeError(2, "no frame with id %q", frame)
				}
				pos, q = batch.ViewPose(f)
			}

			img := batch.Still(r, pos, q, cfg.FOV, cfg.Width, cfg.Height, cfg.Supersample, nil)
			if err := texture.SaveImage(args[0], img); err != nil {
				return codeError(2, "%s", err)
			}
			fmt.Printf("Snapshot: %s (%dx%d)\n", args[0], cfg.Width, cfg.Height)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&x, "x", 0, "Camera x")
	f.Float64Var(&z, "z", 2, "Camera z")
	f.Float64Var(&yaw, "yaw", 0, "Yaw in degrees, 0 looks down the corridor")
	f.Float64Var(&pitch, "pitch", 0, "Pitch in degrees")
	f.StringVar(&frame, "frame", "", "Stand in front of the frame with this item id instead")
	return cmd
}

func tourCmd(g *globalFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Render a still in front of every frame and write a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			items, err := loadItems(cfg)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No items to render.")
				return nil
			}

			res := newResolver(cfg)
			s := scene.Build(items, res, surface.NewGenerator(cfg.Seed))

			fmt.Printf("Gallery tour → %s\n", strings.ToUpper(format))
			fmt.Printf("Frames: %d, Workers: %d\n", len(s.Frames), cfg.Workers)
			fmt.Printf("Output: %s\n", cfg.OutputDir)
			fmt.Println("------------------------------------------------------------")

			start := time.Now()
			results := batch.Run(batch.Config{
				OutputDir:   cfg.OutputDir,
				Format:      format,
				Renderer:    raster.New(s),
				Width:       cfg.Width,
				Height:      cfg.Height,
				FOV:         cfg.FOV,
				Supersample: cfg.Supersample,
				Workers:     cfg.Workers,
			})

			fmt.Println("------------------------------------------------------------")
			fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

			var failed []batch.Result
			for _, r := range results {
				if !r.Success {
					failed = append(failed, r)
				}
			}
			fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))
			if len(failed) > 0 {
				fmt.Printf("\nFailed (%d):\n", len(failed))
				for _, r := range failed[:min(len(failed), 20)] {
					fmt.Printf("  %s: %s\n", r.ID, r.Error)
				}
			}

			manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
			if err := batch.WriteManifest(manifestPath, s, results); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
			} else {
				fmt.Printf("Manifest: %s\n", manifestPath)
			}

			if len(failed) > 0 {
				return codeError(2, "%d frame(s) failed", len(failed))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "webp", "Image format: webp, png or tga")
	return cmd
}

func layoutCmd(g *globalFlags) *cobra.Command {
	var (
		against string
		patch   bool
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where each item hangs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			items, err := loadItems(cfg)
			if err != nil {
				return err
			}
			current := describe(items)
			if against == "" {
				fmt.Print(current)
				return nil
			}

			other, err := portfolio.Load(against)
			if err != nil {
				return codeError(2, "%s", err)
			}
			if cfg.Featured {
				other = portfolio.Featured(other)
			}
			out := layoutDiff(describe(other), current, patch)
			if out == "" {
				fmt.Println("Layouts are identical.")
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&against, "against", "", "Compare with the layout of another portfolio JSON")
	f.BoolVar(&patch, "patch", false, "Print the comparison in diff-match-patch format")
	return cmd
}

// describe lists the layout of items without touching any image files.
func describe(items []portfolio.Item) string {
	return scene.Describe(scene.CorridorLength(len(items)), scene.Layout(items))
}

func layoutDiff(before, after string, asPatch bool) string {
	if asPatch {
		return scene.PatchLayouts(before, after)
	}
	return scene.DiffLayouts(before, after)
}

func loadConfig(g *globalFlags) (config.Config, error) {
	var cfg config.Config
	if g.configFile != "" {
		var err error
		cfg, err = config.Load(g.configFile)
		if err != nil {
			return config.Config{}, codeError(3, "%s", err)
		}
	}
	flags := g.cfg
	if flags.BaseDir == "" && cfg.BaseDir == "" && flags.Portfolio != "" {
		if abs, err := filepath.Abs(flags.Portfolio); err == nil {
			flags.Portfolio = abs
			flags.BaseDir = filepath.Dir(abs)
		}
	}
	cfg.Resolve(flags)
	if cfg.BaseDir == "" && cfg.Portfolio == "" {
		return config.Config{}, codeError(3, "cannot find portfolio.json. Use --base, --portfolio or --config.")
	}
	return cfg, nil
}

func loadItems(cfg config.Config) ([]portfolio.Item, error) {
	items, err := portfolio.Load(cfg.Portfolio)
	if err != nil {
		return nil, codeError(3, "%s", err)
	}
	if cfg.Featured {
		items = portfolio.Featured(items)
	}
	return items, nil
}

func newResolver(cfg config.Config) *texture.Cache {
	idx := texture.BuildIndex(cfg.AssetsDir)
	fmt.Printf("Images: %d indexed\n", idx.Len())
	return texture.NewCache(idx, func(ref string, err error) {
		log.Printf("image %s: %v", ref, err)
	})
}
