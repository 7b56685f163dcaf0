package batch

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/picking"
	"hallway-gallery/internal/postprocess"
	"hallway-gallery/internal/raster"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/texture"
	"hallway-gallery/internal/viewmatrix"
)

// ViewDistance is how far in front of an artwork the tour camera stands.
const ViewDistance = 3.2

// Config holds all shared resources for a tour run.
type Config struct {
	OutputDir   string
	Format      string // file extension without the dot: webp, png or tga
	Renderer    *raster.Renderer
	Width       int
	Height      int
	FOV         float64
	Supersample int
	Workers     int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	ID      string
	Image   string
	Success bool
	Error   string
}

// Run renders one still per frame using a worker pool.
func Run(cfg Config) []Result {
	frames := cfg.Renderer.Scene().Frames
	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := max(cfg.Workers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// ViewPose returns a camera position and orientation facing f's artwork
// from ViewDistance along its normal.
func ViewPose(f *scene.Frame) (mathutil.Vec3, mathutil.Quat) {
	center := f.Artwork.Center
	pos := center.Add(f.Artwork.Normal.Scale(ViewDistance))
	pos[1] = scene.EyeHeight
	yaw, pitch := mathutil.LookAngles(pos, center)
	return pos, mathutil.QuatFromYawPitch(yaw, pitch)
}

// ImageName is the output file name for frame i.
func ImageName(i int, id, format string) string {
	return fmt.Sprintf("%03d-%s.%s", i, id, format)
}

// Still renders one supersampled view and downsamples it to w×h.
func Still(r *raster.Renderer, pos mathutil.Vec3, q mathutil.Quat, fov float64, w, h, ss int, hl *raster.Highlighter) *image.NRGBA {
	ss = max(ss, 1)
	cam := viewmatrix.New(pos, q, fov, w*ss, h*ss)
	img := r.RenderImage(cam, hl)
	if ss > 1 {
		img = postprocess.Downsample(img, w, h)
	}
	return img
}

func renderFrame(cfg Config, idx int) Result {
	s := cfg.Renderer.Scene()
	f := &s.Frames[idx]
	res := Result{Index: idx, ID: f.Item.ID}

	var aim picking.AimState
	aim.Store(f.Item)
	hl := raster.NewHighlighter(s.Frames, &aim)
	hl.Settle()

	pos, q := ViewPose(f)
	img := Still(cfg.Renderer, pos, q, cfg.FOV, cfg.Width, cfg.Height, cfg.Supersample, hl)

	format := cfg.Format
	if format == "" {
		format = "webp"
	}
	res.Image = ImageName(idx, f.Item.ID, format)
	if err := texture.SaveImage(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}
