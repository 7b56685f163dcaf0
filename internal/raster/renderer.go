package raster

import (
	"image"
	"math"
	"runtime"
	"sync"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/viewmatrix"
)

type kind int

const (
	kindSurface kind = iota
	kindBorder
	kindArtwork
	kindPlacard
)

// target is one intersectable quad with what to shade it with.
type target struct {
	quad  scene.Quad
	kind  kind
	surf  *scene.Surface
	frame int
}

type hit struct {
	t, u, v float64
	idx     int
}

// Renderer ray casts a built scene. Render only reads the scene, so one
// Renderer may serve several goroutines.
type Renderer struct {
	Env Environment

	scene   *scene.Scene
	targets []target
	lights  *lightIndex

	border      [3]float64
	placeholder [3]float64
}

// New prepares s for rendering.
func New(s *scene.Scene) *Renderer {
	r := &Renderer{
		Env:         DefaultEnvironment(),
		scene:       s,
		lights:      newLightIndex(s.AllLights(), s.Length),
		border:      Linear(surface.FrameBorderColor),
		placeholder: Linear(surface.CeilingColor),
	}
	for i := range s.Surfaces {
		r.targets = append(r.targets, target{quad: s.Surfaces[i].Quad, kind: kindSurface, surf: &s.Surfaces[i]})
	}
	for i := range s.Strips {
		r.targets = append(r.targets, target{quad: s.Strips[i].Quad, kind: kindSurface, surf: &s.Strips[i]})
	}
	for i := range s.Frames {
		f := &s.Frames[i]
		r.targets = append(r.targets,
			target{quad: f.Border, kind: kindBorder, frame: i},
			target{quad: f.Artwork, kind: kindArtwork, frame: i},
			target{quad: f.Placard, kind: kindPlacard, frame: i},
		)
	}
	return r
}

// Scene returns the scene being rendered.
func (r *Renderer) Scene() *scene.Scene { return r.scene }

// Render draws the view from cam into a new frame buffer. hl may be nil.
func (r *Renderer) Render(cam viewmatrix.Camera, hl *Highlighter) *FrameBuffer {
	fb := NewFrameBuffer(cam.Width, cam.Height)
	r.RenderInto(fb, cam, hl)
	return fb
}

// RenderImage is Render followed by FrameBuffer.Image.
func (r *Renderer) RenderImage(cam viewmatrix.Camera, hl *Highlighter) *image.NRGBA {
	return r.Render(cam, hl).Image()
}

// RenderInto draws into fb, whose size must match cam. Rows are split
// across GOMAXPROCS goroutines.
func (r *Renderer) RenderInto(fb *FrameBuffer, cam viewmatrix.Camera, hl *Highlighter) {
	workers := runtime.GOMAXPROCS(0)
	if workers > fb.Height {
		workers = fb.Height
	}
	rows := make(chan int, fb.Height)
	for y := 0; y < fb.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < fb.Width; x++ {
					dir := cam.Ray(float64(x)+0.5, float64(y)+0.5)
					c, depth := r.pixel(cam, dir, hl)
					fb.set(x, y, c, depth)
				}
			}
		}()
	}
	wg.Wait()
}

// pixel returns the display color along dir and its view depth.
func (r *Renderer) pixel(cam viewmatrix.Camera, dir mathutil.Vec3, hl *Highlighter) ([3]float64, float64) {
	h, ok := r.trace(cam.Position, dir, viewmatrix.Near, r.Env.Far, -1)
	if !ok {
		return r.Env.FogColor, math.Inf(1)
	}
	lin := r.radiance(cam.Position, dir, h, hl)
	depth := h.t * dir.Dot(cam.Forward)

	var out [3]float64
	f := r.Env.fog(depth)
	for k := 0; k < 3; k++ {
		c := LinearToSRGB(ACESTonemap(lin[k] * r.Env.Exposure))
		out[k] = c*(1-f) + r.Env.FogColor[k]*f
	}
	return out, depth
}

// trace finds the nearest target with minT <= t < maxT, ignoring index skip.
func (r *Renderer) trace(origin, dir mathutil.Vec3, minT, maxT float64, skip int) (hit, bool) {
	best := hit{t: maxT, idx: -1}
	for i := range r.targets {
		if i == skip {
			continue
		}
		t, u, v, ok := r.targets[i].quad.Intersect(origin, dir)
		if !ok || t < minT || t >= best.t {
			continue
		}
		best = hit{t: t, u: u, v: v, idx: i}
	}
	return best, best.idx >= 0
}

// radiance returns the linear color leaving the hit toward the viewer.
func (r *Renderer) radiance(origin, dir mathutil.Vec3, h hit, hl *Highlighter) [3]float64 {
	tg := &r.targets[h.idx]
	p := origin.Add(dir.Scale(h.t))

	switch tg.kind {
	case kindPlacard:
		f := &r.scene.Frames[tg.frame]
		label, a := SampleTexture(f.Label, h.u, h.v)
		if a >= 1 {
			return label
		}
		var behind [3]float64
		if bh, ok := r.trace(p, dir, 1e-6, r.Env.Far, h.idx); ok {
			behind = r.radiance(p, dir, bh, hl)
		}
		return mix3(behind, label, a)

	case kindBorder:
		return r.lit(r.border, p, tg.quad.Normal, dir)

	case kindArtwork:
		f := &r.scene.Frames[tg.frame]
		albedo := r.placeholder
		if f.Image != nil {
			albedo, _ = SampleTexture(f.Image, h.u, h.v)
		}
		c := r.lit(albedo, p, tg.quad.Normal, dir)
		glow := hl.Level(tg.frame)
		for k := 0; k < 3; k++ {
			c[k] += albedo[k] * glow
		}
		return c
	}

	s := tg.surf
	var albedo [3]float64
	if s.Texture != nil {
		albedo, _ = SampleTexture(s.Texture.Image, h.u*s.Texture.RepeatU, h.v*s.Texture.RepeatV)
	} else {
		albedo = Linear(s.Color)
	}
	if s.Unlit {
		return albedo
	}
	c := r.lit(albedo, p, tg.quad.Normal, dir)
	for k := 0; k < 3; k++ {
		c[k] += albedo[k] * s.Emissive
	}
	return c
}

// lit applies ambient, hemisphere and point lights to a diffuse surface.
// Surfaces are two-sided, so the normal faces the viewer.
func (r *Renderer) lit(albedo [3]float64, p, n, dir mathutil.Vec3) [3]float64 {
	if n.Dot(dir) > 0 {
		n = n.Scale(-1)
	}
	irr := r.Env.irradiance(n)
	d := r.lights.direct(p, n)
	var out [3]float64
	for k := 0; k < 3; k++ {
		out[k] = albedo[k] * (irr[k] + d[k])
	}
	return out
}

func mix3(a, b [3]float64, t float64) [3]float64 {
	return [3]float64{
		a[0]*(1-t) + b[0]*t,
		a[1]*(1-t) + b[1]*t,
		a[2]*(1-t) + b[2]*t,
	}
}
