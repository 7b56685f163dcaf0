package picking

import (
	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/scene"
)

const (
	// DefaultInterval evaluates one frame in three. It is a frame count, not
	// a time; variable frame rates change how often aim updates.
	DefaultInterval = 3
	// DefaultMaxDistance is the farthest artwork that can be aimed at.
	DefaultMaxDistance = 8.0
)

// Ray is a world-space ray with a unit direction.
type Ray struct {
	Origin mathutil.Vec3
	Dir    mathutil.Vec3
}

// Hit is the nearest artwork along a ray.
type Hit struct {
	Frame    *scene.Frame
	Distance float64
}

// Cast intersects r with the artwork quads of frames and returns the
// nearest hit closer than maxDist. Borders, placards and walls never occlude.
func Cast(r Ray, frames []scene.Frame, maxDist float64) (Hit, bool) {
	best := Hit{Distance: maxDist}
	found := false
	for i := range frames {
		t, _, _, ok := frames[i].Artwork.Intersect(r.Origin, r.Dir)
		if !ok || t >= best.Distance {
			continue
		}
		best = Hit{Frame: &frames[i], Distance: t}
		found = true
	}
	return best, found
}

// Picker runs Cast on a fixed frame cadence and reports aim changes once
// per change.
type Picker struct {
	Interval    int
	MaxDistance float64

	aim      *AimState
	onChange func(*portfolio.Item)
	frame    int
}

// NewPicker returns a picker writing to aim. onChange may be nil.
func NewPicker(aim *AimState, onChange func(*portfolio.Item)) *Picker {
	return &Picker{
		Interval:    DefaultInterval,
		MaxDistance: DefaultMaxDistance,
		aim:         aim,
		onChange:    onChange,
	}
}

// Rearm makes the next Tick evaluate regardless of the cadence.
func (p *Picker) Rearm() {
	p.frame = 0
}

// Tick counts one locked frame and evaluates the ray when the cadence is
// due. It reports whether an evaluation happened.
func (p *Picker) Tick(r Ray, frames []scene.Frame) bool {
	due := p.frame == 0
	p.frame++
	if p.frame >= max(p.Interval, 1) {
		p.frame = 0
	}
	if !due {
		return false
	}

	var item *portfolio.Item
	if hit, ok := Cast(r, frames, p.MaxDistance); ok {
		item = hit.Frame.Item
	}
	p.set(item)
	return true
}

// Clear drops the current aim, notifying once if something was aimed.
func (p *Picker) Clear() {
	p.set(nil)
}

func (p *Picker) set(item *portfolio.Item) {
	if p.aim.Store(item) && p.onChange != nil {
		p.onChange(item)
	}
}
