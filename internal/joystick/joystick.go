// Package joystick turns a single touch dragged inside a circular region
// into the same movement flags the keyboard produces.
package joystick

import (
	"math"

	"hallway-gallery/internal/input"
)

const (
	DefaultRadius   = 50.0
	DefaultDeadZone = 12.0
)

// TouchID identifies one active touch point.
type TouchID int

// Joystick is a circular drag region with a bounded thumb. It is driven from
// the render thread only.
type Joystick struct {
	CenterX, CenterY float64
	Radius           float64
	DeadZone         float64

	flags  *input.Flags
	active bool
	id     TouchID
	thumbX float64
	thumbY float64
}

// New returns a joystick centred at (cx, cy) writing into flags.
func New(cx, cy float64, flags *input.Flags) *Joystick {
	return &Joystick{
		CenterX:  cx,
		CenterY:  cy,
		Radius:   DefaultRadius,
		DeadZone: DefaultDeadZone,
		flags:    flags,
	}
}

// Contains reports whether (x, y) is inside the drag region.
func (j *Joystick) Contains(x, y float64) bool {
	return math.Hypot(x-j.CenterX, y-j.CenterY) <= j.Radius
}

// Active reports whether a touch is bound.
func (j *Joystick) Active() bool { return j.active }

// Thumb returns the clamped thumb offset from the centre.
func (j *Joystick) Thumb() (dx, dy float64) { return j.thumbX, j.thumbY }

// TouchStart binds id when it lands in the region and no touch is bound.
// It reports whether the touch was taken. Flags change only on move.
func (j *Joystick) TouchStart(id TouchID, x, y float64) bool {
	if j.active || !j.Contains(x, y) {
		return false
	}
	j.active = true
	j.id = id
	return true
}

// TouchMove updates the thumb and flags for the bound touch.
func (j *Joystick) TouchMove(id TouchID, x, y float64) bool {
	if !j.active || id != j.id {
		return false
	}
	j.move(x, y)
	return true
}

// TouchEnd unbinds the bound touch, recentres the thumb and clears all four
// flags. Use it for cancellation too.
func (j *Joystick) TouchEnd(id TouchID) bool {
	if !j.active || id != j.id {
		return false
	}
	j.Reset()
	return true
}

// Reset unbinds any touch and clears the flags.
func (j *Joystick) Reset() {
	j.active = false
	j.id = 0
	j.thumbX, j.thumbY = 0, 0
	if j.flags != nil {
		*j.flags = input.Flags{}
	}
}

func (j *Joystick) move(x, y float64) {
	dx := x - j.CenterX
	dy := y - j.CenterY
	j.thumbX, j.thumbY = dx, dy
	if d := math.Hypot(dx, dy); d > j.Radius {
		j.thumbX *= j.Radius / d
		j.thumbY *= j.Radius / d
	}

	// Flags read the raw displacement; only the drawn thumb is clamped.
	if j.flags == nil {
		return
	}
	j.flags.Forward = dy < -j.DeadZone
	j.flags.Backward = dy > j.DeadZone
	j.flags.Left = dx < -j.DeadZone
	j.flags.Right = dx > j.DeadZone
}
