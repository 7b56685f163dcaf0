package camera

import (
	"errors"

	"hallway-gallery/internal/input"
	"hallway-gallery/internal/mathutil"
)

// PointerLocker is the platform pointer-capture capability.
type PointerLocker interface {
	// RequestPointerLock asks the platform to capture the pointer. The grant
	// may be reported later through Controller.SetLocked.
	RequestPointerLock() error
	// ExitPointerLock releases the capture.
	ExitPointerLock()
	// PointerLocked reports whether the capture is active right now.
	PointerLocked() bool
}

// ErrNoPointerLock is returned by RequestLock when no platform capability is attached.
var ErrNoPointerLock = errors.New("camera: pointer lock unavailable")

// Controller is the input and camera state machine. It is not safe for
// concurrent use; event handlers and Tick must run on the render thread.
type Controller struct {
	tuning Tuning
	bounds Bounds
	locker PointerLocker

	in    input.State
	pose  Pose
	state LockState
	touch bool // locked through touch mode, no platform capture

	onLockChange func(locked bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithTuning replaces the default feel constants.
func WithTuning(t Tuning) Option {
	return func(c *Controller) { c.tuning = t }
}

// WithLockChange registers the callback invoked on every Idle/Locked transition.
func WithLockChange(fn func(locked bool)) Option {
	return func(c *Controller) { c.onLockChange = fn }
}

// NewController creates an idle controller resting at the entrance of a
// corridor of the given length. locker may be nil on touch-only hosts.
func NewController(length float64, locker PointerLocker, opts ...Option) *Controller {
	c := &Controller{
		tuning: DefaultTuning(),
		locker: locker,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bounds = CorridorBounds(length)
	c.pose = EntrancePose(c.tuning)
	return c
}

// Pose returns a copy of the current camera pose.
func (c *Controller) Pose() Pose { return c.pose }

// Bounds returns the walkable box.
func (c *Controller) Bounds() Bounds { return c.bounds }

// State returns the current lock state.
func (c *Controller) State() LockState { return c.state }

// Locked reports whether first-person control is active.
func (c *Controller) Locked() bool { return c.state == Locked }

// Input exposes the shared input state so other sources (the virtual
// joystick) can write the same movement flags the keyboard does.
func (c *Controller) Input() *input.State { return &c.in }

// RequestLock asks the platform for pointer capture. A rejected request
// leaves the controller idle and is not retried.
func (c *Controller) RequestLock() error {
	if c.state == Locked {
		return nil
	}
	if c.locker == nil {
		return ErrNoPointerLock
	}
	if err := c.locker.RequestPointerLock(); err != nil {
		return err
	}
	if c.locker.PointerLocked() {
		c.setLocked(true)
	}
	return nil
}

// SetLocked is the platform's pointer-lock change notification.
func (c *Controller) SetLocked(locked bool) {
	c.setLocked(locked)
}

// EnterTouch starts first-person control without a pointer capture.
func (c *Controller) EnterTouch() {
	if c.state == Locked {
		return
	}
	c.touch = true
	c.setLocked(true)
}

// Release ends first-person control, releasing the platform capture if held.
func (c *Controller) Release() {
	if c.state != Locked {
		return
	}
	if !c.touch && c.locker != nil {
		c.locker.ExitPointerLock()
	}
	c.setLocked(false)
}

func (c *Controller) setLocked(locked bool) {
	if locked == (c.state == Locked) {
		return
	}
	if locked {
		c.state = Locked
		c.pose.Yaw = 0
		c.pose.Pitch = 0
		c.in.LookX, c.in.LookY = 0, 0
	} else {
		c.state = Idle
		c.touch = false
		c.in.Reset()
	}
	if c.onLockChange != nil {
		c.onLockChange(locked)
	}
}

// KeyDown sets the movement flag for k. Ignored while idle.
func (c *Controller) KeyDown(k input.Key) {
	if c.state != Locked {
		return
	}
	c.in.Flags.Set(input.DirectionOf(k), true)
}

// KeyUp clears the movement flag for k.
func (c *Controller) KeyUp(k input.Key) {
	c.in.Flags.Set(input.DirectionOf(k), false)
}

// MouseMove accumulates relative pointer movement. Ignored while idle.
func (c *Controller) MouseMove(dx, dy float64) {
	if c.state != Locked {
		return
	}
	c.in.LookX += dx
	c.in.LookY += dy
}

// Wheel adds wheel movement to the dolly velocity. It reports whether the
// event was consumed; while idle the host should let it scroll the page.
func (c *Controller) Wheel(deltaY float64) bool {
	if c.state != Locked {
		return false
	}
	c.in.ScrollVelocity += deltaY * c.tuning.WheelGain
	return true
}

// Tick integrates one frame of dt seconds.
func (c *Controller) Tick(dt float64) {
	if c.state == Locked && !c.touch && c.locker != nil && !c.locker.PointerLocked() {
		c.setLocked(false)
	}

	if c.state == Locked {
		c.tickLocked(dt)
	} else {
		c.tickIdle()
	}
}

func (c *Controller) tickLocked(dt float64) {
	t := &c.tuning
	p := &c.pose

	dx, dy := c.in.TakeLook()
	p.Yaw -= dx * t.MouseSensitivity
	p.Pitch = mathutil.Clamp(p.Pitch-dy*t.MouseSensitivity, -t.PitchLimit, t.PitchLimit)

	forward := mathutil.YawForward(p.Yaw)
	right := mathutil.YawRight(p.Yaw)

	var move mathutil.Vec3
	f := c.in.Flags
	if f.Forward {
		move = move.Add(forward)
	}
	if f.Backward {
		move = move.Sub(forward)
	}
	if f.Right {
		move = move.Add(right)
	}
	if f.Left {
		move = move.Sub(right)
	}
	if move.Len() > 0 {
		p.Position = p.Position.Add(move.Normalize().Scale(t.MoveSpeed * dt))
	}

	p.Position = p.Position.Add(forward.Scale(-c.in.ScrollVelocity * dt))
	c.in.ScrollVelocity *= t.ScrollDecay

	p.Position = c.bounds.Clamp(p.Position)
	p.Orientation = mathutil.QuatFromYawPitch(p.Yaw, p.Pitch)
}

func (c *Controller) tickIdle() {
	t := &c.tuning
	p := &c.pose

	p.Position = p.Position.Lerp(t.Entrance, t.IdleBlend)
	yaw, pitch := mathutil.LookAngles(p.Position, t.LookTarget)
	p.Orientation = p.Orientation.Slerp(mathutil.QuatFromYawPitch(yaw, pitch), t.IdleTurnBlend)
}
