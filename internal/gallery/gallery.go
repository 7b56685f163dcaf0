// Package gallery mounts the navigable corridor for a portfolio: it builds
// the scene and routes host input events into the camera, picker and
// virtual joystick, reporting back through Callbacks.
package gallery

import (
	"math"

	"hallway-gallery/internal/camera"
	"hallway-gallery/internal/input"
	"hallway-gallery/internal/joystick"
	"hallway-gallery/internal/picking"
	"hallway-gallery/internal/portfolio"
	"hallway-gallery/internal/scene"
	"hallway-gallery/internal/surface"
	"hallway-gallery/internal/texture"
)

// TapSlop is how far a look touch may travel and still count as a tap.
const TapSlop = 10.0

// Callbacks are the host notifications. Any of them may be nil.
type Callbacks struct {
	// OnSelectItem receives the aimed item once per confirming click.
	OnSelectItem func(item portfolio.Item)
	// OnLockChange fires on every Idle/Locked transition.
	OnLockChange func(locked bool)
	// OnAimedItemChange fires when the aimed item changes, nil meaning none.
	OnAimedItemChange func(item *portfolio.Item)
}

// Options tune a mount. The zero value uses the defaults.
type Options struct {
	Surfaces *surface.Generator
	Tuning   *camera.Tuning
	// JoystickX and JoystickY place the joystick centre in screen pixels.
	JoystickX, JoystickY float64
}

type lookTouch struct {
	active    bool
	id        joystick.TouchID
	x, y      float64
	sx, sy    float64
	travelled float64
}

// Gallery is a mounted corridor. All methods must be called from the host's
// render thread.
type Gallery struct {
	scene  *scene.Scene
	cam    *camera.Controller
	aim    picking.AimState
	picker *picking.Picker
	stick  *joystick.Joystick
	look   lookTouch
	cb     Callbacks

	mounted bool
}

// Mount builds the corridor for items and wires input handling. res and
// locker may be nil; without a locker only touch mode can lock.
func Mount(items []portfolio.Item, res texture.Resolver, locker camera.PointerLocker, cb Callbacks, opt Options) *Gallery {
	g := &Gallery{cb: cb, mounted: true}
	g.scene = scene.Build(items, res, opt.Surfaces)
	g.picker = picking.NewPicker(&g.aim, g.aimChanged)

	camOpts := []camera.Option{camera.WithLockChange(g.lockChanged)}
	if opt.Tuning != nil {
		camOpts = append(camOpts, camera.WithTuning(*opt.Tuning))
	}
	g.cam = camera.NewController(g.scene.Length, locker, camOpts...)
	g.stick = joystick.New(opt.JoystickX, opt.JoystickY, &g.cam.Input().Flags)
	return g
}

// Scene returns the built corridor.
func (g *Gallery) Scene() *scene.Scene { return g.scene }

// Pose returns the current camera pose.
func (g *Gallery) Pose() camera.Pose { return g.cam.Pose() }

// Locked reports whether first-person control is active.
func (g *Gallery) Locked() bool { return g.cam.Locked() }

// Aim returns the shared aim cell read by the highlight pass.
func (g *Gallery) Aim() *picking.AimState { return &g.aim }

// Joystick exposes the virtual joystick for drawing.
func (g *Gallery) Joystick() *joystick.Joystick { return g.stick }

func (g *Gallery) lockChanged(locked bool) {
	g.picker.Rearm()
	if !locked {
		g.picker.Clear()
		g.stick.Reset()
		g.look = lookTouch{}
	}
	if g.cb.OnLockChange != nil {
		g.cb.OnLockChange(locked)
	}
}

func (g *Gallery) aimChanged(it *portfolio.Item) {
	if g.cb.OnAimedItemChange != nil {
		g.cb.OnAimedItemChange(it)
	}
}

// Click handles a primary click on the scene. While idle it requests the
// pointer lock and returns the platform's error, if any. While locked and
// aimed it exits lock mode and hands the aimed item to OnSelectItem.
func (g *Gallery) Click() error {
	if !g.mounted {
		return nil
	}
	if !g.cam.Locked() {
		return g.cam.RequestLock()
	}
	g.selectAimed()
	return nil
}

// Tap enters touch mode while idle, and selects like Click while locked.
func (g *Gallery) Tap() {
	if !g.mounted {
		return
	}
	if !g.cam.Locked() {
		g.cam.EnterTouch()
		return
	}
	g.selectAimed()
}

func (g *Gallery) selectAimed() {
	it := g.aim.Load()
	if it == nil {
		return
	}
	selected := *it
	g.cam.Release()
	if g.cb.OnSelectItem != nil {
		g.cb.OnSelectItem(selected)
	}
}

// SetPointerLocked forwards the platform's pointer-lock change notification.
func (g *Gallery) SetPointerLocked(locked bool) {
	if g.mounted {
		g.cam.SetLocked(locked)
	}
}

// Release leaves first-person control (Escape or the touch Exit button).
func (g *Gallery) Release() {
	if g.mounted {
		g.cam.Release()
	}
}

// KeyDown handles a key press. Escape releases the lock.
func (g *Gallery) KeyDown(k input.Key) {
	if !g.mounted {
		return
	}
	if k == input.Escape {
		g.cam.Release()
		return
	}
	g.cam.KeyDown(k)
}

// KeyUp handles a key release.
func (g *Gallery) KeyUp(k input.Key) {
	if g.mounted {
		g.cam.KeyUp(k)
	}
}

// MouseMove handles relative pointer movement.
func (g *Gallery) MouseMove(dx, dy float64) {
	if g.mounted {
		g.cam.MouseMove(dx, dy)
	}
}

// Wheel handles vertical wheel movement and reports whether it was consumed.
func (g *Gallery) Wheel(deltaY float64) bool {
	if !g.mounted {
		return false
	}
	return g.cam.Wheel(deltaY)
}

// TouchStart routes a new touch to the joystick, or to look-drag otherwise.
func (g *Gallery) TouchStart(id joystick.TouchID, x, y float64) {
	if !g.mounted || !g.cam.Locked() {
		return
	}
	if g.stick.TouchStart(id, x, y) {
		return
	}
	if !g.look.active {
		g.look = lookTouch{active: true, id: id, x: x, y: y, sx: x, sy: y}
	}
}

// TouchMove updates the joystick or turns the camera by the drag delta.
func (g *Gallery) TouchMove(id joystick.TouchID, x, y float64) {
	if !g.mounted {
		return
	}
	if g.stick.TouchMove(id, x, y) {
		return
	}
	if g.look.active && g.look.id == id {
		g.cam.MouseMove(x-g.look.x, y-g.look.y)
		g.look.x, g.look.y = x, y
		g.look.travelled = math.Max(g.look.travelled, math.Hypot(x-g.look.sx, y-g.look.sy))
	}
}

// TouchEnd releases a touch. A look touch that barely moved is a tap.
func (g *Gallery) TouchEnd(id joystick.TouchID) {
	if !g.mounted {
		return
	}
	if g.stick.TouchEnd(id) {
		return
	}
	if g.look.active && g.look.id == id {
		tap := g.look.travelled < TapSlop
		g.look = lookTouch{}
		if tap {
			g.selectAimed()
		}
	}
}

// Tick advances one rendered frame of dt seconds.
func (g *Gallery) Tick(dt float64) {
	if !g.mounted {
		return
	}
	g.cam.Tick(dt)
	if !g.cam.Locked() {
		g.picker.Clear()
		return
	}
	pose := g.cam.Pose()
	g.picker.Tick(picking.Ray{Origin: pose.Position, Dir: pose.Forward()}, g.scene.Frames)
}

// Unmount releases the pointer capture and clears every piece of input
// state. Later events are ignored.
func (g *Gallery) Unmount() {
	if !g.mounted {
		return
	}
	g.cam.Release()
	g.cam.Input().Reset()
	g.stick.Reset()
	g.look = lookTouch{}
	g.aim.Store(nil)
	g.mounted = false
}
