// Package input holds the movement and look state shared by every input
// source (keyboard, mouse, wheel, virtual joystick).
package input

// Key is a physical key code in DOM KeyboardEvent.code form.
type Key string

const (
	KeyW       Key = "KeyW"
	KeyA       Key = "KeyA"
	KeyS       Key = "KeyS"
	KeyD       Key = "KeyD"
	ArrowUp    Key = "ArrowUp"
	ArrowDown  Key = "ArrowDown"
	ArrowLeft  Key = "ArrowLeft"
	ArrowRight Key = "ArrowRight"
	Escape     Key = "Escape"
)

// Direction is one of the four movement flags.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
	StrafeLeft
	StrafeRight
)

// DirectionOf maps a key to the movement flag it drives.
func DirectionOf(k Key) Direction {
	switch k {
	case KeyW, ArrowUp:
		return Forward
	case KeyS, ArrowDown:
		return Backward
	case KeyA, ArrowLeft:
		return StrafeLeft
	case KeyD, ArrowRight:
		return StrafeRight
	}
	return None
}

// Flags are the held directional inputs.
type Flags struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Set sets or clears the flag for d.
func (f *Flags) Set(d Direction, on bool) {
	switch d {
	case Forward:
		f.Forward = on
	case Backward:
		f.Backward = on
	case StrafeLeft:
		f.Left = on
	case StrafeRight:
		f.Right = on
	}
}

// Any reports whether any flag is held.
func (f Flags) Any() bool {
	return f.Forward || f.Backward || f.Left || f.Right
}

// State is written by input event handlers between frames and consumed by
// the camera integrator once per frame.
type State struct {
	Flags Flags

	// LookX and LookY accumulate raw pointer movement since the last frame.
	LookX float64
	LookY float64

	// ScrollVelocity is the wheel dolly speed; it decays every frame.
	ScrollVelocity float64
}

// TakeLook returns the accumulated pointer movement and zeroes it.
func (s *State) TakeLook() (dx, dy float64) {
	dx, dy = s.LookX, s.LookY
	s.LookX, s.LookY = 0, 0
	return dx, dy
}

// Reset clears every flag, pending look delta and the scroll velocity.
func (s *State) Reset() {
	*s = State{}
}
