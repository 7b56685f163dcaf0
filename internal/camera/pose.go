package camera

import (
	"math"

	"hallway-gallery/internal/mathutil"
	"hallway-gallery/internal/scene"
)

// LockState mirrors whether first-person control (pointer capture) is active.
type LockState int

const (
	Idle LockState = iota
	Locked
)

func (s LockState) String() string {
	if s == Locked {
		return "locked"
	}
	return "idle"
}

// Pose is the camera position and orientation. Yaw and Pitch drive the
// orientation while locked; in idle mode Orientation eases on its own.
type Pose struct {
	Position    mathutil.Vec3
	Yaw         float64
	Pitch       float64
	Orientation mathutil.Quat
}

// Forward returns the look direction.
func (p Pose) Forward() mathutil.Vec3 {
	return p.Orientation.Forward()
}

// Bounds is the walkable box inside the corridor.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
	Y          float64
}

// Distance the camera keeps from the side walls and corridor ends.
const (
	WallMargin = 0.5
	EndMargin  = 2.0
)

// CorridorBounds returns the walkable box for a corridor of the given length.
func CorridorBounds(length float64) Bounds {
	halfW := scene.HallwayWidth/2 - WallMargin
	return Bounds{
		MinX: -halfW,
		MaxX: halfW,
		MinZ: -(length - EndMargin),
		MaxZ: EndMargin,
		Y:    scene.EyeHeight,
	}
}

// Clamp pins p inside the box. Axes are clamped independently, so the result
// does not depend on which axis is handled first, and clamping twice is the
// same as clamping once.
func (b Bounds) Clamp(p mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{
		mathutil.Clamp(p[0], b.MinX, b.MaxX),
		b.Y,
		mathutil.Clamp(p[2], b.MinZ, b.MaxZ),
	}
}

// Contains reports whether p is inside the box.
func (b Bounds) Contains(p mathutil.Vec3) bool {
	return p[0] >= b.MinX && p[0] <= b.MaxX &&
		p[2] >= b.MinZ && p[2] <= b.MaxZ &&
		p[1] == b.Y
}

// Tuning holds the feel constants of the controller.
type Tuning struct {
	MoveSpeed        float64 // units per second
	MouseSensitivity float64 // radians per pixel
	PitchLimit       float64 // radians, symmetric
	WheelGain        float64 // scroll velocity per wheel delta unit
	ScrollDecay      float64 // per-frame multiplier
	IdleBlend        float64 // per-frame position blend toward the entrance
	IdleTurnBlend    float64 // per-frame orientation blend toward the corridor
	Entrance         mathutil.Vec3
	LookTarget       mathutil.Vec3
}

// DefaultTuning returns the gallery's standard feel.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:        5,
		MouseSensitivity: 0.002,
		PitchLimit:       math.Pi / 3,
		WheelGain:        0.005,
		ScrollDecay:      0.92,
		IdleBlend:        0.05,
		IdleTurnBlend:    0.08,
		Entrance:         mathutil.Vec3{0, scene.EyeHeight, 2},
		LookTarget:       mathutil.Vec3{0, scene.EyeHeight, -10},
	}
}

// EntrancePose returns the resting idle pose for t.
func EntrancePose(t Tuning) Pose {
	yaw, pitch := mathutil.LookAngles(t.Entrance, t.LookTarget)
	return Pose{
		Position:    t.Entrance,
		Orientation: mathutil.QuatFromYawPitch(yaw, pitch),
	}
}
