// Package viewmatrix builds the perspective camera used for rendering and
// for the picking ray through the viewport centre.
package viewmatrix

import (
	"math"

	"hallway-gallery/internal/mathutil"
)

// Lens defaults.
const (
	DefaultFOV = 65.0 // vertical, degrees
	Near       = 0.1
	Far        = 200.0
)

// Camera is a pinhole camera with a vertical field of view.
type Camera struct {
	Position mathutil.Vec3
	Right    mathutil.Vec3
	Up       mathutil.Vec3
	Forward  mathutil.Vec3
	Width    int
	Height   int

	tanHalf float64
	aspect  float64
}

// New builds a camera at pos with orientation q for a w×h target.
func New(pos mathutil.Vec3, q mathutil.Quat, fovDeg float64, w, h int) Camera {
	if fovDeg <= 0 {
		fovDeg = DefaultFOV
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	R := mathutil.QuatToMat3(q)
	return Camera{
		Position: pos,
		Right:    R.MulVec3(mathutil.Vec3{1, 0, 0}),
		Up:       R.MulVec3(mathutil.Vec3{0, 1, 0}),
		Forward:  R.MulVec3(mathutil.Vec3{0, 0, -1}),
		Width:    w,
		Height:   h,
		tanHalf:  math.Tan(mathutil.Deg2Rad(fovDeg / 2)),
		aspect:   float64(w) / float64(h),
	}
}

// Ray returns the unit direction through pixel coordinates (x, y), where
// (0,0) is the top-left corner of the target and pixel centres sit at +0.5.
func (c Camera) Ray(x, y float64) mathutil.Vec3 {
	sx := (2*x/float64(c.Width) - 1) * c.tanHalf * c.aspect
	sy := (1 - 2*y/float64(c.Height)) * c.tanHalf
	return c.Forward.Add(c.Right.Scale(sx)).Add(c.Up.Scale(sy)).Normalize()
}

// Center returns the ray through the exact centre of the viewport.
func (c Camera) Center() mathutil.Vec3 {
	return c.Forward
}

// Depth returns the view-space depth of a world point.
func (c Camera) Depth(p mathutil.Vec3) float64 {
	return p.Sub(c.Position).Dot(c.Forward)
}

// Project maps a world point to pixel coordinates. ok is false for points
// outside the near and far planes.
func (c Camera) Project(p mathutil.Vec3) (x, y float64, ok bool) {
	rel := p.Sub(c.Position)
	d := rel.Dot(c.Forward)
	if d < Near || d > Far {
		return 0, 0, false
	}
	sx := rel.Dot(c.Right) / (d * c.tanHalf * c.aspect)
	sy := rel.Dot(c.Up) / (d * c.tanHalf)
	x = (sx + 1) / 2 * float64(c.Width)
	y = (1 - sy) / 2 * float64(c.Height)
	return x, y, true
}
