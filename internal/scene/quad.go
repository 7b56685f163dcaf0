package scene

import (
	"math"

	"hallway-gallery/internal/mathutil"
)

// Quad is a flat rectangle in world space. U and V are half-extent axes:
// the corners are Center ± U ± V. Texture u runs along +U, v runs along -V
// so v = 0 is the top edge.
type Quad struct {
	Center mathutil.Vec3
	U      mathutil.Vec3
	V      mathutil.Vec3
	Normal mathutil.Vec3
}

// NewQuad builds a quad from a center, a rotation and a width/height in the
// rotated XY plane. The unrotated quad faces +Z.
func NewQuad(center mathutil.Vec3, rot mathutil.Mat3, w, h float64) Quad {
	return Quad{
		Center: center,
		U:      rot.MulVec3(mathutil.Vec3{w / 2, 0, 0}),
		V:      rot.MulVec3(mathutil.Vec3{0, h / 2, 0}),
		Normal: rot.MulVec3(mathutil.Vec3{0, 0, 1}),
	}
}

// Intersect returns the ray parameter and texture coordinates of the hit,
// or ok == false. Both faces are hit; dir need not be normalized, in which
// case t is in units of dir.
func (q Quad) Intersect(origin, dir mathutil.Vec3) (t, u, v float64, ok bool) {
	denom := q.Normal.Dot(dir)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, 0, false
	}
	t = q.Normal.Dot(q.Center.Sub(origin)) / denom
	if t <= 0 {
		return 0, 0, 0, false
	}

	local := origin.Add(dir.Scale(t)).Sub(q.Center)
	s := local.Dot(q.U) / q.U.Dot(q.U)
	r := local.Dot(q.V) / q.V.Dot(q.V)
	if s < -1 || s > 1 || r < -1 || r > 1 {
		return 0, 0, 0, false
	}
	return t, (s + 1) / 2, (1 - r) / 2, true
}

// Width returns the full extent along U.
func (q Quad) Width() float64 { return 2 * q.U.Len() }

// Height returns the full extent along V.
func (q Quad) Height() float64 { return 2 * q.V.Len() }
