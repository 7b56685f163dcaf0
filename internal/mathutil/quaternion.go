package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity is the no-rotation quaternion.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

func (q Quat) mgl() mgl64.Quat {
	return mgl64.Quat{W: q[3], V: mgl64.Vec3{q[0], q[1], q[2]}}
}

func fromMgl(q mgl64.Quat) Quat {
	return Quat{q.V[0], q.V[1], q.V[2], q.W}
}

// QuatFromYawPitch builds a camera orientation as Ry(yaw) · Rx(pitch),
// the same composition as an Euler triple in YXZ order with zero roll.
func QuatFromYawPitch(yaw, pitch float64) Quat {
	qy := mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
	qx := mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0})
	return fromMgl(qy.Mul(qx).Normalize())
}

// Slerp rotates q toward to by fraction t along the shortest arc.
func (q Quat) Slerp(to Quat, t float64) Quat {
	a, b := q.mgl(), to.mgl()
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return fromMgl(mgl64.QuatSlerp(a, b, t).Normalize())
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	r := q.mgl().Rotate(mgl64.Vec3{v[0], v[1], v[2]})
	return Vec3{r[0], r[1], r[2]}
}

// Forward returns the -Z axis rotated by q (the camera look direction).
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{0, 0, -1})
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
