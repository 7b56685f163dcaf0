package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// YawForward returns the horizontal forward direction for a yaw angle.
// Yaw 0 looks down -Z; positive yaw turns left.
func YawForward(yaw float64) Vec3 {
	return Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
}

// YawRight returns the horizontal right direction for a yaw angle.
func YawRight(yaw float64) Vec3 {
	return Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

// LookAngles returns the yaw and pitch that point -Z at target from eye.
func LookAngles(eye, target Vec3) (yaw, pitch float64) {
	d := target.Sub(eye)
	yaw = math.Atan2(-d[0], -d[2])
	pitch = math.Atan2(d[1], math.Hypot(d[0], d[2]))
	return yaw, pitch
}
