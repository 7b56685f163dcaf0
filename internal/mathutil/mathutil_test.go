package mathutil

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearVec(a, b Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestYawAxes(t *testing.T) {
	tests := []struct {
		yaw            float64
		forward, right Vec3
	}{
		{0, Vec3{0, 0, -1}, Vec3{1, 0, 0}},
		{math.Pi / 2, Vec3{-1, 0, 0}, Vec3{0, 0, -1}},
		{math.Pi, Vec3{0, 0, 1}, Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		if got := YawForward(tt.yaw); !nearVec(got, tt.forward) {
			t.Errorf("YawForward(%v) = %v, want %v", tt.yaw, got, tt.forward)
		}
		if got := YawRight(tt.yaw); !nearVec(got, tt.right) {
			t.Errorf("YawRight(%v) = %v, want %v", tt.yaw, got, tt.right)
		}
	}
}

func TestQuatFromYawPitchMatchesYawForward(t *testing.T) {
	for _, yaw := range []float64{-2, -0.5, 0, 0.7, 3} {
		got := QuatFromYawPitch(yaw, 0).Forward()
		if !nearVec(got, YawForward(yaw)) {
			t.Errorf("yaw %v: forward = %v, want %v", yaw, got, YawForward(yaw))
		}
	}
}

func TestQuatPitchLooksUp(t *testing.T) {
	f := QuatFromYawPitch(0, math.Pi/4).Forward()
	if f[1] <= 0 {
		t.Errorf("positive pitch should look up, forward = %v", f)
	}
	if !near(f[1], math.Sin(math.Pi/4)) {
		t.Errorf("forward.y = %v, want %v", f[1], math.Sin(math.Pi/4))
	}
}

func TestLookAnglesRoundTrip(t *testing.T) {
	eye := Vec3{1, 1.8, 2}
	target := Vec3{-3, 2.5, -10}
	yaw, pitch := LookAngles(eye, target)
	f := QuatFromYawPitch(yaw, pitch).Forward()
	want := target.Sub(eye).Normalize()
	if !nearVec(f, want) {
		t.Errorf("forward = %v, want %v", f, want)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := QuatFromYawPitch(0, 0)
	b := QuatFromYawPitch(1, 0.3)
	if got := a.Slerp(b, 0).Forward(); !nearVec(got, a.Forward()) {
		t.Errorf("slerp(0) = %v, want %v", got, a.Forward())
	}
	if got := a.Slerp(b, 1).Forward(); !nearVec(got, b.Forward()) {
		t.Errorf("slerp(1) = %v, want %v", got, b.Forward())
	}
}

func TestSlerpConverges(t *testing.T) {
	q := QuatFromYawPitch(2.5, -0.8)
	target := QuatIdentity()
	for i := 0; i < 400; i++ {
		q = q.Slerp(target, 0.08)
	}
	if f := q.Forward(); !nearVecTol(f, Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("forward after easing = %v", f)
	}
}

func nearVecTol(a, b Vec3, tol float64) bool {
	return math.Abs(a[0]-b[0]) < tol && math.Abs(a[1]-b[1]) < tol && math.Abs(a[2]-b[2]) < tol
}

func TestQuatToMat3AgreesWithRotate(t *testing.T) {
	q := QuatFromYawPitch(0.4, -0.2)
	v := Vec3{0.3, -1, 2}
	if got, want := QuatToMat3(q).MulVec3(v), q.Rotate(v); !nearVec(got, want) {
		t.Errorf("matrix rotate = %v, quaternion rotate = %v", got, want)
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, -1, 1) != 1 || Clamp(-5, -1, 1) != -1 || Clamp(0.5, -1, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
	got := Vec3{0, 0, 0}.Lerp(Vec3{10, -10, 4}, 0.25)
	if !nearVec(got, Vec3{2.5, -2.5, 1}) {
		t.Errorf("Lerp = %v", got)
	}
}
