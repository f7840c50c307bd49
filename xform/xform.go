// Package xform builds the left-handed transforms the triangle shaders use.
// Matrices are mgl32 values in column-vector form; RowMajor lays one out the
// way the vertex shader's constant buffers expect it.
package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	AngleStep = math.Pi / 180

	backFacingStart = math.Pi / 2
	backFacingEnd   = 3 * math.Pi / 2
	fullTurn        = 2 * math.Pi
)

// StepAngle advances a Y rotation by one degree. Angles that would show the
// back of the triangle jump straight to 3π/2, and the angle wraps to 0 once
// it passes 2π.
func StepAngle(angle float32) float32 {
	angle += AngleStep
	if angle > backFacingStart && angle < backFacingEnd {
		angle = backFacingEnd
	}
	if angle > fullTurn {
		angle = 0
	}
	return angle
}

func RotationY(angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(angle)
}

// LookAtLH is a left-handed view matrix: +Z points from eye toward focus.
func LookAtLH(eye, focus, up mgl32.Vec3) mgl32.Mat4 {
	z := focus.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	return mgl32.Mat4{
		x.X(), y.X(), z.X(), 0,
		x.Y(), y.Y(), z.Y(), 0,
		x.Z(), y.Z(), z.Z(), 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

// PerspectiveFovLH maps view depth near..far to 0..1. fovY is in radians and
// aspect is width over height.
func PerspectiveFovLH(fovY, aspect, near, far float32) mgl32.Mat4 {
	h := float32(1 / math.Tan(float64(fovY)/2))
	w := h / aspect
	r := far / (far - near)

	return mgl32.Mat4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, r, 1,
		0, 0, -r * near, 0,
	}
}

// RowMajor returns m's elements row by row.
func RowMajor(m mgl32.Mat4) [16]float32 {
	return m.Transpose()
}
