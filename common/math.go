package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the +Y axis every orbit computation is carried out against.
var WorldUp = mgl64.Vec3{0, 1, 0}

// WrapAngle shifts an angle by whole turns until it lies within [-π, π].
// Both ends stay inclusive so a range of exactly [-π, π] survives unchanged.
//
// Parameters:
//   - angle: angle in radians
//
// Returns:
//   - float64: the equivalent angle in [-π, π]
func WrapAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// UpFrame returns the rotation taking the given up vector onto +Y and its inverse.
// A zero up vector is treated as +Y.
//
// Parameters:
//   - up: the camera's up vector
//
// Returns:
//   - toY: rotation from up onto +Y
//   - fromY: rotation from +Y back onto up
func UpFrame(up mgl64.Vec3) (toY, fromY mgl64.Quat) {
	if up.Len() == 0 {
		return mgl64.QuatIdent(), mgl64.QuatIdent()
	}
	toY = mgl64.QuatBetweenVectors(up.Normalize(), WorldUp)
	return toY, toY.Inverse()
}

// LookRotation builds the orientation of an object at eye whose local -Z axis
// points at target, keeping its local +Y as close to up as possible.
// When eye and target coincide the object faces down -Z.
//
// Parameters:
//   - eye: object position
//   - target: point to face
//   - up: reference up vector
//
// Returns:
//   - mgl64.Quat: unit orientation quaternion
func LookRotation(eye, target, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(target)
	if z.Len() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() == 0 {
		// up and view direction are parallel, nudge z off the pole
		if math.Abs(up.Z()) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// Mat4ToFloat32 narrows a column-major matrix for GPU upload.
func Mat4ToFloat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i := range 16 {
		out[i] = float32(m[i])
	}
	return out
}

// Vec3ToFloat32 narrows a vector for GPU upload.
func Vec3ToFloat32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}
