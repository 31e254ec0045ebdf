package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalEpsilon keeps the polar angle off the exact poles.
const SphericalEpsilon = 1e-6

// Spherical is a point expressed relative to an origin in spherical coordinates
// around the +Y axis.
//
// Theta (azimuth) is measured from +X and turns right-handed about +Y, Phi (polar)
// is measured down from +Y and lies in [0, π], Radius is the distance from the origin.
//
//	x =  Radius * sin(Phi) * cos(Theta)
//	y =  Radius * cos(Phi)
//	z = -Radius * sin(Phi) * sin(Theta)
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVec3 converts a cartesian offset into spherical coordinates.
// A zero vector yields a zero Spherical.
//
// Parameters:
//   - v: offset from the origin
//
// Returns:
//   - Spherical: the equivalent spherical coordinates
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	s := Spherical{Radius: v.Len()}
	if s.Radius == 0 {
		return s
	}
	// 0-z rather than -z so an offset on -X reads +π, not -π
	s.Theta = math.Atan2(0-v.Z(), v.X())
	s.Phi = math.Acos(mgl64.Clamp(v.Y()/s.Radius, -1, 1))
	return s
}

// Vec3 converts the spherical coordinates back into a cartesian offset.
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhi := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhi * math.Cos(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		-sinPhi * math.Sin(s.Theta),
	}
}

// MakeSafe restricts Phi to [SphericalEpsilon, π - SphericalEpsilon] so the
// azimuth stays defined and a look-at from the result never degenerates.
func (s *Spherical) MakeSafe() {
	s.Phi = mgl64.Clamp(s.Phi, SphericalEpsilon, math.Pi-SphericalEpsilon)
}
