package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Limits bounds the orbit. Requests outside a bound are clamped, never rejected.
// Angles are in radians, distances in world units.
type Limits struct {
	MinDistance float64
	MaxDistance float64

	// orthographic only
	MinZoom float64
	MaxZoom float64

	MinPolarAngle float64
	MaxPolarAngle float64

	// Azimuth bounds may describe a range wrapping through ±π when Min > Max.
	MinAzimuthAngle float64
	MaxAzimuthAngle float64
}

// DefaultLimits returns limits that leave the orbit unbounded apart from the poles.
func DefaultLimits() Limits {
	return Limits{
		MinDistance:     0,
		MaxDistance:     math.Inf(1),
		MinZoom:         0,
		MaxZoom:         math.Inf(1),
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),
	}
}

// ClampAzimuth restricts theta to the azimuth bounds.
//
// With both bounds finite, each is first wrapped into [-π, π]. If Min ≤ Max the
// angle is clamped directly. If Min > Max the valid range wraps through ±π and an
// angle outside it snaps to the nearer bound: Min when above the bounds' midpoint,
// Max otherwise, so the midpoint itself resolves to Max. With a single finite bound
// only that side is enforced.
//
// Parameters:
//   - theta: azimuth angle in radians
//
// Returns:
//   - float64: the clamped azimuth
func (l Limits) ClampAzimuth(theta float64) float64 {
	lo, hi := l.MinAzimuthAngle, l.MaxAzimuthAngle
	if !common.IsFinite(lo) || !common.IsFinite(hi) {
		return math.Max(lo, math.Min(hi, theta))
	}

	lo = common.WrapAngle(lo)
	hi = common.WrapAngle(hi)
	if lo <= hi {
		return mgl64.Clamp(theta, lo, hi)
	}
	if theta > (lo+hi)/2 {
		return math.Max(lo, theta)
	}
	return math.Min(hi, theta)
}

// ClampPolar restricts phi to [MinPolarAngle, MaxPolarAngle].
func (l Limits) ClampPolar(phi float64) float64 {
	return math.Max(l.MinPolarAngle, math.Min(l.MaxPolarAngle, phi))
}

// ClampDistance restricts radius to [MinDistance, MaxDistance].
func (l Limits) ClampDistance(radius float64) float64 {
	return math.Max(l.MinDistance, math.Min(l.MaxDistance, radius))
}

// ClampZoom restricts zoom to [MinZoom, MaxZoom].
func (l Limits) ClampZoom(zoom float64) float64 {
	return math.Max(l.MinZoom, math.Min(l.MaxZoom, zoom))
}
