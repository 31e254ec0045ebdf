package controls

import (
	"math"
	"testing"
)

func TestClampAzimuth(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name     string
		min, max float64
		theta    float64
		want     float64
	}{
		{"unbounded", -inf, inf, 7, 7},
		{"inside", -1, 1, 0.5, 0.5},
		{"above", -1, 1, 2, 1},
		{"below", -1, 1, -2, -1},
		{"min only", 0, inf, -1, 0},
		{"max only", -inf, 0.5, 1, 0.5},
		{"bounds wrapped into range", -1 + 2*math.Pi, 1 - 2*math.Pi, 2, 1},
		{"wrap inside upper", 3 * math.Pi / 4, -3 * math.Pi / 4, 3, 3},
		{"wrap inside lower", 3 * math.Pi / 4, -3 * math.Pi / 4, -3, -3},
		{"wrap nearer min", 3 * math.Pi / 4, -3 * math.Pi / 4, 0.5, 3 * math.Pi / 4},
		{"wrap nearer max", 3 * math.Pi / 4, -3 * math.Pi / 4, -0.5, -3 * math.Pi / 4},
		{"wrap midpoint resolves to max", 3 * math.Pi / 4, -3 * math.Pi / 4, 0, -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLimits()
			l.MinAzimuthAngle, l.MaxAzimuthAngle = tt.min, tt.max

			if got := l.ClampAzimuth(tt.theta); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClampIntervals(t *testing.T) {
	l := Limits{
		MinDistance:   1,
		MaxDistance:   5,
		MinZoom:       0.5,
		MaxZoom:       2,
		MinPolarAngle: 0.2,
		MaxPolarAngle: 1.2,
	}

	if got := l.ClampDistance(0); got != 1 {
		t.Errorf("expected distance 1, got %v", got)
	}
	if got := l.ClampDistance(9); got != 5 {
		t.Errorf("expected distance 5, got %v", got)
	}
	if got := l.ClampZoom(3); got != 2 {
		t.Errorf("expected zoom 2, got %v", got)
	}
	if got := l.ClampPolar(-1); got != 0.2 {
		t.Errorf("expected polar 0.2, got %v", got)
	}
	if got := l.ClampPolar(0.7); got != 0.7 {
		t.Errorf("expected polar 0.7, got %v", got)
	}
}

func TestDistanceLimitsApplyOnUpdate(t *testing.T) {
	c, _, _ := newPerspectiveControls(t, WithDistanceLimits(2, 8))
	if math.Abs(c.Distance()-8) > 1e-9 {
		t.Fatalf("expected initial distance clamped to 8, got %v", c.Distance())
	}

	for range 100 {
		c.DollyIn(0.5)
		c.Update()
	}
	if math.Abs(c.Distance()-2) > 1e-9 {
		t.Errorf("expected distance clamped to 2, got %v", c.Distance())
	}
}
