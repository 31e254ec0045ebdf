package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{7 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	if got := WrapAngle(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Errorf("expected -Inf to pass through, got %v", got)
	}
}

func TestUpFrameIdentityForWorldUp(t *testing.T) {
	toY, fromY := UpFrame(WorldUp)
	v := mgl64.Vec3{1, 2, 3}
	if got := toY.Rotate(v); got.Sub(v).Len() > 1e-12 {
		t.Errorf("expected %v, got %v", v, got)
	}
	if got := fromY.Rotate(v); got.Sub(v).Len() > 1e-12 {
		t.Errorf("expected %v, got %v", v, got)
	}
}

func TestUpFrameZUp(t *testing.T) {
	toY, fromY := UpFrame(mgl64.Vec3{0, 0, 1})
	if got := toY.Rotate(mgl64.Vec3{0, 0, 1}); got.Sub(WorldUp).Len() > 1e-9 {
		t.Errorf("expected up to map onto +Y, got %v", got)
	}
	v := mgl64.Vec3{3, -1, 2}
	if got := fromY.Rotate(toY.Rotate(v)); got.Sub(v).Len() > 1e-9 {
		t.Errorf("expected round trip %v, got %v", v, got)
	}
}

func TestLookRotationFacesTarget(t *testing.T) {
	eye := mgl64.Vec3{-10, 0, 0}
	q := LookRotation(eye, mgl64.Vec3{}, WorldUp)

	forward := q.Rotate(mgl64.Vec3{0, 0, -1})
	if forward.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-9 {
		t.Errorf("expected forward +X, got %v", forward)
	}
	up := q.Rotate(mgl64.Vec3{0, 1, 0})
	if up.Sub(WorldUp).Len() > 1e-9 {
		t.Errorf("expected up +Y, got %v", up)
	}
}

func TestLookRotationAlongUp(t *testing.T) {
	q := LookRotation(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{}, WorldUp)
	forward := q.Rotate(mgl64.Vec3{0, 0, -1})
	if forward.Y() > -0.999 {
		t.Errorf("expected forward close to -Y, got %v", forward)
	}
}
