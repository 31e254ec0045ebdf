package controls

import (
	"errors"
	"math"
	"testing"
)

func TestParseOrbit(t *testing.T) {
	tests := []struct {
		in        string
		theta     float64
		phi       float64
		expectErr bool
	}{
		{in: "45deg,90deg", theta: math.Pi / 4, phi: math.Pi / 2},
		{in: "0.5 1.2rad", theta: 0.5, phi: 1.2},
		{in: " -1 , 2 ", theta: -1, phi: 2},
		{in: "180deg,1", theta: math.Pi, phi: 1},
		{in: "", expectErr: true},
		{in: "1", expectErr: true},
		{in: "1,2,3", expectErr: true},
		{in: "abc,1", expectErr: true},
		{in: "1,2grad", expectErr: true},
		{in: "NaN,1", expectErr: true},
		{in: "1,Infdeg", expectErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			theta, phi, err := ParseOrbit(tt.in)
			if tt.expectErr {
				if !errors.Is(err, ErrInvalidOrbit) {
					t.Fatalf("expected ErrInvalidOrbit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(theta-tt.theta) > 1e-12 || math.Abs(phi-tt.phi) > 1e-12 {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.theta, tt.phi, theta, phi)
			}
		})
	}
}
