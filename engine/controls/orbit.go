package controls

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidOrbit is returned when an orbit descriptor cannot be parsed.
var ErrInvalidOrbit = errors.New("invalid orbit descriptor")

// ParseOrbit reads an orbit descriptor of the form "theta,phi", e.g. "45deg,60deg"
// or "0.5 1.2rad". Components are separated by a comma and/or whitespace and each
// may carry a "deg" or "rad" suffix; a bare number is in radians.
//
// Parameters:
//   - descriptor: the orbit descriptor
//
// Returns:
//   - theta: azimuth in radians
//   - phi: polar angle in radians
//   - error: wraps ErrInvalidOrbit when the descriptor is malformed
func ParseOrbit(descriptor string) (theta, phi float64, err error) {
	fields := strings.FieldsFunc(descriptor, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q: expected 2 components, got %d", ErrInvalidOrbit, descriptor, len(fields))
	}

	theta, err = parseAngle(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("theta: %w", err)
	}
	phi, err = parseAngle(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("phi: %w", err)
	}
	return theta, phi, nil
}

func parseAngle(s string) (float64, error) {
	toRadians := false
	switch {
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
		toRadians = true
	case strings.HasSuffix(s, "rad"):
		s = strings.TrimSuffix(s, "rad")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidOrbit, s)
	}
	if !common.IsFinite(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidOrbit, s)
	}
	if toRadians {
		v = mgl64.DegToRad(v)
	}
	return v, nil
}
