package controls

import (
	"github.com/go-gl/mathgl/mgl64"
)

type OrbitControlsBuilderOption func(*orbitControls)

// WithTarget sets the point the camera orbits. Defaults to the origin.
//
// Parameters:
//   - target: world-space orbit center
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithTarget(target mgl64.Vec3) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.target = target
	}
}

// WithDamping enables inertia with the given damping factor.
// Each Update applies this fraction of the pending motion and carries the rest over.
//
// Parameters:
//   - factor: fraction of pending motion applied per Update, in (0, 1]
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithDamping(factor float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.enableDamping = true
		c.dampingFactor = factor
	}
}

// WithAutoRotate enables rotation around the target while no gesture is active.
//
// Parameters:
//   - speed: turns per minute at 60 updates per second
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithAutoRotate(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.autoRotate = true
		c.autoRotateSpeed = speed
	}
}

// WithLimits replaces every orbit bound at once.
//
// Parameters:
//   - limits: the bounds to apply
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithLimits(limits Limits) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.limits = limits
	}
}

// WithDistanceLimits bounds how close to and far from the target a perspective camera may go.
func WithDistanceLimits(minDistance, maxDistance float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.limits.MinDistance = minDistance
		c.limits.MaxDistance = maxDistance
	}
}

// WithZoomLimits bounds an orthographic camera's zoom.
func WithZoomLimits(minZoom, maxZoom float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.limits.MinZoom = minZoom
		c.limits.MaxZoom = maxZoom
	}
}

// WithPolarLimits bounds the polar angle, in radians from the up axis.
func WithPolarLimits(minPolarAngle, maxPolarAngle float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.limits.MinPolarAngle = minPolarAngle
		c.limits.MaxPolarAngle = maxPolarAngle
	}
}

// WithAzimuthLimits bounds the azimuth in radians. minAzimuthAngle > maxAzimuthAngle selects a range wrapping through ±π.
func WithAzimuthLimits(minAzimuthAngle, maxAzimuthAngle float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.limits.MinAzimuthAngle = minAzimuthAngle
		c.limits.MaxAzimuthAngle = maxAzimuthAngle
	}
}

// WithSpeeds sets the rotate, zoom and pan sensitivities.
//
// Parameters:
//   - rotate: rotation multiplier
//   - zoom: dolly exponent, each step scales by 0.95^zoom
//   - pan: pan multiplier
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithSpeeds(rotate, zoom, pan float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.rotateSpeed = rotate
		c.zoomSpeed = zoom
		c.panSpeed = pan
	}
}

// WithKeyPanSpeed sets how many pixels one arrow-key press pans.
func WithKeyPanSpeed(speed float64) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.keyPanSpeed = speed
	}
}

// WithScreenSpacePanning selects panning in the screen plane (true) or in the plane orthogonal to up (false).
func WithScreenSpacePanning(enable bool) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.screenSpacePanning = enable
	}
}

// WithEnabled sets whether the controller reacts to input at all.
func WithEnabled(enabled bool) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.enabled = enabled
	}
}

// WithCapabilities toggles the rotate, zoom and pan gestures.
func WithCapabilities(rotate, zoom, pan bool) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.enableRotate = rotate
		c.enableZoom = zoom
		c.enablePan = pan
	}
}

// WithKeys replaces the key codes used for key panning.
func WithKeys(keys Keys) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.keys = keys
	}
}

// WithMouseButtons replaces the mouse button mapping.
func WithMouseButtons(buttons MouseButtons) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.mouseButtons = buttons
	}
}

// WithTouches replaces the touch mapping.
func WithTouches(touches Touches) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.touches = touches
	}
}

// WithSubscriber registers a handler before the constructor's initial Update runs,
// so it also observes the first change notification.
//
// Parameters:
//   - kind: the notification kind to receive
//   - h: the handler to invoke
//
// Returns:
//   - OrbitControlsBuilderOption: option function to apply
func WithSubscriber(kind EventKind, h Handler) OrbitControlsBuilderOption {
	return func(c *orbitControls) {
		c.events.subscribe(kind, h)
	}
}
