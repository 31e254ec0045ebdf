// Package controls orbits a camera around a target point from pointer, wheel and
// keyboard input.
//
// A controller attaches to a surface.Surface, turns the surface's event stream into
// rotate, dolly and pan gestures, and moves an externally owned camera.Camera on a
// sphere around its target. Motion is applied by Update, which the application also
// calls once per frame so damping and auto-rotation keep running between events.
//
// Controllers are driven from a single goroutine and hold no package-level state, so
// any number of them can share a process.
package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitControls moves a camera around a target in response to surface input.
type OrbitControls interface {
	// Update integrates pending rotation, dolly and pan into the camera.
	// Call it once per frame when damping or auto-rotation is enabled; gesture
	// handlers call it on every accepted move.
	//
	// Returns:
	//   - bool: true if the camera moved, turned or zoomed
	Update() bool

	// SetOrbit moves the camera straight to the given azimuth and polar angle around
	// the target, bypassing damping. Both angles are clamped to the current limits.
	//
	// Parameters:
	//   - theta: azimuth in radians, measured from +X
	//   - phi: polar angle in radians, measured from the up axis
	//
	// Returns:
	//   - bool: false if the controller is disabled or an angle is not finite
	SetOrbit(theta, phi float64) bool

	// PolarAngle returns the polar angle computed by the last Update.
	PolarAngle() float64

	// AzimuthalAngle returns the azimuth computed by the last Update.
	AzimuthalAngle() float64

	// Distance returns the current distance from the camera to the target.
	Distance() float64

	// State returns the gesture currently being tracked.
	State() InteractionState

	// ListenToKeyEvents attaches arrow-key panning to element.
	// A previous key attachment is detached first.
	//
	// Parameters:
	//   - element: the event source delivering keydown events
	ListenToKeyEvents(element surface.EventSource)

	// StopListenToKeyEvents detaches the listener added by ListenToKeyEvents.
	StopListenToKeyEvents()

	// SaveState records the camera position, target and zoom restored by Reset.
	SaveState()

	// Reset restores the state recorded at construction or by the last SaveState.
	Reset()

	// Dispose detaches every listener the controller added, releases any
	// pointer capture it holds and drops all subscribers. Calling it more than
	// once is a no-op.
	Dispose()

	// Subscribe registers h for notifications of the given kind.
	//
	// Parameters:
	//   - kind: the notification kind to receive
	//   - h: the handler to invoke
	//
	// Returns:
	//   - Subscription: the handle that removes this registration
	Subscribe(kind EventKind, h Handler) Subscription

	// Unsubscribe removes a registration made by Subscribe.
	//
	// Parameters:
	//   - s: the subscription to remove
	//
	// Returns:
	//   - bool: true if a registration was removed
	Unsubscribe(s Subscription) bool

	// RotateLeft queues an azimuth change of -angle radians.
	RotateLeft(angle float64)

	// RotateUp queues a polar change of -angle radians.
	RotateUp(angle float64)

	// DollyIn moves the camera toward the target by scale, or zooms an orthographic camera in.
	DollyIn(scale float64)

	// DollyOut moves the camera away from the target by scale, or zooms an orthographic camera out.
	DollyOut(scale float64)

	// Pan queues a target translation of (deltaX, deltaY) surface pixels.
	Pan(deltaX, deltaY float64)

	Target() mgl64.Vec3
	SetTarget(target mgl64.Vec3)

	Enabled() bool
	SetEnabled(enabled bool)

	EnableRotate() bool
	SetEnableRotate(enable bool)
	EnableZoom() bool
	SetEnableZoom(enable bool)
	EnablePan() bool
	SetEnablePan(enable bool)

	EnableDamping() bool
	SetEnableDamping(enable bool)
	DampingFactor() float64
	SetDampingFactor(factor float64)

	RotateSpeed() float64
	SetRotateSpeed(speed float64)
	ZoomSpeed() float64
	SetZoomSpeed(speed float64)
	PanSpeed() float64
	SetPanSpeed(speed float64)
	ScreenSpacePanning() bool
	SetScreenSpacePanning(enable bool)
	KeyPanSpeed() float64
	SetKeyPanSpeed(speed float64)

	AutoRotate() bool
	SetAutoRotate(enable bool)
	// AutoRotateSpeed is in turns per minute at 60 updates per second.
	AutoRotateSpeed() float64
	SetAutoRotateSpeed(speed float64)

	// Limits returns every bound in one value.
	Limits() Limits
	MinDistance() float64
	SetMinDistance(d float64)
	MaxDistance() float64
	SetMaxDistance(d float64)
	MinZoom() float64
	SetMinZoom(z float64)
	MaxZoom() float64
	SetMaxZoom(z float64)
	MinPolarAngle() float64
	SetMinPolarAngle(angle float64)
	MaxPolarAngle() float64
	SetMaxPolarAngle(angle float64)
	MinAzimuthAngle() float64
	SetMinAzimuthAngle(angle float64)
	MaxAzimuthAngle() float64
	SetMaxAzimuthAngle(angle float64)

	Keys() Keys
	SetKeys(keys Keys)
	MouseButtons() MouseButtons
	SetMouseButtons(buttons MouseButtons)
	Touches() Touches
	SetTouches(touches Touches)
}
