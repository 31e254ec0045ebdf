package controls

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/go-gl/mathgl/mgl64"
)

// changeEpsilon is the squared displacement, and the orientation distance, below
// which Update reports no change.
const changeEpsilon = 1e-6

type orbitControls struct {
	camera  camera.Camera
	surface surface.Surface

	enabled bool
	target  mgl64.Vec3
	limits  Limits

	enableDamping bool
	dampingFactor float64

	enableZoom   bool
	zoomSpeed    float64
	enableRotate bool
	rotateSpeed  float64
	enablePan    bool
	panSpeed     float64

	screenSpacePanning bool
	keyPanSpeed        float64

	autoRotate      bool
	autoRotateSpeed float64

	keys         Keys
	mouseButtons MouseButtons
	touches      Touches

	// snapshot restored by Reset
	target0   mgl64.Vec3
	position0 mgl64.Vec3
	zoom0     float64

	state          InteractionState
	spherical      common.Spherical
	sphericalDelta common.Spherical
	scale          float64
	panOffset      mgl64.Vec3
	zoomChanged    bool

	lastPosition    mgl64.Vec3
	lastOrientation mgl64.Quat

	rotateStart mgl64.Vec2
	panStart    mgl64.Vec2
	dollyStart  mgl64.Vec2

	pointers      pointerSet
	gestureActive bool
	capturedID    int
	hasCapture    bool

	baseHandles []surface.ListenerHandle
	moveHandle  surface.ListenerHandle
	upHandle    surface.ListenerHandle
	keySource   surface.EventSource
	keyHandle   surface.ListenerHandle
	disposed    bool

	events *eventChannel
}

var _ OrbitControls = &orbitControls{}

// New attaches orbit controls for cam to surf.
// The current camera position, target and zoom are recorded for Reset, the base
// listeners are attached and one Update aligns the camera with the target.
//
// Parameters:
//   - cam: the camera to move; it stays owned by the caller
//   - surf: the surface delivering pointer and wheel events
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitControls: the attached controller
func New(cam camera.Camera, surf surface.Surface, options ...OrbitControlsBuilderOption) OrbitControls {
	c := &orbitControls{
		camera:             cam,
		surface:            surf,
		enabled:            true,
		limits:             DefaultLimits(),
		dampingFactor:      0.05,
		enableZoom:         true,
		zoomSpeed:          1,
		enableRotate:       true,
		rotateSpeed:        1,
		enablePan:          true,
		panSpeed:           1,
		screenSpacePanning: true,
		keyPanSpeed:        7,
		autoRotateSpeed:    2,
		keys:               DefaultKeys(),
		mouseButtons:       DefaultMouseButtons(),
		touches:            DefaultTouches(),
		state:              StateIdle,
		scale:              1,
		lastOrientation:    mgl64.QuatIdent(),
		pointers:           newPointerSet(),
		events:             &eventChannel{},
	}
	for _, option := range options {
		option(c)
	}

	c.SaveState()

	c.baseHandles = []surface.ListenerHandle{
		surf.AddEventListener(surface.EventContextMenu, c.onContextMenu),
		surf.AddEventListener(surface.EventPointerDown, c.onPointerDown),
		surf.AddEventListener(surface.EventPointerCancel, c.onPointerUp),
		surf.AddEventListener(surface.EventWheel, c.onMouseWheel),
	}

	c.update(false)
	return c
}

func (c *orbitControls) Update() bool {
	return c.update(false)
}

// update recomputes the camera from the target, the spherical state and the pending
// goal, pan offset and scale. With snapAngles the angular goal is applied in full
// even when damping is on.
func (c *orbitControls) update(snapAngles bool) bool {
	position := c.camera.Position()
	toY, fromY := common.UpFrame(c.camera.Up())

	c.spherical = common.SphericalFromVec3(toY.Rotate(position.Sub(c.target)))

	if c.autoRotate && c.state == StateIdle && !snapAngles {
		c.RotateLeft(c.autoRotationAngle())
	}

	dampAngles := c.enableDamping && !snapAngles
	if dampAngles {
		c.spherical.Theta += c.sphericalDelta.Theta * c.dampingFactor
		c.spherical.Phi += c.sphericalDelta.Phi * c.dampingFactor
	} else {
		c.spherical.Theta += c.sphericalDelta.Theta
		c.spherical.Phi += c.sphericalDelta.Phi
	}

	c.spherical.Theta = c.limits.ClampAzimuth(c.spherical.Theta)
	c.spherical.Phi = c.limits.ClampPolar(c.spherical.Phi)
	c.spherical.MakeSafe()
	// limits narrower than the pole margin win over it
	c.spherical.Phi = c.limits.ClampPolar(c.spherical.Phi)

	c.spherical.Radius = c.limits.ClampDistance(c.spherical.Radius * c.scale)

	if c.enableDamping {
		c.target = c.target.Add(c.panOffset.Mul(c.dampingFactor))
	} else {
		c.target = c.target.Add(c.panOffset)
	}

	position = c.target.Add(fromY.Rotate(c.spherical.Vec3()))
	c.camera.SetPosition(position)
	c.camera.LookAt(c.target)

	if dampAngles {
		c.sphericalDelta.Theta *= 1 - c.dampingFactor
		c.sphericalDelta.Phi *= 1 - c.dampingFactor
	} else {
		c.sphericalDelta = common.Spherical{}
	}
	if c.enableDamping {
		c.panOffset = c.panOffset.Mul(1 - c.dampingFactor)
	} else {
		c.panOffset = mgl64.Vec3{}
	}
	c.scale = 1

	// q and -q are the same rotation, so the orientation distance uses |q_prev·q|
	orientation := c.camera.Orientation()
	moved := position.Sub(c.lastPosition)
	if c.zoomChanged ||
		moved.Dot(moved) > changeEpsilon ||
		8*(1-math.Abs(c.lastOrientation.Dot(orientation))) > changeEpsilon {
		c.lastPosition = position
		c.lastOrientation = orientation
		c.zoomChanged = false
		c.emit(EventChange)
		return true
	}
	return false
}

func (c *orbitControls) SetOrbit(theta, phi float64) bool {
	if !c.enabled || !common.IsFinite(theta) || !common.IsFinite(phi) {
		return false
	}

	toY, _ := common.UpFrame(c.camera.Up())
	current := common.SphericalFromVec3(toY.Rotate(c.camera.Position().Sub(c.target)))

	c.sphericalDelta.Theta = c.limits.ClampAzimuth(theta) - current.Theta
	c.sphericalDelta.Phi = c.limits.ClampPolar(phi) - current.Phi
	c.update(true)
	return true
}

func (c *orbitControls) PolarAngle() float64 {
	return c.spherical.Phi
}

func (c *orbitControls) AzimuthalAngle() float64 {
	return c.spherical.Theta
}

func (c *orbitControls) Distance() float64 {
	return c.camera.Position().Sub(c.target).Len()
}

func (c *orbitControls) State() InteractionState {
	return c.state
}

func (c *orbitControls) ListenToKeyEvents(element surface.EventSource) {
	if c.disposed || element == nil {
		return
	}
	c.StopListenToKeyEvents()
	c.keySource = element
	c.keyHandle = element.AddEventListener(surface.EventKeyDown, c.onKeyDown)
}

func (c *orbitControls) StopListenToKeyEvents() {
	if c.keySource == nil {
		return
	}
	c.keySource.RemoveEventListener(c.keyHandle)
	c.keySource = nil
	c.keyHandle = 0
}

func (c *orbitControls) SaveState() {
	c.target0 = c.target
	c.position0 = c.camera.Position()
	if kind, _, ortho := c.projection(); kind == camera.ProjectionOrthographic {
		c.zoom0 = ortho.Zoom()
	}
}

func (c *orbitControls) Reset() {
	c.target = c.target0
	c.camera.SetPosition(c.position0)
	if kind, _, ortho := c.projection(); kind == camera.ProjectionOrthographic {
		ortho.SetZoom(c.zoom0)
	}
	c.camera.UpdateProjectionMatrix()

	c.sphericalDelta = common.Spherical{}
	c.panOffset = mgl64.Vec3{}
	c.scale = 1

	c.emit(EventChange)
	c.update(false)
	c.state = StateIdle
}

func (c *orbitControls) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	for _, h := range c.baseHandles {
		c.surface.RemoveEventListener(h)
	}
	c.baseHandles = nil
	c.detachPointerListeners()
	c.StopListenToKeyEvents()
	c.releaseCapture()

	c.pointers.reset()
	c.gestureActive = false
	c.state = StateIdle
	c.events.clear()
}

func (c *orbitControls) Subscribe(kind EventKind, h Handler) Subscription {
	return c.events.subscribe(kind, h)
}

func (c *orbitControls) Unsubscribe(s Subscription) bool {
	return c.events.unsubscribe(s)
}

func (c *orbitControls) emit(kind EventKind) {
	c.events.emit(Event{Kind: kind, State: c.state})
}

// beginGesture emits start unless a gesture is already running.
func (c *orbitControls) beginGesture() {
	if c.gestureActive {
		return
	}
	c.gestureActive = true
	c.emit(EventStart)
}

// endGesture returns to idle and emits end for a running gesture.
func (c *orbitControls) endGesture() {
	c.state = StateIdle
	if !c.gestureActive {
		return
	}
	c.gestureActive = false
	c.emit(EventEnd)
}

// projection resolves the camera's projection model. A camera whose Kind does not
// match its capabilities is treated as unknown.
func (c *orbitControls) projection() (camera.ProjectionKind, camera.PerspectiveCamera, camera.OrthographicCamera) {
	switch c.camera.Kind() {
	case camera.ProjectionPerspective:
		if p, ok := c.camera.(camera.PerspectiveCamera); ok {
			return camera.ProjectionPerspective, p, nil
		}
	case camera.ProjectionOrthographic:
		if o, ok := c.camera.(camera.OrthographicCamera); ok {
			return camera.ProjectionOrthographic, nil, o
		}
	case camera.ProjectionUnknown:
	}
	return camera.ProjectionUnknown, nil, nil
}

func (c *orbitControls) autoRotationAngle() float64 {
	return 2 * math.Pi / 60 / 60 * c.autoRotateSpeed
}

func (c *orbitControls) zoomScale() float64 {
	return math.Pow(0.95, c.zoomSpeed)
}

func (c *orbitControls) disablePan() {
	log.Printf("[OrbitControls] camera projection %s supports neither perspective nor orthographic panning, pan disabled", c.camera.Kind())
	c.enablePan = false
}

func (c *orbitControls) disableZoom() {
	log.Printf("[OrbitControls] camera projection %s supports neither perspective nor orthographic dolly, zoom disabled", c.camera.Kind())
	c.enableZoom = false
}

// --- properties ---

func (c *orbitControls) Target() mgl64.Vec3 {
	return c.target
}

func (c *orbitControls) SetTarget(target mgl64.Vec3) {
	c.target = target
}

func (c *orbitControls) Enabled() bool {
	return c.enabled
}

func (c *orbitControls) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *orbitControls) EnableRotate() bool {
	return c.enableRotate
}

func (c *orbitControls) SetEnableRotate(enable bool) {
	c.enableRotate = enable
}

func (c *orbitControls) EnableZoom() bool {
	return c.enableZoom
}

func (c *orbitControls) SetEnableZoom(enable bool) {
	c.enableZoom = enable
}

func (c *orbitControls) EnablePan() bool {
	return c.enablePan
}

func (c *orbitControls) SetEnablePan(enable bool) {
	c.enablePan = enable
}

func (c *orbitControls) EnableDamping() bool {
	return c.enableDamping
}

func (c *orbitControls) SetEnableDamping(enable bool) {
	c.enableDamping = enable
}

func (c *orbitControls) DampingFactor() float64 {
	return c.dampingFactor
}

func (c *orbitControls) SetDampingFactor(factor float64) {
	c.dampingFactor = factor
}

func (c *orbitControls) RotateSpeed() float64 {
	return c.rotateSpeed
}

func (c *orbitControls) SetRotateSpeed(speed float64) {
	c.rotateSpeed = speed
}

func (c *orbitControls) ZoomSpeed() float64 {
	return c.zoomSpeed
}

func (c *orbitControls) SetZoomSpeed(speed float64) {
	c.zoomSpeed = speed
}

func (c *orbitControls) PanSpeed() float64 {
	return c.panSpeed
}

func (c *orbitControls) SetPanSpeed(speed float64) {
	c.panSpeed = speed
}

func (c *orbitControls) ScreenSpacePanning() bool {
	return c.screenSpacePanning
}

func (c *orbitControls) SetScreenSpacePanning(enable bool) {
	c.screenSpacePanning = enable
}

func (c *orbitControls) KeyPanSpeed() float64 {
	return c.keyPanSpeed
}

func (c *orbitControls) SetKeyPanSpeed(speed float64) {
	c.keyPanSpeed = speed
}

func (c *orbitControls) AutoRotate() bool {
	return c.autoRotate
}

func (c *orbitControls) SetAutoRotate(enable bool) {
	c.autoRotate = enable
}

func (c *orbitControls) AutoRotateSpeed() float64 {
	return c.autoRotateSpeed
}

func (c *orbitControls) SetAutoRotateSpeed(speed float64) {
	c.autoRotateSpeed = speed
}

func (c *orbitControls) Limits() Limits {
	return c.limits
}

func (c *orbitControls) MinDistance() float64 {
	return c.limits.MinDistance
}

func (c *orbitControls) SetMinDistance(d float64) {
	c.limits.MinDistance = d
}

func (c *orbitControls) MaxDistance() float64 {
	return c.limits.MaxDistance
}

func (c *orbitControls) SetMaxDistance(d float64) {
	c.limits.MaxDistance = d
}

func (c *orbitControls) MinZoom() float64 {
	return c.limits.MinZoom
}

func (c *orbitControls) SetMinZoom(z float64) {
	c.limits.MinZoom = z
}

func (c *orbitControls) MaxZoom() float64 {
	return c.limits.MaxZoom
}

func (c *orbitControls) SetMaxZoom(z float64) {
	c.limits.MaxZoom = z
}

func (c *orbitControls) MinPolarAngle() float64 {
	return c.limits.MinPolarAngle
}

func (c *orbitControls) SetMinPolarAngle(angle float64) {
	c.limits.MinPolarAngle = angle
}

func (c *orbitControls) MaxPolarAngle() float64 {
	return c.limits.MaxPolarAngle
}

func (c *orbitControls) SetMaxPolarAngle(angle float64) {
	c.limits.MaxPolarAngle = angle
}

func (c *orbitControls) MinAzimuthAngle() float64 {
	return c.limits.MinAzimuthAngle
}

func (c *orbitControls) SetMinAzimuthAngle(angle float64) {
	c.limits.MinAzimuthAngle = angle
}

func (c *orbitControls) MaxAzimuthAngle() float64 {
	return c.limits.MaxAzimuthAngle
}

func (c *orbitControls) SetMaxAzimuthAngle(angle float64) {
	c.limits.MaxAzimuthAngle = angle
}

func (c *orbitControls) Keys() Keys {
	return c.keys
}

func (c *orbitControls) SetKeys(keys Keys) {
	c.keys = keys
}

func (c *orbitControls) MouseButtons() MouseButtons {
	return c.mouseButtons
}

func (c *orbitControls) SetMouseButtons(buttons MouseButtons) {
	c.mouseButtons = buttons
}

func (c *orbitControls) Touches() Touches {
	return c.touches
}

func (c *orbitControls) SetTouches(touches Touches) {
	c.touches = touches
}
