package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl64"
)

// ProjectionKind discriminates the projection model a camera uses.
type ProjectionKind int

const (
	// ProjectionUnknown marks a camera that is neither perspective nor orthographic.
	// Controllers degrade gracefully on such cameras instead of failing.
	ProjectionUnknown ProjectionKind = iota
	ProjectionPerspective
	ProjectionOrthographic
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	case ProjectionUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// Camera defines the capability set shared by every projection model.
// A camera is owned by the application; controllers only move and orient it.
type Camera interface {
	// Kind returns the projection discriminant.
	//
	// Returns:
	//   - ProjectionKind: the camera's projection model
	Kind() ProjectionKind

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position
	Position() mgl64.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - p: new world-space position
	SetPosition(p mgl64.Vec3)

	// Up returns the camera's reference up vector.
	//
	// Returns:
	//   - mgl64.Vec3: the up vector
	Up() mgl64.Vec3

	// SetUp replaces the reference up vector used by LookAt.
	//
	// Parameters:
	//   - up: new up vector
	SetUp(up mgl64.Vec3)

	// Orientation returns the camera's rotation as a unit quaternion.
	// The camera looks down its local -Z axis.
	//
	// Returns:
	//   - mgl64.Quat: the orientation
	Orientation() mgl64.Quat

	// LookAt rotates the camera so it faces target.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target mgl64.Vec3)

	// Near returns the near clipping plane distance.
	Near() float64

	// Far returns the far clipping plane distance.
	Far() float64

	// UpdateProjectionMatrix rebuilds the projection matrix from the current projection fields.
	// Must be called after any projection field changes.
	UpdateProjectionMatrix()

	// ViewMatrix returns the world-to-camera matrix for the current position and orientation.
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix (column-major)
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the last matrix built by UpdateProjectionMatrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl64.Mat4: the combined matrix (column-major)
	ViewProjectionMatrix() mgl64.Mat4

	// Uniform packs the camera state for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform
}

// PerspectiveCamera is a Camera with a vertical field of view.
type PerspectiveCamera interface {
	Camera

	// Fov returns the vertical field of view in degrees.
	Fov() float64

	// SetFov sets the vertical field of view in degrees. Call UpdateProjectionMatrix afterwards.
	SetFov(fov float64)

	// Aspect returns the viewport aspect ratio (width / height).
	Aspect() float64

	// SetAspect sets the viewport aspect ratio. Call UpdateProjectionMatrix afterwards.
	SetAspect(aspect float64)
}

// OrthographicCamera is a Camera with a zoom factor over a fixed view rectangle.
type OrthographicCamera interface {
	Camera

	// Zoom returns the zoom factor; 1 shows the frustum rectangle unscaled.
	Zoom() float64

	// SetZoom sets the zoom factor. Call UpdateProjectionMatrix afterwards.
	SetZoom(zoom float64)

	// Frustum returns the view rectangle at zoom 1.
	//
	// Returns:
	//   - left, right, top, bottom: rectangle edges in view units
	Frustum() (left, right, top, bottom float64)

	// SetFrustum replaces the view rectangle. Call UpdateProjectionMatrix afterwards.
	SetFrustum(left, right, top, bottom float64)
}

// cameraImpl holds the state common to both projection models.
// The projection-specific types embed it and decide which fields they expose.
type cameraImpl struct {
	mu *sync.Mutex

	kind ProjectionKind

	position    mgl64.Vec3
	up          mgl64.Vec3
	orientation mgl64.Quat

	// perspective
	fov    float64 // degrees
	aspect float64

	// orthographic
	zoom                     float64
	left, right, top, bottom float64

	near float64
	far  float64

	projectionMatrix mgl64.Mat4
}

type perspectiveCamera struct {
	*cameraImpl
}

type orthographicCamera struct {
	*cameraImpl
}

var (
	_ PerspectiveCamera  = &perspectiveCamera{}
	_ OrthographicCamera = &orthographicCamera{}
)

func newCameraImpl(kind ProjectionKind, options []CameraBuilderOption) *cameraImpl {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		kind:        kind,
		up:          common.WorldUp,
		orientation: mgl64.QuatIdent(),
		fov:         50,
		aspect:      1,
		zoom:        1,
		left:        -1,
		right:       1,
		top:         1,
		bottom:      -1,
		near:        0.1,
		far:         2000,
	}
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	return c
}

// NewPerspectiveCamera creates a perspective camera at the origin looking down -Z.
// Defaults: 50° vertical fov, aspect 1, near 0.1, far 2000.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveCamera(options ...CameraBuilderOption) PerspectiveCamera {
	return &perspectiveCamera{cameraImpl: newCameraImpl(ProjectionPerspective, options)}
}

// NewOrthographicCamera creates an orthographic camera at the origin looking down -Z.
// Defaults: rectangle [-1, 1] x [-1, 1], zoom 1, near 0.1, far 2000.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) OrthographicCamera {
	return &orthographicCamera{cameraImpl: newCameraImpl(ProjectionOrthographic, options)}
}

func (c *cameraImpl) Kind() ProjectionKind {
	return c.kind
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) Orientation() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) LookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orientation = common.LookRotation(c.position, target, c.up)
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) UpdateProjectionMatrix() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view()
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix.Mul4(c.view())
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	zoom := 1.0
	if c.kind == ProjectionOrthographic {
		zoom = c.zoom
	}
	return GPUCameraUniform{
		ViewProj:       common.Mat4ToFloat32(c.projectionMatrix.Mul4(c.view())),
		CameraPosition: common.Vec3ToFloat32(c.position),
		Zoom:           float32(zoom),
	}
}

// view inverts the camera's world transform. Caller must hold the mutex.
func (c *cameraImpl) view() mgl64.Mat4 {
	p := c.position
	return c.orientation.Inverse().Mat4().Mul4(mgl64.Translate3D(-p[0], -p[1], -p[2]))
}

// updateProjection rebuilds the projection matrix for the camera's kind.
// Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	switch c.kind {
	case ProjectionPerspective:
		c.projectionMatrix = mgl64.Perspective(mgl64.DegToRad(c.fov), c.aspect, c.near, c.far)
	case ProjectionOrthographic:
		dx := (c.right - c.left) / (2 * c.zoom)
		dy := (c.top - c.bottom) / (2 * c.zoom)
		cx := (c.right + c.left) / 2
		cy := (c.top + c.bottom) / 2
		c.projectionMatrix = mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
	case ProjectionUnknown:
		c.projectionMatrix = mgl64.Ident4()
	}
}

// --- PerspectiveCamera ---

func (c *perspectiveCamera) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *perspectiveCamera) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *perspectiveCamera) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *perspectiveCamera) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if aspect <= 0 || math.IsNaN(aspect) {
		return
	}
	c.aspect = aspect
}

// --- OrthographicCamera ---

func (c *orthographicCamera) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *orthographicCamera) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *orthographicCamera) Frustum() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *orthographicCamera) SetFrustum(left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
}
