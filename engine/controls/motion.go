package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

func (c *orbitControls) RotateLeft(angle float64) {
	c.sphericalDelta.Theta -= angle
}

func (c *orbitControls) RotateUp(angle float64) {
	c.sphericalDelta.Phi -= angle
}

// Pan converts a pixel delta into a world-space offset at the target's depth and
// queues it. Perspective cameras scale by the visible height at the target distance,
// orthographic cameras by the zoomed view rectangle.
func (c *orbitControls) Pan(deltaX, deltaY float64) {
	rect := c.surface.BoundingRect()
	kind, persp, ortho := c.projection()

	switch kind {
	case camera.ProjectionPerspective:
		if rect.Height <= 0 {
			return
		}
		targetDistance := c.camera.Position().Sub(c.target).Len()
		// half of the visible height at the target's depth
		targetDistance *= math.Tan(mgl64.DegToRad(persp.Fov() / 2))

		c.panLeft(2 * deltaX * targetDistance / rect.Height)
		c.panUp(2 * deltaY * targetDistance / rect.Height)
	case camera.ProjectionOrthographic:
		if rect.Width <= 0 || rect.Height <= 0 {
			return
		}
		left, right, top, bottom := ortho.Frustum()
		zoom := ortho.Zoom()

		c.panLeft(deltaX * (right - left) / zoom / rect.Width)
		c.panUp(deltaY * (top - bottom) / zoom / rect.Height)
	case camera.ProjectionUnknown:
		c.disablePan()
	}
}

// panLeft moves the target along the camera's local -X by distance.
func (c *orbitControls) panLeft(distance float64) {
	x := c.camera.Orientation().Rotate(mgl64.Vec3{1, 0, 0})
	c.panOffset = c.panOffset.Add(x.Mul(-distance))
}

// panUp moves the target along the camera's local +Y, or along the horizontal
// forward direction when panning is not in screen space.
func (c *orbitControls) panUp(distance float64) {
	orientation := c.camera.Orientation()

	var v mgl64.Vec3
	if c.screenSpacePanning {
		v = orientation.Rotate(mgl64.Vec3{0, 1, 0})
	} else {
		v = c.camera.Up().Cross(orientation.Rotate(mgl64.Vec3{1, 0, 0}))
	}
	c.panOffset = c.panOffset.Add(v.Mul(distance))
}

func (c *orbitControls) DollyOut(scale float64) {
	kind, _, ortho := c.projection()

	switch kind {
	case camera.ProjectionPerspective:
		c.scale /= scale
	case camera.ProjectionOrthographic:
		ortho.SetZoom(c.limits.ClampZoom(ortho.Zoom() * scale))
		ortho.UpdateProjectionMatrix()
		c.zoomChanged = true
	case camera.ProjectionUnknown:
		c.disableZoom()
	}
}

func (c *orbitControls) DollyIn(scale float64) {
	kind, _, ortho := c.projection()

	switch kind {
	case camera.ProjectionPerspective:
		c.scale *= scale
	case camera.ProjectionOrthographic:
		ortho.SetZoom(c.limits.ClampZoom(ortho.Zoom() / scale))
		ortho.UpdateProjectionMatrix()
		c.zoomChanged = true
	case camera.ProjectionUnknown:
		c.disableZoom()
	}
}
