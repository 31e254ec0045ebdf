package controls

import (
	"math"

	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/go-gl/mathgl/mgl64"
)

func (c *orbitControls) onContextMenu(e *surface.Event) {
	if !c.enabled {
		return
	}
	e.PreventDefault()
}

func (c *orbitControls) onPointerDown(e *surface.Event) {
	if !c.enabled {
		return
	}

	if c.pointers.len() == 0 {
		c.surface.SetPointerCapture(e.PointerID)
		c.capturedID = e.PointerID
		c.hasCapture = true

		c.moveHandle = c.surface.AddEventListener(surface.EventPointerMove, c.onPointerMove)
		c.upHandle = c.surface.AddEventListener(surface.EventPointerUp, c.onPointerUp)
	}

	c.pointers.add(e)

	if e.PointerType == surface.PointerTouch {
		c.onTouchStart()
	} else {
		c.onMouseDown(e)
	}
}

func (c *orbitControls) onPointerMove(e *surface.Event) {
	if !c.enabled {
		return
	}

	if e.PointerType == surface.PointerTouch {
		c.onTouchMove(e)
	} else {
		c.onMouseMove(e)
	}
}

// onPointerUp also handles pointercancel.
func (c *orbitControls) onPointerUp(e *surface.Event) {
	if !c.pointers.remove(e.PointerID) {
		return
	}

	if c.pointers.len() == 0 {
		c.releaseCapture()
		c.detachPointerListeners()
		c.endGesture()
		return
	}

	// the remaining fingers carry on with the gesture matching their count
	if e.PointerType == surface.PointerTouch {
		c.onTouchStart()
	}
}

func (c *orbitControls) releaseCapture() {
	if !c.hasCapture {
		return
	}
	c.surface.ReleasePointerCapture(c.capturedID)
	c.hasCapture = false
}

func (c *orbitControls) detachPointerListeners() {
	if c.moveHandle != 0 {
		c.surface.RemoveEventListener(c.moveHandle)
		c.moveHandle = 0
	}
	if c.upHandle != 0 {
		c.surface.RemoveEventListener(c.upHandle)
		c.upHandle = 0
	}
}

// --- mouse ---

func (c *orbitControls) onMouseDown(e *surface.Event) {
	var action MouseAction
	switch e.Button {
	case surface.ButtonLeft:
		action = c.mouseButtons.Left
	case surface.ButtonMiddle:
		action = c.mouseButtons.Middle
	case surface.ButtonRight:
		action = c.mouseButtons.Right
	default:
		action = MouseActionNone
	}

	modified := e.CtrlKey || e.MetaKey || e.ShiftKey
	position := mgl64.Vec2{e.ClientX, e.ClientY}

	switch action {
	case MouseActionDolly:
		if !c.enableZoom {
			return
		}
		c.dollyStart = position
		c.state = StateDolly
	case MouseActionRotate:
		if modified {
			if !c.enablePan {
				return
			}
			c.panStart = position
			c.state = StatePan
		} else {
			if !c.enableRotate {
				return
			}
			c.rotateStart = position
			c.state = StateRotate
		}
	case MouseActionPan:
		if modified {
			if !c.enableRotate {
				return
			}
			c.rotateStart = position
			c.state = StateRotate
		} else {
			if !c.enablePan {
				return
			}
			c.panStart = position
			c.state = StatePan
		}
	case MouseActionNone:
		c.state = StateIdle
	}

	if c.state != StateIdle {
		c.beginGesture()
	}
}

func (c *orbitControls) onMouseMove(e *surface.Event) {
	c.pointers.track(e)
	position := mgl64.Vec2{e.ClientX, e.ClientY}

	switch c.state {
	case StateRotate:
		if !c.enableRotate {
			return
		}
		c.rotateTo(position)
	case StateDolly:
		if !c.enableZoom {
			return
		}
		delta := position.Sub(c.dollyStart)
		if delta.Y() > 0 {
			c.DollyOut(c.zoomScale())
		} else if delta.Y() < 0 {
			c.DollyIn(c.zoomScale())
		}
		c.dollyStart = position
		c.update(false)
	case StatePan:
		if !c.enablePan {
			return
		}
		c.panTo(position)
	case StateIdle, StateTouchRotate, StateTouchPan, StateTouchDollyPan, StateTouchDollyRotate:
	}
}

func (c *orbitControls) onMouseWheel(e *surface.Event) {
	if !c.enabled || !c.enableZoom || c.state != StateIdle || c.gestureActive {
		return
	}

	e.PreventDefault()

	c.beginGesture()
	if e.DeltaY < 0 {
		c.DollyIn(c.zoomScale())
	} else if e.DeltaY > 0 {
		c.DollyOut(c.zoomScale())
	}
	c.update(false)
	c.endGesture()
}

func (c *orbitControls) onKeyDown(e *surface.Event) {
	if !c.enabled || !c.enablePan || e.Code == "" {
		return
	}

	handled := true
	switch e.Code {
	case c.keys.Up:
		c.Pan(0, c.keyPanSpeed)
	case c.keys.Down:
		c.Pan(0, -c.keyPanSpeed)
	case c.keys.Left:
		c.Pan(c.keyPanSpeed, 0)
	case c.keys.Right:
		c.Pan(-c.keyPanSpeed, 0)
	default:
		handled = false
	}

	if handled {
		e.PreventDefault()
		c.update(false)
	}
}

// --- touch ---

// onTouchStart selects the touch gesture for the current pointer count and seeds its
// start positions from the tracked pointers.
func (c *orbitControls) onTouchStart() {
	switch c.pointers.len() {
	case 1:
		switch c.touches.One {
		case TouchActionRotate:
			if !c.enableRotate {
				c.state = StateIdle
				return
			}
			c.rotateStart = c.pointers.center()
			c.state = StateTouchRotate
		case TouchActionPan:
			if !c.enablePan {
				c.state = StateIdle
				return
			}
			c.panStart = c.pointers.center()
			c.state = StateTouchPan
		case TouchActionNone, TouchActionDollyPan, TouchActionDollyRotate:
			c.state = StateIdle
		}
	case 2:
		switch c.touches.Two {
		case TouchActionDollyPan:
			if !c.enableZoom && !c.enablePan {
				c.state = StateIdle
				return
			}
			c.startTouchDolly()
			if c.enablePan {
				c.panStart = c.pointers.center()
			}
			c.state = StateTouchDollyPan
		case TouchActionDollyRotate:
			if !c.enableZoom && !c.enableRotate {
				c.state = StateIdle
				return
			}
			c.startTouchDolly()
			if c.enableRotate {
				c.rotateStart = c.pointers.center()
			}
			c.state = StateTouchDollyRotate
		case TouchActionNone, TouchActionRotate, TouchActionPan:
			c.state = StateIdle
		}
	default:
		c.state = StateIdle
	}

	if c.state != StateIdle {
		c.beginGesture()
	}
}

func (c *orbitControls) startTouchDolly() {
	if !c.enableZoom {
		return
	}
	c.dollyStart = mgl64.Vec2{0, c.pointers.spread()}
}

func (c *orbitControls) onTouchMove(e *surface.Event) {
	c.pointers.track(e)

	switch c.state {
	case StateTouchRotate:
		if !c.enableRotate {
			return
		}
		c.rotateTo(c.pointers.center())
	case StateTouchPan:
		if !c.enablePan {
			return
		}
		c.panTo(c.pointers.center())
	case StateTouchDollyPan:
		if c.enableZoom {
			c.touchDolly()
		}
		if c.enablePan {
			c.panTo(c.pointers.center())
		} else {
			c.update(false)
		}
	case StateTouchDollyRotate:
		if c.enableZoom {
			c.touchDolly()
		}
		if c.enableRotate {
			c.rotateTo(c.pointers.center())
		} else {
			c.update(false)
		}
	case StateIdle, StateRotate, StateDolly, StatePan:
		c.state = StateIdle
	}
}

// touchDolly scales by the change in finger spread since the last move.
func (c *orbitControls) touchDolly() {
	distance := c.pointers.spread()
	if c.dollyStart.Y() > 0 && distance > 0 {
		c.DollyOut(math.Pow(distance/c.dollyStart.Y(), c.zoomSpeed))
	}
	c.dollyStart = mgl64.Vec2{0, distance}
}

// --- shared gesture steps ---

// rotateTo turns the orbit by the pointer travel since rotateStart. A full surface
// height of travel is one full turn.
func (c *orbitControls) rotateTo(position mgl64.Vec2) {
	delta := position.Sub(c.rotateStart).Mul(c.rotateSpeed)
	c.rotateStart = position

	height := c.surface.BoundingRect().Height
	if height > 0 {
		c.RotateLeft(2 * math.Pi * delta.X() / height)
		c.RotateUp(2 * math.Pi * delta.Y() / height)
	}
	c.update(false)
}

// panTo pans by the pointer travel since panStart.
func (c *orbitControls) panTo(position mgl64.Vec2) {
	delta := position.Sub(c.panStart).Mul(c.panSpeed)
	c.panStart = position

	c.Pan(delta.X(), delta.Y())
	c.update(false)
}
