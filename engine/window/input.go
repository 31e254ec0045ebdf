package window

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
)

// mousePointerID is the pointer id reported for the system mouse.
const mousePointerID = 1

// wheelLineHeight converts scroll offsets in lines into pixel deltas.
const wheelLineHeight = 100

// modifiers is the modifier key state sampled with an input event.
type modifiers struct {
	ctrl  bool
	meta  bool
	shift bool
}

// mouseEvent builds a mouse pointer event at the current cursor position.
func (w *engineWindow) mouseEvent(eventType surface.EventType, button int, mods modifiers) *surface.Event {
	return &surface.Event{
		Type:        eventType,
		ClientX:     w.cursorX,
		ClientY:     w.cursorY,
		PageX:       w.cursorX,
		PageY:       w.cursorY,
		PointerID:   mousePointerID,
		PointerType: surface.PointerMouse,
		Button:      button,
		CtrlKey:     mods.ctrl,
		MetaKey:     mods.meta,
		ShiftKey:    mods.shift,
	}
}

// dispatchMouseButton translates a button press or release. A right press is
// followed by a contextmenu event, as on X11 and macOS browsers.
func (w *engineWindow) dispatchMouseButton(button int, pressed bool, mods modifiers) {
	if !pressed {
		w.Dispatch(w.mouseEvent(surface.EventPointerUp, button, mods))
		return
	}
	w.Dispatch(w.mouseEvent(surface.EventPointerDown, button, mods))
	if button == surface.ButtonRight {
		w.Dispatch(w.mouseEvent(surface.EventContextMenu, button, mods))
	}
}

func (w *engineWindow) dispatchCursor(x, y float64, mods modifiers) {
	w.cursorX, w.cursorY = x, y
	w.Dispatch(w.mouseEvent(surface.EventPointerMove, -1, mods))
}

// dispatchScroll translates a vertical scroll offset, positive when scrolling up,
// into a wheel event whose DeltaY is positive when scrolling down.
func (w *engineWindow) dispatchScroll(yoff float64, mods modifiers) {
	e := w.mouseEvent(surface.EventWheel, -1, mods)
	e.DeltaY = -yoff * wheelLineHeight
	w.Dispatch(e)
}

func (w *engineWindow) dispatchKey(code string, mods modifiers) {
	if code == "" {
		return
	}
	w.Dispatch(&surface.Event{
		Type:     surface.EventKeyDown,
		Code:     code,
		CtrlKey:  mods.ctrl,
		MetaKey:  mods.meta,
		ShiftKey: mods.shift,
	})
}

// resizeWindow updates the bounding rectangle pointer coordinates are measured against.
func (w *engineWindow) resizeWindow(width, height int) {
	w.SetBoundingRect(surface.Rect{Width: float64(width), Height: float64(height)})
}
