// Package surface defines the interaction surface that input controllers attach to.
//
// A surface delivers DOM-style pointer, wheel and keyboard events to registered
// listeners, answers bounding-rectangle queries and grants pointer capture.
// Registration returns a ListenerHandle, and that exact handle is what removes the
// listener again; listeners are never matched by function identity.
package surface

// EventType identifies the kind of event a listener is registered for.
type EventType int

const (
	EventContextMenu EventType = iota
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventPointerCancel
	EventWheel
	EventKeyDown
)

// String returns the DOM event name for the type.
func (t EventType) String() string {
	switch t {
	case EventContextMenu:
		return "contextmenu"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	case EventPointerCancel:
		return "pointercancel"
	case EventWheel:
		return "wheel"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// PointerType describes the device that produced a pointer event.
type PointerType string

const (
	PointerMouse PointerType = "mouse"
	PointerTouch PointerType = "touch"
	PointerPen   PointerType = "pen"
)

// Mouse button indices as reported in Event.Button.
const (
	ButtonLeft   = 0
	ButtonMiddle = 1
	ButtonRight  = 2
)

// Event carries the fields of a pointer, wheel or keyboard event.
// Fields that do not apply to the event type are left at their zero value.
type Event struct {
	Type EventType

	ClientX, ClientY float64
	PageX, PageY     float64

	PointerID   int
	PointerType PointerType
	Button      int

	DeltaY float64

	CtrlKey  bool
	MetaKey  bool
	ShiftKey bool

	// Code is the physical key code, see common.Key* constants.
	Code string

	defaultPrevented bool
}

// PreventDefault marks the event as handled so the surface skips its default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Listener receives dispatched events.
type Listener func(e *Event)

// ListenerHandle identifies one listener registration. The zero handle is never issued.
type ListenerHandle uint64

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// EventSource accepts listener registrations.
type EventSource interface {
	// AddEventListener registers l for events of type t.
	//
	// Parameters:
	//   - t: the event type to listen for
	//   - l: the listener to invoke
	//
	// Returns:
	//   - ListenerHandle: the handle that removes this registration
	AddEventListener(t EventType, l Listener) ListenerHandle

	// RemoveEventListener removes the registration identified by h.
	//
	// Parameters:
	//   - h: a handle previously returned by AddEventListener
	//
	// Returns:
	//   - bool: true if a registration was removed
	RemoveEventListener(h ListenerHandle) bool
}

// Surface is the element input controllers attach to.
type Surface interface {
	EventSource

	// BoundingRect returns the surface's on-screen rectangle.
	//
	// Returns:
	//   - Rect: position and size in pixels
	BoundingRect() Rect

	// SetPointerCapture routes all further events of the pointer to this surface.
	//
	// Parameters:
	//   - pointerID: the pointer to capture
	SetPointerCapture(pointerID int)

	// ReleasePointerCapture ends a capture started by SetPointerCapture.
	//
	// Parameters:
	//   - pointerID: the pointer to release
	ReleasePointerCapture(pointerID int)
}
