package surface

import (
	"sync"
)

// registration is one listener bound to an event type.
type registration struct {
	handle   ListenerHandle
	listener Listener
}

// EventTarget is an in-memory Surface: a listener registry with dispatch,
// pointer-capture bookkeeping and a fixed bounding rectangle.
// Platform windows embed it and feed it translated native events.
type EventTarget struct {
	mu *sync.Mutex

	nextHandle ListenerHandle
	listeners  map[EventType][]registration
	byHandle   map[ListenerHandle]EventType

	rect     Rect
	captured map[int]struct{}
}

var _ Surface = &EventTarget{}

// NewEventTarget creates an EventTarget with an 800x600 bounding rectangle.
//
// Parameters:
//   - options: functional options to configure the target
//
// Returns:
//   - *EventTarget: the newly created target
func NewEventTarget(options ...EventTargetOption) *EventTarget {
	t := &EventTarget{
		mu:        &sync.Mutex{},
		listeners: make(map[EventType][]registration),
		byHandle:  make(map[ListenerHandle]EventType),
		rect:      Rect{Width: 800, Height: 600},
		captured:  make(map[int]struct{}),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *EventTarget) AddEventListener(eventType EventType, l Listener) ListenerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextHandle++
	h := t.nextHandle
	t.listeners[eventType] = append(t.listeners[eventType], registration{handle: h, listener: l})
	t.byHandle[h] = eventType
	return h
}

func (t *EventTarget) RemoveEventListener(h ListenerHandle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	eventType, ok := t.byHandle[h]
	if !ok {
		return false
	}
	delete(t.byHandle, h)
	regs := t.listeners[eventType]
	for i, r := range regs {
		if r.handle == h {
			t.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	return true
}

// Dispatch delivers e to every listener registered for e.Type, in registration order.
// Listeners removed by an earlier listener during the same dispatch are skipped;
// listeners added during dispatch first see the next event.
//
// Parameters:
//   - e: the event to deliver
//
// Returns:
//   - bool: false if any listener called PreventDefault
func (t *EventTarget) Dispatch(e *Event) bool {
	t.mu.Lock()
	regs := append([]registration(nil), t.listeners[e.Type]...)
	t.mu.Unlock()

	for _, r := range regs {
		if !t.registered(r.handle) {
			continue
		}
		r.listener(e)
	}
	return !e.DefaultPrevented()
}

func (t *EventTarget) registered(h ListenerHandle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.byHandle[h]
	return ok
}

// ListenerCount returns the number of listeners registered for an event type.
func (t *EventTarget) ListenerCount(eventType EventType) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[eventType])
}

// TotalListeners returns the number of live registrations across all event types.
func (t *EventTarget) TotalListeners() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byHandle)
}

func (t *EventTarget) BoundingRect() Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rect
}

// SetBoundingRect replaces the rectangle returned by BoundingRect.
func (t *EventTarget) SetBoundingRect(r Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rect = r
}

func (t *EventTarget) SetPointerCapture(pointerID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.captured[pointerID] = struct{}{}
}

func (t *EventTarget) ReleasePointerCapture(pointerID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.captured, pointerID)
}

// HasPointerCapture reports whether the pointer is currently captured.
func (t *EventTarget) HasPointerCapture(pointerID int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.captured[pointerID]
	return ok
}

// CapturedPointers returns how many pointers are currently captured.
func (t *EventTarget) CapturedPointers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.captured)
}
