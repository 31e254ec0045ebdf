package controls

// EventKind identifies a controller notification.
type EventKind int

const (
	// EventStart fires when a gesture begins.
	EventStart EventKind = iota
	// EventEnd fires when the last pointer of a gesture is released, or right after a wheel dolly.
	EventEnd
	// EventChange fires whenever Update moves or turns the camera, or changes its zoom.
	EventChange
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventChange:
		return "change"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers.
type Event struct {
	Kind EventKind

	// State is the interaction state at the time of the notification.
	State InteractionState
}

// Handler receives controller notifications on the goroutine that drives the controller.
type Handler func(e Event)

// Subscription identifies one handler registration. The zero value is never issued.
type Subscription uint64

type subscriber struct {
	id      Subscription
	kind    EventKind
	handler Handler
}

// eventChannel is a typed, per-controller notification registry.
type eventChannel struct {
	nextID      Subscription
	subscribers []subscriber
}

func (ch *eventChannel) subscribe(kind EventKind, h Handler) Subscription {
	ch.nextID++
	ch.subscribers = append(ch.subscribers, subscriber{id: ch.nextID, kind: kind, handler: h})
	return ch.nextID
}

func (ch *eventChannel) unsubscribe(id Subscription) bool {
	for i, s := range ch.subscribers {
		if s.id == id {
			ch.subscribers = append(ch.subscribers[:i:i], ch.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

func (ch *eventChannel) has(id Subscription) bool {
	for _, s := range ch.subscribers {
		if s.id == id {
			return true
		}
	}
	return false
}

// emit calls every handler subscribed to e.Kind in subscription order.
// Handlers removed by an earlier handler during the same emit are skipped.
func (ch *eventChannel) emit(e Event) {
	subs := append([]subscriber(nil), ch.subscribers...)
	for _, s := range subs {
		if s.kind != e.Kind || !ch.has(s.id) {
			continue
		}
		s.handler(e)
	}
}

func (ch *eventChannel) clear() {
	ch.subscribers = nil
}
