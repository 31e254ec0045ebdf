package controls

import (
	"testing"
)

func TestEventChannelOrderAndUnsubscribe(t *testing.T) {
	ch := &eventChannel{}
	var got []string

	first := ch.subscribe(EventStart, func(Event) { got = append(got, "first") })
	ch.subscribe(EventStart, func(Event) { got = append(got, "second") })
	ch.subscribe(EventEnd, func(Event) { got = append(got, "end") })

	ch.emit(Event{Kind: EventStart})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected [first second], got %v", got)
	}

	if !ch.unsubscribe(first) {
		t.Error("expected unsubscribe to succeed")
	}
	if ch.unsubscribe(first) {
		t.Error("expected second unsubscribe to report false")
	}

	got = nil
	ch.emit(Event{Kind: EventStart})
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("expected [second], got %v", got)
	}
}

func TestEventChannelSkipsHandlerRemovedDuringEmit(t *testing.T) {
	ch := &eventChannel{}
	var second Subscription
	calls := 0

	ch.subscribe(EventChange, func(Event) { ch.unsubscribe(second) })
	second = ch.subscribe(EventChange, func(Event) { calls++ })

	ch.emit(Event{Kind: EventChange})
	if calls != 0 {
		t.Errorf("expected removed handler to be skipped, got %d calls", calls)
	}
}

func TestControllerUnsubscribe(t *testing.T) {
	c, _, _ := newPerspectiveControls(t)
	calls := 0
	s := c.Subscribe(EventChange, func(Event) { calls++ })

	c.RotateLeft(0.5)
	c.Update()
	c.Unsubscribe(s)
	c.RotateLeft(0.5)
	c.Update()

	if calls != 1 {
		t.Errorf("expected 1 change notification, got %d", calls)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{StateTouchDollyRotate.String(), "touch-dolly-rotate"},
		{StateIdle.String(), "idle"},
		{InteractionState(99).String(), "unknown"},
		{MouseActionPan.String(), "pan"},
		{TouchActionDollyPan.String(), "dolly-pan"},
		{EventChange.String(), "change"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, tt.got)
		}
	}
}
