package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
)

func record(w *engineWindow, types ...surface.EventType) *[]surface.Event {
	var got []surface.Event
	for _, t := range types {
		w.AddEventListener(t, func(e *surface.Event) { got = append(got, *e) })
	}
	return &got
}

func TestMouseButtonTranslation(t *testing.T) {
	w := newEngineWindow(WithSize(640, 480))
	got := record(w, surface.EventPointerDown, surface.EventPointerUp, surface.EventContextMenu)

	w.dispatchCursor(12, 34, modifiers{})
	w.dispatchMouseButton(surface.ButtonRight, true, modifiers{shift: true})
	w.dispatchMouseButton(surface.ButtonRight, false, modifiers{})

	if len(*got) != 3 {
		t.Fatalf("expected down, contextmenu and up, got %d events", len(*got))
	}
	down := (*got)[0]
	if down.Type != surface.EventPointerDown || down.Button != surface.ButtonRight || !down.ShiftKey {
		t.Errorf("unexpected pointerdown %+v", down)
	}
	if down.ClientX != 12 || down.ClientY != 34 || down.PointerType != surface.PointerMouse || down.PointerID != mousePointerID {
		t.Errorf("unexpected pointer fields %+v", down)
	}
	if (*got)[1].Type != surface.EventContextMenu || (*got)[2].Type != surface.EventPointerUp {
		t.Errorf("unexpected event order %v, %v", (*got)[1].Type, (*got)[2].Type)
	}
}

func TestScrollTranslation(t *testing.T) {
	w := newEngineWindow()
	got := record(w, surface.EventWheel)

	w.dispatchScroll(1, modifiers{})
	w.dispatchScroll(-0.5, modifiers{})

	if len(*got) != 2 {
		t.Fatalf("expected 2 wheel events, got %d", len(*got))
	}
	if (*got)[0].DeltaY != -100 || (*got)[1].DeltaY != 50 {
		t.Errorf("expected deltas -100 and 50, got %v and %v", (*got)[0].DeltaY, (*got)[1].DeltaY)
	}
}

func TestKeyTranslation(t *testing.T) {
	w := newEngineWindow()
	got := record(w, surface.EventKeyDown)

	w.dispatchKey(common.KeyArrowLeft, modifiers{ctrl: true})
	w.dispatchKey("", modifiers{})

	if len(*got) != 1 {
		t.Fatalf("expected 1 key event, got %d", len(*got))
	}
	if (*got)[0].Code != common.KeyArrowLeft || !(*got)[0].CtrlKey {
		t.Errorf("unexpected key event %+v", (*got)[0])
	}
}

func TestResizeUpdatesSurfaceAndFramebuffer(t *testing.T) {
	w := newEngineWindow(WithSize(800, 600))
	if r := w.BoundingRect(); r.Width != 800 || r.Height != 600 {
		t.Fatalf("expected initial rect 800x600, got %vx%v", r.Width, r.Height)
	}

	var resized [2]int
	w.SetResizeCallback(func(width, height int) { resized = [2]int{width, height} })

	w.resizeWindow(1024, 768)
	w.resizeFramebuffer(2048, 1536)

	if r := w.BoundingRect(); r.Width != 1024 || r.Height != 768 {
		t.Errorf("expected rect 1024x768, got %vx%v", r.Width, r.Height)
	}
	if w.Width() != 2048 || w.Height() != 1536 || resized != [2]int{2048, 1536} {
		t.Errorf("expected framebuffer 2048x1536, got %dx%d (callback %v)", w.Width(), w.Height(), resized)
	}
}

func TestHeadlessWindowIsNotRunning(t *testing.T) {
	w := newEngineWindow()
	if w.IsRunning() {
		t.Error("expected window without a platform window to report not running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("expected no surface descriptor")
	}
	if err := w.Close(); err == nil {
		t.Error("expected close to fail on an uninitialized window")
	}
}
