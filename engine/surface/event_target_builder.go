package surface

// EventTargetOption is a functional option for configuring an EventTarget.
type EventTargetOption func(t *EventTarget)

// WithBoundingRect sets the rectangle reported by BoundingRect.
//
// Parameters:
//   - r: the surface rectangle in pixels
//
// Returns:
//   - EventTargetOption: option function to apply
func WithBoundingRect(r Rect) EventTargetOption {
	return func(t *EventTarget) {
		t.rect = r
	}
}

// WithSize sets a bounding rectangle anchored at the origin.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - EventTargetOption: option function to apply
func WithSize(width, height float64) EventTargetOption {
	return func(t *EventTarget) {
		t.rect = Rect{Width: width, Height: height}
	}
}
