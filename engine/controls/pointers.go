package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/go-gl/mathgl/mgl64"
)

// pointerSet tracks the active pointers in the order they went down together with
// their last known positions. The first two ids drive two-finger gestures.
type pointerSet struct {
	ids       []int
	positions map[int]mgl64.Vec2
}

func newPointerSet() pointerSet {
	return pointerSet{positions: make(map[int]mgl64.Vec2)}
}

func (p *pointerSet) add(e *surface.Event) {
	if _, ok := p.positions[e.PointerID]; ok {
		p.positions[e.PointerID] = pointerPosition(e)
		return
	}
	p.ids = append(p.ids, e.PointerID)
	p.positions[e.PointerID] = pointerPosition(e)
}

func (p *pointerSet) remove(id int) bool {
	if _, ok := p.positions[id]; !ok {
		return false
	}
	delete(p.positions, id)
	for i, v := range p.ids {
		if v == id {
			p.ids = append(p.ids[:i:i], p.ids[i+1:]...)
			break
		}
	}
	return true
}

// track records the latest position of a pointer already in the set.
func (p *pointerSet) track(e *surface.Event) {
	if _, ok := p.positions[e.PointerID]; !ok {
		return
	}
	p.positions[e.PointerID] = pointerPosition(e)
}

func (p *pointerSet) len() int {
	return len(p.ids)
}

func (p *pointerSet) reset() {
	p.ids = p.ids[:0]
	clear(p.positions)
}

// center returns the first pointer's position, or the midpoint of the first two.
func (p *pointerSet) center() mgl64.Vec2 {
	switch len(p.ids) {
	case 0:
		return mgl64.Vec2{}
	case 1:
		return p.positions[p.ids[0]]
	default:
		a, b := p.positions[p.ids[0]], p.positions[p.ids[1]]
		return a.Add(b).Mul(0.5)
	}
}

// spread returns the distance between the first two pointers.
func (p *pointerSet) spread() float64 {
	if len(p.ids) < 2 {
		return 0
	}
	return p.positions[p.ids[0]].Sub(p.positions[p.ids[1]]).Len()
}

// pointerPosition reads page coordinates for touch and client coordinates otherwise.
func pointerPosition(e *surface.Event) mgl64.Vec2 {
	if e.PointerType == surface.PointerTouch {
		return mgl64.Vec2{e.PageX, e.PageY}
	}
	return mgl64.Vec2{e.ClientX, e.ClientY}
}
