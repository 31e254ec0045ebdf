package controls

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// InteractionState is the gesture the controller is currently tracking.
// Exactly one state is active per controller.
type InteractionState int

const (
	StateIdle InteractionState = iota
	StateRotate
	StateDolly
	StatePan
	StateTouchRotate
	StateTouchPan
	StateTouchDollyPan
	StateTouchDollyRotate
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRotate:
		return "rotate"
	case StateDolly:
		return "dolly"
	case StatePan:
		return "pan"
	case StateTouchRotate:
		return "touch-rotate"
	case StateTouchPan:
		return "touch-pan"
	case StateTouchDollyPan:
		return "touch-dolly-pan"
	case StateTouchDollyRotate:
		return "touch-dolly-rotate"
	default:
		return "unknown"
	}
}

// MouseAction is the gesture a mouse button starts.
// MouseActionNone leaves the button unmapped.
type MouseAction int

const (
	MouseActionNone MouseAction = iota
	MouseActionRotate
	MouseActionDolly
	MouseActionPan
)

func (a MouseAction) String() string {
	switch a {
	case MouseActionNone:
		return "none"
	case MouseActionRotate:
		return "rotate"
	case MouseActionDolly:
		return "dolly"
	case MouseActionPan:
		return "pan"
	default:
		return "unknown"
	}
}

// TouchAction is the gesture a one or two finger touch starts.
type TouchAction int

const (
	TouchActionNone TouchAction = iota
	TouchActionRotate
	TouchActionPan
	TouchActionDollyPan
	TouchActionDollyRotate
)

func (a TouchAction) String() string {
	switch a {
	case TouchActionNone:
		return "none"
	case TouchActionRotate:
		return "rotate"
	case TouchActionPan:
		return "pan"
	case TouchActionDollyPan:
		return "dolly-pan"
	case TouchActionDollyRotate:
		return "dolly-rotate"
	default:
		return "unknown"
	}
}

// MouseButtons maps each mouse button to the gesture it starts.
type MouseButtons struct {
	Left   MouseAction
	Middle MouseAction
	Right  MouseAction
}

// DefaultMouseButtons returns left rotate, middle dolly, right pan.
func DefaultMouseButtons() MouseButtons {
	return MouseButtons{
		Left:   MouseActionRotate,
		Middle: MouseActionDolly,
		Right:  MouseActionPan,
	}
}

// Touches maps the touch pointer count to the gesture it starts.
// One accepts rotate or pan; Two accepts dolly-pan or dolly-rotate.
type Touches struct {
	One TouchAction
	Two TouchAction
}

// DefaultTouches returns one finger rotate, two finger dolly-pan.
func DefaultTouches() Touches {
	return Touches{
		One: TouchActionRotate,
		Two: TouchActionDollyPan,
	}
}

// Keys holds the key codes that nudge the target when key listening is attached.
type Keys struct {
	Up    string
	Down  string
	Left  string
	Right string
}

// DefaultKeys returns the arrow keys.
func DefaultKeys() Keys {
	return Keys{
		Up:    common.KeyArrowUp,
		Down:  common.KeyArrowDown,
		Left:  common.KeyArrowLeft,
		Right: common.KeyArrowRight,
	}
}
