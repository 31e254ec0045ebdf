package common

// Physical key codes carried by keyboard surface events.
// Values follow the DOM KeyboardEvent.code naming so bindings read the same
// regardless of which platform surface produced the event.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"

	KeyW = "KeyW"
	KeyA = "KeyA"
	KeyS = "KeyS"
	KeyD = "KeyD"
	KeyR = "KeyR"

	KeySpace  = "Space"
	KeyEscape = "Escape"
)
