package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/surface"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// glfwKeyCodes maps the GLFW keys the engine reacts to onto DOM key codes.
var glfwKeyCodes = map[glfw.Key]string{
	glfw.KeyUp:     common.KeyArrowUp,
	glfw.KeyDown:   common.KeyArrowDown,
	glfw.KeyLeft:   common.KeyArrowLeft,
	glfw.KeyRight:  common.KeyArrowRight,
	glfw.KeyW:      common.KeyW,
	glfw.KeyA:      common.KeyA,
	glfw.KeyS:      common.KeyS,
	glfw.KeyD:      common.KeyD,
	glfw.KeyR:      common.KeyR,
	glfw.KeySpace:  common.KeySpace,
	glfw.KeyEscape: common.KeyEscape,
}

// glfwButton maps GLFW's right=1, middle=2 numbering onto DOM button indices.
func glfwButton(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return surface.ButtonLeft
	case glfw.MouseButtonMiddle:
		return surface.ButtonMiddle
	case glfw.MouseButtonRight:
		return surface.ButtonRight
	default:
		return int(button)
	}
}

func glfwModifiers(mods glfw.ModifierKey) modifiers {
	return modifiers{
		ctrl:  mods&glfw.ModControl != 0,
		meta:  mods&glfw.ModSuper != 0,
		shift: mods&glfw.ModShift != 0,
	}
}

// sampleModifiers reads the modifier state for callbacks that do not report it.
func sampleModifiers(win *glfw.Window) modifiers {
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if win.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	return modifiers{
		ctrl:  pressed(glfw.KeyLeftControl, glfw.KeyRightControl),
		meta:  pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper),
		shift: pressed(glfw.KeyLeftShift, glfw.KeyRightShift),
	}
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.dispatchKey(glfwKeyCodes[key], glfwModifiers(mods))
		case glfw.Release:
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.dispatchScroll(yoff, sampleModifiers(win))
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.cursorX, w.cursorY = win.GetCursorPos()
		switch action {
		case glfw.Press:
			w.dispatchMouseButton(glfwButton(button), true, glfwModifiers(mods))
		case glfw.Release:
			w.dispatchMouseButton(glfwButton(button), false, glfwModifiers(mods))
		case glfw.Repeat:
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.dispatchCursor(xpos, ypos, sampleModifiers(win))
	})

	// Cursor positions are in window coordinates, so the surface rectangle follows the
	// window size while the renderer follows the framebuffer size, which differs on high-DPI displays.
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resizeWindow(width, height)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resizeFramebuffer(width, height)
	})

	w.resizeWindow(win.GetSize())
	w.width, w.height = win.GetFramebufferSize()

	return nil
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return fmt.Errorf("window is not initialized")
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
