package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	clearColor           ClearColor
	grid                 GridSettings
}

// Renderer presents the orbit viewer: it clears the window surface, draws a reference
// grid on the ground plane through the current camera and presents the frame.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when the window framebuffer changes size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode sets the present mode used from the next Resize on.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c ClearColor)

	// WriteCamera uploads the camera uniform used by the next RenderFrame.
	//
	// Parameters:
	//   - uniform: the camera's GPU uniform
	WriteCamera(uniform camera.GPUCameraUniform)

	// RenderFrame clears, draws the grid and presents one frame.
	//
	// Returns:
	//   - error: error if the frame could not be acquired or submitted
	RenderFrame() error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a WebGPU renderer bound to the window's surface.
// Applies default values first, then each option in order.
//
// Parameters:
//   - w: the window providing the surface descriptor and initial framebuffer size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the created renderer
//   - error: error if the GPU device, surface or pipeline cannot be created
func NewRenderer(w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := newRendererConfig(options...)

	switch r.backendType {
	case BackendTypeWGPU:
		backend, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize wgpu backend: %w", err)
		}
		r.backend = backend
	default:
		return nil, fmt.Errorf("unsupported renderer backend %d", r.backendType)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	if err := r.backend.CreateGridPipeline(r.grid); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to create grid pipeline: %w", err)
	}
	r.backend.ConfigureSurface(w.Width(), w.Height())

	return r, nil
}

// newRendererConfig applies options over the defaults without touching the GPU.
func newRendererConfig(options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: BackendTypeWGPU,
		presentMode: PresentModeVSync,
		clearColor:  ClearColor{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		grid:        GridSettings{HalfExtent: 10, Spacing: 1},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	r.presentMode = mode
	r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(c ClearColor) {
	r.mu.Lock()
	r.clearColor = c
	r.mu.Unlock()
	r.backend.SetClearColor(c)
}

func (r *renderer) WriteCamera(uniform camera.GPUCameraUniform) {
	r.backend.WriteCamera(uniform.Marshal())
}

func (r *renderer) RenderFrame() error {
	if err := r.backend.RenderFrame(); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
