package renderer

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithClearColor sets the background color of every frame.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(c ClearColor) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = c
	}
}

// WithGrid sets the size of the reference grid. A half extent of 0 disables the grid.
//
// Parameters:
//   - halfExtent: number of cells from the origin to the edge
//   - spacing: world-space distance between lines (values <= 0 keep the default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the grid option to a renderer
func WithGrid(halfExtent int, spacing float32) RendererBuilderOption {
	return func(r *renderer) {
		if halfExtent < 0 {
			halfExtent = 0
		}
		r.grid.HalfExtent = halfExtent
		if spacing > 0 {
			r.grid.Spacing = spacing
		}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
