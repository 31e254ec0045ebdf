package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// String returns a human-readable name for the present mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return "unknown"
	}
}

// ClearColor is the RGBA color the frame is cleared to before the grid is drawn.
type ClearColor struct {
	R, G, B, A float64
}

// GridSettings describes the reference grid drawn on the y = 0 plane.
type GridSettings struct {
	// HalfExtent is the number of grid cells from the origin to the edge.
	HalfExtent int

	// Spacing is the world-space distance between adjacent lines.
	Spacing float32
}

// VertexCount returns the number of line-list vertices needed to draw the grid.
//
// Returns:
//   - uint32: two vertices per line, 2*HalfExtent+1 lines along each axis
func (g GridSettings) VertexCount() uint32 {
	if g.HalfExtent <= 0 {
		return 0
	}
	linesPerAxis := uint32(2*g.HalfExtent + 1)
	return linesPerAxis * 2 * 2
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
