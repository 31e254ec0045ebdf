package renderer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestRendererDefaults(t *testing.T) {
	r := newRendererConfig()
	if r.presentMode != PresentModeVSync {
		t.Errorf("expected vsync by default, got %v", r.presentMode)
	}
	if r.clearColor.A != 1 {
		t.Errorf("expected an opaque clear color, got %+v", r.clearColor)
	}
	if r.grid.HalfExtent != 10 || r.grid.Spacing != 1 {
		t.Errorf("unexpected default grid %+v", r.grid)
	}
}

func TestRendererOptions(t *testing.T) {
	r := newRendererConfig(
		WithPresentMode(PresentModeUncapped),
		WithClearColor(ClearColor{R: 1, A: 1}),
		WithGrid(-3, -1),
		WithForceSoftwareRenderer(true),
	)
	if r.presentMode != PresentModeUncapped || r.clearColor.R != 1 || !r.forceFallbackAdapter {
		t.Errorf("options not applied: %+v", r)
	}
	if r.grid.HalfExtent != 0 || r.grid.Spacing != 1 {
		t.Errorf("expected grid disabled with default spacing, got %+v", r.grid)
	}
}

func TestGridVertexCount(t *testing.T) {
	tests := []struct {
		halfExtent int
		want       uint32
	}{
		{0, 0},
		{1, 12},
		{10, 84},
	}
	for _, tt := range tests {
		if got := (GridSettings{HalfExtent: tt.halfExtent, Spacing: 1}).VertexCount(); got != tt.want {
			t.Errorf("half extent %d: expected %d vertices, got %d", tt.halfExtent, tt.want, got)
		}
	}
}

func TestMarshalGrid(t *testing.T) {
	buf := marshalGrid(GridSettings{HalfExtent: 5, Spacing: 0.5})
	if len(buf) != gridUniformSize {
		t.Fatalf("expected %d bytes, got %d", gridUniformSize, len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != 5 {
		t.Errorf("expected half extent 5, got %v", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); got != 0.5 {
		t.Errorf("expected spacing 0.5, got %v", got)
	}
}

func TestPresentModeMapping(t *testing.T) {
	if toWGPUPresentMode(PresentModeVSync) != wgpu.PresentModeFifo {
		t.Error("expected vsync to map to FIFO")
	}
	if toWGPUPresentMode(PresentModeUncapped) != wgpu.PresentModeImmediate {
		t.Error("expected uncapped to map to immediate")
	}
	if PresentModeUncapped.String() != "uncapped" || PresentMode(9).String() != "unknown" {
		t.Error("unexpected present mode names")
	}
}
