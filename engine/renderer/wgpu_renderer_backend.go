package renderer

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/grid.wgsl
var gridShaderSource string

// gridUniformSize is the byte size of the GridUniform struct in grid.wgsl.
const gridUniformSize = 16

// wgpuRendererBackendImpl is the WebGPU implementation of the renderer backend.
// Owns the device, the configured surface and the single grid pipeline.
type wgpuRendererBackendImpl struct {
	mu *sync.Mutex

	instance      *wgpu.Instance
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surface       *wgpu.Surface
	surfaceFormat wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	configured    bool

	cameraBuffer    *wgpu.Buffer
	gridBuffer      *wgpu.Buffer
	bindGroupLayout *wgpu.BindGroupLayout
	bindGroup       *wgpu.BindGroup
	pipelineLayout  *wgpu.PipelineLayout
	pipeline        *wgpu.RenderPipeline
	gridVertexCount uint32

	clearValue wgpu.Color
}

// wgpuRendererBackend defines the WebGPU operations the renderer drives each frame.
type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given framebuffer size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode applied on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the frame is cleared to.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c ClearColor)

	// CreateGridPipeline compiles the grid shader and allocates the camera and grid uniforms.
	//
	// Parameters:
	//   - grid: the grid dimensions
	//
	// Returns:
	//   - error: error if any GPU object cannot be created
	CreateGridPipeline(grid GridSettings) error

	// WriteCamera uploads a serialized camera uniform.
	//
	// Parameters:
	//   - data: the GPUCameraUniform bytes
	WriteCamera(data []byte)

	// RenderFrame clears the surface, draws the grid and presents.
	//
	// Returns:
	//   - error: error if the surface texture cannot be acquired or the commands cannot be encoded
	RenderFrame() error

	// Release frees every GPU object held by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) (*wgpuRendererBackendImpl, error) {
	runtime.LockOSThread()

	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("window has no surface descriptor")
	}

	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		w.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	w.device = d
	w.queue = d.GetQueue()

	capabilities := w.surface.GetCapabilities(w.adapter)
	if len(capabilities.Formats) == 0 {
		w.Release()
		return nil, fmt.Errorf("surface reports no supported formats")
	}
	w.surfaceFormat = capabilities.Formats[0]

	return w, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A minimized window reports a zero framebuffer, which is not a valid swapchain size.
	if width <= 0 || height <= 0 {
		b.configured = false
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
	b.configured = true
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presentMode = toWGPUPresentMode(mode)
}

func (b *wgpuRendererBackendImpl) SetClearColor(c ClearColor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearValue = wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (b *wgpuRendererBackendImpl) CreateGridPipeline(grid GridSettings) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Grid Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: camera.GPUCameraUniformSource + "\n" + gridShaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to compile grid shader: %w", err)
	}
	defer module.Release()

	cameraSize := uint64((&camera.GPUCameraUniform{}).Size())
	b.bindGroupLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Grid Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: gridUniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create grid bind group layout: %w", err)
	}

	b.cameraBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  cameraSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create camera buffer: %w", err)
	}

	b.gridBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Grid Uniform Buffer",
		Size:  gridUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create grid buffer: %w", err)
	}
	b.queue.WriteBuffer(b.gridBuffer, 0, marshalGrid(grid))
	b.gridVertexCount = grid.VertexCount()

	b.bindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Grid Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.cameraBuffer, Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: b.gridBuffer, Offset: 0, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create grid bind group: %w", err)
	}

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Grid Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create grid pipeline layout: %w", err)
	}

	b.pipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Grid Render Pipeline",
		Layout: b.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyLineList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create grid render pipeline: %w", err)
	}

	return nil
}

func (b *wgpuRendererBackendImpl) WriteCamera(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cameraBuffer == nil {
		return
	}
	b.queue.WriteBuffer(b.cameraBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) RenderFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.configured {
		return nil
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearValue,
			},
		},
	})
	if b.pipeline != nil && b.gridVertexCount > 0 {
		pass.SetPipeline(b.pipeline)
		pass.SetBindGroup(0, b.bindGroup, nil)
		pass.Draw(b.gridVertexCount, 1, 0, 0)
	}
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}
	if b.pipelineLayout != nil {
		b.pipelineLayout.Release()
		b.pipelineLayout = nil
	}
	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	if b.cameraBuffer != nil {
		b.cameraBuffer.Release()
		b.cameraBuffer = nil
	}
	if b.gridBuffer != nil {
		b.gridBuffer.Release()
		b.gridBuffer = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
	b.configured = false
}

// toWGPUPresentMode maps the engine present mode onto the WebGPU enum.
func toWGPUPresentMode(mode PresentMode) wgpu.PresentMode {
	switch mode {
	case PresentModeUncapped:
		return wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		return wgpu.PresentModeFifo
	}
}

// marshalGrid serializes GridSettings into the GridUniform layout.
func marshalGrid(grid GridSettings) []byte {
	buf := make([]byte, gridUniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(grid.HalfExtent)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(grid.Spacing))
	return buf
}
