package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	clearColor    wgpu.Color

	// view uniform consumed by the line pipeline at group 0, binding 0
	uniformBuffer *wgpu.Buffer

	// Line pipeline, created on the first ConfigureSurface once the surface format is known
	lineShader         *wgpu.ShaderModule
	lineBindLayout     *wgpu.BindGroupLayout
	linePipelineLayout *wgpu.PipelineLayout
	linePipeline       *wgpu.RenderPipeline
	lineBindGroup      *wgpu.BindGroup
	lineVertexBuffer   *wgpu.Buffer
	lineVertexCap      uint64
	lineVertexCount    int

	// Frame state held between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain surface for the given framebuffer size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	//
	// Returns:
	//   - error: an error if the surface reports no supported formats
	ConfigureSurface(width, height int) error

	// SetPresentMode changes the present mode used on the next ConfigureSurface call.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor changes the color the color attachment is cleared to.
	//
	// Parameters:
	//   - color: the RGBA clear color
	SetClearColor(color ClearColor)

	// WriteUniform uploads the marshaled view uniform to the uniform buffer.
	//
	// Parameters:
	//   - data: the uniform bytes, camera.GPUViewUniform.Marshal output
	WriteUniform(data []byte)

	// UniformBuffer returns the GPU buffer holding the view uniform.
	//
	// Returns:
	//   - *wgpu.Buffer: the uniform buffer
	UniformBuffer() *wgpu.Buffer

	// SetLineVertices replaces the line list drawn each frame.
	// The vertex buffer is reused while the data fits and reallocated when it grows.
	//
	// Parameters:
	//   - data: model.MarshalLines output
	//   - count: the number of vertices in data
	//
	// Returns:
	//   - error: an error if the vertex buffer could not be created
	SetLineVertices(data []byte, count int) error

	// BeginFrame acquires the next surface texture and opens a clearing render pass.
	//
	// Returns:
	//   - error: an error if the surface texture, view, or encoder could not be created
	BeginFrame() error

	// DrawLines records the line list into the open render pass. No-op without a frame, pipeline, or vertices.
	DrawLines()

	// EndFrame closes the render pass and submits the recorded commands.
	EndFrame()

	// Present presents the acquired surface texture and releases the frame resources.
	Present()

	// Release frees every GPU object owned by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, mode PresentMode) (wgpuRendererBackend, error) {
	runtime.LockOSThread()
	if surfaceDescriptor == nil {
		return nil, fmt.Errorf("window has no surface descriptor")
	}

	b := &wgpuRendererBackendImpl{
		mu:         &sync.Mutex{},
		instance:   wgpu.CreateInstance(nil),
		clearColor: wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	b.SetPresentMode(mode)
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Arcball Device",
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	var uniform camera.GPUViewUniform
	buf, err := d.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "View Uniform",
		Size:  uint64(uniform.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to create view uniform buffer: %w", err)
	}
	b.uniformBuffer = buf

	return b, nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		return fmt.Errorf("surface is not compatible with the adapter")
	}
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if b.linePipeline == nil {
		if err := b.createLinePipeline(); err != nil {
			return fmt.Errorf("failed to create line pipeline: %w", err)
		}
	}
	return nil
}

// createLinePipeline builds the line-list pipeline and binds the view uniform at group 0.
// Caller must hold b.mu.
func (b *wgpuRendererBackendImpl) createLinePipeline() error {
	shaderModule, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Line Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: model.LineShaderSource,
		},
	})
	if err != nil {
		return err
	}
	b.lineShader = shaderModule

	var uniform camera.GPUViewUniform
	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "View Uniform Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(uniform.Size()),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout for group 0: %w", err)
	}
	b.lineBindLayout = layout

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Line",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return err
	}
	b.linePipelineLayout = pipelineLayout

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Line Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: model.LineVertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: model.LineColorOffset, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
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
		return err
	}
	b.linePipeline = created

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "View Uniform Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  b.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return err
	}
	b.lineBindGroup = bindGroup

	return nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeVSync:
		b.presentMode = wgpu.PresentModeFifo
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(color ClearColor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clearColor = wgpu.Color{R: color.R, G: color.G, B: color.B, A: color.A}
}

func (b *wgpuRendererBackendImpl) WriteUniform(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.uniformBuffer == nil {
		return
	}
	b.queue.WriteBuffer(b.uniformBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) UniformBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uniformBuffer
}

func (b *wgpuRendererBackendImpl) SetLineVertices(data []byte, count int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if count == 0 || len(data) == 0 {
		b.lineVertexCount = 0
		return nil
	}

	if b.lineVertexBuffer == nil || b.lineVertexCap < uint64(len(data)) {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label:            "Line Vertex Buffer",
			Size:             uint64(len(data)),
			Usage:            wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			MappedAtCreation: false,
		})
		if err != nil {
			return err
		}
		if b.lineVertexBuffer != nil {
			b.lineVertexBuffer.Release()
		}
		b.lineVertexBuffer = buf
		b.lineVertexCap = uint64(len(data))
	}

	b.queue.WriteBuffer(b.lineVertexBuffer, 0, data)
	b.lineVertexCount = count
	return nil
}

func (b *wgpuRendererBackendImpl) DrawLines() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || b.linePipeline == nil || b.lineVertexCount == 0 {
		return
	}
	b.framePass.SetPipeline(b.linePipeline)
	b.framePass.SetBindGroup(0, b.lineBindGroup, nil)
	b.framePass.SetVertexBuffer(0, b.lineVertexBuffer, 0, wgpu.WholeSize)
	b.framePass.Draw(uint32(b.lineVertexCount), 1, 0, 0)
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// a surface image that was never presented blocks the next acquire
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Arcball Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: b.clearColor,
			},
		},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.lineBindGroup != nil {
		b.lineBindGroup.Release()
		b.lineBindGroup = nil
	}
	if b.linePipeline != nil {
		b.linePipeline.Release()
		b.linePipeline = nil
	}
	if b.linePipelineLayout != nil {
		b.linePipelineLayout.Release()
		b.linePipelineLayout = nil
	}
	if b.lineBindLayout != nil {
		b.lineBindLayout.Release()
		b.lineBindLayout = nil
	}
	if b.lineShader != nil {
		b.lineShader.Release()
		b.lineShader = nil
	}
	if b.lineVertexBuffer != nil {
		b.lineVertexBuffer.Release()
		b.lineVertexBuffer = nil
	}
	b.lineVertexCap = 0
	b.lineVertexCount = 0
	if b.uniformBuffer != nil {
		b.uniformBuffer.Release()
		b.uniformBuffer = nil
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
}
