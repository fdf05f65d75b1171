package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
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
}

// SurfaceSource provides the presentation surface and its framebuffer size. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// Renderer is the render collaborator of the arcball viewer.
// Each frame it uploads the camera's view uniform to a GPU buffer, clears the surface,
// draws the current line list through the view and projection matrices, and presents it.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size. Zero sizes (minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// SetLines replaces the line list drawn every frame. Pass nil to draw nothing.
	//
	// Parameters:
	//   - lines: vertex pairs, each pair one segment in world space
	//
	// Returns:
	//   - error: an error if the list has an odd vertex count or the upload failed
	SetLines(lines []model.LineVertex) error

	// Render uploads the view uniform and renders and presents one frame.
	//
	// Parameters:
	//   - uniform: the camera matrices for this frame
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	Render(uniform camera.GPUViewUniform) error

	// SetClearColor changes the color the frame is cleared to.
	//
	// Parameters:
	//   - color: the RGBA clear color
	SetClearColor(color ClearColor)

	// UniformBuffer returns the GPU buffer holding the latest view uniform.
	//
	// Returns:
	//   - *wgpu.Buffer: the uniform buffer
	UniformBuffer() *wgpu.Buffer

	// Close releases the GPU resources held by the renderer.
	Close()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given surface using the selected backend.
// The surface is configured to its current framebuffer size.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the surface source, usually the viewer's window
//   - options: functional options applied before the backend is created
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: an error if the backend could not be initialized
func NewRenderer(backendType RendererBackendType, w SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := newRenderer(backendType, options...)

	switch backendType {
	case BackendTypeWGPU:
		b, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, r.presentMode)
		if err != nil {
			return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
		}
		r.backend = b
	default:
		return nil, fmt.Errorf("unsupported renderer backend type: %d", backendType)
	}

	if err := r.attach(w.Width(), w.Height()); err != nil {
		return nil, err
	}
	return r, nil
}

func newRenderer(backendType RendererBackendType, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		clearColor:  ClearColor{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// attach applies the collected config to r.backend and configures the initial surface.
// The backend is released on failure.
func (r *renderer) attach(width, height int) error {
	r.backend.SetClearColor(r.clearColor)
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		r.backend.Release()
		return fmt.Errorf("failed to configure surface: %w", err)
	}
	return nil
}

func (r *renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width <= 0 || height <= 0 {
		return nil
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("failed to reconfigure surface to %dx%d: %w", width, height, err)
	}
	return nil
}

func (r *renderer) SetLines(lines []model.LineVertex) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(lines)%2 != 0 {
		return fmt.Errorf("line list has odd vertex count %d", len(lines))
	}
	if err := r.backend.SetLineVertices(model.MarshalLines(lines), len(lines)); err != nil {
		return fmt.Errorf("failed to upload line vertices: %w", err)
	}
	return nil
}

func (r *renderer) Render(uniform camera.GPUViewUniform) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.WriteUniform(uniform.Marshal())
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.DrawLines()
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) SetClearColor(color ClearColor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = color
	r.backend.SetClearColor(color)
}

func (r *renderer) UniformBuffer() *wgpu.Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.backend.UniformBuffer()
}

func (r *renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
