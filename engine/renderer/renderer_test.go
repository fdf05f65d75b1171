package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeBackend records the calls made by the renderer.
type fakeBackend struct {
	calls []string

	configureErr error
	beginErr     error
	linesErr     error

	configured [2]int
	clearColor ClearColor
	uniform    []byte
	lineData   []byte
	lineCount  int
	released   bool
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) ConfigureSurface(width, height int) error {
	f.calls = append(f.calls, "configure")
	if f.configureErr != nil {
		return f.configureErr
	}
	f.configured = [2]int{width, height}
	return nil
}
func (f *fakeBackend) SetPresentMode(PresentMode)     {}
func (f *fakeBackend) SetClearColor(color ClearColor) { f.clearColor = color }
func (f *fakeBackend) UniformBuffer() *wgpu.Buffer    { return nil }
func (f *fakeBackend) Release()                       { f.released = true }
func (f *fakeBackend) WriteUniform(data []byte) {
	f.calls = append(f.calls, "uniform")
	f.uniform = data
}
func (f *fakeBackend) SetLineVertices(data []byte, count int) error {
	if f.linesErr != nil {
		return f.linesErr
	}
	f.lineData, f.lineCount = data, count
	return nil
}
func (f *fakeBackend) BeginFrame() error {
	f.calls = append(f.calls, "begin")
	return f.beginErr
}
func (f *fakeBackend) DrawLines() { f.calls = append(f.calls, "draw") }
func (f *fakeBackend) EndFrame()  { f.calls = append(f.calls, "end") }
func (f *fakeBackend) Present()   { f.calls = append(f.calls, "present") }

func newTestRenderer(t *testing.T, b *fakeBackend, options ...RendererBuilderOption) *renderer {
	t.Helper()
	r := newRenderer(BackendTypeWGPU, options...)
	r.backend = b
	if err := r.attach(800, 600); err != nil {
		t.Fatalf("attach() error = %v", err)
	}
	b.calls = nil
	return r
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// ============================================================================
// Construction
// ============================================================================

func TestAttach_AppliesConfig(t *testing.T) {
	b := &fakeBackend{}
	color := ClearColor{R: 0.2, G: 0.3, B: 0.4, A: 1}
	newTestRenderer(t, b, WithClearColor(color))

	if b.clearColor != color {
		t.Errorf("clear color = %v, want %v", b.clearColor, color)
	}
	if b.configured != [2]int{800, 600} {
		t.Errorf("configured = %v, want [800 600]", b.configured)
	}
}

func TestAttach_ReleasesOnConfigureError(t *testing.T) {
	b := &fakeBackend{configureErr: errors.New("no formats")}
	r := newRenderer(BackendTypeWGPU)
	r.backend = b
	if err := r.attach(800, 600); err == nil {
		t.Fatal("attach() error = nil, want error")
	}
	if !b.released {
		t.Error("backend not released after failed configure")
	}
}

// ============================================================================
// Resize
// ============================================================================

func TestResize_ReturnsConfigureError(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)

	cause := errors.New("surface lost")
	b.configureErr = cause
	err := r.Resize(1024, 768)
	if !errors.Is(err, cause) {
		t.Errorf("Resize() error = %v, want wrapping %v", err, cause)
	}
}

func TestResize_Reconfigures(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)
	if err := r.Resize(1024, 768); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if b.configured != [2]int{1024, 768} {
		t.Errorf("configured = %v, want [1024 768]", b.configured)
	}
}

func TestResize_IgnoresZeroSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 600}, {800, 0}, {0, 0}, {-1, 5}} {
		b := &fakeBackend{}
		r := newTestRenderer(t, b)
		b.configureErr = errors.New("should not be called")
		if err := r.Resize(dims[0], dims[1]); err != nil {
			t.Errorf("Resize(%d, %d) error = %v, want nil", dims[0], dims[1], err)
		}
		if len(b.calls) != 0 {
			t.Errorf("Resize(%d, %d) reached the backend: %v", dims[0], dims[1], b.calls)
		}
	}
}

// ============================================================================
// Render
// ============================================================================

func TestRender_UploadsUniformThenDraws(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)

	cam, err := camera.NewArcballCamera(mgl32.Vec3{}, 800, 600)
	if err != nil {
		t.Fatalf("NewArcballCamera() error = %v", err)
	}
	uniform := cam.Uniform()
	if err := r.Render(uniform); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if want := []string{"uniform", "begin", "draw", "end", "present"}; !equalCalls(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
	if len(b.uniform) != uniform.Size() {
		t.Errorf("uniform upload = %d bytes, want %d", len(b.uniform), uniform.Size())
	}
}

func TestRender_SkipsFrameWhenAcquireFails(t *testing.T) {
	cause := errors.New("surface outdated")
	b := &fakeBackend{beginErr: cause}
	r := newTestRenderer(t, b)

	var uniform camera.GPUViewUniform
	if err := r.Render(uniform); !errors.Is(err, cause) {
		t.Fatalf("Render() error = %v, want %v", err, cause)
	}
	if want := []string{"uniform", "begin"}; !equalCalls(b.calls, want) {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
}

// ============================================================================
// SetLines
// ============================================================================

func TestSetLines_UploadsMarshaledVertices(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)

	lines := model.SphereWireframe(mgl32.Vec3{}, 1, 4, 6, mgl32.Vec3{1, 1, 1})
	if err := r.SetLines(lines); err != nil {
		t.Fatalf("SetLines() error = %v", err)
	}
	if b.lineCount != len(lines) {
		t.Errorf("count = %d, want %d", b.lineCount, len(lines))
	}
	if len(b.lineData) != len(lines)*model.LineVertexStride {
		t.Errorf("data = %d bytes, want %d", len(b.lineData), len(lines)*model.LineVertexStride)
	}
}

func TestSetLines_RejectsOddCount(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(t, b)
	if err := r.SetLines(make([]model.LineVertex, 3)); err == nil {
		t.Error("SetLines() with 3 vertices error = nil, want error")
	}
	if b.lineData != nil {
		t.Error("odd line list reached the backend")
	}
}

func TestSetLines_WrapsUploadError(t *testing.T) {
	cause := errors.New("out of memory")
	b := &fakeBackend{linesErr: cause}
	r := newTestRenderer(t, b)
	if err := r.SetLines(make([]model.LineVertex, 2)); !errors.Is(err, cause) {
		t.Errorf("SetLines() error = %v, want wrapping %v", err, cause)
	}
}
