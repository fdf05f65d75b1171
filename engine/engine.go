package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-arcball/common"
	"github.com/Carmen-Shannon/oxy-arcball/engine/camera"
	"github.com/Carmen-Shannon/oxy-arcball/engine/profiler"
	"github.com/Carmen-Shannon/oxy-arcball/engine/renderer"
	"github.com/Carmen-Shannon/oxy-arcball/engine/window"
)

// engine implements the Engine interface.
// Input arrives on the window thread and is forwarded to the camera controller;
// a render goroutine uploads the camera's view uniform and presents a frame each iteration.
type engine struct {
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	controller camera.CameraController
	renderer   renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the arcball viewer: it owns the window, the camera controller, and the renderer
// and runs the window event loop and the render loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Controller returns the camera controller receiving window input.
	//
	// Returns:
	//   - camera.CameraController: the controller instance
	Controller() camera.CameraController

	// Renderer returns the renderer presenting frames.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderCallback registers the function called after each presented frame.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the render loop and processes window events until the window closes.
	// Releases the renderer and closes the window before returning.
	Run()

	// Quit signals the render goroutine to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine from the provided options.
// A window, a camera controller, and a renderer are required. The window's input callbacks are
// wired to the controller, and the controller starts inside the viewport if the cursor is
// already over the window.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: an error if a required collaborator is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	switch {
	case e.window == nil:
		return nil, fmt.Errorf("engine requires a window")
	case e.controller == nil:
		return nil, fmt.Errorf("engine requires a camera controller")
	case e.renderer == nil:
		return nil, fmt.Errorf("engine requires a renderer")
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithStats(e.cameraStats))
	}

	e.bindInput()
	e.controller.HandleCursorEnter(e.window.Hovered())

	return e, nil
}

// bindInput routes window callbacks to the camera controller and renderer.
func (e *engine) bindInput() {
	c := e.controller
	e.window.SetMouseMoveCallback(c.HandleMouseMove)
	e.window.SetMouseButtonCallback(c.HandleMouseButton)
	e.window.SetScrollCallback(c.HandleScroll)
	e.window.SetCursorEnterCallback(c.HandleCursorEnter)
	e.window.SetKeyDownCallback(c.HandleKeyDown)
	e.window.SetResizeCallback(func(width, height int) {
		// minimized windows report a 0x0 framebuffer
		if width <= 0 || height <= 0 {
			return
		}
		if err := c.HandleResize(width, height); err != nil {
			log.Printf("[Viewer] resize to %dx%d rejected: %v", width, height, err)
			return
		}
		if err := e.renderer.Resize(width, height); err != nil {
			log.Printf("[Viewer] %v", err)
		}
	})
}

// cameraStats summarizes the camera for the profiler log line.
func (e *engine) cameraStats() string {
	cam := e.controller.Camera()
	w, h := cam.Viewport()
	return fmt.Sprintf("Zoom: %.3f | Viewport: %dx%d", cam.Scaling().At(0, 0), w, h)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	e.window.ProcessMessages()

	e.signalQuit()
	e.wg.Wait()
	e.renderer.Close()
	if err := e.window.Close(); err != nil {
		log.Printf("[Viewer] failed to close window: %v", err)
	}
}

// Quit signals the render goroutine to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the render goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleRender()
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Each iteration snapshots the camera uniform, renders, and presents.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Viewer] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	cam := e.controller.Camera()
	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			// A failed acquire is usually a surface mid-reconfigure; the next frame retries.
			if err := e.renderer.Render(cam.Uniform()); err != nil {
				log.Printf("[Viewer] frame skipped: %v", err)
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = common.FrameInterval(fps)
}
