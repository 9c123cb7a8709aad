package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/glsample/lib/config"
	"github.com/fosdem/glsample/lib/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSink owns the glfw window and its GL context. All methods must be
// called from the thread that created it.
type WindowSink struct {
	cfg    config.WindowCfg
	hidden bool
	Window *glfw.Window

	log *slog.Logger
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{cfg: *cfg, log: log.Module("window")}
}

// NewHidden makes a sink whose window is never shown, for offscreen use.
func NewHidden(cfg *config.WindowCfg) *WindowSink {
	w := New(cfg)
	w.hidden = true
	return w
}

// Start initialises glfw, creates the window and makes its context current.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	window, err := w.makeWindow()
	if err != nil {
		return err
	}
	w.Window = window
	return nil
}

func (w *WindowSink) makeWindow() (*glfw.Window, error) {
	w.log.Debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(w.cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!w.hidden))
	glfw.WindowHint(glfw.ContextVersionMajor, w.cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, w.cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	if w.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.log.Info(fmt.Sprintf("Window %q is %dx%d", w.cfg.Title, w.cfg.Width, w.cfg.Height))
	return window, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

// FramebufferSize is the size in pixels, which differs from the window size
// on high-DPI displays.
func (w *WindowSink) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

// OnResize registers a callback for framebuffer size changes.
func (w *WindowSink) OnResize(cb func(width, height int)) {
	w.Window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(width, height)
	})
}

// Stop destroys the window and shuts glfw down.
func (w *WindowSink) Stop() {
	if w.Window == nil {
		return
	}
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}
