package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/internal/logger"
)

// glfwWindow wraps a GLFW window. GLFW reports input through callbacks, so
// Poll points them at the caller's State for the duration of PollEvents.
type glfwWindow struct {
	config Config
	w      *glfw.Window
	target *input.State
}

func newGLFW(cfg Config) (Window, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	gw := &glfwWindow{config: cfg, w: win}

	win.SetCloseCallback(func(*glfw.Window) {
		if gw.target != nil {
			gw.target.Quit = true
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if gw.target != nil {
			gw.target.Resize(w, h)
		}
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if gw.target != nil {
			gw.target.MoveCursor(x, y)
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if gw.target != nil {
			input.HandleGLFWKey(gw.target, key, action)
		}
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return gw, nil
}

func (g *glfwWindow) Poll(s *input.State) {
	s.BeginFrame()
	g.target = s
	glfw.PollEvents()
	g.target = nil
	if g.w.ShouldClose() {
		s.Quit = true
	}
}

func (g *glfwWindow) SwapBuffers() {
	g.w.SwapBuffers()
}

func (g *glfwWindow) Size() (int, int) {
	return g.w.GetFramebufferSize()
}

func (g *glfwWindow) SetTitle(title string) {
	g.w.SetTitle(title)
}

func (g *glfwWindow) Close() {
	logger.Info("closing window")
	g.w.Destroy()
	glfw.Terminate()
}
