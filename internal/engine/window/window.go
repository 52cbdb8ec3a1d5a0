// Package window handles window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/roomview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Window is an OpenGL 4.1 core window with a captured cursor.
type Window interface {
	// Poll starts a new input frame in s and drains pending events into it.
	Poll(s *input.State)
	SwapBuffers()
	// Size returns the drawable size in pixels.
	Size() (int, int)
	SetTitle(title string)
	Close()
}

// New creates a window using the configured backend. An empty backend
// selects SDL.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
