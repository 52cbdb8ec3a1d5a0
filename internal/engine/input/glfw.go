package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var glfwKeys = map[glfw.Key]Key{
	glfw.KeyW:      KeyForward,
	glfw.KeyS:      KeyBackward,
	glfw.KeyA:      KeyLeft,
	glfw.KeyD:      KeyRight,
	glfw.KeyF:      KeyCapture,
	glfw.KeyF12:    KeyScreenshot,
	glfw.KeyEscape: KeyQuit,
}

// GLFWKey maps a GLFW key to a viewer key.
func GLFWKey(key glfw.Key) (Key, bool) {
	k, ok := glfwKeys[key]
	return k, ok
}

// HandleGLFWKey applies a GLFW key callback to s. Repeats are ignored.
func HandleGLFWKey(s *State, key glfw.Key, action glfw.Action) {
	k, ok := GLFWKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		s.SetKey(k, true)
	case glfw.Release:
		s.SetKey(k, false)
	}
}
