package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPressedEdge(t *testing.T) {
	var s State

	s.SetKey(KeyCapture, true)
	if !s.Pressed(KeyCapture) || !s.Held(KeyCapture) {
		t.Fatal("first press should be pressed and held")
	}

	s.BeginFrame()
	s.SetKey(KeyCapture, true) // key repeat
	if s.Pressed(KeyCapture) {
		t.Error("repeat should not raise the pressed edge")
	}
	if !s.Held(KeyCapture) {
		t.Error("key should still be held")
	}

	s.BeginFrame()
	s.SetKey(KeyCapture, false)
	if s.Held(KeyCapture) || s.Pressed(KeyCapture) {
		t.Error("released key should be neither held nor pressed")
	}
}

func TestHeldPersistsAcrossFrames(t *testing.T) {
	var s State
	s.SetKey(KeyForward, true)
	s.SetKey(KeyLeft, true)
	s.BeginFrame()
	s.BeginFrame()

	if !s.Held(KeyForward) || !s.Held(KeyLeft) {
		t.Error("held keys should survive BeginFrame")
	}
	if s.Held(KeyBackward) {
		t.Error("untouched key reported held")
	}
}

func TestQuitKey(t *testing.T) {
	var s State
	s.SetKey(KeyQuit, true)
	if !s.Quit {
		t.Error("escape should request quit")
	}
}

func TestOutOfRangeKey(t *testing.T) {
	var s State
	s.SetKey(Key(99), true)
	s.SetKey(Key(-1), true)
	if s.Held(Key(99)) || s.Pressed(Key(-1)) {
		t.Error("out of range keys should be ignored")
	}
	if Key(99).String() != "unknown" {
		t.Errorf("String() = %q", Key(99).String())
	}
}

func TestCursorAndResize(t *testing.T) {
	var s State
	s.MoveCursor(100, 50)
	s.MoveCursorBy(-3, 4)
	if s.CursorX != 97 || s.CursorY != 54 || !s.CursorMoved {
		t.Errorf("cursor = (%v,%v) moved=%v", s.CursorX, s.CursorY, s.CursorMoved)
	}

	s.Resize(800, 600)
	if !s.Resized || s.Width != 800 || s.Height != 600 {
		t.Errorf("resize = %v %dx%d", s.Resized, s.Width, s.Height)
	}

	s.BeginFrame()
	if s.CursorMoved || s.Resized {
		t.Error("BeginFrame should clear motion and resize edges")
	}
	if s.CursorX != 97 {
		t.Error("BeginFrame should keep the cursor position")
	}
}

func TestKeyMaps(t *testing.T) {
	tests := []struct {
		sdl  sdl.Scancode
		glfw glfw.Key
		want Key
	}{
		{sdl.SCANCODE_W, glfw.KeyW, KeyForward},
		{sdl.SCANCODE_S, glfw.KeyS, KeyBackward},
		{sdl.SCANCODE_A, glfw.KeyA, KeyLeft},
		{sdl.SCANCODE_D, glfw.KeyD, KeyRight},
		{sdl.SCANCODE_F, glfw.KeyF, KeyCapture},
		{sdl.SCANCODE_F12, glfw.KeyF12, KeyScreenshot},
		{sdl.SCANCODE_ESCAPE, glfw.KeyEscape, KeyQuit},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if k, ok := SDLKey(tt.sdl); !ok || k != tt.want {
				t.Errorf("SDLKey = %v, %v", k, ok)
			}
			if k, ok := GLFWKey(tt.glfw); !ok || k != tt.want {
				t.Errorf("GLFWKey = %v, %v", k, ok)
			}
		})
	}

	if _, ok := SDLKey(sdl.SCANCODE_Q); ok {
		t.Error("Q should be unmapped")
	}
}

func TestHandleGLFWKey(t *testing.T) {
	var s State
	HandleGLFWKey(&s, glfw.KeyW, glfw.Press)
	if !s.Held(KeyForward) || !s.Pressed(KeyForward) {
		t.Error("press not recorded")
	}
	s.BeginFrame()
	HandleGLFWKey(&s, glfw.KeyW, glfw.Repeat)
	if s.Pressed(KeyForward) {
		t.Error("repeat raised pressed edge")
	}
	HandleGLFWKey(&s, glfw.KeyW, glfw.Release)
	if s.Held(KeyForward) {
		t.Error("release not recorded")
	}
}
