package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeys = map[sdl.Scancode]Key{
	sdl.SCANCODE_W:      KeyForward,
	sdl.SCANCODE_S:      KeyBackward,
	sdl.SCANCODE_A:      KeyLeft,
	sdl.SCANCODE_D:      KeyRight,
	sdl.SCANCODE_F:      KeyCapture,
	sdl.SCANCODE_F12:    KeyScreenshot,
	sdl.SCANCODE_ESCAPE: KeyQuit,
}

// SDLKey maps a scancode to a viewer key.
func SDLKey(code sdl.Scancode) (Key, bool) {
	k, ok := sdlKeys[code]
	return k, ok
}

// PollSDL drains the SDL event queue into s. The mouse is expected in
// relative mode, so motion is accumulated from XRel/YRel.
func PollSDL(s *State) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resize(int(e.Data1), int(e.Data2))
			}

		case *sdl.KeyboardEvent:
			k, ok := SDLKey(e.Keysym.Scancode)
			if !ok {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				s.SetKey(k, true)
			} else if e.Type == sdl.KEYUP {
				s.SetKey(k, false)
			}

		case *sdl.MouseMotionEvent:
			s.MoveCursorBy(float64(e.XRel), float64(e.YRel))
		}
	}
}
