// Package input tracks keyboard, cursor and window events for a frame.
package input

// Key is a viewer action bound to a physical key.
type Key int

const (
	KeyForward  Key = iota // W
	KeyBackward            // S
	KeyLeft                // A
	KeyRight               // D
	KeyCapture             // F: latch the spot light direction
	KeyScreenshot          // F12
	KeyQuit                // Escape
	keyCount
)

var keyNames = [keyCount]string{"forward", "backward", "left", "right", "capture", "screenshot", "quit"}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// State is the input seen by one frame. Held keys and the cursor position
// persist across frames; edge flags are cleared by BeginFrame.
type State struct {
	held    [keyCount]bool
	pressed [keyCount]bool

	// CursorX and CursorY are the cursor position in window pixels, y down.
	// With a captured cursor they keep accumulating past the window edges.
	CursorX, CursorY float64
	CursorMoved      bool

	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// BeginFrame clears per-frame edges before polling.
func (s *State) BeginFrame() {
	s.pressed = [keyCount]bool{}
	s.CursorMoved = false
	s.Resized = false
}

// SetKey records a key transition. A press while already held is a repeat
// and does not raise the pressed edge.
func (s *State) SetKey(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	if down && !s.held[k] {
		s.pressed[k] = true
	}
	s.held[k] = down
	if k == KeyQuit && down {
		s.Quit = true
	}
}

// Held reports whether k is down.
func (s *State) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// Pressed reports whether k went down since BeginFrame.
func (s *State) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// MoveCursor sets an absolute cursor position.
func (s *State) MoveCursor(x, y float64) {
	s.CursorX, s.CursorY = x, y
	s.CursorMoved = true
}

// MoveCursorBy adds a relative motion to the cursor position.
func (s *State) MoveCursorBy(dx, dy float64) {
	s.MoveCursor(s.CursorX+dx, s.CursorY+dy)
}

// Resize records a new framebuffer size.
func (s *State) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Resized = true
}
