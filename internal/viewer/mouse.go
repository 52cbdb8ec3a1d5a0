package viewer

// MouseTracker turns cursor positions into per-event offsets.
type MouseTracker struct {
	last *[2]float64
}

// Delta returns the motion since the previous position. The first call only
// records the position and returns zero, so the camera does not jump to
// wherever the cursor entered the window. Y is reversed because window
// coordinates grow downward.
func (m *MouseTracker) Delta(x, y float64) (dx, dy float32) {
	if m.last == nil {
		m.last = &[2]float64{x, y}
		return 0, 0
	}
	dx = float32(x - m.last[0])
	dy = float32(m.last[1] - y)
	m.last[0], m.last[1] = x, y
	return dx, dy
}

// Reset forgets the last position; the next Delta returns zero.
func (m *MouseTracker) Reset() {
	m.last = nil
}
