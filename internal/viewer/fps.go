package viewer

import "time"

// fpsCounter averages the frame rate over fixed windows.
type fpsCounter struct {
	window  time.Duration
	frames  int
	elapsed time.Duration
}

func newFPSCounter(window time.Duration) *fpsCounter {
	return &fpsCounter{window: window}
}

// Tick records one frame. Once a full window has elapsed it returns the
// average rate over that window and starts the next one.
func (f *fpsCounter) Tick(dt time.Duration) (fps float64, ok bool) {
	f.frames++
	f.elapsed += dt
	if f.elapsed < f.window {
		return 0, false
	}
	fps = float64(f.frames) / f.elapsed.Seconds()
	f.frames = 0
	f.elapsed = 0
	return fps, true
}
