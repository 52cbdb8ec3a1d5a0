package viewer

import (
	"testing"
	"time"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/pkg/math"
)

func TestMouseTrackerFirstEventIsZero(t *testing.T) {
	var m MouseTracker

	if dx, dy := m.Delta(400, 300); dx != 0 || dy != 0 {
		t.Errorf("first delta = (%v,%v), want (0,0)", dx, dy)
	}

	// Right and up on screen: x grows, y shrinks.
	if dx, dy := m.Delta(410, 295); dx != 10 || dy != 5 {
		t.Errorf("delta = (%v,%v), want (10,5)", dx, dy)
	}

	m.Reset()
	if dx, dy := m.Delta(0, 0); dx != 0 || dy != 0 {
		t.Errorf("delta after reset = (%v,%v), want (0,0)", dx, dy)
	}
}

func TestControllerMovesHeldKeys(t *testing.T) {
	c := NewController(camera.NewDefault())
	var s input.State
	s.SetKey(input.KeyForward, true)

	c.Update(&s, 1)

	// Default camera looks down -Z at speed 2.5.
	want := math.Vec3{X: 0, Y: camera.DefaultEyeHeight, Z: 3 - camera.DefaultSpeed}
	if c.Camera.Position.Sub(want).Length() > 1e-5 {
		t.Errorf("position = %v, want %v", c.Camera.Position, want)
	}

	// Held across frames without a new press.
	s.BeginFrame()
	c.Update(&s, 1)
	want.Z -= camera.DefaultSpeed
	if c.Camera.Position.Sub(want).Length() > 1e-5 {
		t.Errorf("position after second frame = %v, want %v", c.Camera.Position, want)
	}
}

func TestControllerOpposingKeysCancel(t *testing.T) {
	c := NewController(camera.NewDefault())
	start := c.Camera.Position
	var s input.State
	s.SetKey(input.KeyLeft, true)
	s.SetKey(input.KeyRight, true)

	c.Update(&s, 0.5)
	if c.Camera.Position.Sub(start).Length() > 1e-5 {
		t.Errorf("left+right moved camera to %v", c.Camera.Position)
	}
}

func TestControllerMouseFirstEventDoesNotTurn(t *testing.T) {
	c := NewController(camera.NewDefault())
	var s input.State

	s.MoveCursor(500, 500)
	c.Update(&s, 0)
	if c.Camera.Yaw != camera.DefaultYaw || c.Camera.Pitch != 0 {
		t.Fatalf("first cursor event turned camera to yaw %v pitch %v", c.Camera.Yaw, c.Camera.Pitch)
	}

	s.BeginFrame()
	s.MoveCursorBy(100, -50)
	c.Update(&s, 0)
	if got, want := c.Camera.Yaw, camera.DefaultYaw+100*camera.DefaultSensitivity; absf(got-want) > 1e-4 {
		t.Errorf("yaw = %v, want %v", got, want)
	}
	if got, want := c.Camera.Pitch, 50*camera.DefaultSensitivity; absf(got-want) > 1e-4 {
		t.Errorf("pitch = %v, want %v", got, want)
	}

	// No motion this frame: no turn.
	s.BeginFrame()
	yaw := c.Camera.Yaw
	c.Update(&s, 0)
	if c.Camera.Yaw != yaw {
		t.Error("camera turned without cursor motion")
	}
}

func TestSpotDirectionLatch(t *testing.T) {
	c := NewController(camera.NewDefault())
	if c.SpotDirection() != nil {
		t.Fatal("spot direction should be unset before a capture")
	}
	if f := c.Frame(0, 800, 600); f.SpotDirection != nil {
		t.Fatal("frame should follow the camera before a capture")
	}

	var s input.State
	s.SetKey(input.KeyCapture, true)
	c.Update(&s, 0)

	captured := c.SpotDirection()
	if captured == nil {
		t.Fatal("capture press did not latch a direction")
	}
	if captured.Sub(math.Vec3{X: 0, Y: 0, Z: -1}).Length() > 1e-5 {
		t.Errorf("captured = %v, want (0,0,-1)", *captured)
	}

	// Turning keeps the latched direction while the key stays held.
	s.BeginFrame()
	c.Camera.ProcessMouseMovement(900, 0)
	c.Update(&s, 0)
	if *c.SpotDirection() != *captured {
		t.Errorf("held capture key re-latched: %v", *c.SpotDirection())
	}
	f := c.Frame(1, 800, 600)
	if f.SpotDirection == nil || *f.SpotDirection != *captured {
		t.Errorf("frame spot direction = %v, want %v", f.SpotDirection, *captured)
	}
	if f.Front == *captured {
		t.Error("camera front should have moved away from the latched direction")
	}

	// A new press replaces the snapshot.
	s.SetKey(input.KeyCapture, false)
	s.BeginFrame()
	s.SetKey(input.KeyCapture, true)
	c.Update(&s, 0)
	if got := *c.SpotDirection(); got.Sub(c.Camera.Front()).Length() > 1e-6 {
		t.Errorf("recapture = %v, want current front %v", got, c.Camera.Front())
	}
}

func TestFrame(t *testing.T) {
	c := NewController(camera.NewDefault())
	f := c.Frame(2.5, 1024, 768)

	if f.Time != 2.5 || f.Width != 1024 || f.Height != 768 {
		t.Errorf("frame = %+v", f)
	}
	if f.Position != c.Camera.Position || f.Front != c.Camera.Front() {
		t.Error("frame does not carry the camera pose")
	}
	if f.View != c.Camera.ViewMatrix() {
		t.Error("frame view differs from camera view")
	}
}

func TestFPSCounter(t *testing.T) {
	f := newFPSCounter(time.Second)

	for i := 0; i < 59; i++ {
		if _, ok := f.Tick(16 * time.Millisecond); ok {
			t.Fatalf("reported after %d frames", i+1)
		}
	}
	// 60 frames over 1.044 s.
	rate, ok := f.Tick(100 * time.Millisecond)
	if !ok {
		t.Fatal("expected a report once the window elapsed")
	}
	want := 60 / 1.044
	if rate < want-0.01 || rate > want+0.01 {
		t.Errorf("fps = %v, want %v", rate, want)
	}

	if _, ok := f.Tick(time.Millisecond); ok {
		t.Error("counter did not restart")
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
