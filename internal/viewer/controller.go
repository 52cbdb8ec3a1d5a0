package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/input"
	"github.com/Faultbox/roomview/internal/engine/uniforms"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// movementKeys maps held keys to camera movement, applied in this order.
var movementKeys = []struct {
	key input.Key
	dir camera.Movement
}{
	{input.KeyForward, camera.Forward},
	{input.KeyBackward, camera.Backward},
	{input.KeyLeft, camera.Left},
	{input.KeyRight, camera.Right},
}

// Controller applies a frame of input to the camera and holds the latched
// spot light direction.
type Controller struct {
	Camera *camera.Camera
	Mouse  MouseTracker

	// spotDir is nil until the first capture; the spot light then keeps
	// pointing this way until the next one.
	spotDir *math.Vec3
}

// NewController creates a controller for cam.
func NewController(cam *camera.Camera) *Controller {
	return &Controller{Camera: cam}
}

// Update moves the camera for every held movement key, turns it by the
// cursor motion and latches the spot direction on a capture press.
func (c *Controller) Update(s *input.State, dt float32) {
	for _, m := range movementKeys {
		if s.Held(m.key) {
			c.Camera.ProcessKeyboard(m.dir, dt)
		}
	}

	if s.CursorMoved {
		dx, dy := c.Mouse.Delta(s.CursorX, s.CursorY)
		c.Camera.ProcessMouseMovement(dx, dy)
	}

	if s.Pressed(input.KeyCapture) {
		c.CaptureSpotDirection()
	}
}

// CaptureSpotDirection latches the current look direction for the spot
// light, replacing any earlier capture.
func (c *Controller) CaptureSpotDirection() {
	dir := c.Camera.Front()
	c.spotDir = &dir
	logger.Debug("spot direction captured", logger.Vec3("direction", dir))
}

// SpotDirection returns the latched direction, or nil before any capture.
func (c *Controller) SpotDirection() *math.Vec3 {
	return c.spotDir
}

// Frame assembles the per-frame data the uniform builder needs.
func (c *Controller) Frame(t float32, width, height int) uniforms.Frame {
	return uniforms.Frame{
		Time:          t,
		View:          c.Camera.ViewMatrix(),
		Position:      c.Camera.Position,
		Front:         c.Camera.Front(),
		SpotDirection: c.spotDir,
		Width:         width,
		Height:        height,
		Model:         math.Identity(),
	}
}

// logPose writes the camera pose at debug level.
func (c *Controller) logPose() {
	logger.Debug("camera",
		logger.Vec3("position", c.Camera.Position),
		zap.Float32("yaw", c.Camera.Yaw),
		zap.Float32("pitch", c.Camera.Pitch),
	)
}
