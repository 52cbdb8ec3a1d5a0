// Package camera provides the first-person camera used by the viewer.
package camera

import (
	"github.com/Faultbox/roomview/pkg/math"
)

// Movement is a discrete keyboard movement direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// String returns the direction name.
func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Defaults for a freshly constructed camera.
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultEyeHeight   float32 = 0.8

	// MaxPitch bounds pitch to [-MaxPitch, MaxPitch] degrees. It keeps front
	// away from WorldUp, where right would degenerate.
	MaxPitch float32 = 75.0
)

// Camera is a yaw/pitch fly camera. Angles are in degrees.
//
// front, right and up are derived from Yaw, Pitch and WorldUp and are only
// recomputed through updateVectors. Yaw and Pitch should be changed through
// ProcessMouseMovement so the basis stays in sync.
type Camera struct {
	Position math.Vec3
	WorldUp  math.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32

	// EyeHeight is forced onto Position.Y after every keyboard move, so the
	// camera walks on a horizontal plane.
	EyeHeight float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// New creates a camera at position with the given world up and angles.
func New(position, worldUp math.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          worldUp,
		Yaw:              yaw,
		Pitch:            pitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		EyeHeight:        DefaultEyeHeight,
		front:            math.Vec3{X: 0, Y: 0, Z: -1},
	}
	c.updateVectors()
	return c
}

// NewDefault creates a camera at eye height looking down -Z.
func NewDefault() *Camera {
	return New(
		math.Vec3{X: 0, Y: DefaultEyeHeight, Z: 3},
		math.Vec3{X: 0, Y: 1, Z: 0},
		DefaultYaw,
		DefaultPitch,
	)
}

// Front returns the unit look direction.
func (c *Camera) Front() math.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *Camera) Right() math.Vec3 { return c.right }

// Up returns the unit camera up vector.
func (c *Camera) Up() math.Vec3 { return c.up }

// ViewMatrix returns the look-at view matrix for the current state.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// ProcessKeyboard moves the camera along front or right by
// MovementSpeed*dt, then pins Position.Y to EyeHeight.
func (c *Camera) ProcessKeyboard(direction Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Scale(velocity))
	}
	c.Position.Y = c.EyeHeight
}

// ProcessMouseMovement applies raw cursor deltas to yaw and pitch.
// Pitch is clamped before the basis is rebuilt, on every call.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32) {
	xoffset *= c.MouseSensitivity
	yoffset *= c.MouseSensitivity

	c.Yaw += xoffset
	c.Pitch += yoffset

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}

	c.updateVectors()
}

// updateVectors rebuilds front/right/up from Yaw, Pitch and WorldUp.
// No guard against front parallel to WorldUp; see MaxPitch.
func (c *Camera) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)

	front := math.Vec3{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
