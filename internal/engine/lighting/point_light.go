package lighting

import "github.com/Faultbox/roomview/pkg/math"

// MaxPointLights is the size of the pointLights array in the lit shader.
const MaxPointLights = 4

// Attenuation holds the constant/linear/quadratic falloff terms.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// DefaultAttenuation covers roughly 50 units.
var DefaultAttenuation = Attenuation{Constant: 1.0, Linear: 0.09, Quadratic: 0.032}

// Phong holds the three Phong terms of a light.
type Phong struct {
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// PointLight is an omnidirectional light with distance falloff.
type PointLight struct {
	Position math.Vec3
	Phong
	Attenuation
}

// PointLightBuffer holds the ordered point lights uploaded each frame.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of active lights.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight appends a light. Returns false if the buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights, keeping order.
// Returns the number of lights dropped past MaxPointLights.
func (b *PointLightBuffer) SetLights(lights []PointLight) int {
	b.Clear()
	count := len(lights)
	if count > MaxPointLights {
		count = MaxPointLights
	}
	b.Lights = append(b.Lights, lights[:count]...)
	return len(lights) - count
}

// Slot returns the light in shader slot i and whether the slot is active.
// Inactive slots return a zero light, which contributes nothing.
func (b *PointLightBuffer) Slot(i int) (PointLight, bool) {
	if i < 0 || i >= len(b.Lights) {
		return PointLight{Attenuation: Attenuation{Constant: 1}}, false
	}
	return b.Lights[i], true
}
