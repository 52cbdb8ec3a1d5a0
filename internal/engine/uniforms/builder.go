package uniforms

import (
	"fmt"

	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/pkg/math"
)

// Projection parameters.
const (
	FieldOfView float32 = 45.0 // vertical, degrees
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100.0
)

// Frame is everything that changes from one frame to the next.
type Frame struct {
	Time float32

	View     math.Mat4
	Position math.Vec3
	Front    math.Vec3

	// SpotDirection, when set, overrides Front as the spot light direction.
	SpotDirection *math.Vec3

	Width, Height int

	// Model is the transform of the main drawable.
	Model math.Mat4
}

// Projection returns the perspective projection for a viewport.
// A non-positive height falls back to a square aspect.
func Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 && width > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(math.Radians(FieldOfView), aspect, NearPlane, FarPlane)
}

// MarkerModel places a light-marker cube: translate, then scale in local space.
func MarkerModel(pos math.Vec3, scale float32) math.Mat4 {
	return math.Identity().
		Mul(math.TranslateV(pos)).
		Mul(math.Scale(scale, scale, scale))
}

// Builder turns a lighting rig and a Frame into uniform sets.
// It holds no per-frame state.
type Builder struct {
	rig lighting.Rig
}

// NewBuilder creates a builder over a fixed lighting rig.
func NewBuilder(rig lighting.Rig) *Builder {
	if rig.Points == nil {
		rig.Points = lighting.NewPointLightBuffer()
	}
	return &Builder{rig: rig}
}

// Rig returns the lighting table the builder was created with.
func (b *Builder) Rig() lighting.Rig {
	return b.rig
}

// Build returns the full parameter set for the lit shader.
func (b *Builder) Build(f Frame) Set {
	s := b.camera(f)
	s["model"] = Mat4(f.Model)
	s["viewPos"] = Vec3(f.Position)
	s["time"] = Float(f.Time)

	m := b.rig.Material
	s["material.diffuse"] = Int(m.DiffuseUnit)
	s["material.specular"] = Int(m.SpecularUnit)
	s["material.shininess"] = Float(m.Shininess)

	d := b.rig.Directional
	s["dirLight.direction"] = Vec3(d.Direction)
	putPhong(s, "dirLight", d.Phong)

	for i := 0; i < lighting.MaxPointLights; i++ {
		p, _ := b.rig.Points.Slot(i)
		prefix := fmt.Sprintf("pointLights[%d]", i)
		s[prefix+".position"] = Vec3(p.Position)
		putPhong(s, prefix, p.Phong)
		putAttenuation(s, prefix, p.Attenuation)
	}
	s["numPointLights"] = Int(int32(b.rig.Points.Count()))

	sp := b.rig.Spot
	dir := f.Front
	if f.SpotDirection != nil {
		dir = *f.SpotDirection
	}
	s["spotLight.position"] = Vec3(f.Position)
	s["spotLight.direction"] = Vec3(dir)
	putPhong(s, "spotLight", sp.Phong)
	putAttenuation(s, "spotLight", sp.Attenuation)
	s["spotLight.cutOff"] = Float(math.Cos(math.Radians(sp.CutOff)))
	s["spotLight.outerCutOff"] = Float(math.Cos(math.Radians(sp.OuterCutOff)))

	return s
}

// Markers returns one parameter set per active point light for the
// light-marker shader, in slot order.
func (b *Builder) Markers(f Frame) []Set {
	lights := b.rig.Points.Lights
	sets := make([]Set, 0, len(lights))
	for _, p := range lights {
		s := b.camera(f)
		s["model"] = Mat4(MarkerModel(p.Position, b.rig.MarkerScale))
		s["lightColor"] = Vec3(p.Diffuse)
		sets = append(sets, s)
	}
	return sets
}

// Skybox returns the parameter set for the skybox shader. The view keeps
// only its rotation so the box stays centred on the eye.
func (b *Builder) Skybox(f Frame) Set {
	return Set{
		"projection": Mat4(Projection(f.Width, f.Height)),
		"view":       Mat4(f.View.WithoutTranslation()),
		"skybox":     Int(0),
	}
}

func (b *Builder) camera(f Frame) Set {
	return Set{
		"projection": Mat4(Projection(f.Width, f.Height)),
		"view":       Mat4(f.View),
	}
}

func putPhong(s Set, prefix string, p lighting.Phong) {
	s[prefix+".ambient"] = Vec3(p.Ambient)
	s[prefix+".diffuse"] = Vec3(p.Diffuse)
	s[prefix+".specular"] = Vec3(p.Specular)
}

func putAttenuation(s Set, prefix string, a lighting.Attenuation) {
	s[prefix+".constant"] = Float(a.Constant)
	s[prefix+".linear"] = Float(a.Linear)
	s[prefix+".quadratic"] = Float(a.Quadratic)
}
