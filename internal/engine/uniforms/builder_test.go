package uniforms

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/pkg/math"
)

func frameFor(c *camera.Camera) Frame {
	return Frame{
		Time:     1.5,
		View:     c.ViewMatrix(),
		Position: c.Position,
		Front:    c.Front(),
		Width:    1980,
		Height:   1485,
		Model:    math.Identity(),
	}
}

func TestProjectionMatchesMathgl(t *testing.T) {
	tests := []struct {
		w, h   int
		aspect float32
	}{
		{1980, 1485, 1980.0 / 1485.0},
		{1280, 720, 1280.0 / 720.0},
		{800, 0, 1},
		{0, 600, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			got := Projection(tt.w, tt.h)
			want := mgl32.Perspective(mgl32.DegToRad(45), tt.aspect, 0.1, 100)
			for i := range got {
				d := got[i] - want[i]
				if d > 1e-5 || d < -1e-5 {
					t.Errorf("element %d: got %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestMarkerModel(t *testing.T) {
	pos := math.Vec3{X: 1.2, Y: 1.0, Z: 2.0}
	m := MarkerModel(pos, 0.2)

	want := math.Translate(1.2, 1.0, 2.0).Mul(math.Scale(0.2, 0.2, 0.2))
	if m != want {
		t.Errorf("MarkerModel = %v, want %v", m, want)
	}

	// Scale acts on local axes: the unit cube corner lands 0.2 from pos.
	got := m.TransformVec3(math.Vec3{X: 1, Y: 0, Z: 0})
	if got.Sub(pos.Add(math.Vec3{X: 0.2})).Length() > 1e-6 {
		t.Errorf("local +X maps to %v", got)
	}
	// Scale-then-translate would have scaled the translation too.
	wrong := math.Scale(0.2, 0.2, 0.2).Mul(math.Translate(1.2, 1.0, 2.0))
	if m == wrong {
		t.Error("composition order is scale-then-translate")
	}
}

func TestBuildCameraParameters(t *testing.T) {
	c := camera.NewDefault()
	c.ProcessMouseMovement(120, -40)
	f := frameFor(c)

	s := NewBuilder(lighting.DefaultRig()).Build(f)

	if v := s["view"]; v.Kind != KindMat4 || v.Mat4 != c.ViewMatrix() {
		t.Errorf("view = %+v", v)
	}
	if v := s["projection"]; v.Mat4 != Projection(1980, 1485) {
		t.Errorf("projection mismatch")
	}
	if v := s["viewPos"]; v.Kind != KindVec3 || v.Vec3 != c.Position {
		t.Errorf("viewPos = %+v, want %v", v, c.Position)
	}
	if v := s["time"]; v.Kind != KindFloat || v.Float != 1.5 {
		t.Errorf("time = %+v", v)
	}
	if v := s["model"]; v.Mat4 != math.Identity() {
		t.Errorf("model = %+v", v)
	}
}

func TestBuildPointLights(t *testing.T) {
	rig := lighting.DefaultRig()
	rig.Points = lighting.NewPointLightBuffer()
	rig.Points.AddLight(lighting.PointLight{
		Position:    math.Vec3{X: 1, Y: 2, Z: 3},
		Attenuation: lighting.DefaultAttenuation,
	})
	rig.Points.AddLight(lighting.PointLight{
		Position:    math.Vec3{X: 4, Y: 5, Z: 6},
		Attenuation: lighting.DefaultAttenuation,
	})

	s := NewBuilder(rig).Build(frameFor(camera.NewDefault()))

	if n := s["numPointLights"]; n.Kind != KindInt || n.Int != 2 {
		t.Errorf("numPointLights = %+v, want 2", n)
	}
	for i := 0; i < lighting.MaxPointLights; i++ {
		for _, field := range []string{"position", "ambient", "diffuse", "specular", "constant", "linear", "quadratic"} {
			name := fmt.Sprintf("pointLights[%d].%s", i, field)
			if _, ok := s[name]; !ok {
				t.Errorf("missing %s", name)
			}
		}
	}
	if _, ok := s[fmt.Sprintf("pointLights[%d].position", lighting.MaxPointLights)]; ok {
		t.Error("builder emitted a point light past MaxPointLights")
	}
	if p := s["pointLights[1].position"].Vec3; p != (math.Vec3{X: 4, Y: 5, Z: 6}) {
		t.Errorf("pointLights[1].position = %v, order not preserved", p)
	}
	if c := s["pointLights[3].constant"].Float; c != 1 {
		t.Errorf("unused slot constant = %v, want 1", c)
	}
}

func TestBuildSpotLightFollowsCamera(t *testing.T) {
	c := camera.NewDefault()
	c.ProcessKeyboard(camera.Forward, 0.5)
	c.ProcessMouseMovement(300, 0)
	f := frameFor(c)

	b := NewBuilder(lighting.DefaultRig())
	s := b.Build(f)
	if s["spotLight.position"].Vec3 != c.Position {
		t.Errorf("spot position = %v, want %v", s["spotLight.position"].Vec3, c.Position)
	}
	if s["spotLight.direction"].Vec3 != c.Front() {
		t.Errorf("spot direction = %v, want %v", s["spotLight.direction"].Vec3, c.Front())
	}

	// A latched direction wins over the live front.
	latched := math.Vec3{X: 0, Y: 0, Z: -1}
	f.SpotDirection = &latched
	s = b.Build(f)
	if s["spotLight.direction"].Vec3 != latched {
		t.Errorf("latched spot direction = %v, want %v", s["spotLight.direction"].Vec3, latched)
	}

	inner, outer := s["spotLight.cutOff"].Float, s["spotLight.outerCutOff"].Float
	if inner <= outer {
		t.Errorf("cutOff cos %v should exceed outerCutOff cos %v", inner, outer)
	}
	if d := inner - math.Cos(math.Radians(12.5)); d > 1e-6 || d < -1e-6 {
		t.Errorf("cutOff = %v", inner)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(lighting.DefaultRig())
	f := frameFor(camera.NewDefault())

	a, c := b.Build(f), b.Build(f)
	if len(a) != len(c) {
		t.Fatalf("sizes differ: %d vs %d", len(a), len(c))
	}
	for name, v := range a {
		if c[name] != v {
			t.Errorf("%s differs between builds", name)
		}
	}
}

func TestMarkers(t *testing.T) {
	rig := lighting.DefaultRig()
	b := NewBuilder(rig)
	f := frameFor(camera.NewDefault())

	sets := b.Markers(f)
	if len(sets) != rig.Points.Count() {
		t.Fatalf("markers = %d, want %d", len(sets), rig.Points.Count())
	}
	for i, s := range sets {
		want := MarkerModel(rig.Points.Lights[i].Position, rig.MarkerScale)
		if s["model"].Mat4 != want {
			t.Errorf("marker %d model mismatch", i)
		}
		if s["view"].Mat4 != f.View {
			t.Errorf("marker %d view mismatch", i)
		}
	}
}

func TestSkyboxStripsTranslation(t *testing.T) {
	c := camera.NewDefault()
	c.Position = math.Vec3{X: 10, Y: 0.8, Z: -4}
	f := frameFor(c)

	s := NewBuilder(lighting.DefaultRig()).Skybox(f)
	v := s["view"].Mat4
	if v[12] != 0 || v[13] != 0 || v[14] != 0 {
		t.Errorf("skybox view keeps translation: %v", v)
	}
	if s["skybox"].Int != 0 {
		t.Errorf("skybox sampler unit = %d", s["skybox"].Int)
	}
}

func TestSetNamesSorted(t *testing.T) {
	s := Set{"view": Int(0), "model": Int(0), "alpha": Int(0)}
	got := s.Names()
	want := []string{"alpha", "model", "view"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}
