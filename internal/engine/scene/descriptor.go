package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/pkg/math"
)

// SkyboxFaces is the number of cubemap images, ordered +X, -X, +Y, -Y, +Z, -Z.
const SkyboxFaces = 6

// Descriptor describes one scene: what to load and how to light it.
// Relative paths are resolved against the descriptor file's directory.
type Descriptor struct {
	Model       string     `yaml:"model"`
	ModelScale  float32    `yaml:"model_scale"`
	ModelOffset [3]float32 `yaml:"model_offset"`

	// Optional textures that override whatever the model references.
	DiffuseMap  string `yaml:"diffuse_map"`
	SpecularMap string `yaml:"specular_map"`

	Skybox []string `yaml:"skybox"`

	Shaders     ShaderSet    `yaml:"shaders"`
	Camera      CameraDesc   `yaml:"camera"`
	Lights      LightsDesc   `yaml:"lights"`
	Material    MaterialDesc `yaml:"material"`
	MarkerScale float32      `yaml:"marker_scale"`
	ClearColor  [3]float32   `yaml:"clear_color"`
}

// ShaderSet lists the shader programs of a scene.
type ShaderSet struct {
	Lit    ShaderPaths `yaml:"lit"`
	Marker ShaderPaths `yaml:"marker"`
	Skybox ShaderPaths `yaml:"skybox"`
}

// ShaderPaths points at GLSL sources. Empty paths select the built-in shader.
type ShaderPaths struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// CameraDesc holds the starting pose and tuning of the camera.
type CameraDesc struct {
	Position    [3]float32 `yaml:"position"`
	WorldUp     [3]float32 `yaml:"world_up"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	EyeHeight   float32    `yaml:"eye_height"`
}

// PhongDesc is the YAML form of lighting.Phong.
type PhongDesc struct {
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

// AttenuationDesc is the YAML form of lighting.Attenuation.
type AttenuationDesc struct {
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// SunDesc gives a light direction as longitude/latitude degrees.
type SunDesc struct {
	Longitude float32 `yaml:"longitude"`
	Latitude  float32 `yaml:"latitude"`
}

// DirectionalDesc describes the directional light. Sun, when set, wins over
// Direction and is converted to a direction pointing away from the sun.
type DirectionalDesc struct {
	Direction [3]float32 `yaml:"direction"`
	Sun       *SunDesc   `yaml:"sun,omitempty"`
	PhongDesc `yaml:",inline"`
}

// PointDesc describes one point light.
type PointDesc struct {
	Position        [3]float32 `yaml:"position"`
	PhongDesc       `yaml:",inline"`
	AttenuationDesc `yaml:",inline"`
}

// SpotDesc describes the camera-mounted spot light.
type SpotDesc struct {
	PhongDesc       `yaml:",inline"`
	AttenuationDesc `yaml:",inline"`
	CutOff          float32 `yaml:"cut_off"`
	OuterCutOff     float32 `yaml:"outer_cut_off"`
}

// LightsDesc groups the scene lights.
type LightsDesc struct {
	Directional DirectionalDesc `yaml:"directional"`
	Points      []PointDesc     `yaml:"points"`
	Spot        SpotDesc        `yaml:"spot"`
}

// MaterialDesc holds surface parameters.
type MaterialDesc struct {
	Shininess float32 `yaml:"shininess"`
}

// Default returns the built-in room scene.
func Default() *Descriptor {
	rig := lighting.DefaultRig()

	points := make([]PointDesc, 0, rig.Points.Count())
	for _, p := range rig.Points.Lights {
		points = append(points, PointDesc{
			Position:        p.Position.Array(),
			PhongDesc:       phongDesc(p.Phong),
			AttenuationDesc: attenuationDesc(p.Attenuation),
		})
	}

	return &Descriptor{
		Model:      filepath.Join("assets", "models", "room", "scene.gltf"),
		ModelScale: 1.0,
		Skybox: []string{
			filepath.Join("assets", "skybox", "right.jpg"),
			filepath.Join("assets", "skybox", "left.jpg"),
			filepath.Join("assets", "skybox", "top.jpg"),
			filepath.Join("assets", "skybox", "bottom.jpg"),
			filepath.Join("assets", "skybox", "front.jpg"),
			filepath.Join("assets", "skybox", "back.jpg"),
		},
		Camera: CameraDesc{
			Position:    [3]float32{0, camera.DefaultEyeHeight, 3},
			WorldUp:     [3]float32{0, 1, 0},
			Yaw:         camera.DefaultYaw,
			Pitch:       camera.DefaultPitch,
			Speed:       camera.DefaultSpeed,
			Sensitivity: camera.DefaultSensitivity,
			EyeHeight:   camera.DefaultEyeHeight,
		},
		Lights: LightsDesc{
			Directional: DirectionalDesc{
				Direction: rig.Directional.Direction.Array(),
				PhongDesc: phongDesc(rig.Directional.Phong),
			},
			Points: points,
			Spot: SpotDesc{
				PhongDesc:       phongDesc(rig.Spot.Phong),
				AttenuationDesc: attenuationDesc(rig.Spot.Attenuation),
				CutOff:          rig.Spot.CutOff,
				OuterCutOff:     rig.Spot.OuterCutOff,
			},
		},
		Material:    MaterialDesc{Shininess: rig.Material.Shininess},
		MarkerScale: rig.MarkerScale,
		ClearColor:  [3]float32{0.1, 0.5, 0.8},
	}
}

// Load reads a descriptor from a YAML file on top of Default and resolves
// relative asset paths against the file's directory.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	d.resolve(filepath.Dir(path))

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return d, nil
}

// Validate checks the descriptor for values the renderer cannot use.
func (d *Descriptor) Validate() error {
	var errs []error
	if n := len(d.Skybox); n != 0 && n != SkyboxFaces {
		errs = append(errs, fmt.Errorf("skybox needs %d faces, got %d", SkyboxFaces, n))
	}
	if n := len(d.Lights.Points); n > lighting.MaxPointLights {
		errs = append(errs, fmt.Errorf("at most %d point lights supported, got %d", lighting.MaxPointLights, n))
	}
	if d.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera speed must be positive, got %v", d.Camera.Speed))
	}
	if d.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", d.Camera.Sensitivity))
	}
	if p := d.Camera.Pitch; p > camera.MaxPitch || p < -camera.MaxPitch {
		errs = append(errs, fmt.Errorf("camera pitch %v outside [-%v, %v]", p, camera.MaxPitch, camera.MaxPitch))
	}
	if d.Camera.WorldUp == [3]float32{} {
		errs = append(errs, errors.New("camera world_up must not be zero"))
	}
	if s := d.Lights.Spot; s.CutOff <= 0 || s.CutOff > s.OuterCutOff || s.OuterCutOff >= 90 {
		errs = append(errs, fmt.Errorf("spot cone must satisfy 0 < cut_off <= outer_cut_off < 90, got %v/%v", s.CutOff, s.OuterCutOff))
	}
	if d.ModelScale <= 0 {
		errs = append(errs, fmt.Errorf("model_scale must be positive, got %v", d.ModelScale))
	}
	return errors.Join(errs...)
}

// NewCamera builds the starting camera.
func (d *Descriptor) NewCamera() *camera.Camera {
	c := camera.New(
		math.Vec3FromArray(d.Camera.Position),
		math.Vec3FromArray(d.Camera.WorldUp),
		d.Camera.Yaw,
		d.Camera.Pitch,
	)
	c.MovementSpeed = d.Camera.Speed
	c.MouseSensitivity = d.Camera.Sensitivity
	c.EyeHeight = d.Camera.EyeHeight
	return c
}

// Rig converts the light and material sections into a lighting rig.
func (d *Descriptor) Rig() lighting.Rig {
	dir := d.Lights.Directional
	direction := math.Vec3FromArray(dir.Direction)
	if dir.Sun != nil {
		direction = lighting.SunDirection(dir.Sun.Longitude, dir.Sun.Latitude).Scale(-1)
	}

	points := lighting.NewPointLightBuffer()
	for _, p := range d.Lights.Points {
		points.AddLight(lighting.PointLight{
			Position:    math.Vec3FromArray(p.Position),
			Phong:       p.PhongDesc.phong(),
			Attenuation: p.AttenuationDesc.attenuation(),
		})
	}

	spot := d.Lights.Spot
	return lighting.Rig{
		Directional: lighting.DirectionalLight{
			Direction: direction,
			Phong:     dir.PhongDesc.phong(),
		},
		Points: points,
		Spot: lighting.SpotLight{
			Phong:       spot.PhongDesc.phong(),
			Attenuation: spot.AttenuationDesc.attenuation(),
			CutOff:      spot.CutOff,
			OuterCutOff: spot.OuterCutOff,
		},
		Material: lighting.Material{
			DiffuseUnit:  0,
			SpecularUnit: 1,
			Shininess:    d.Material.Shininess,
		},
		MarkerScale: d.MarkerScale,
	}
}

// ModelMatrix places the main model: translate by ModelOffset, then scale.
func (d *Descriptor) ModelMatrix() math.Mat4 {
	return math.Identity().
		Mul(math.TranslateV(math.Vec3FromArray(d.ModelOffset))).
		Mul(math.Scale(d.ModelScale, d.ModelScale, d.ModelScale))
}

func (d *Descriptor) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	d.Model = abs(d.Model)
	d.DiffuseMap = abs(d.DiffuseMap)
	d.SpecularMap = abs(d.SpecularMap)
	for i := range d.Skybox {
		d.Skybox[i] = abs(d.Skybox[i])
	}
	for _, sp := range []*ShaderPaths{&d.Shaders.Lit, &d.Shaders.Marker, &d.Shaders.Skybox} {
		sp.Vertex = abs(sp.Vertex)
		sp.Fragment = abs(sp.Fragment)
	}
}

func (p PhongDesc) phong() lighting.Phong {
	return lighting.Phong{
		Ambient:  math.Vec3FromArray(p.Ambient),
		Diffuse:  math.Vec3FromArray(p.Diffuse),
		Specular: math.Vec3FromArray(p.Specular),
	}
}

// attenuation falls back to the default falloff when all terms are zero,
// which would otherwise divide by zero in the shader.
func (a AttenuationDesc) attenuation() lighting.Attenuation {
	if a == (AttenuationDesc{}) {
		return lighting.DefaultAttenuation
	}
	return lighting.Attenuation{Constant: a.Constant, Linear: a.Linear, Quadratic: a.Quadratic}
}

func phongDesc(p lighting.Phong) PhongDesc {
	return PhongDesc{Ambient: p.Ambient.Array(), Diffuse: p.Diffuse.Array(), Specular: p.Specular.Array()}
}

func attenuationDesc(a lighting.Attenuation) AttenuationDesc {
	return AttenuationDesc{Constant: a.Constant, Linear: a.Linear, Quadratic: a.Quadratic}
}
