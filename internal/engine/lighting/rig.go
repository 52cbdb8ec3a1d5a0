package lighting

import "github.com/Faultbox/roomview/pkg/math"

// DirectionalLight lights the whole scene from one direction.
// Direction points from the light into the scene.
type DirectionalLight struct {
	Direction math.Vec3
	Phong
}

// SpotLight is a cone light. In the viewer it rides on the camera, so only
// the colour, falloff and cone angles are fixed here.
type SpotLight struct {
	Phong
	Attenuation

	// Inner and outer cone half-angles in degrees.
	CutOff      float32
	OuterCutOff float32
}

// Material describes the lit surface. Diffuse and Specular are texture units.
type Material struct {
	DiffuseUnit  int32
	SpecularUnit int32
	Shininess    float32
}

// Rig is the full, static lighting table of a scene.
type Rig struct {
	Directional DirectionalLight
	Points      *PointLightBuffer
	Spot        SpotLight
	Material    Material

	// MarkerScale is the uniform scale of the cube drawn at each point light.
	MarkerScale float32
}

// DefaultRig returns the room demo's lighting. The intensities and falloff
// terms are scene tuning values, not physically derived.
func DefaultRig() Rig {
	points := NewPointLightBuffer()
	for _, p := range []math.Vec3{
		{X: 0.7, Y: 0.2, Z: 2.0},
		{X: 2.3, Y: 1.3, Z: -4.0},
		{X: -4.0, Y: 1.0, Z: -12.0},
		{X: 0.0, Y: 1.0, Z: -3.0},
	} {
		points.AddLight(PointLight{
			Position: p,
			Phong: Phong{
				Ambient:  math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
				Diffuse:  math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
				Specular: math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Attenuation: DefaultAttenuation,
		})
	}

	return Rig{
		Directional: DirectionalLight{
			Direction: math.Vec3{X: -0.2, Y: -1.0, Z: -0.3},
			Phong: Phong{
				Ambient:  math.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
				Diffuse:  math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
				Specular: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			},
		},
		Points: points,
		Spot: SpotLight{
			Phong: Phong{
				Ambient:  math.Vec3{},
				Diffuse:  math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
				Specular: math.Vec3{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Attenuation: DefaultAttenuation,
			CutOff:      12.5,
			OuterCutOff: 15.0,
		},
		Material: Material{
			DiffuseUnit:  0,
			SpecularUnit: 1,
			Shininess:    32.0,
		},
		MarkerScale: 0.2,
	}
}
