package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/model"
	"github.com/Faultbox/roomview/internal/engine/scene/shaders"
	"github.com/Faultbox/roomview/internal/engine/shader"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/internal/engine/uniforms"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// Scene owns the GPU resources of a descriptor and draws them each frame.
type Scene struct {
	desc        *Descriptor
	modelMatrix math.Mat4

	lit    *shader.Program
	marker *shader.Program
	skybox *shader.Program

	meshes []*model.GPUMesh
	cube   *model.GPUMesh
	sky    *model.GPUMesh

	// Textures by source name, so meshes sharing an image share a handle.
	textures map[string]uint32

	diffuseMap  uint32
	specularMap uint32
	cubemap     uint32

	// Fallbacks bound when a mesh or descriptor has no texture.
	white uint32
	gray  uint32
}

// New builds the scene on the current GL context. It does not fail: any
// shader or asset that cannot be loaded is logged and left out, and the
// rest of the scene still draws.
func New(d *Descriptor) *Scene {
	s := &Scene{
		desc:        d,
		modelMatrix: d.ModelMatrix(),
		textures:    make(map[string]uint32),
	}

	sh := d.Shaders
	s.lit = shader.LoadProgram("lit", sh.Lit.Vertex, sh.Lit.Fragment,
		shaders.LitVertexShader, shaders.LitFragmentShader)
	s.marker = shader.LoadProgram("marker", sh.Marker.Vertex, sh.Marker.Fragment,
		shaders.MarkerVertexShader, shaders.MarkerFragmentShader)
	s.skybox = shader.LoadProgram("skybox", sh.Skybox.Vertex, sh.Skybox.Fragment,
		shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader)

	s.white = texture.Solid(255, 255, 255, 255)
	s.gray = texture.Solid(128, 128, 128, 255)

	s.diffuseMap = texture.Load2D(d.DiffuseMap)
	s.specularMap = texture.Load2D(d.SpecularMap)

	s.loadModel()

	s.cube = model.Upload(model.Cube(1))

	if len(d.Skybox) > 0 {
		s.cubemap = texture.LoadCubemap(d.Skybox)
		if s.cubemap != 0 {
			s.sky = model.UploadPositions(model.SkyboxPositions())
		}
	}

	logger.Info("scene ready",
		zap.Int("meshes", len(s.meshes)),
		zap.Int("textures", len(s.textures)),
		zap.Bool("skybox", s.sky != nil),
	)
	return s
}

func (s *Scene) loadModel() {
	if s.desc.Model == "" {
		return
	}
	m, err := model.Load(s.desc.Model)
	if err != nil {
		logger.Warn("model not loaded", zap.String("path", s.desc.Model), zap.Error(err))
		return
	}

	for _, mesh := range m.Meshes {
		g := model.Upload(mesh)
		g.Texture = s.meshTexture(mesh.Texture)
		s.meshes = append(s.meshes, g)
	}
}

func (s *Scene) meshTexture(src *model.TextureSource) uint32 {
	if src == nil {
		return 0
	}
	key := src.Path
	if key == "" {
		key = "embedded:" + src.Name
	}
	if tex, ok := s.textures[key]; ok {
		return tex
	}

	var tex uint32
	if src.Path != "" {
		tex = texture.Load2D(src.Path)
	} else {
		tex = texture.Load2DData(src.Data, src.Name)
	}
	s.textures[key] = tex
	return tex
}

// firstTexture returns the first non-zero handle.
func firstTexture(handles ...uint32) uint32 {
	for _, h := range handles {
		if h != 0 {
			return h
		}
	}
	return 0
}

// ModelMatrix returns the transform applied to the scene model.
func (s *Scene) ModelMatrix() math.Mat4 {
	return s.modelMatrix
}

// Draw renders the lit model, the light markers and the skybox, in that
// order. The frame's Model is replaced by the scene's model matrix.
func (s *Scene) Draw(b *uniforms.Builder, f uniforms.Frame) {
	f.Model = s.modelMatrix
	s.drawLit(b, f)
	s.drawMarkers(b, f)
	s.drawSkybox(b, f)
}

func (s *Scene) drawLit(b *uniforms.Builder, f uniforms.Frame) {
	if !s.lit.Valid() || len(s.meshes) == 0 {
		return
	}
	mat := b.Rig().Material
	s.lit.Apply(b.Build(f))

	specular := firstTexture(s.specularMap, s.gray)
	for _, m := range s.meshes {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(mat.DiffuseUnit))
		gl.BindTexture(gl.TEXTURE_2D, firstTexture(s.diffuseMap, m.Texture, s.white))
		gl.ActiveTexture(gl.TEXTURE0 + uint32(mat.SpecularUnit))
		gl.BindTexture(gl.TEXTURE_2D, specular)
		m.Draw()
	}
}

func (s *Scene) drawMarkers(b *uniforms.Builder, f uniforms.Frame) {
	if !s.marker.Valid() {
		return
	}
	for _, set := range b.Markers(f) {
		s.marker.Apply(set)
		s.cube.Draw()
	}
}

func (s *Scene) drawSkybox(b *uniforms.Builder, f uniforms.Frame) {
	if s.sky == nil || !s.skybox.Valid() {
		return
	}
	// The skybox writes depth 1.0; LEQUAL lets it pass where nothing else drew.
	gl.DepthFunc(gl.LEQUAL)
	s.skybox.Apply(b.Skybox(f))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, s.cubemap)
	s.sky.Draw()
	gl.DepthFunc(gl.LESS)
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	for _, m := range s.meshes {
		m.Delete()
	}
	s.meshes = nil
	s.cube.Delete()
	s.sky.Delete()

	for key, tex := range s.textures {
		texture.Delete(tex)
		delete(s.textures, key)
	}
	for _, tex := range []uint32{s.diffuseMap, s.specularMap, s.cubemap, s.white, s.gray} {
		texture.Delete(tex)
	}

	s.lit.Delete()
	s.marker.Delete()
	s.skybox.Delete()
}
