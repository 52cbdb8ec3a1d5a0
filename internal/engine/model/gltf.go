package model

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// Load reads a glTF 2.0 file (.gltf or .glb) and flattens every triangle
// primitive of the default scene into model space.
//
// Primitives that cannot be read are skipped with a warning. Load fails
// only when the file cannot be opened or yields no meshes at all.
func Load(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model: %w", err)
	}

	l := &loader{doc: doc, dir: filepath.Dir(path)}
	l.walkScene()

	if len(l.meshes) == 0 {
		return nil, fmt.Errorf("model %s has no triangle meshes", path)
	}

	m := &Model{Path: path, Meshes: l.meshes, Bounds: EmptyBounds()}
	for _, mesh := range m.Meshes {
		m.Bounds.merge(mesh.Bounds)
	}

	logger.Info("model loaded",
		zap.String("path", path),
		zap.Int("meshes", len(m.Meshes)),
		zap.Int("vertices", m.VertexCount()),
	)
	return m, nil
}

type loader struct {
	doc    *gltf.Document
	dir    string
	meshes []*Mesh
}

// walkScene visits the node tree of the default scene. A document without
// scenes has its meshes loaded untransformed.
func (l *loader) walkScene() {
	doc := l.doc
	if len(doc.Scenes) == 0 {
		for i := range doc.Meshes {
			l.addMesh(i, math.Identity())
		}
		return
	}

	sceneIdx := 0
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		sceneIdx = *doc.Scene
	}
	visited := make(map[int]bool)
	for _, n := range doc.Scenes[sceneIdx].Nodes {
		l.walkNode(n, math.Identity(), visited)
	}
}

func (l *loader) walkNode(idx int, parent math.Mat4, visited map[int]bool) {
	if idx < 0 || idx >= len(l.doc.Nodes) || visited[idx] {
		return
	}
	visited[idx] = true

	node := l.doc.Nodes[idx]
	world := parent.Mul(nodeMatrix(node))
	if node.Mesh != nil {
		l.addMesh(*node.Mesh, world)
	}
	for _, child := range node.Children {
		l.walkNode(child, world, visited)
	}
}

// nodeMatrix returns the node's local transform: its matrix when one is
// given, otherwise translation * rotation * scale.
func nodeMatrix(n *gltf.Node) math.Mat4 {
	var m math.Mat4
	hasMatrix := false
	for i := range n.Matrix {
		m[i] = float32(n.Matrix[i])
		if n.Matrix[i] != 0 {
			hasMatrix = true
		}
	}
	if hasMatrix && m != math.Identity() {
		return m
	}

	t := math.Vec3{X: float32(n.Translation[0]), Y: float32(n.Translation[1]), Z: float32(n.Translation[2])}
	r := math.QuatFromArray([4]float32{
		float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2]), float32(n.Rotation[3]),
	})
	s := math.Vec3{X: float32(n.Scale[0]), Y: float32(n.Scale[1]), Z: float32(n.Scale[2])}
	if s == (math.Vec3{}) {
		s = math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return math.TRS(t, r, s)
}

func (l *loader) addMesh(idx int, world math.Mat4) {
	if idx < 0 || idx >= len(l.doc.Meshes) {
		return
	}
	gm := l.doc.Meshes[idx]
	for pi, prim := range gm.Primitives {
		mesh, err := l.readPrimitive(prim)
		if err != nil {
			logger.Warn("skipping primitive",
				zap.String("mesh", gm.Name),
				zap.Int("primitive", pi),
				zap.Error(err),
			)
			continue
		}
		mesh.Name = gm.Name
		mesh.Transform(world)
		l.meshes = append(l.meshes, mesh)
	}
}

func (l *loader) readPrimitive(prim *gltf.Primitive) (*Mesh, error) {
	doc := l.doc
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil, fmt.Errorf("unsupported primitive mode %v", prim.Mode)
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("reading texture coordinates: %w", err)
		}
	}

	vertices, err := Interleave(positions, normals, uvs)
	if err != nil {
		return nil, err
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
	} else {
		indices = SequentialIndices(len(vertices))
	}

	if normals == nil {
		ComputeNormals(vertices, indices)
	}

	mesh := &Mesh{Vertices: vertices, Indices: indices}
	mesh.computeBounds()
	mesh.Texture = l.baseColor(prim)
	return mesh, nil
}

// baseColor finds the primitive's base-color image, or nil.
func (l *loader) baseColor(prim *gltf.Primitive) *TextureSource {
	doc := l.doc
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return nil
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return nil
	}
	texIdx := mat.PBRMetallicRoughness.BaseColorTexture.Index
	if texIdx >= len(doc.Textures) || doc.Textures[texIdx].Source == nil {
		return nil
	}
	imgIdx := *doc.Textures[texIdx].Source
	if imgIdx >= len(doc.Images) {
		return nil
	}
	img := doc.Images[imgIdx]

	src := &TextureSource{Name: img.Name}
	switch {
	case img.BufferView != nil:
		data, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			logger.Warn("embedded image not read", zap.Int("image", imgIdx), zap.Error(err))
			return nil
		}
		src.Data = data
		src.Name = imageName(img.Name, img.MimeType)
	case img.IsEmbeddedResource():
		data, err := img.MarshalData()
		if err != nil {
			logger.Warn("data URI image not read", zap.Int("image", imgIdx), zap.Error(err))
			return nil
		}
		src.Data = data
		src.Name = imageName(img.Name, img.MimeType)
	case img.URI != "":
		uri, err := url.PathUnescape(img.URI)
		if err != nil {
			uri = img.URI
		}
		src.Path = filepath.Join(l.dir, filepath.FromSlash(uri))
		if src.Name == "" {
			src.Name = filepath.Base(src.Path)
		}
	default:
		return nil
	}
	return src
}

// imageName gives embedded images a name with an extension, so TGA data can
// be told apart from sniffable formats.
func imageName(name, mime string) string {
	if name == "" {
		name = "embedded"
	}
	if filepath.Ext(name) != "" {
		return name
	}
	switch mime {
	case "image/png":
		return name + ".png"
	case "image/jpeg":
		return name + ".jpg"
	}
	return name
}
