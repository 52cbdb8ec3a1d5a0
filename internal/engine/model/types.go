// Package model loads glTF meshes and uploads them to the GPU.
package model

import (
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
// The layout matches the lit shader's attributes 0, 1 and 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// TextureSource points at a mesh's base-color image, either as a file on
// disk or as bytes embedded in the model.
type TextureSource struct {
	Name string
	Path string
	Data []byte
}

// Mesh holds one triangle primitive ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	Texture  *TextureSource
}

// Model is every mesh of a loaded file, already in model space.
type Model struct {
	Path   string
	Meshes []*Mesh
	Bounds Bounds
}

// VertexCount returns the total number of vertices across meshes.
func (m *Model) VertexCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Vertices)
	}
	return n
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns bounds that any point will extend.
func EmptyBounds() Bounds {
	inf := float32(gomath.Inf(1))
	return Bounds{
		Min: [3]float32{inf, inf, inf},
		Max: [3]float32{-inf, -inf, -inf},
	}
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0]
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the box extent on each axis.
func (b Bounds) Size() math.Vec3 {
	return math.Vec3{
		X: b.Max[0] - b.Min[0],
		Y: b.Max[1] - b.Min[1],
		Z: b.Max[2] - b.Min[2],
	}
}

func (b *Bounds) add(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func (b *Bounds) merge(o Bounds) {
	if o.Empty() {
		return
	}
	b.add(o.Min)
	b.add(o.Max)
}
