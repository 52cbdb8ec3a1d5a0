package model

import (
	"fmt"

	"github.com/Faultbox/roomview/pkg/math"
)

// Interleave zips per-attribute arrays into vertices. Normals and texture
// coordinates may be nil; a non-nil array must match positions in length.
func Interleave(positions, normals [][3]float32, uvs [][2]float32) ([]Vertex, error) {
	if normals != nil && len(normals) != len(positions) {
		return nil, fmt.Errorf("%d normals for %d positions", len(normals), len(positions))
	}
	if uvs != nil && len(uvs) != len(positions) {
		return nil, fmt.Errorf("%d texture coordinates for %d positions", len(uvs), len(positions))
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i].Position = p
		if normals != nil {
			vertices[i].Normal = normals[i]
		}
		if uvs != nil {
			vertices[i].TexCoord = uvs[i]
		}
	}
	return vertices, nil
}

// SequentialIndices returns 0..n-1 for non-indexed primitives.
func SequentialIndices(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

// ComputeNormals sets each vertex normal to the normalized sum of the
// normals of the triangles that use it. Triangles are weighted by area.
func ComputeNormals(vertices []Vertex, indices []uint32) {
	sums := make([]math.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(vertices) || int(b) >= len(vertices) || int(c) >= len(vertices) {
			continue
		}
		pa := math.Vec3FromArray(vertices[a].Position)
		pb := math.Vec3FromArray(vertices[b].Position)
		pc := math.Vec3FromArray(vertices[c].Position)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	}
	for i := range vertices {
		vertices[i].Normal = sums[i].Normalize().Array()
	}
}

// Transform moves mesh vertices by m and recomputes bounds. Normals get the
// rotation and scale part only.
func (mesh *Mesh) Transform(m math.Mat4) {
	mesh.Bounds = EmptyBounds()
	for i := range mesh.Vertices {
		v := &mesh.Vertices[i]
		v.Position = m.TransformVec3(math.Vec3FromArray(v.Position)).Array()
		v.Normal = m.TransformDirection(math.Vec3FromArray(v.Normal)).Normalize().Array()
		mesh.Bounds.add(v.Position)
	}
}

// computeBounds recalculates the mesh bounds from its vertices.
func (mesh *Mesh) computeBounds() {
	mesh.Bounds = EmptyBounds()
	for i := range mesh.Vertices {
		mesh.Bounds.add(mesh.Vertices[i].Position)
	}
}
