package model

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is a mesh uploaded to vertex and index buffers.
type GPUMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	vertCount  int32

	// Texture is the diffuse texture bound by the scene before drawing.
	// Zero means none.
	Texture uint32
}

// Upload creates GPU buffers for mesh using the Vertex layout.
func Upload(mesh *Mesh) *GPUMesh {
	g := &GPUMesh{}
	if len(mesh.Vertices) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	if len(mesh.Indices) > 0 {
		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)
		g.indexCount = int32(len(mesh.Indices))
	} else {
		g.vertCount = int32(len(mesh.Vertices))
	}

	gl.BindVertexArray(0)
	return g
}

// UploadPositions creates a non-indexed mesh with a position-only layout.
func UploadPositions(positions []float32) *GPUMesh {
	g := &GPUMesh{}
	if len(positions) == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	g.vertCount = int32(len(positions) / 3)
	gl.BindVertexArray(0)
	return g
}

// Draw issues the draw call. The caller binds the program and textures.
func (g *GPUMesh) Draw() {
	if g == nil || g.vao == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	if g.indexCount > 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.vertCount)
	}
	gl.BindVertexArray(0)
}

// Delete releases the buffers. Texture is owned by the caller.
func (g *GPUMesh) Delete() {
	if g == nil {
		return
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	*g = GPUMesh{}
}
