package model

// cubeFaces lists each face of the unit cube as its outward normal and the
// two in-plane axes u and v, chosen so that u x v = normal.
var cubeFaces = [6]struct {
	normal, u, v [3]float32
}{
	{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
}

// Cube returns a cube of the given edge length centered on the origin, with
// per-face normals, texture coordinates and counter-clockwise winding.
func Cube(size float32) *Mesh {
	h := size / 2
	mesh := &Mesh{
		Name:     "cube",
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		base := uint32(len(mesh.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = (f.normal[i] + c[0]*f.u[i] + c[1]*f.v[i]) * h
			}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: p,
				Normal:   f.normal,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}

	mesh.computeBounds()
	return mesh
}

// SkyboxPositions returns the 36 positions of a unit cube as seen from
// inside, for drawing with the depth test at the far plane.
func SkyboxPositions() []float32 {
	cube := Cube(2)
	out := make([]float32, 0, len(cube.Indices)*3)
	// Reverse each triangle so the inner faces are front-facing.
	for i := 0; i+2 < len(cube.Indices); i += 3 {
		for _, idx := range [3]uint32{cube.Indices[i], cube.Indices[i+2], cube.Indices[i+1]} {
			p := cube.Vertices[idx].Position
			out = append(out, p[0], p[1], p[2])
		}
	}
	return out
}
