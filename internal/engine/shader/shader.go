// Package shader provides OpenGL shader compilation and uniform binding.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/uniforms"
	"github.com/Faultbox/roomview/internal/logger"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	// Compile vertex shader
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	// Compile fragment shader
	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

// infoLog reads a driver info log of n bytes. Some drivers report 0.
func infoLog(n int32, read func(*uint8)) string {
	if n < 1 {
		return "(no info log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return string(buf[:n-1])
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Program is a linked shader program with a uniform location cache.
// A Program with ID 0 is invalid: every call on it is a no-op, so a failed
// compile degrades the frame instead of stopping the loop.
type Program struct {
	ID   uint32
	Name string

	locations map[string]int32
}

// NewProgram compiles a program from sources. On failure the error is
// logged and an invalid Program is returned.
func NewProgram(name, vertexSrc, fragmentSrc string) *Program {
	p := &Program{Name: name, locations: make(map[string]int32)}

	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		logger.Error("shader program failed", zap.String("program", name), zap.Error(err))
		return p
	}
	p.ID = id
	logger.Debug("shader program created", zap.String("program", name), zap.Uint32("id", id))
	return p
}

// LoadProgram reads vertex and fragment sources from disk and compiles them.
// Empty paths select the given built-in sources. See ReadSource for how
// unreadable files are handled.
func LoadProgram(name string, vertexPath, fragmentPath, builtinVertex, builtinFragment string) *Program {
	vs := ReadSource(vertexPath, builtinVertex)
	fs := ReadSource(fragmentPath, builtinFragment)
	return NewProgram(name, vs, fs)
}

// Valid reports whether the program linked.
func (p *Program) Valid() bool {
	return p != nil && p.ID != 0
}

// Use binds the program.
func (p *Program) Use() {
	if !p.Valid() {
		return
	}
	gl.UseProgram(p.ID)
}

// Location returns the cached uniform location for name.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.locations[name] = loc
	return loc
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if !p.Valid() {
		return
	}
	gl.Uniform1i(p.Location(name), v)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if !p.Valid() {
		return
	}
	gl.Uniform1f(p.Location(name), v)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, x, y, z float32) {
	if !p.Valid() {
		return
	}
	gl.Uniform3f(p.Location(name), x, y, z)
}

// SetMat4 sets a mat4 uniform from a column-major array.
func (p *Program) SetMat4(name string, m *[16]float32) {
	if !p.Valid() {
		return
	}
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

// Apply binds the program and uploads every value in s.
func (p *Program) Apply(s uniforms.Set) {
	if !p.Valid() {
		return
	}
	gl.UseProgram(p.ID)
	for _, name := range s.Names() {
		v := s[name]
		switch v.Kind {
		case uniforms.KindInt:
			p.SetInt(name, v.Int)
		case uniforms.KindFloat:
			p.SetFloat(name, v.Float)
		case uniforms.KindVec3:
			p.SetVec3(name, v.Vec3.X, v.Vec3.Y, v.Vec3.Z)
		case uniforms.KindMat4:
			m := [16]float32(v.Mat4)
			p.SetMat4(name, &m)
		}
	}
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if !p.Valid() {
		return
	}
	gl.DeleteProgram(p.ID)
	p.ID = 0
}
