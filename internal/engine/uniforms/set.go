// Package uniforms builds the per-frame shader parameter sets.
//
// A Set is plain data: it is produced without touching OpenGL and bound to a
// program later by the shader package.
package uniforms

import (
	"fmt"
	"sort"

	"github.com/Faultbox/roomview/pkg/math"
)

// Kind tags the type held by a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindVec3
	KindMat4
)

// String returns the GLSL type name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVec3:
		return "vec3"
	case KindMat4:
		return "mat4"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one uniform value. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Int   int32
	Float float32
	Vec3  math.Vec3
	Mat4  math.Mat4
}

// Int returns an int value.
func Int(v int32) Value { return Value{Kind: KindInt, Int: v} }

// Float returns a float value.
func Float(v float32) Value { return Value{Kind: KindFloat, Float: v} }

// Vec3 returns a vec3 value.
func Vec3(v math.Vec3) Value { return Value{Kind: KindVec3, Vec3: v} }

// Mat4 returns a mat4 value.
func Mat4(v math.Mat4) Value { return Value{Kind: KindMat4, Mat4: v} }

// Set maps uniform names to values for one draw call.
type Set map[string]Value

// Names returns the uniform names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge copies every entry of other into s, overwriting duplicates.
func (s Set) Merge(other Set) {
	for k, v := range other {
		s[k] = v
	}
}
