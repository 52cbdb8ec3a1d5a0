// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms the model and passes world-space data to the
// lighting stage.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies the directional, point and spot lights.
//
//go:embed lit.frag
var LitFragmentShader string

// MarkerVertexShader is the vertex shader for light-marker cubes.
//
//go:embed marker.vert
var MarkerVertexShader string

// MarkerFragmentShader paints a marker in its light's colour.
//
//go:embed marker.frag
var MarkerFragmentShader string

// SkyboxVertexShader is the vertex shader for the cubemap skybox.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the skybox cubemap.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
