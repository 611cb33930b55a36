package gfx

import _ "embed"

// shaderSource is the one embedded shader asset: a WGSL module whose
// vertex entry point derives the triangle's clip-space positions from
// the vertex index, so the pipeline needs no vertex buffers.
//
//go:embed shader.wgsl
var shaderSource string
