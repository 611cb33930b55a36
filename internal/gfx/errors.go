package gfx

import "errors"

// Package errors for GPU context construction and rendering.
var (
	// ErrNoAdapter is returned when no GPU adapter compatible with the
	// window surface exists.
	ErrNoAdapter = errors.New("gfx: no adapter found")

	// ErrNoConfig is returned when the surface reports no usable
	// presentation configuration.
	ErrNoConfig = errors.New("gfx: no surface configuration available")

	// ErrDeviceRequest is returned when logical device creation fails.
	ErrDeviceRequest = errors.New("gfx: device request failed")

	// ErrShaderCompile is returned when the embedded shader source
	// fails to compile.
	ErrShaderCompile = errors.New("gfx: shader compilation failed")

	// ErrSurfaceAcquire is returned when the next presentable texture
	// cannot be acquired, for example after the surface is lost.
	ErrSurfaceAcquire = errors.New("gfx: surface texture acquisition failed")
)
