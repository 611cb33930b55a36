// Package gfx owns the GPU side of the program: the WebGPU surface
// bound to the window, the logical device and its command queue, the
// compiled triangle pipeline, and the per-frame render pass.
//
// A Gfx is built exactly once per run, after the first WindowCreated
// event, and is used exclusively from the state machine goroutine.
// Every construction failure is fatal to the caller; there is no
// retry, fallback or reconfiguration path.
package gfx
