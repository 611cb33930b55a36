// Package app contains the windowing-independent core of the program:
// the lifecycle event types, the unbounded hand-off queue between the
// OS event loop thread and the render goroutine, the event bridge that
// feeds the queue from window-system callbacks, and the state machine
// that consumes it.
//
// # Threading
//
// Exactly two execution contexts touch this package: the OS event loop
// thread produces events through Bridge, and a single goroutine
// consumes them through State.Run. The queue is the only shared state;
// the producer never blocks and the consumer blocks while the queue is
// empty.
//
// # Lifecycle
//
// The state machine expects WindowCreated as the very first event,
// builds the renderer exactly once from it, then draws one frame per
// RedrawRequested until WindowClose arrives. Any event delivered
// before WindowCreated is a protocol violation and fatal.
package app
