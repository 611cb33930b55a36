package app

// WindowHandle is the subset of the native window the rest of the
// program needs: the event bridge reports it, the graphics context
// reads its drawable size. The concrete implementation is
// *glfw.Window.
type WindowHandle interface {
	// GetFramebufferSize returns the drawable size in pixels.
	GetFramebufferSize() (width, height int)
}

// Event is a lifecycle notification forwarded from the OS event loop
// thread to the state machine. The concrete events are WindowCreated,
// WindowClose and RedrawRequested; delivery is strictly FIFO.
type Event interface {
	isEvent()
}

// WindowCreated reports that the native window exists and carries its
// handle. It must be the first event the state machine receives.
type WindowCreated struct {
	Window WindowHandle
}

// WindowClose reports that the user asked to close the window.
type WindowClose struct{}

// RedrawRequested reports that the window needs a new frame.
type RedrawRequested struct{}

func (WindowCreated) isEvent()   {}
func (WindowClose) isEvent()     {}
func (RedrawRequested) isEvent() {}
