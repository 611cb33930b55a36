package app

import "fmt"

// WindowCallbacks is the capability set the OS event loop invokes on
// window-system activity. Bridge is the one concrete implementation.
type WindowCallbacks interface {
	// WindowReady reports the freshly created window.
	WindowReady(w WindowHandle)

	// CloseRequested reports that the user asked to close the window.
	CloseRequested()

	// RedrawRequested reports that the window contents need redrawing.
	RedrawRequested()
}

// Bridge translates window-system callbacks into typed events on the
// hand-off queue. It runs on the OS event loop thread and never
// blocks: the queue is unbounded, so every send returns immediately.
//
// A failed send means the consumer side is gone and the program cannot
// make progress, so Bridge panics rather than retrying.
type Bridge struct {
	queue *Queue
}

var _ WindowCallbacks = (*Bridge)(nil)

// NewBridge creates a bridge producing into q.
func NewBridge(q *Queue) *Bridge {
	return &Bridge{queue: q}
}

// WindowReady enqueues WindowCreated for the given window.
func (b *Bridge) WindowReady(w WindowHandle) {
	b.send(WindowCreated{Window: w})
}

// CloseRequested enqueues WindowClose.
func (b *Bridge) CloseRequested() {
	b.send(WindowClose{})
}

// RedrawRequested enqueues RedrawRequested.
func (b *Bridge) RedrawRequested() {
	b.send(RedrawRequested{})
}

func (b *Bridge) send(e Event) {
	if err := b.queue.Push(e); err != nil {
		panic(fmt.Errorf("app: send %T: %w", e, err))
	}
}
