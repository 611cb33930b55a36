package app

import "fmt"

// Phase is the lifecycle position of the state machine.
type Phase int

const (
	// PhaseUninitialized is the zero value, before NewState.
	PhaseUninitialized Phase = iota

	// PhaseAwaitingFirstWindow means no WindowCreated event has been
	// processed yet; the renderer does not exist.
	PhaseAwaitingFirstWindow

	// PhaseRunning means the renderer exists and frames are drawn on
	// demand.
	PhaseRunning

	// PhaseClosed is terminal.
	PhaseClosed
)

// Renderer produces one rendered and presented frame per call.
type Renderer interface {
	RenderFrame() error
	Close() error
}

// RendererFunc constructs the program's one Renderer from the window
// the event bridge reported. Construction may be slow (adapter and
// device negotiation with the GPU driver) and runs on the state
// machine goroutine.
type RendererFunc func(w WindowHandle) (Renderer, error)

// State consumes lifecycle events from the hand-off queue and drives
// the renderer. It owns at most one window and at most one renderer;
// the renderer is nil until exactly one WindowCreated event has been
// processed and non-nil from then on.
type State struct {
	queue       *Queue
	newRenderer RendererFunc

	phase    Phase
	window   WindowHandle
	renderer Renderer
}

// NewState creates a state machine consuming q. The renderer is built
// by calling f exactly once.
func NewState(q *Queue, f RendererFunc) *State {
	return &State{
		queue:       q,
		newRenderer: f,
		phase:       PhaseAwaitingFirstWindow,
	}
}

// Phase returns the current lifecycle position.
func (s *State) Phase() Phase {
	return s.phase
}

// Run drives the state machine until WindowClose arrives or a fatal
// error occurs. The first event must be WindowCreated; anything else
// is a protocol violation. Every error is fatal: Run returns and the
// renderer, if any, is released.
func (s *State) Run() error {
	ev, err := s.queue.Recv()
	if err != nil {
		return fmt.Errorf("app: receive first event: %w", err)
	}
	created, ok := ev.(WindowCreated)
	if !ok {
		return fmt.Errorf("%w: %T before WindowCreated", ErrUnexpectedEvent, ev)
	}
	s.window = created.Window

	renderer, err := s.newRenderer(s.window)
	if err != nil {
		return fmt.Errorf("app: construct renderer: %w", err)
	}
	s.renderer = renderer
	s.phase = PhaseRunning

	for {
		ev, err := s.queue.Recv()
		if err != nil {
			_ = s.release()
			return fmt.Errorf("app: receive event: %w", err)
		}

		switch ev.(type) {
		case RedrawRequested:
			if err := s.renderer.RenderFrame(); err != nil {
				_ = s.release()
				return fmt.Errorf("app: render frame: %w", err)
			}
		case WindowClose:
			s.phase = PhaseClosed
			return s.release()
		default:
			// The window is created once in this design; a repeated
			// WindowCreated is ignored.
		}
	}
}

func (s *State) release() error {
	if s.renderer == nil {
		return nil
	}
	err := s.renderer.Close()
	s.renderer = nil
	if err != nil {
		return fmt.Errorf("app: close renderer: %w", err)
	}
	return nil
}
