package app

import "errors"

// Package errors for event plumbing and the state machine.
var (
	// ErrQueueClosed is returned when pushing to or receiving from a
	// closed event queue.
	ErrQueueClosed = errors.New("app: event queue closed")

	// ErrUnexpectedEvent is returned when an event arrives before
	// WindowCreated has been processed.
	ErrUnexpectedEvent = errors.New("app: unexpected event")
)
