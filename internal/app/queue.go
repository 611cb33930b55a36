package app

import "sync"

// Queue is the unbounded FIFO hand-off queue between the OS event loop
// thread (single producer) and the state machine goroutine (single
// consumer). Push never blocks; Recv blocks while the queue is empty.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []Event
	closed bool
}

// NewQueue creates an empty, open queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends an event and wakes the consumer. It returns
// ErrQueueClosed if Close has been called.
func (q *Queue) Push(e Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.events = append(q.events, e)
	q.cond.Signal()
	return nil
}

// Recv removes and returns the oldest event, blocking while the queue
// is empty. Once the queue is closed and drained it returns
// ErrQueueClosed.
func (q *Queue) Recv() (Event, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return nil, ErrQueueClosed
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, nil
}

// Close marks the queue closed and wakes a blocked consumer. Events
// already queued are still delivered; further pushes fail.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}
