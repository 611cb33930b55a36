package app

import (
	"errors"
	"testing"
	"time"
)

// TestQueueFIFO verifies events come out in the order they went in.
func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	events := []Event{
		WindowCreated{},
		RedrawRequested{},
		RedrawRequested{},
		WindowClose{},
	}
	for _, e := range events {
		if err := q.Push(e); err != nil {
			t.Fatalf("Push(%T) = %v", e, err)
		}
	}

	for i, want := range events {
		got, err := q.Recv()
		if err != nil {
			t.Fatalf("Recv() #%d = %v", i, err)
		}
		if got != want {
			t.Errorf("Recv() #%d = %T, want %T", i, got, want)
		}
	}
}

// TestQueueProducerNeverBlocks verifies a producer can enqueue a large
// backlog with no consumer attached.
func TestQueueProducerNeverBlocks(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 10000; i++ {
		if err := q.Push(RedrawRequested{}); err != nil {
			t.Fatalf("Push() #%d = %v", i, err)
		}
	}
}

// TestQueueRecvBlocksUntilPush verifies the consumer blocks on an
// empty queue and wakes when an event arrives.
func TestQueueRecvBlocksUntilPush(t *testing.T) {
	q := NewQueue()

	got := make(chan Event, 1)
	go func() {
		e, err := q.Recv()
		if err != nil {
			t.Errorf("Recv() = %v", err)
		}
		got <- e
	}()

	select {
	case e := <-got:
		t.Fatalf("Recv() returned %T before any Push", e)
	case <-time.After(10 * time.Millisecond):
	}

	if err := q.Push(WindowClose{}); err != nil {
		t.Fatalf("Push() = %v", err)
	}

	select {
	case e := <-got:
		if _, ok := e.(WindowClose); !ok {
			t.Errorf("Recv() = %T, want WindowClose", e)
		}
	case <-time.After(time.Second):
		t.Fatal("Recv() did not wake after Push")
	}
}

// TestQueuePushAfterClose verifies pushes fail once the queue is
// closed.
func TestQueuePushAfterClose(t *testing.T) {
	q := NewQueue()
	q.Close()

	if err := q.Push(RedrawRequested{}); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Push() after Close = %v, want ErrQueueClosed", err)
	}
}

// TestQueueCloseDrains verifies queued events are still delivered
// after Close, and only then the closed error surfaces.
func TestQueueCloseDrains(t *testing.T) {
	q := NewQueue()
	if err := q.Push(RedrawRequested{}); err != nil {
		t.Fatalf("Push() = %v", err)
	}
	if err := q.Push(WindowClose{}); err != nil {
		t.Fatalf("Push() = %v", err)
	}
	q.Close()

	if e, err := q.Recv(); err != nil {
		t.Fatalf("Recv() = %v", err)
	} else if _, ok := e.(RedrawRequested); !ok {
		t.Errorf("Recv() = %T, want RedrawRequested", e)
	}
	if e, err := q.Recv(); err != nil {
		t.Fatalf("Recv() = %v", err)
	} else if _, ok := e.(WindowClose); !ok {
		t.Errorf("Recv() = %T, want WindowClose", e)
	}

	if _, err := q.Recv(); !errors.Is(err, ErrQueueClosed) {
		t.Errorf("Recv() on drained closed queue = %v, want ErrQueueClosed", err)
	}
}

// TestQueueCloseWakesBlockedConsumer verifies Close unblocks a waiting
// Recv.
func TestQueueCloseWakesBlockedConsumer(t *testing.T) {
	q := NewQueue()

	errc := make(chan error, 1)
	go func() {
		_, err := q.Recv()
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrQueueClosed) {
			t.Errorf("Recv() = %v, want ErrQueueClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Recv() did not wake after Close")
	}
}

// TestQueueConcurrentOrder verifies FIFO delivery with the producer
// and consumer on different goroutines.
func TestQueueConcurrentOrder(t *testing.T) {
	q := NewQueue()
	const n = 1000

	go func() {
		for i := 0; i < n; i++ {
			_ = q.Push(RedrawRequested{})
		}
		_ = q.Push(WindowClose{})
	}()

	redraws := 0
	for {
		e, err := q.Recv()
		if err != nil {
			t.Fatalf("Recv() = %v", err)
		}
		if _, ok := e.(WindowClose); ok {
			break
		}
		redraws++
	}
	if redraws != n {
		t.Errorf("received %d redraws before close, want %d", redraws, n)
	}
}
