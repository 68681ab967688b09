package queue

import (
	"sync"
	"time"

	"github.com/philipp01105/dlog/core"
)

// Outcome reports what TryEnqueue did with a record.
type Outcome int

const (
	// Accepted means the record was stored in the queue.
	Accepted Outcome = iota
	// Replaced means the record was discarded and the overflow sentinel
	// was stored in the last free slot instead.
	Replaced
	// Rejected means the queue was full (or closed) and the record was
	// dropped without a trace.
	Rejected
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "Accepted"
	case Replaced:
		return "Replaced"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Queue is a bounded FIFO of records with a non-blocking producer side
// and a blocking single-consumer side.
type Queue struct {
	mu       sync.Mutex
	ring     []*core.Record
	head     int
	count    int
	sentinel *core.Record
	closed   bool

	notify   chan struct{}
	closedCh chan struct{}
}

// New creates a queue holding at most capacity records. The sentinel is
// the static record substituted when the last free slot is taken; it must
// not be nil. Capacities below one are raised to one.
func New(capacity int, sentinel *core.Record) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{
		ring:     make([]*core.Record, capacity),
		sentinel: sentinel,
		notify:   make(chan struct{}, 1),
		closedCh: make(chan struct{}),
	}
}

// TryEnqueue offers a record to the queue without blocking. On Replaced
// and Rejected the record was not stored and the caller still owns it.
func (q *Queue) TryEnqueue(rec *core.Record) Outcome {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Rejected
	}
	free := len(q.ring) - q.count
	switch {
	case free == 0:
		q.mu.Unlock()
		return Rejected
	case free == 1:
		q.push(q.sentinel)
		q.mu.Unlock()
		q.wake()
		return Replaced
	default:
		q.push(rec)
		q.mu.Unlock()
		q.wake()
		return Accepted
	}
}

// push appends under q.mu.
func (q *Queue) push(rec *core.Record) {
	q.ring[(q.head+q.count)%len(q.ring)] = rec
	q.count++
}

// wake nudges a blocked consumer. The channel holds one token; a pending
// token already guarantees a wakeup, so the send never blocks.
func (q *Queue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Dequeue removes the oldest record. It blocks until a record arrives,
// the timeout expires, or the queue is closed and empty. A negative
// timeout blocks indefinitely. The second return value is false when no
// record was obtained.
//
// After Close, Dequeue keeps returning buffered records until the queue
// is drained.
func (q *Queue) Dequeue(timeout time.Duration) (*core.Record, bool) {
	var deadline <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		q.mu.Lock()
		if q.count > 0 {
			rec := q.ring[q.head]
			q.ring[q.head] = nil
			q.head = (q.head + 1) % len(q.ring)
			q.count--
			q.mu.Unlock()
			return rec, true
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return nil, false
		}

		select {
		case <-q.notify:
		case <-q.closedCh:
		case <-deadline:
			return nil, false
		}
	}
}

// Close marks the queue closed. Subsequent TryEnqueue calls are Rejected;
// buffered records remain available to Dequeue. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	close(q.closedCh)
}

// Len returns the number of buffered records.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.ring)
}

// Free returns the number of unused slots.
func (q *Queue) Free() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ring) - q.count
}
