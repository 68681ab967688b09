// Package queue provides the bounded FIFO buffer that decouples message
// producers from the single transmit consumer.
//
// The queue never blocks a producer. TryEnqueue inspects the remaining
// free space inside one critical section and reports an Outcome:
//
//   - Accepted: two or more slots were free and the record was stored.
//   - Replaced: exactly one slot was free. The record is discarded and the
//     queue's static overflow sentinel takes the last slot, so the stream
//     itself carries the evidence that messages went missing.
//   - Rejected: the queue was full (or closed) and the record was dropped
//     silently.
//
// The sentinel is a single static record shared by every substitution; it
// may reside in the queue more than once and is never released. Callers
// own the release of records handed back via Replaced or Rejected.
//
// Dequeue is intended for a single consumer. It blocks until a record is
// available, the optional timeout expires, or the queue is closed and
// drained. Closing wakes the consumer but remaining records stay readable,
// so a shutdown can flush everything already accepted.
package queue
