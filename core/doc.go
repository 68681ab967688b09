// Package core defines the shared types of the dlog transport.
//
// It provides the Severity type with its pure threshold predicate ShouldLog,
// the Tier decision table gating severities and control operations, and the
// Record type that travels through the bounded queue.
//
// Records are recycled via a Pool that also enforces an optional byte budget
// over live message text. Construction fails, without blocking or retrying,
// when the budget would be exceeded; the caller drops the message. This is
// the in-process equivalent of a fixed-size allocator running dry, and it is
// what keeps producer-side memory growth bounded under sustained overflow.
//
// The queue-full sentinel is the one static Record: severity Error, fixed
// text, no owned buffer. It is reused across overflow events and is never
// pooled or released.
package core
