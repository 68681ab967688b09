package core

import (
	"bytes"
	"sync"
	"sync/atomic"
)

// QueueFullText is the fixed text carried by the overflow sentinel
const QueueFullText = "Queue Full!"

// Record is the unit of transport: one severity-tagged message from one
// producer, with an owned text buffer.
//
// A record has exactly one owner at any time. The producer owns it until a
// successful enqueue, the queue owns it while resident, and the consumer
// owns it after dequeue until transmission completes and the record is
// released back to its Pool.
type Record struct {
	Severity Severity
	// Producer is the display name of the task that emitted the message
	Producer string
	// Text is the rendered message. The buffer is an exact-length copy made
	// at construction and is never grown or shared.
	Text []byte

	// static marks the queue-full sentinel, which owns no buffer and is
	// never pooled or released
	static bool
}

// Static reports whether the record is the statically allocated sentinel
func (r *Record) Static() bool {
	return r.static
}

// NewSentinel returns the static queue-full record. The transport creates
// exactly one and reuses it across overflow events; its text never changes
// and it never passes through a Pool.
func NewSentinel(producer string) *Record {
	return &Record{
		Severity: SeverityError,
		Producer: producer,
		Text:     []byte(QueueFullText),
		static:   true,
	}
}

// Pool hands out Records and charges the bytes of live message text against
// an optional budget. Record structs are recycled via sync.Pool; the text
// buffers are allocated per record at their exact length.
type Pool struct {
	limit int64
	used  atomic.Int64
	recs  sync.Pool
}

// NewPool creates a record pool. limit bounds the total bytes of live
// message text; 0 or negative means unlimited.
func NewPool(limit int64) *Pool {
	p := &Pool{limit: limit}
	p.recs.New = func() interface{} {
		return &Record{}
	}
	return p
}

// NewRecord builds a record owning an exact-length copy of text. It returns
// false when the byte budget would be exceeded; the caller must then drop
// the message without blocking or retrying. A NUL byte truncates the copy
// at that point, matching the C-string semantics of the rendered text.
func (p *Pool) NewRecord(severity Severity, producer string, text []byte) (*Record, bool) {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	if !p.reserve(int64(len(text))) {
		return nil, false
	}

	r := p.recs.Get().(*Record)
	r.Severity = severity
	r.Producer = producer
	buf := make([]byte, len(text))
	copy(buf, text)
	r.Text = buf
	return r, true
}

// Release returns the record's bytes to the budget and recycles the struct.
// Releasing nil or the static sentinel is a no-op.
func (p *Pool) Release(r *Record) {
	if r == nil || r.static {
		return
	}
	p.used.Add(-int64(len(r.Text)))
	r.Text = nil
	r.Producer = ""
	p.recs.Put(r)
}

// InUse returns the bytes of live message text currently charged to the pool
func (p *Pool) InUse() int64 {
	return p.used.Load()
}

func (p *Pool) reserve(n int64) bool {
	if p.limit <= 0 {
		p.used.Add(n)
		return true
	}
	for {
		cur := p.used.Load()
		if cur+n > p.limit {
			return false
		}
		if p.used.CompareAndSwap(cur, cur+n) {
			return true
		}
	}
}
