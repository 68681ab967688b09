package transport

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/philipp01105/dlog/core"
	"github.com/philipp01105/dlog/port"
	"github.com/philipp01105/dlog/queue"
)

// SentinelProducer is the producer name carried by the overflow sentinel.
const SentinelProducer = "debug"

var (
	// ErrTierUnset is returned by New when Config.Tier was left at its
	// zero value. The tier must always be an explicit choice.
	ErrTierUnset = errors.New("dlog: no tier set")
	// ErrNoPort is returned by New when the tier enables logging but no
	// port was provided.
	ErrNoPort = errors.New("dlog: logging tier requires a port")
)

// Config holds configuration for a Transport
type Config struct {
	// Tier selects which severities are logged and which control
	// operations are permitted. Required: the zero value fails New.
	Tier core.Tier
	// Port is the hardware sink. Required whenever Tier enables
	// logging; at lower tiers it is optional and only serves Reset.
	Port port.Port
	// Capacity is the queue depth in records (default: 64)
	Capacity int
	// MemoryLimit bounds the total bytes of buffered message text.
	// Zero or negative means unlimited.
	MemoryLimit int64
	// ProducerName is the name used by the transport's own logging
	// methods (default: "main")
	ProducerName string
	// Scheduler performs task suspension for the freeze operations.
	// Optional.
	Scheduler Scheduler
	// DrainTimeout bounds how long Close waits for buffered records to
	// reach the wire (default: 5s)
	DrainTimeout time.Duration
}

// Transport is an asynchronous diagnostic channel. Producers submit
// messages without blocking; a single consumer goroutine drains the
// queue and pushes each record onto the port one byte at a time, waiting
// for the port's completion signal between bytes.
type Transport struct {
	tier      core.Tier
	threshold core.Severity
	enabled   bool
	producer  string

	pool  *core.Pool
	queue *queue.Queue
	port  port.Port
	sched Scheduler
	stats *Stats

	txDone chan struct{}
	abort  chan struct{}
	closed chan struct{}

	wg           sync.WaitGroup
	closeOnce    sync.Once
	drainTimeout time.Duration
}

// New creates a Transport. When the tier enables logging it initializes
// the port and starts the consumer; at lower tiers the transport is
// inert apart from the control operations the tier permits.
func New(cfg Config) (*Transport, error) {
	if !cfg.Tier.Valid() {
		return nil, ErrTierUnset
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = 64
	}
	if cfg.ProducerName == "" {
		cfg.ProducerName = "main"
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	t := &Transport{
		tier:         cfg.Tier,
		producer:     cfg.ProducerName,
		port:         cfg.Port,
		sched:        cfg.Scheduler,
		stats:        NewStats(),
		abort:        make(chan struct{}),
		closed:       make(chan struct{}),
		drainTimeout: cfg.DrainTimeout,
	}

	threshold, enabled := cfg.Tier.Threshold()
	if !enabled {
		return t, nil
	}
	if cfg.Port == nil {
		return nil, ErrNoPort
	}

	t.threshold = threshold
	t.enabled = true
	t.pool = core.NewPool(cfg.MemoryLimit)
	t.queue = queue.New(cfg.Capacity, core.NewSentinel(SentinelProducer))
	t.txDone = make(chan struct{}, 1)

	// The port may deliver its own completions; bind before it can
	// observe any transmit.
	if binder, ok := cfg.Port.(port.CompletionBinder); ok {
		binder.BindCompletion(t.TransmitComplete)
	}
	if err := cfg.Port.Initialize(); err != nil {
		return nil, fmt.Errorf("dlog: port initialization failed: %w", err)
	}

	t.wg.Add(1)
	go t.run()
	return t, nil
}

// Tier returns the tier the transport was created with.
func (t *Transport) Tier() core.Tier {
	return t.tier
}

// admits reports whether a record of the given severity passes the tier
// filter. Filtered messages cost no allocation.
func (t *Transport) admits(severity core.Severity) bool {
	return t.enabled && core.ShouldLog(severity, t.threshold)
}

// Log submits one message without blocking. The text is copied; the
// caller keeps ownership of its buffer. Messages below the tier
// threshold are discarded before any allocation, and a NUL byte
// truncates the text.
func (t *Transport) Log(severity core.Severity, producer string, text []byte) {
	if !t.admits(severity) {
		return
	}
	select {
	case <-t.closed:
		return
	default:
	}

	rec, ok := t.pool.NewRecord(severity, producer, text)
	if !ok {
		t.stats.IncrementBudget()
		return
	}
	switch t.queue.TryEnqueue(rec) {
	case queue.Accepted:
		t.stats.IncrementEnqueued()
	case queue.Replaced:
		t.stats.IncrementSentinel()
		t.stats.IncrementDropped(severity)
		t.pool.Release(rec)
	case queue.Rejected:
		t.stats.IncrementDropped(severity)
		t.pool.Release(rec)
	}
}

// Info submits an informational message under the transport's own
// producer name.
func (t *Transport) Info(text string) {
	if !t.admits(core.SeverityInfo) {
		return
	}
	t.Log(core.SeverityInfo, t.producer, []byte(text))
}

// Infof submits a formatted informational message.
func (t *Transport) Infof(format string, args ...any) {
	if !t.admits(core.SeverityInfo) {
		return
	}
	t.Log(core.SeverityInfo, t.producer, fmt.Appendf(nil, format, args...))
}

// Warning submits a warning message.
func (t *Transport) Warning(text string) {
	if !t.admits(core.SeverityWarning) {
		return
	}
	t.Log(core.SeverityWarning, t.producer, []byte(text))
}

// Warningf submits a formatted warning message.
func (t *Transport) Warningf(format string, args ...any) {
	if !t.admits(core.SeverityWarning) {
		return
	}
	t.Log(core.SeverityWarning, t.producer, fmt.Appendf(nil, format, args...))
}

// Error submits an error message.
func (t *Transport) Error(text string) {
	if !t.admits(core.SeverityError) {
		return
	}
	t.Log(core.SeverityError, t.producer, []byte(text))
}

// Errorf submits a formatted error message.
func (t *Transport) Errorf(format string, args ...any) {
	if !t.admits(core.SeverityError) {
		return
	}
	t.Log(core.SeverityError, t.producer, fmt.Appendf(nil, format, args...))
}

// TransmitComplete signals that the byte most recently handed to the
// port has left the wire. Interrupt handlers route here when the port
// does not bind its own completion. Safe to call from any goroutine;
// redundant signals are coalesced.
func (t *Transport) TransmitComplete() {
	if t.txDone == nil {
		return
	}
	select {
	case t.txDone <- struct{}{}:
	default:
	}
}

// Stats returns a snapshot of the current statistics
func (t *Transport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

// MemoryInUse returns the bytes currently held by buffered message text.
func (t *Transport) MemoryInUse() int64 {
	if t.pool == nil {
		return 0
	}
	return t.pool.InUse()
}

// Close stops accepting messages, waits up to DrainTimeout for buffered
// records to finish transmitting, then releases whatever remains. Close
// is idempotent.
func (t *Transport) Close() error {
	t.closeOnce.Do(func() {
		close(t.closed)
		if !t.enabled {
			return
		}
		t.queue.Close()

		abortTimer := time.AfterFunc(t.drainTimeout, func() {
			close(t.abort)
		})
		t.wg.Wait()
		abortTimer.Stop()

		// Return anything the consumer abandoned to the pool.
		for {
			rec, ok := t.queue.Dequeue(0)
			if !ok {
				break
			}
			t.pool.Release(rec)
		}
	})
	return nil
}
