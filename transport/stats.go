package transport

import (
	"sync/atomic"

	"github.com/philipp01105/dlog/core"
)

// Stats tracks transport statistics
type Stats struct {
	// EnqueuedTotal counts records accepted into the queue
	EnqueuedTotal uint64
	// Separate atomic counters per severity for overflow drops
	DroppedInfo    uint64
	DroppedWarning uint64
	DroppedError   uint64
	// SentinelTotal counts overflow sentinel substitutions
	SentinelTotal uint64
	// BudgetTotal counts records refused by the memory budget
	BudgetTotal uint64
	// TransmittedRecords counts records fully framed onto the wire
	TransmittedRecords uint64
	// TransmittedBytes counts the bytes of those records
	TransmittedBytes uint64
	// TransmitErrors counts bytes the port refused
	TransmitErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEnqueued atomically increments the enqueued counter
func (s *Stats) IncrementEnqueued() {
	atomic.AddUint64(&s.EnqueuedTotal, 1)
}

// IncrementDropped atomically increments the dropped counter for a severity
func (s *Stats) IncrementDropped(severity core.Severity) {
	switch severity {
	case core.SeverityInfo:
		atomic.AddUint64(&s.DroppedInfo, 1)
	case core.SeverityWarning:
		atomic.AddUint64(&s.DroppedWarning, 1)
	case core.SeverityError:
		atomic.AddUint64(&s.DroppedError, 1)
	}
}

// IncrementSentinel atomically increments the sentinel substitution counter
func (s *Stats) IncrementSentinel() {
	atomic.AddUint64(&s.SentinelTotal, 1)
}

// IncrementBudget atomically increments the budget refusal counter
func (s *Stats) IncrementBudget() {
	atomic.AddUint64(&s.BudgetTotal, 1)
}

// AddTransmitted atomically records one fully transmitted record of n bytes
func (s *Stats) AddTransmitted(n int) {
	atomic.AddUint64(&s.TransmittedRecords, 1)
	atomic.AddUint64(&s.TransmittedBytes, uint64(n))
}

// IncrementTransmitError atomically increments the transmit error counter
func (s *Stats) IncrementTransmitError() {
	atomic.AddUint64(&s.TransmitErrors, 1)
}

// GetEnqueued returns the enqueued count
func (s *Stats) GetEnqueued() uint64 {
	return atomic.LoadUint64(&s.EnqueuedTotal)
}

// GetDropped returns the dropped count for a severity
func (s *Stats) GetDropped(severity core.Severity) uint64 {
	switch severity {
	case core.SeverityInfo:
		return atomic.LoadUint64(&s.DroppedInfo)
	case core.SeverityWarning:
		return atomic.LoadUint64(&s.DroppedWarning)
	case core.SeverityError:
		return atomic.LoadUint64(&s.DroppedError)
	default:
		return 0
	}
}

// GetTotalDropped returns the total dropped across all severities
func (s *Stats) GetTotalDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedInfo) +
		atomic.LoadUint64(&s.DroppedWarning) +
		atomic.LoadUint64(&s.DroppedError)
}

// GetSentinel returns the sentinel substitution count
func (s *Stats) GetSentinel() uint64 {
	return atomic.LoadUint64(&s.SentinelTotal)
}

// GetBudget returns the budget refusal count
func (s *Stats) GetBudget() uint64 {
	return atomic.LoadUint64(&s.BudgetTotal)
}

// GetTransmitErrors returns the transmit error count
func (s *Stats) GetTransmitErrors() uint64 {
	return atomic.LoadUint64(&s.TransmitErrors)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.EnqueuedTotal, 0)
	atomic.StoreUint64(&s.DroppedInfo, 0)
	atomic.StoreUint64(&s.DroppedWarning, 0)
	atomic.StoreUint64(&s.DroppedError, 0)
	atomic.StoreUint64(&s.SentinelTotal, 0)
	atomic.StoreUint64(&s.BudgetTotal, 0)
	atomic.StoreUint64(&s.TransmittedRecords, 0)
	atomic.StoreUint64(&s.TransmittedBytes, 0)
	atomic.StoreUint64(&s.TransmitErrors, 0)
}

// Snapshot is a point-in-time copy of the transport statistics
type Snapshot struct {
	EnqueuedTotal      uint64
	Dropped            map[core.Severity]uint64
	SentinelTotal      uint64
	BudgetTotal        uint64
	TransmittedRecords uint64
	TransmittedBytes   uint64
	TransmitErrors     uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		EnqueuedTotal: s.GetEnqueued(),
		Dropped: map[core.Severity]uint64{
			core.SeverityInfo:    s.GetDropped(core.SeverityInfo),
			core.SeverityWarning: s.GetDropped(core.SeverityWarning),
			core.SeverityError:   s.GetDropped(core.SeverityError),
		},
		SentinelTotal:      s.GetSentinel(),
		BudgetTotal:        s.GetBudget(),
		TransmittedRecords: atomic.LoadUint64(&s.TransmittedRecords),
		TransmittedBytes:   atomic.LoadUint64(&s.TransmittedBytes),
		TransmitErrors:     s.GetTransmitErrors(),
	}
}
