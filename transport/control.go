package transport

// Scheduler performs task suspension on behalf of the freeze
// operations. Host applications supply an implementation that maps onto
// whatever task model they run; the transport never suspends anything
// on its own.
type Scheduler interface {
	// SuspendAll halts every task in the system.
	SuspendAll()
	// SuspendSelf halts only the calling task.
	SuspendSelf()
}

// FreezeAll suspends every task so the system can be inspected in
// place. Permitted only at the highest tier. It reports whether the
// suspension was actually performed.
func (t *Transport) FreezeAll() bool {
	if !t.tier.AllowsFreezeAll() || t.sched == nil {
		return false
	}
	t.sched.SuspendAll()
	return true
}

// FreezeSelf suspends the calling task, leaving the rest of the system
// running. Permitted at any tier that also logs.
func (t *Transport) FreezeSelf() bool {
	if !t.tier.AllowsFreezeSelf() || t.sched == nil {
		return false
	}
	t.sched.SuspendSelf()
	return true
}

// Reset triggers the port's reset action, typically a system reset.
// Permitted at every tier except off.
func (t *Transport) Reset() bool {
	if !t.tier.AllowsReset() || t.port == nil {
		return false
	}
	t.port.Reset()
	return true
}
