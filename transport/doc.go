// Package transport ties the diagnostic pipeline together: severity
// filtering, the bounded queue, the consumer goroutine and the
// byte-level port handshake.
//
// Producers never block and never touch hardware. A message below the
// configured tier's threshold is discarded before any allocation; an
// admitted message is copied into a budgeted record and offered to the
// queue without waiting. When the queue is down to its last slot the
// record is replaced by a static "Queue Full!" sentinel, and when it is
// completely full the record vanishes silently. The outcome of every
// submission is visible through Stats.
//
// A single consumer goroutine owns the port. It dequeues records and
// frames them as
//
//	<tag> ':' <producer> ':' <text> '\n'
//
// where the tag is 'I', 'W' or 'E'. Each byte is handed to the port
// individually and the consumer waits for a completion signal before
// the next byte, so a slow wire backs pressure up into the queue rather
// than into the producers. Ports that raise interrupts deliver the
// signal through TransmitComplete (or bind it via port.CompletionBinder);
// synchronous ports complete inline.
//
// The tier also gates three control operations for halting or restarting
// a system under inspection: FreezeAll (full tier), FreezeSelf (any
// logging tier) and Reset (any tier above off). A transport whose tier
// logs nothing still honors the control operations the tier allows, and
// costs nothing else.
package transport
