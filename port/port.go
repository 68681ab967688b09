package port

import "errors"

// ErrNoTransmit is returned by Funcs when no transmit function is set.
var ErrNoTransmit = errors.New("dlog: port has no transmit function")

// Port is the transmit side of a diagnostic channel.
//
// TransmitByte starts the transmission of a single byte and may return
// before the byte has left the wire. The consumer waits for a completion
// signal before offering the next byte, so implementations must arrange
// for exactly one completion per accepted byte: either through
// CompletionBinder, or by having an external interrupt handler call the
// transport's TransmitComplete.
type Port interface {
	// Initialize prepares the underlying hardware. It is called once,
	// before the first TransmitByte.
	Initialize() error
	// TransmitByte starts transmission of one byte. An error means the
	// byte was not accepted and no completion will follow.
	TransmitByte(b byte) error
	// Reset performs a port-specific reset, typically putting the
	// hardware back into a known state.
	Reset()
}

// CompletionBinder is implemented by ports that deliver their own
// transmit-complete signals. The transport binds the completion callback
// before the consumer starts; the port must invoke it exactly once per
// byte accepted by TransmitByte.
type CompletionBinder interface {
	BindCompletion(complete func())
}

// Funcs adapts plain functions to the Port interface. Nil InitFunc and
// ResetFunc are no-ops; a nil TransmitFunc makes TransmitByte fail with
// ErrNoTransmit.
type Funcs struct {
	InitFunc     func() error
	TransmitFunc func(b byte) error
	ResetFunc    func()
}

// Initialize calls InitFunc if set.
func (f Funcs) Initialize() error {
	if f.InitFunc == nil {
		return nil
	}
	return f.InitFunc()
}

// TransmitByte calls TransmitFunc.
func (f Funcs) TransmitByte(b byte) error {
	if f.TransmitFunc == nil {
		return ErrNoTransmit
	}
	return f.TransmitFunc(b)
}

// Reset calls ResetFunc if set.
func (f Funcs) Reset() {
	if f.ResetFunc != nil {
		f.ResetFunc()
	}
}
