package port

import "io"

// WriterPort drives any io.Writer as a Port. Every byte is written
// immediately and the bound completion fires before TransmitByte
// returns, so the consumer never stalls waiting for hardware.
//
// WriterPort is not safe for concurrent TransmitByte calls; the
// transport's single consumer is the intended caller.
type WriterPort struct {
	// ResetFunc, when set, is invoked by Reset.
	ResetFunc func()

	w        io.Writer
	buf      [1]byte
	complete func()
}

// NewWriter creates a WriterPort writing to w.
func NewWriter(w io.Writer) *WriterPort {
	return &WriterPort{w: w}
}

// Initialize implements Port. It does nothing; the writer is assumed
// ready.
func (p *WriterPort) Initialize() error {
	return nil
}

// TransmitByte writes b to the underlying writer and fires the bound
// completion. A write error suppresses the completion.
func (p *WriterPort) TransmitByte(b byte) error {
	p.buf[0] = b
	if _, err := p.w.Write(p.buf[:]); err != nil {
		return err
	}
	if p.complete != nil {
		p.complete()
	}
	return nil
}

// Reset calls ResetFunc if set.
func (p *WriterPort) Reset() {
	if p.ResetFunc != nil {
		p.ResetFunc()
	}
}

// BindCompletion implements CompletionBinder. It must be called before
// the first TransmitByte.
func (p *WriterPort) BindCompletion(complete func()) {
	p.complete = complete
}
