package benchmark

// noopPort accepts every byte and completes it immediately, so the
// benchmarks measure the transport rather than a real sink.
type noopPort struct {
	complete func()
}

func newNoopPort() *noopPort {
	return &noopPort{}
}

func (p *noopPort) Initialize() error {
	return nil
}

func (p *noopPort) TransmitByte(b byte) error {
	if p.complete != nil {
		p.complete()
	}
	return nil
}

func (p *noopPort) Reset() {}

func (p *noopPort) BindCompletion(complete func()) {
	p.complete = complete
}
