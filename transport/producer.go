package transport

import (
	"fmt"

	"github.com/philipp01105/dlog/core"
)

// Producer is a named handle for submitting messages through a shared
// transport. Handles are cheap; create one per task or subsystem so the
// wire identifies who said what.
type Producer struct {
	t    *Transport
	name string
}

// Producer returns a handle that stamps messages with the given name.
// An empty name falls back to the transport's own producer name.
func (t *Transport) Producer(name string) *Producer {
	if name == "" {
		name = t.producer
	}
	return &Producer{t: t, name: name}
}

// Name returns the producer name.
func (p *Producer) Name() string {
	return p.name
}

// Log submits one message under this producer's name.
func (p *Producer) Log(severity core.Severity, text []byte) {
	p.t.Log(severity, p.name, text)
}

// Info submits an informational message.
func (p *Producer) Info(text string) {
	if !p.t.admits(core.SeverityInfo) {
		return
	}
	p.t.Log(core.SeverityInfo, p.name, []byte(text))
}

// Infof submits a formatted informational message.
func (p *Producer) Infof(format string, args ...any) {
	if !p.t.admits(core.SeverityInfo) {
		return
	}
	p.t.Log(core.SeverityInfo, p.name, fmt.Appendf(nil, format, args...))
}

// Warning submits a warning message.
func (p *Producer) Warning(text string) {
	if !p.t.admits(core.SeverityWarning) {
		return
	}
	p.t.Log(core.SeverityWarning, p.name, []byte(text))
}

// Warningf submits a formatted warning message.
func (p *Producer) Warningf(format string, args ...any) {
	if !p.t.admits(core.SeverityWarning) {
		return
	}
	p.t.Log(core.SeverityWarning, p.name, fmt.Appendf(nil, format, args...))
}

// Error submits an error message.
func (p *Producer) Error(text string) {
	if !p.t.admits(core.SeverityError) {
		return
	}
	p.t.Log(core.SeverityError, p.name, []byte(text))
}

// Errorf submits a formatted error message.
func (p *Producer) Errorf(format string, args ...any) {
	if !p.t.admits(core.SeverityError) {
		return
	}
	p.t.Log(core.SeverityError, p.name, fmt.Appendf(nil, format, args...))
}
