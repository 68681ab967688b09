package slogbridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/dlog/core"
	"github.com/philipp01105/dlog/transport"
)

// Handler is an adapter that implements slog.Handler on top of a
// transport producer. This lets the diagnostic channel serve as a
// drop-in backend for log/slog.
type Handler struct {
	producer *transport.Producer
	level    slog.Level
	attrText []byte
	group    string
}

// New creates a slog.Handler adapter submitting through the given
// producer. Records below level are refused by Enabled.
func New(p *transport.Producer, level slog.Level) *Handler {
	return &Handler{
		producer: p,
		level:    level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders a slog.Record into a single text payload and submits
// it without blocking.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	text := make([]byte, 0, len(record.Message)+len(h.attrText)+32)
	text = append(text, record.Message...)
	text = append(text, h.attrText...)
	record.Attrs(func(a slog.Attr) bool {
		text = appendAttr(text, h.group, a)
		return true
	})

	h.producer.Log(toSeverity(record.Level), text)
	return nil
}

// WithAttrs returns a new Handler with additional pre-rendered
// attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	text := append([]byte(nil), h.attrText...)
	for _, a := range attrs {
		text = appendAttr(text, h.group, a)
	}
	return &Handler{
		producer: h.producer,
		level:    h.level,
		attrText: text,
		group:    h.group,
	}
}

// WithGroup returns a new Handler whose subsequent attribute keys are
// prefixed with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		producer: h.producer,
		level:    h.level,
		attrText: append([]byte(nil), h.attrText...),
		group:    group,
	}
}

// toSeverity converts a slog.Level to a record severity. Debug has no
// counterpart and rides along as Info.
func toSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError:
		return core.SeverityError
	case level >= slog.LevelWarn:
		return core.SeverityWarning
	default:
		return core.SeverityInfo
	}
}

// appendAttr renders one attribute as " key=value", joining group
// prefixes with dots and flattening nested groups.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		prefix := a.Key
		if prefix == "" {
			// Inline group: members keep the surrounding prefix.
			prefix = group
		} else if group != "" {
			prefix = group + "." + a.Key
		}
		for _, member := range a.Value.Group() {
			dst = appendAttr(dst, prefix, member)
		}
		return dst
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	dst = append(dst, ' ')
	dst = append(dst, key...)
	dst = append(dst, '=')
	dst = append(dst, a.Value.String()...)
	return dst
}
