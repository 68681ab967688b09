package zapbridge

import (
	"fmt"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/dlog/core"
	"github.com/philipp01105/dlog/transport"
)

// Core implements zapcore.Core on top of a diagnostic transport.
type Core struct {
	zapcore.LevelEnabler
	tr       *transport.Transport
	producer string
	fields   []zapcore.Field
}

// NewCore creates a zap core submitting through tr. The producer name
// stamps entries whose logger has no name of its own; empty defaults to
// "zap".
func NewCore(tr *transport.Transport, producer string, enab zapcore.LevelEnabler) *Core {
	if producer == "" {
		producer = "zap"
	}
	return &Core{
		LevelEnabler: enab,
		tr:           tr,
		producer:     producer,
	}
}

// With returns a copy of the core carrying the additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	combined := make([]zapcore.Field, len(c.fields)+len(fields))
	copy(combined, c.fields)
	copy(combined[len(c.fields):], fields)
	return &Core{
		LevelEnabler: c.LevelEnabler,
		tr:           c.tr,
		producer:     c.producer,
		fields:       combined,
	}
}

// Check adds the core to the checked entry if the level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields into a single text payload and
// submits it without blocking.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for i := range c.fields {
		c.fields[i].AddTo(enc)
	}
	for i := range fields {
		fields[i].AddTo(enc)
	}

	text := make([]byte, 0, len(ent.Message)+32)
	text = append(text, ent.Message...)
	text = appendFields(text, "", enc.Fields)

	producer := ent.LoggerName
	if producer == "" {
		producer = c.producer
	}
	c.tr.Log(toSeverity(ent.Level), producer, text)
	return nil
}

// Sync is a no-op; delivery is owned by the transport's consumer.
func (c *Core) Sync() error {
	return nil
}

// toSeverity converts a zap level to a record severity. Debug rides
// along as Info; DPanic and above collapse into Error.
func toSeverity(level zapcore.Level) core.Severity {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.SeverityError
	case level >= zapcore.WarnLevel:
		return core.SeverityWarning
	default:
		return core.SeverityInfo
	}
}

// appendFields renders the encoded fields as " key=value" pairs in
// sorted key order, flattening namespaces with dots.
func appendFields(dst []byte, prefix string, fields map[string]any) []byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := fields[k].(map[string]any); ok {
			dst = appendFields(dst, key, nested)
			continue
		}
		dst = fmt.Appendf(dst, " %s=%v", key, fields[k])
	}
	return dst
}
