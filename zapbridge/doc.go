// Package zapbridge implements a zapcore.Core that submits entries
// through a diagnostic transport, so services already instrumented with
// zap can mirror their logs onto the byte-level diagnostic channel.
//
// Structured fields are flattened into the message text as " key=value"
// pairs in sorted key order, with zap namespaces joined by dots. The
// entry's logger name, when set via Named, becomes the producer on the
// wire; otherwise the core's configured producer name is used.
package zapbridge
