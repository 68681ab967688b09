// Package slogbridge adapts a diagnostic transport producer to
// log/slog, so application code written against the standard structured
// logger can feed the byte-level diagnostic channel.
//
// Attributes are flattened into the message text as " key=value" pairs,
// with group names joined by dots, because the wire format carries a
// single text payload per record. Debug and Info map to the Info
// severity; Warn and Error map to theirs. The handler applies its own
// minimum level first; the transport tier still filters downstream.
package slogbridge
