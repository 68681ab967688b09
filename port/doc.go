// Package port defines the hardware-facing side of the diagnostic
// transport: a byte-at-a-time transmit interface with an explicit
// completion handshake.
//
// A Port accepts one byte per TransmitByte call. The consumer does not
// send the next byte until the port signals that the previous one left
// the wire; ports that raise interrupts (or any other async completion)
// deliver that signal by implementing CompletionBinder, while simple
// synchronous ports such as WriterPort fire the bound completion before
// TransmitByte returns. Exactly one completion must be delivered per
// successfully accepted byte.
//
// Built-in adapters:
//
//   - Funcs lifts three plain functions into a Port, for hardware that
//     already exposes init/send/reset hooks.
//   - WriterPort drives any io.Writer and completes synchronously, which
//     makes it the natural port for tests, files, and sockets.
//   - Subpackage periphuart drives a serial device through periph.io,
//     optionally using a GPIO interrupt line as the completion source.
package port
