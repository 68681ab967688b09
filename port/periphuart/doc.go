// Package periphuart drives a serial device as a transmit port using the
// periph.io hardware stack.
//
// Bytes are pushed one at a time over the UART connection. When the
// configuration names a GPIO interrupt pin, a watcher goroutine waits for
// falling edges on that line and reports each one as a transmit-complete
// signal, mirroring hardware whose UART raises an interrupt after every
// byte leaves the shift register. Without an interrupt pin the port
// completes synchronously after each write, which is the right behavior
// for USB serial adapters and other buffered devices.
package periphuart
