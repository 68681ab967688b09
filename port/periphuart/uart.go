package periphuart

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// watchInterval bounds how long the edge watcher sleeps between stop
// checks while no interrupt arrives.
const watchInterval = 100 * time.Millisecond

// Config holds the configuration for a periph.io UART port.
type Config struct {
	// Device is the UART port name or path (e.g. "/dev/ttyAMA0").
	// Empty selects the first available port.
	Device string
	// Baud is the line rate. Defaults to 115200 if not provided.
	Baud int
	// IRQPin is the GPIO pin number (BCM numbering) of the
	// transmit-complete interrupt line. Optional. If not provided,
	// completions fire synchronously after each write.
	IRQPin int
	// ResetFunc, when set, is invoked by Reset.
	ResetFunc func()
}

// UART is a byte-at-a-time transmit port over a periph.io serial
// connection.
type UART struct {
	cfg  Config
	port uart.PortCloser
	conn conn.Conn
	irq  gpio.PinIO

	complete func()
	stop     chan struct{}
	wg       sync.WaitGroup
	buf      [1]byte
}

// New opens the serial device and, when configured, resolves the
// interrupt pin. The edge watcher is not started until Initialize.
func New(c Config) (*UART, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	if c.Baud == 0 {
		c.Baud = 115200
	}

	p, err := uartreg.Open(c.Device)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port %q: %w", c.Device, err)
	}

	cn, err := p.Connect(physic.Frequency(c.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to configure UART connection: %w", err)
	}

	u := &UART{
		cfg:  c,
		port: p,
		conn: cn,
		stop: make(chan struct{}),
	}

	if c.IRQPin != 0 {
		name := fmt.Sprintf("GPIO%d", c.IRQPin)
		pin := gpioreg.ByName(name)
		if pin == nil {
			p.Close()
			return nil, fmt.Errorf("failed to open IRQ pin %s", name)
		}
		u.irq = pin
	}

	return u, nil
}

// Initialize arms the interrupt pin and starts the edge watcher. Without
// an IRQ pin it does nothing.
func (u *UART) Initialize() error {
	if u.irq == nil {
		return nil
	}
	if err := u.irq.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return fmt.Errorf("failed to arm IRQ pin %s: %w", u.irq, err)
	}
	u.wg.Add(1)
	go u.watch()
	return nil
}

// watch reports each falling edge on the IRQ line as a completion. A
// finite wait keeps the goroutine responsive to Close even on quiet
// lines.
func (u *UART) watch() {
	defer u.wg.Done()
	for {
		select {
		case <-u.stop:
			return
		default:
		}
		if u.irq.WaitForEdge(watchInterval) {
			select {
			case <-u.stop:
				return
			default:
			}
			if u.complete != nil {
				u.complete()
			}
		}
	}
}

// TransmitByte pushes one byte onto the wire. With an IRQ pin the
// completion arrives from the edge watcher; otherwise it fires before
// returning.
func (u *UART) TransmitByte(b byte) error {
	u.buf[0] = b
	if err := u.conn.Tx(u.buf[:], nil); err != nil {
		return err
	}
	if u.irq == nil && u.complete != nil {
		u.complete()
	}
	return nil
}

// Reset calls ResetFunc if set.
func (u *UART) Reset() {
	if u.cfg.ResetFunc != nil {
		u.cfg.ResetFunc()
	}
}

// BindCompletion stores the completion callback. It must be called
// before Initialize.
func (u *UART) BindCompletion(complete func()) {
	u.complete = complete
}

// Close stops the edge watcher, disables edge detection and closes the
// serial port.
func (u *UART) Close() error {
	close(u.stop)
	u.wg.Wait()
	if u.irq != nil {
		// Disable edge detection; best effort on shutdown.
		_ = u.irq.In(gpio.PullUp, gpio.NoEdge)
	}
	return u.port.Close()
}
