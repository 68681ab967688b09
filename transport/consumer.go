package transport

import (
	"errors"

	"github.com/philipp01105/dlog/core"
)

// Wire framing: severity tag, separator, producer, separator, text,
// terminator. A motor overcurrent warning goes out as "W:motor:overcurrent\n".
const (
	frameSeparator  = ':'
	frameTerminator = '\n'
)

// errAborted reports that the shutdown deadline fired while a byte was
// still waiting for its completion.
var errAborted = errors.New("dlog: transmit aborted by shutdown")

// run is the consumer loop. It owns the port: records leave the queue
// one at a time and every byte waits for the completion signal before
// the next is offered.
func (t *Transport) run() {
	defer t.wg.Done()

	for {
		rec, ok := t.queue.Dequeue(-1)
		if !ok {
			return
		}
		err := t.transmit(rec)
		t.pool.Release(rec)
		if errors.Is(err, errAborted) {
			return
		}
	}
}

// transmit frames one record onto the port. A port error abandons the
// rest of the record; the loop moves on to the next one.
func (t *Transport) transmit(rec *core.Record) error {
	if err := t.sendByte(rec.Severity.Tag()); err != nil {
		return err
	}
	if err := t.sendByte(frameSeparator); err != nil {
		return err
	}
	for i := 0; i < len(rec.Producer); i++ {
		if err := t.sendByte(rec.Producer[i]); err != nil {
			return err
		}
	}
	if err := t.sendByte(frameSeparator); err != nil {
		return err
	}
	for _, b := range rec.Text {
		if err := t.sendByte(b); err != nil {
			return err
		}
	}
	if err := t.sendByte(frameTerminator); err != nil {
		return err
	}

	t.stats.AddTransmitted(frameLen(rec))
	return nil
}

// frameLen is the on-wire size of a record: tag, two separators, the
// terminator and the payload.
func frameLen(rec *core.Record) int {
	return 4 + len(rec.Producer) + len(rec.Text)
}

// sendByte starts one byte and blocks until the port reports completion
// or shutdown gives up waiting.
func (t *Transport) sendByte(b byte) error {
	if err := t.port.TransmitByte(b); err != nil {
		t.stats.IncrementTransmitError()
		return err
	}
	select {
	case <-t.txDone:
		return nil
	case <-t.abort:
		return errAborted
	}
}
