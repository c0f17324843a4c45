package io

import (
	"io"
	"strconv"
)

// Console prints each value it receives as a decimal number followed by
// a newline.
type Console struct {
	Output io.Writer

	Count int // Values printed.
}

var _ Channel = (*Console)(nil)

// Send writes the decimal representation of the value to the output.
// Each value is a single write.
func (cc *Console) Send(value byte) (err error) {
	if cc.Output == nil {
		err = ErrChannelClosed
		return
	}

	line := strconv.AppendUint(nil, uint64(value), 10)
	line = append(line, '\n')

	_, err = cc.Output.Write(line)
	if err != nil {
		err = ErrWrite{Err: err}
		return
	}

	cc.Count++

	return
}

// Record keeps every value it receives in memory.
type Record struct {
	Values []byte
}

var _ Channel = (*Record)(nil)

// Send appends the value to the record.
func (rc *Record) Send(value byte) error {
	rc.Values = append(rc.Values, value)
	return nil
}

// Rewind discards all recorded values.
func (rc *Record) Rewind() {
	rc.Values = rc.Values[:0]
}
