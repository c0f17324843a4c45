package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
)

// ErrWrite is a failure of the underlying writer.
type ErrWrite struct {
	Err error
}

func (err ErrWrite) Error() string {
	return f("write %v", err.Err)
}

func (err ErrWrite) Unwrap() error {
	return err.Err
}
