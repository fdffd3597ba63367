package blacklog

import (
	"io"
	"os"
	"sync"
)

// Output delivers a rendered log line to its destination. The record rides
// along so path-routing outputs can derive a destination from it.
type Output interface {
	Write(rec *Record, message []byte) error
}

// TermOutput writes lines to a terminal or any writer, one per call, under a
// lock so concurrent loggers do not interleave.
type TermOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTermOutput writes to stdout.
func NewTermOutput() *TermOutput {
	return NewTermOutputTo(os.Stdout)
}

func NewTermOutputTo(w io.Writer) *TermOutput {
	return &TermOutput{w: w}
}

func (o *TermOutput) Write(_ *Record, message []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(message); err != nil {
		return err
	}
	_, err := o.w.Write(newline)
	return err
}

var newline = []byte{'\n'}

// NullOutput discards everything.
type NullOutput struct{}

func (NullOutput) Write(*Record, []byte) error { return nil }
