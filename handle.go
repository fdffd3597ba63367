package blacklog

import "io"

// Handle turns an activated record into bytes and delivers them to its
// outputs. Handles sit between loggers and outputs and own the layout.
type Handle interface {
	Handle(rec *Record) error
}

// SyncHandle renders the record through a layout into a pooled buffer and
// fans the finished line out to every output. Outputs never see a partially
// rendered record.
type SyncHandle struct {
	layout  Layout
	outputs []Output
}

func NewSyncHandle(layout Layout, outputs []Output) *SyncHandle {
	return &SyncHandle{layout: layout, outputs: outputs}
}

func (h *SyncHandle) Handle(rec *Record) error {
	lb := acquireLineBuf()
	defer releaseLineBuf(lb)
	if err := h.layout.Format(rec, lb); err != nil {
		return err
	}
	for _, out := range h.outputs {
		if err := out.Write(rec, lb.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// WriterHandle renders straight into an io.Writer, bypassing the output
// layer. Useful in tests and for simple single-sink setups.
type WriterHandle struct {
	layout Layout
	w      io.Writer
}

func NewWriterHandle(layout Layout, w io.Writer) *WriterHandle {
	return &WriterHandle{layout: layout, w: w}
}

func (h *WriterHandle) Handle(rec *Record) error {
	lb := acquireLineBuf()
	defer releaseLineBuf(lb)
	if err := h.layout.Format(rec, lb); err != nil {
		return err
	}
	_ = lb.WriteByte('\n')
	_, err := h.w.Write(lb.Bytes())
	return err
}
