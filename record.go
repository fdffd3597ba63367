package blacklog

import (
	"fmt"
	"iter"
	"time"
)

// Record is a single log event. It is built inactive at the call site with
// only the cheap fields filled in, so a logger can reject it before paying
// for message formatting, timestamping or goroutine identification. Activate
// performs that second phase exactly once.
type Record struct {
	severity  Severity
	sevFormat SeverityFormat
	line      int
	module    string
	thread    uint64
	message   string
	timestamp time.Time
	metas     *MetaLink
	active    bool
}

// NewRecord builds an inactive record. metas may be nil. The severity format
// defaults to numeric.
func NewRecord(severity Severity, line int, module string, metas *MetaLink) Record {
	return Record{
		severity:  severity,
		sevFormat: FormatSeverityNum,
		line:      line,
		module:    module,
		metas:     metas,
	}
}

// Activate formats the deferred message, stamps the current time and captures
// the calling goroutine's id. A second call is a no-op. With no args the
// format string is taken verbatim, skipping fmt entirely.
func (r *Record) Activate(format string, args ...any) {
	if r.active {
		return
	}
	if len(args) == 0 {
		r.message = format
	} else {
		r.message = fmt.Sprintf(format, args...)
	}
	r.timestamp = time.Now()
	r.thread = goroutineID()
	r.active = true
}

func (r *Record) Active() bool       { return r.active }
func (r *Record) Severity() Severity { return r.severity }
func (r *Record) Line() int          { return r.line }
func (r *Record) Module() string     { return r.module }

// Thread returns the id of the goroutine that activated the record, zero
// while inactive.
func (r *Record) Thread() uint64 { return r.thread }

// Message returns the formatted message, empty while inactive.
func (r *Record) Message() string { return r.message }

// Datetime returns the activation time, or the Unix epoch for an inactive
// record so rendering never observes a zero time.
func (r *Record) Datetime() time.Time {
	if !r.active {
		return time.Unix(0, 0)
	}
	return r.timestamp
}

// SeverityFormat returns the renderer used for the severity placeholder.
func (r *Record) SeverityFormat() SeverityFormat { return r.sevFormat }

// SetSeverityFormat replaces the severity renderer. Call before the record is
// handed to a logger.
func (r *Record) SetSeverityFormat(fn SeverityFormat) { r.sevFormat = fn }

// All iterates the attached attributes in chronological order.
func (r *Record) All() iter.Seq[*Meta] { return r.metas.All() }

// Find returns the earliest attached attribute with the given name.
func (r *Record) Find(name string) (*Meta, bool) { return r.metas.Find(name) }

// RecordBuf is a record detached from its call site: the attribute chain is
// flattened into an owned slice so the buffer can cross a channel to another
// goroutine after the caller's frame is gone.
type RecordBuf struct {
	severity  Severity
	sevFormat SeverityFormat
	line      int
	module    string
	thread    uint64
	message   string
	timestamp time.Time
	metas     []Meta
}

// NewRecordBuf snapshots an activated record.
func NewRecordBuf(rec *Record) *RecordBuf {
	return &RecordBuf{
		severity:  rec.severity,
		sevFormat: rec.sevFormat,
		line:      rec.line,
		module:    rec.module,
		thread:    rec.thread,
		message:   rec.message,
		timestamp: rec.timestamp,
		metas:     rec.metas.flatten(),
	}
}

// Borrow rebuilds a record view over the buffered data and passes it to fn.
// The record is only valid for the duration of the call.
func (b *RecordBuf) Borrow(fn func(rec *Record)) {
	rec := Record{
		severity:  b.severity,
		sevFormat: b.sevFormat,
		line:      b.line,
		module:    b.module,
		thread:    b.thread,
		message:   b.message,
		timestamp: b.timestamp,
		active:    true,
	}
	if len(b.metas) > 0 {
		rec.metas = NewMetaLink(b.metas)
	}
	fn(&rec)
}
