package blacklog

import (
	"sync"
	"sync/atomic"
)

// FilterAction is a filter's verdict on one record.
type FilterAction uint8

const (
	// FilterNeutral defers to the next decision stage.
	FilterNeutral FilterAction = iota
	FilterAccept
	FilterDeny
)

// Filter inspects an inactive record. It must not retain the record.
type Filter interface {
	Filter(rec *Record) FilterAction
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(rec *Record) FilterAction

func (fn FilterFunc) Filter(rec *Record) FilterAction { return fn(rec) }

// NullFilter stays neutral on every record.
type NullFilter struct{}

func (NullFilter) Filter(*Record) FilterAction { return FilterNeutral }

// FilteredLogger runs an exchangeable filter in front of another logger.
// Only FilterDeny drops the record; neutral and accept both pass it on.
type FilteredLogger struct {
	logger Logger
	mu     sync.RWMutex
	filter Filter
}

func NewFilteredLogger(logger Logger) *FilteredLogger {
	return &FilteredLogger{logger: logger, filter: NullFilter{}}
}

// SetFilter swaps the filter. Records already past the filter are
// unaffected.
func (l *FilteredLogger) SetFilter(f Filter) {
	if f == nil {
		f = NullFilter{}
	}
	l.mu.Lock()
	l.filter = f
	l.mu.Unlock()
}

func (l *FilteredLogger) Enabled(sev Severity) bool { return l.logger.Enabled(sev) }

func (l *FilteredLogger) Log(rec *Record, format string, args ...any) {
	l.mu.RLock()
	f := l.filter
	l.mu.RUnlock()
	if f.Filter(rec) == FilterDeny {
		return
	}
	l.logger.Log(rec, format, args...)
}

// SeverityFilteredLogger drops records below a severity threshold before
// they are activated, so a rejected event never pays for message formatting.
// A record passes when its severity is at least the threshold; the default
// threshold of zero passes everything. Severity values are an open scale, so
// the comparison direction is the caller's convention.
type SeverityFilteredLogger struct {
	logger    Logger
	threshold atomic.Int32
}

func NewSeverityFilteredLogger(logger Logger) *SeverityFilteredLogger {
	return &SeverityFilteredLogger{logger: logger}
}

// SetThreshold changes the accepted severity range at runtime.
func (l *SeverityFilteredLogger) SetThreshold(threshold Severity) {
	l.threshold.Store(int32(threshold))
}

func (l *SeverityFilteredLogger) Threshold() Severity {
	return Severity(l.threshold.Load())
}

func (l *SeverityFilteredLogger) Enabled(sev Severity) bool {
	return int32(sev) >= l.threshold.Load() && l.logger.Enabled(sev)
}

func (l *SeverityFilteredLogger) Log(rec *Record, format string, args ...any) {
	if int32(rec.Severity()) < l.threshold.Load() {
		return
	}
	l.logger.Log(rec, format, args...)
}
