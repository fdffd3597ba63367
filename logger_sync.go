package blacklog

import "sync"

// SyncLogger delivers records to its handles on the calling goroutine. The
// handle set can be swapped at runtime with Reset, so configuration reloads
// never require rebuilding the logger callers hold.
type SyncLogger struct {
	mu      sync.RWMutex
	handles []Handle
}

func NewSyncLogger(handles []Handle) *SyncLogger {
	return &SyncLogger{handles: handles}
}

// Reset replaces the handle set. In-flight Log calls finish against the set
// they started with.
func (l *SyncLogger) Reset(handles []Handle) {
	l.mu.Lock()
	l.handles = handles
	l.mu.Unlock()
}

func (l *SyncLogger) Enabled(Severity) bool { return true }

// Log activates the record and hands it to every handle. Handle errors are
// dropped; a logger cannot reasonably log its own failures, and callers that
// need delivery guarantees talk to a Handle directly.
func (l *SyncLogger) Log(rec *Record, format string, args ...any) {
	rec.Activate(format, args...)
	l.mu.RLock()
	handles := l.handles
	l.mu.RUnlock()
	for _, h := range handles {
		_ = h.Handle(rec)
	}
}
