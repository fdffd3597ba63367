package blacklog

import "sync"

const actorQueueDepth = 128

// ActorLogger moves delivery off the calling goroutine: Log snapshots the
// record into an owned buffer and queues it for a single worker that feeds
// the handles. The queue blocks when full, trading latency for not dropping
// records.
type ActorLogger struct {
	queue  chan *RecordBuf
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

func NewActorLogger(handles []Handle) *ActorLogger {
	l := &ActorLogger{
		queue: make(chan *RecordBuf, actorQueueDepth),
		done:  make(chan struct{}),
	}
	go l.run(handles)
	return l
}

func (l *ActorLogger) run(handles []Handle) {
	defer close(l.done)
	for buf := range l.queue {
		buf.Borrow(func(rec *Record) {
			for _, h := range handles {
				_ = h.Handle(rec)
			}
		})
	}
}

func (l *ActorLogger) Enabled(Severity) bool { return true }

// Log activates the record and queues an owned snapshot of it. Records
// logged after Close are dropped.
func (l *ActorLogger) Log(rec *Record, format string, args ...any) {
	rec.Activate(format, args...)
	buf := NewRecordBuf(rec)
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return
	}
	l.queue <- buf
}

// Close stops accepting records, drains the queue and waits for the worker
// to finish. Safe to call more than once.
func (l *ActorLogger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()
	<-l.done
	return nil
}
