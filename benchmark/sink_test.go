package benchmark_test

import (
	"sync"
	"testing"
)

// countingDiscard drops everything but serialises access and counts bytes,
// which keeps the hot path closer to a real output than io.Discard.
type countingDiscard struct {
	mu  sync.Mutex
	sum int64
}

func (c *countingDiscard) Write(p []byte) (int, error) {
	c.mu.Lock()
	c.sum += int64(len(p))
	c.mu.Unlock()
	return len(p), nil
}

func (c *countingDiscard) Sync() error { return nil }

func (c *countingDiscard) bytesWritten() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sum
}

func reportBytesPerOp(b *testing.B, sink *countingDiscard) {
	if b.N > 0 {
		b.ReportMetric(float64(sink.bytesWritten())/float64(b.N), "bytes/op")
	}
}
