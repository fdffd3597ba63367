package blacklog

import "sync"

const (
	lineBufDefaultCap = 1024
	lineBufMaxCap     = 64 << 10
)

// lineBuf stages one rendered log line before it is handed to the outputs,
// so a slow sink never observes a partially formatted record. Buffers are
// pooled; oversized ones are dropped on release to keep the pool bounded.
type lineBuf struct {
	buf []byte
}

var lineBufPool = sync.Pool{
	New: func() any {
		return &lineBuf{buf: make([]byte, 0, lineBufDefaultCap)}
	},
}

func acquireLineBuf() *lineBuf {
	lb := lineBufPool.Get().(*lineBuf)
	lb.buf = lb.buf[:0]
	return lb
}

func releaseLineBuf(lb *lineBuf) {
	if cap(lb.buf) > lineBufMaxCap {
		lb.buf = make([]byte, 0, lineBufDefaultCap)
	} else {
		lb.buf = lb.buf[:0]
	}
	lineBufPool.Put(lb)
}

func (lb *lineBuf) Write(p []byte) (int, error) {
	lb.buf = append(lb.buf, p...)
	return len(p), nil
}

func (lb *lineBuf) WriteString(s string) (int, error) {
	lb.buf = append(lb.buf, s...)
	return len(s), nil
}

func (lb *lineBuf) WriteByte(c byte) error {
	lb.buf = append(lb.buf, c)
	return nil
}

func (lb *lineBuf) Bytes() []byte { return lb.buf }

func (lb *lineBuf) String() string { return string(lb.buf) }

func (lb *lineBuf) Len() int { return len(lb.buf) }
