package blacklog

import (
	"io"
	"os"
	"strconv"

	"pkt.systems/blacklog/ansi"
)

// DevHandle is a fixed, human-oriented console format for development runs:
// dimmed ISO timestamp, severity colored by value, goroutine and process
// ids, the message, then one indented line per attribute. Colors are applied
// only when the writer is a terminal.
type DevHandle struct {
	w     io.Writer
	color bool
}

// NewDevHandle writes to stdout.
func NewDevHandle() *DevHandle {
	return NewDevHandleTo(os.Stdout)
}

func NewDevHandleTo(w io.Writer) *DevHandle {
	return &DevHandle{w: w, color: isTerminal(w)}
}

func (h *DevHandle) Handle(rec *Record) error {
	lb := acquireLineBuf()
	defer releaseLineBuf(lb)

	h.styled(lb, ansi.Timestamp, func() {
		t := rec.Datetime().UTC()
		lb.buf = t.AppendFormat(lb.buf, "2006-01-02T15:04:05.999999999Z07:00")
	})

	_ = lb.WriteByte(' ')
	h.styled(lb, severityColor(rec.Severity()), func() {
		spec := DefaultSpec()
		spec.Precision = 1
		_ = rec.SeverityFormat()(rec.Severity(), NewFormatter(lb, spec))
	})

	h.styled(lb, ansi.Faint, func() {
		_, _ = lb.WriteString(" [0x")
		lb.buf = strconv.AppendUint(lb.buf, rec.Thread(), 16)
		_ = lb.WriteByte('/')
		lb.buf = strconv.AppendInt(lb.buf, int64(os.Getpid()), 10)
		_, _ = lb.WriteString("] - ")
	})

	h.styled(lb, ansi.Message, func() {
		_, _ = lb.WriteString(rec.Message())
	})
	_ = lb.WriteByte('\n')

	for m := range rec.All() {
		_ = lb.WriteByte('\t')
		h.styled(lb, ansi.Key, func() {
			_, _ = lb.WriteString(m.Name)
		})
		_, _ = lb.WriteString(": ")
		h.styled(lb, ansi.Faint, func() {
			_ = formatValue(NewFormatter(lb, DefaultSpec()), m.Value)
		})
		_ = lb.WriteByte('\n')
	}

	_, err := h.w.Write(lb.Bytes())
	return err
}

func (h *DevHandle) styled(lb *lineBuf, code string, body func()) {
	if h.color {
		_, _ = lb.WriteString(code)
	}
	body()
	if h.color {
		_, _ = lb.WriteString(ansi.Reset)
	}
}

func severityColor(sev Severity) string {
	switch sev {
	case SeverityError:
		return ansi.Error
	case SeverityWarn:
		return ansi.Warn
	case SeverityInfo:
		return ansi.Info
	case SeverityDebug:
		return ansi.Debug
	default:
		return ansi.Trace
	}
}
