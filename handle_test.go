package blacklog

import (
	"bytes"
	"strings"
	"testing"
)

// captureOutput collects lines handed to it.
type captureOutput struct {
	lines [][]byte
}

func (o *captureOutput) Write(_ *Record, message []byte) error {
	o.lines = append(o.lines, append([]byte(nil), message...))
	return nil
}

func TestSyncHandleFanOut(t *testing.T) {
	layout, err := NewPatternLayout("{severity:d}:{message}")
	if err != nil {
		t.Fatalf("NewPatternLayout: %v", err)
	}
	a := &captureOutput{}
	b := &captureOutput{}
	h := NewSyncHandle(layout, []Output{a, b})

	rec := activatedRecord(SeverityWarn, "boom", nil)
	if err := h.Handle(&rec); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	for _, out := range []*captureOutput{a, b} {
		if len(out.lines) != 1 || string(out.lines[0]) != "2:boom" {
			t.Fatalf("lines = %q", out.lines)
		}
	}
}

func TestSyncHandleLayoutErrorSkipsOutputs(t *testing.T) {
	layout, err := NewPatternLayout("{missing}")
	if err != nil {
		t.Fatalf("NewPatternLayout: %v", err)
	}
	out := &captureOutput{}
	h := NewSyncHandle(layout, []Output{out})
	rec := activatedRecord(SeverityInfo, "x", nil)
	if err := h.Handle(&rec); err == nil {
		t.Fatal("want error for unresolved attribute")
	}
	if len(out.lines) != 0 {
		t.Fatalf("partial line reached output: %q", out.lines)
	}
}

func TestDevHandlePlain(t *testing.T) {
	var buf bytes.Buffer
	h := NewDevHandleTo(&buf)

	metas := NewMetaLink([]Meta{{Name: "user", Value: "alice"}})
	rec := NewRecord(SeverityError, 1, "pkt.systems/blacklog", metas)
	rec.SetSeverityFormat(FormatSeverityName)
	rec.Activate("it broke")

	if err := h.Handle(&rec); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	got := buf.String()

	// A bytes.Buffer is not a terminal, so no escape codes.
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("colored output for non-terminal: %q", got)
	}
	// Severity is truncated to its first character.
	if !strings.Contains(got, " E ") {
		t.Fatalf("severity initial missing: %q", got)
	}
	if !strings.Contains(got, "it broke") {
		t.Fatalf("message missing: %q", got)
	}
	if !strings.Contains(got, "\tuser: alice\n") {
		t.Fatalf("attribute line missing: %q", got)
	}
	if !strings.Contains(got, "[0x") {
		t.Fatalf("thread/pid group missing: %q", got)
	}
}

func TestSeverityColorMapping(t *testing.T) {
	if severityColor(SeverityError) == severityColor(SeverityInfo) {
		t.Fatal("error and info share a color")
	}
	if severityColor(99) != severityColor(SeverityTrace) {
		t.Fatal("unknown severities should fall back to the trace color")
	}
}
