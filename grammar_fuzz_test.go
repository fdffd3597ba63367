package blacklog_test

import (
	"bytes"
	"testing"

	"pkt.systems/blacklog"
)

var patternSeeds = []string{
	"",
	"plain text",
	"hello {{ world }}",
	"[{message}]",
	"{message:/^6.4}",
	"{severity:>5s} {severity:d}",
	"{timestamp} {timestamp:d} {timestamp:{%Y-%m-%d}l}",
	"{timestamp:{{{%Y-%m-%dT%H:%M:%S}}}s}",
	"{module}:{line} {flag} {num:^6x} [{...}]",
	"{unbalanced",
	"}",
	"{...:>10}",
}

// FuzzParse checks that arbitrary pattern input never panics the parser and
// that accepted patterns parse deterministically.
func FuzzParse(f *testing.F) {
	for _, seed := range patternSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, pattern string) {
		toks, err := blacklog.Parse(pattern)
		if err != nil {
			return
		}
		again, err := blacklog.Parse(pattern)
		if err != nil {
			t.Fatalf("second parse of accepted pattern failed: %v", err)
		}
		if len(toks) != len(again) {
			t.Fatalf("parse not deterministic: %d vs %d tokens", len(toks), len(again))
		}
	})
}

// FuzzLayoutFormat feeds accepted patterns through a full render to shake
// out panics in the interpreter and format engine.
func FuzzLayoutFormat(f *testing.F) {
	for _, seed := range patternSeeds {
		f.Add(seed, "a message")
	}
	f.Fuzz(func(t *testing.T, pattern, message string) {
		layout, err := blacklog.NewPatternLayout(pattern)
		if err != nil {
			return
		}
		metas := blacklog.NewMetaLink([]blacklog.Meta{
			{Name: "flag", Value: true},
			{Name: "num", Value: 42},
		})
		rec := blacklog.NewRecord(blacklog.SeverityInfo, 1, "pkt.systems/blacklog", metas)
		rec.Activate(message)
		var buf bytes.Buffer
		// Unresolved attributes are a legitimate error, not a crash.
		_ = layout.Format(&rec, &buf)
	})
}
