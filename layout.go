package blacklog

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lestrrat-go/strftime"
)

// ErrMetaNotFound is returned by PatternLayout.Format when a pattern names
// an attribute the record does not carry.
var ErrMetaNotFound = errors.New("meta not found")

// Layout renders one record into a sink. Implementations must be safe for
// concurrent use; each call gets its own record and sink.
type Layout interface {
	Format(rec *Record, w io.Writer) error
}

// SevMap renders the symbolic form of a severity placeholder. A custom
// implementation can map numeric severities onto any naming scheme without
// touching the record.
type SevMap interface {
	MapSeverity(rec *Record, spec FormatSpec, w io.Writer) error
}

// DefaultSevMap delegates to the severity format the record carries.
type DefaultSevMap struct{}

func (DefaultSevMap) MapSeverity(rec *Record, spec FormatSpec, w io.Writer) error {
	return rec.SeverityFormat()(rec.Severity(), NewFormatter(w, spec))
}

// patternToken pairs a parsed token with its compiled strftime formatter.
type patternToken struct {
	Token
	strf *strftime.Strftime
}

// PatternLayout renders records through a compiled pattern. The token
// sequence is immutable after construction, so a single layout is safely
// shared by any number of goroutines.
type PatternLayout struct {
	tokens []patternToken
	sevmap SevMap
}

// NewPatternLayout compiles a pattern. Malformed patterns fail here, once,
// rather than per record.
func NewPatternLayout(pattern string) (*PatternLayout, error) {
	return NewPatternLayoutWith(pattern, DefaultSevMap{})
}

// NewPatternLayoutWith compiles a pattern with a custom severity renderer.
func NewPatternLayoutWith(pattern string, sevmap SevMap) (*PatternLayout, error) {
	toks, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	compiled := make([]patternToken, 0, len(toks))
	for _, tok := range toks {
		pt := patternToken{Token: tok}
		switch tok.Kind {
		case TokenTimestamp:
			strf, err := newTimeFormatter(tok.Pattern)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: time sub-pattern: %w", pattern, err)
			}
			pt.strf = strf
		case TokenMetaList:
			if tok.Spec != nil {
				return nil, fmt.Errorf("pattern %q: a format spec on the attribute list is not implemented", pattern)
			}
		}
		compiled = append(compiled, pt)
	}
	return &PatternLayout{tokens: compiled, sevmap: sevmap}, nil
}

// isoTime renders the '+' directive: a full ISO 8601 date and time with the
// zone offset, subseconds included when present.
var isoTime = strftime.AppendFunc(func(b []byte, t time.Time) []byte {
	return t.AppendFormat(b, "2006-01-02T15:04:05.999999999Z07:00")
})

func newTimeFormatter(pattern string) (*strftime.Strftime, error) {
	return strftime.New(pattern, strftime.WithSpecification('+', isoTime))
}

// Format renders rec token by token. The first failing token aborts the call
// and surfaces its error; bytes already written stay in the sink.
func (l *PatternLayout) Format(rec *Record, w io.Writer) error {
	for i := range l.tokens {
		tok := &l.tokens[i]
		var err error
		switch tok.Kind {
		case TokenLiteral:
			_, err = io.WriteString(w, tok.Text)
		case TokenMessage:
			if tok.Spec == nil {
				_, err = io.WriteString(w, rec.Message())
			} else {
				err = NewFormatter(w, *tok.Spec).WriteStr(rec.Message())
			}
		case TokenSeverity:
			if tok.Severity == SeverityNum {
				err = NewFormatter(w, tok.spec()).WriteInt(int64(rec.Severity()))
			} else {
				err = l.sevmap.MapSeverity(rec, tok.spec(), w)
			}
		case TokenTimestamp:
			t := rec.Datetime()
			if tok.Timezone == TimezoneLocal {
				t = t.Local()
			} else {
				t = t.UTC()
			}
			if tok.Spec == nil {
				err = tok.strf.Format(w, t)
			} else {
				err = NewFormatter(w, *tok.Spec).WriteStr(tok.strf.FormatString(t))
			}
		case TokenTimestampNum:
			t := rec.Datetime()
			micros := t.Unix()*1_000_000 + int64(t.Nanosecond())/1_000
			err = NewFormatter(w, tok.spec()).WriteInt(micros)
		case TokenLine:
			err = NewFormatter(w, tok.spec()).WriteInt(int64(rec.Line()))
		case TokenModule:
			if tok.Spec == nil {
				_, err = io.WriteString(w, rec.Module())
			} else {
				err = NewFormatter(w, *tok.Spec).WriteStr(rec.Module())
			}
		case TokenMeta:
			meta, ok := rec.Find(tok.Name)
			if !ok {
				return fmt.Errorf("%w: %q", ErrMetaNotFound, tok.Name)
			}
			err = formatValue(NewFormatter(w, tok.spec()), meta.Value)
		case TokenMetaList:
			err = writeMetaList(rec, w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *patternToken) spec() FormatSpec {
	if t.Spec != nil {
		return *t.Spec
	}
	return DefaultSpec()
}

// writeMetaList renders every attribute as "name: value" joined by ", " in
// chronological order.
func writeMetaList(rec *Record, w io.Writer) error {
	first := true
	for m := range rec.All() {
		if !first {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, m.Name); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if err := formatValue(NewFormatter(w, DefaultSpec()), m.Value); err != nil {
			return err
		}
		first = false
	}
	return nil
}
