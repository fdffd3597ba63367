package blacklog

import "strconv"

// Severity ranks a log event. Any int32 is a valid severity; the named
// constants follow the convention that lower values are more severe, so
// filters compare with >= against a threshold.
type Severity int32

const (
	SeverityError Severity = iota + 1
	SeverityWarn
	SeverityInfo
	SeverityDebug
	SeverityTrace
)

// SeverityFormat renders a severity through a formatter. A record carries one
// so the same pattern can print numeric levels for one logger and symbolic
// names for another.
type SeverityFormat func(sev Severity, f *Formatter) error

// FormatSeverityNum prints the raw numeric value.
func FormatSeverityNum(sev Severity, f *Formatter) error {
	return f.WriteInt(int64(sev))
}

// FormatSeverityName prints the conventional name for the five well known
// levels and falls back to the numeric value for everything else.
func FormatSeverityName(sev Severity, f *Formatter) error {
	switch sev {
	case SeverityError:
		return f.WriteStr("ERROR")
	case SeverityWarn:
		return f.WriteStr("WARN")
	case SeverityInfo:
		return f.WriteStr("INFO")
	case SeverityDebug:
		return f.WriteStr("DEBUG")
	case SeverityTrace:
		return f.WriteStr("TRACE")
	default:
		return f.WriteStr(strconv.FormatInt(int64(sev), 10))
	}
}
