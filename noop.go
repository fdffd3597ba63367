package blacklog

type noopLogger struct{}

func (noopLogger) Log(*Record, string, ...any) {}
func (noopLogger) Enabled(Severity) bool       { return false }

// NoopLogger returns a logger that rejects everything. Handy as a default
// for optional logger fields.
func NoopLogger() Logger { return noopLogger{} }
