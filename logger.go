package blacklog

import "context"

// Logger accepts log records. Implementations decide delivery: synchronous
// fan-out, a background goroutine, or filtering in front of another logger.
//
// Log receives an inactive record plus the deferred message arguments and is
// responsible for activating the record once it decides to keep it. Enabled
// lets call sites skip building a record at all when the severity is certain
// to be rejected; a record may still be dropped after Enabled returned true.
type Logger interface {
	Log(rec *Record, format string, args ...any)
	Enabled(sev Severity) bool
}

// Log emits an event through l at the given severity. The message is
// formatted fmt.Sprintf style, but only if the event is accepted; a rejected
// severity returns before the record, caller lookup or timestamp exist.
func Log(l Logger, sev Severity, format string, args ...any) {
	emit(l, sev, nil, format, args...)
}

// LogWith is Log with attributes attached to the event. The metas slice is
// only read during the call; it can live on the caller's stack.
func LogWith(l Logger, sev Severity, metas []Meta, format string, args ...any) {
	var link *MetaLink
	if len(metas) > 0 {
		link = NewMetaLink(metas)
	}
	emit(l, sev, link, format, args...)
}

// Error emits at SeverityError.
func Error(l Logger, format string, args ...any) {
	emit(l, SeverityError, nil, format, args...)
}

// Warn emits at SeverityWarn.
func Warn(l Logger, format string, args ...any) {
	emit(l, SeverityWarn, nil, format, args...)
}

// Info emits at SeverityInfo.
func Info(l Logger, format string, args ...any) {
	emit(l, SeverityInfo, nil, format, args...)
}

// Debug emits at SeverityDebug.
func Debug(l Logger, format string, args ...any) {
	emit(l, SeverityDebug, nil, format, args...)
}

// Trace emits at SeverityTrace.
func Trace(l Logger, format string, args ...any) {
	emit(l, SeverityTrace, nil, format, args...)
}

func emit(l Logger, sev Severity, metas *MetaLink, format string, args ...any) {
	if l == nil || !l.Enabled(sev) {
		return
	}
	line, module := callerSite(2)
	rec := NewRecord(sev, line, module, metas)
	rec.SetSeverityFormat(FormatSeverityName)
	l.Log(&rec, format, args...)
}

type loggerContextKey struct{}

// ContextWithLogger returns a child context carrying the supplied logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext extracts a logger from the context if present or returns
// a no-op logger.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return noopLogger{}
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(Logger); ok && logger != nil {
		return logger
	}
	return noopLogger{}
}

// Ctx extracts a logger from the context if present or returns a no-op
// logger.
func Ctx(ctx context.Context) Logger {
	return LoggerFromContext(ctx)
}
