// Package blacklog is a structured-logging toolkit built around a
// pattern-compiled rendering pipeline and two-phase log records.
//
// # Design overview
//
//   - Construction-time setup: a pattern string such as
//     "{timestamp} {severity:>5s} {module}:{line} - {message} [{...}]" is
//     compiled once into a token sequence by a small grammar; malformed
//     patterns fail at construction, never per record.
//   - Two-phase records: a Record is created inactive with only severity and
//     call-site context filled in. Filters decide on the inactive record, so
//     a rejected event never pays for message formatting, timestamping or
//     goroutine identification. Activation happens exactly once, inside the
//     logger that accepts the event.
//   - Intrusive attribute chains: attributes attach as stack-allocated
//     slices linked backward to their parent scope. Rendering walks them in
//     chronological order without copying; only crossing a goroutine
//     boundary (ActorLogger) flattens the chain into an owned buffer.
//   - Format engine: each placeholder may carry a fill/align/width/precision
//     spec plus a radix or float form letter, applied by a Formatter that
//     stages digits in a fixed stack buffer.
//
// # Usage
//
//	layout, _ := blacklog.NewPatternLayout("{timestamp} {severity:s}: {message}")
//	logger := blacklog.NewSyncLogger([]blacklog.Handle{
//		blacklog.NewSyncHandle(layout, []blacklog.Output{blacklog.NewTermOutput()}),
//	})
//	blacklog.Info(logger, "listening on %s", addr)
//
// Attributes ride along per call:
//
//	blacklog.LogWith(logger, blacklog.SeverityInfo,
//		[]blacklog.Meta{{Name: "user", Value: "alice"}, {Name: "attempts", Value: 3}},
//		"login")
//
// Whole pipelines can also be assembled from a JSON document through
// NewRegistry and Registry.LoggerFromJSON.
//
// # Integration notes
//
//   - Wrap a logger in SeverityFilteredLogger for cheap threshold filtering,
//     or FilteredLogger for arbitrary record predicates.
//   - ActorLogger moves rendering and IO off the calling goroutine.
//   - NewDevHandle renders a colored, human-oriented console format; the
//     ansi subpackage exposes palette controls (ansi.SetPalette).
//   - ContextWithLogger/Ctx pass loggers through context.Context.
package blacklog
