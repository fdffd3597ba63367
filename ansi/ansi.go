// Package ansi provides the ANSI escape sequences and palette helpers used
// by blacklog's development console handle. The exported strings can be
// overridden via SetPalette so callers can apply their own colour scheme
// without touching blacklog internals.
package ansi

import "sync"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose the sequences blacklog uses by default.
const (
	Reset = "\x1b[0m"
	Bold  = "\x1b[1m"
	Dim   = "\x1b[2m"
	White = "\x1b[37m"

	// 256-colour codes for severities.
	Color256Red         = "\x1b[38;5;9m"
	Color256Yellow      = "\x1b[38;5;3m"
	Color256Green       = "\x1b[38;5;2m"
	Color256BrightGreen = "\x1b[38;5;10m"
	Color256BrightCyan  = "\x1b[38;5;11m"
)

// Semantic aliases that describe how blacklog uses the colours.
var (
	Timestamp = Dim
	Faint     = Dim
	Message   = White
	Key       = White
	Error     = Color256Red
	Warn      = Color256Yellow
	Info      = Color256Green
	Debug     = Color256BrightGreen
	Trace     = Color256BrightCyan
)

var paletteMu sync.RWMutex

// Palette is the input type to SetPalette. Empty fields keep their current
// value.
type Palette struct {
	Timestamp string
	Faint     string
	Message   string
	Key       string
	Error     string
	Warn      string
	Info      string
	Debug     string
	Trace     string
}

// PaletteDefault restores the package defaults.
var PaletteDefault = Palette{
	Timestamp: Dim,
	Faint:     Dim,
	Message:   White,
	Key:       White,
	Error:     Color256Red,
	Warn:      Color256Yellow,
	Info:      Color256Green,
	Debug:     Color256BrightGreen,
	Trace:     Color256BrightCyan,
}

// SetPalette sets the package-level ANSI colour variables.
//
//	ansi.SetPalette(ansi.Palette{Error: ansi.Bold + ansi.Color256Red})
//	// Reset to default
//	ansi.SetPalette(ansi.PaletteDefault)
func SetPalette(palette Palette) {
	paletteMu.Lock()
	defer paletteMu.Unlock()

	current := snapshotLocked()
	Timestamp = f(palette.Timestamp, current.Timestamp)
	Faint = f(palette.Faint, current.Faint)
	Message = f(palette.Message, current.Message)
	Key = f(palette.Key, current.Key)
	Error = f(palette.Error, current.Error)
	Warn = f(palette.Warn, current.Warn)
	Info = f(palette.Info, current.Info)
	Debug = f(palette.Debug, current.Debug)
	Trace = f(palette.Trace, current.Trace)
}

// Snapshot returns the current ANSI palette values.
//
// Typical usage in tests:
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
func Snapshot() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return snapshotLocked()
}

func snapshotLocked() Palette {
	return Palette{
		Timestamp: Timestamp,
		Faint:     Faint,
		Message:   Message,
		Key:       Key,
		Error:     Error,
		Warn:      Warn,
		Info:      Info,
		Debug:     Debug,
		Trace:     Trace,
	}
}

func f(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
