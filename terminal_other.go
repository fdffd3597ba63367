//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package blacklog

import (
	"io"

	"pkt.systems/blacklog/internal/istty"
)

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return istty.IsTerminal(int(f.Fd()))
}
