package blacklog

import (
	"runtime"
	"strings"
)

const unknownModule = "unknown"

// callerSite resolves the source line and module (import path) of the frame
// skip levels above the caller. If the frame cannot be determined the module
// is "unknown" and the line is zero.
func callerSite(skip int) (line int, module string) {
	pc, _, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return 0, unknownModule
	}
	return line, modulePathForPC(pc)
}

func modulePathForPC(pc uintptr) string {
	if pc == 0 {
		return unknownModule
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownModule
	}
	return trimFunctionSuffix(fn.Name())
}

// trimFunctionSuffix cuts the function (and receiver) part off a fully
// qualified symbol name, leaving the import path. The first dot after the
// last slash separates the two.
func trimFunctionSuffix(name string) string {
	if name == "" {
		return unknownModule
	}
	slash := strings.LastIndex(name, "/")
	if i := strings.Index(name[slash+1:], "."); i >= 0 {
		name = name[:slash+1+i]
	}
	if name == "" {
		return unknownModule
	}
	return name
}
