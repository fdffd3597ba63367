package blacklog

import "runtime"

// goroutineID parses the current goroutine's id from the runtime stack
// header. The runtime offers no cheaper supported way to get it; this runs
// only when a record is activated, never on the rejection path.
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	// Header looks like "goroutine 123 [running]:".
	const prefix = "goroutine "
	s := buf[:n]
	if len(s) <= len(prefix) {
		return 0
	}
	var id uint64
	for _, c := range s[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
