// Package istty answers whether a file descriptor refers to a terminal on
// platforms golang.org/x/term does not cover.
package istty

// IsTerminal reports whether fd is attached to a terminal.
func IsTerminal(fd int) bool {
	return isTerminal(fd)
}
