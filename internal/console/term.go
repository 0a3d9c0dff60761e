package console

import (
	"os"

	"golang.org/x/term"
)

const clearSequence = "\033[H\033[2J"

// IsTerminal returns true if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
