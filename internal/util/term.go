package util

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
)

// IsTTY returns true if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

// TerminalWidth returns the width of stdout in cells, or 0 when stdout is
// not a terminal.
func TerminalWidth() int {
	if !IsTTY() {
		return 0
	}
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0
	}
	return w
}

// InitColor configures color output based on flags and terminal detection.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
