package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveColor decides whether answers are coloured.
// colorFlag is the --color value: "auto", "always", or "never".
// --no-color and a non-empty NO_COLOR environment variable both win over it.
func resolveColor(colorFlag string, noColorFlag bool) (bool, error) {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false, nil
	}
	switch colorFlag {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("--color must be auto, always or never (got %q)", colorFlag)
}
