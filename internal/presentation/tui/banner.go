package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the lingo ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text, color string
	}{
		{" _ _                    ", "#818cf8"},
		{"| (_)_ __   __ _  ___   ", "#a78bfa"},
		{"| | | '_ \\ / _` |/ _ \\  ", "#c084fc"},
		{"| | | | | | (_| | (_) | ", "#e879f9"},
		{"|_|_|_| |_|\\__, |\\___/  ", "#f472b6"},
		{"           |___/        ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
