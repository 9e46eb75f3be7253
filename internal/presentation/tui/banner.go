package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the isaw ASCII art banner followed by the version.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	out := termenv.NewOutput(w, termenv.WithProfile(p))
	// Gradient from cyan to green, matching the header and summary colors.
	lines := []struct {
		text  string
		color string
	}{
		{" _                    ", "#22d3ee"},
		{"(_)___  __ ___      __", "#2dd4bf"},
		{"| / __|/ _` \\ \\ /\\ / /", "#34d399"},
		{"| \\__ \\ (_| |\\ V  V / ", "#4ade80"},
		{"|_|___/\\__,_| \\_/\\_/  ", "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
