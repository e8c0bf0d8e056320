package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version  string // Version string (e.g., "v0.2.0")
	Tagline  string // Optional tagline (e.g., "Conky config generator")
	DataFile string // Optional data file path to display
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 50

// RenderHeader renders a clean, branded header.
// No ASCII art - just clean typography with neon accents.
func RenderHeader(info HeaderInfo) string {
	versionStyle := lipgloss.NewStyle().
		Foreground(ColorNeonCyan)

	taglineStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary)

	dividerStyle := lipgloss.NewStyle().
		Foreground(ColorGlassBorder)

	var output strings.Builder

	// Title line: "conkygen v0.2.0"
	output.WriteString(GradientText("conkygen"))
	output.WriteString(" ")
	output.WriteString(versionStyle.Render(info.Version))
	output.WriteString("\n")

	// Tagline (if provided)
	if info.Tagline != "" {
		output.WriteString(taglineStyle.Render(info.Tagline))
		output.WriteString("\n")
	}

	// Data file (if provided)
	if info.DataFile != "" {
		dataFileStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		output.WriteString(dataFileStyle.Render(info.DataFile))
		output.WriteString("\n")
	}

	// Divider line
	output.WriteString(dividerStyle.Render(strings.Repeat("━", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}

// GradientText renders s in bold with characters cycling through the
// accent gradient.
func GradientText(s string) string {
	var b strings.Builder
	for i, r := range []rune(s) {
		style := lipgloss.NewStyle().
			Bold(true).
			Foreground(GradientColors[i%len(GradientColors)])
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// PrintHeader prints the styled header to stdout.
func PrintHeader(info HeaderInfo) {
	fmt.Print(RenderHeader(info))
}
