package ui

import "github.com/charmbracelet/lipgloss"

// Electric synthwave palette. All colors are hex so they degrade predictably
// when lipgloss downsamples for 256-color and 16-color terminals.

// Neon accent colors
const (
	ColorNeonPink   lipgloss.Color = "#FF2D95"
	ColorNeonCyan   lipgloss.Color = "#00FFFF"
	ColorNeonPurple lipgloss.Color = "#BF00FF"
	ColorNeonGreen  lipgloss.Color = "#39FF14"
	ColorNeonOrange lipgloss.Color = "#FF6600"
	ColorNeonAmber  lipgloss.Color = "#FFAA00"
)

// Background and surface colors
const (
	ColorDeepVoid    lipgloss.Color = "#0A0A0F"
	ColorDarkSurface lipgloss.Color = "#16161F"
	ColorGlassBorder lipgloss.Color = "#2A2A3A"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "#39FF14" // Neon green
	ColorError   lipgloss.Color = "#FF0055" // Hot red-pink
	ColorWarning lipgloss.Color = "#FFAA00" // Electric amber
	ColorInfo    lipgloss.Color = "#00FFFF" // Neon cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#FFFFFF" // White
	ColorSecondary lipgloss.Color = "#B4B4D0" // Lavender
	ColorMuted     lipgloss.Color = "#6B6B8D" // Purple-gray
)

// GradientColors is the accent cycle used for branded text.
var GradientColors = []lipgloss.Color{
	ColorNeonPink,
	ColorNeonPurple,
	ColorNeonCyan,
	ColorNeonGreen,
}
