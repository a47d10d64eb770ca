// Package styles provides the color palette and composed lipgloss styles
// used by gefyra's CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. AdaptiveColor picks the light or dark variant from the terminal background.
var (
	Teal   = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}
	Indigo = lipgloss.AdaptiveColor{Light: "#4338ca", Dark: "#818cf8"}
	Amber  = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}
	Red    = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
	Green  = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}

	Neutral300 = lipgloss.Color("#d4d4d4")
	Neutral500 = lipgloss.Color("#737373")
	Neutral700 = lipgloss.Color("#404040")

	// Semantic colors
	ColorPrimary = Teal
	ColorAccent  = Indigo
	ColorSuccess = Green
	ColorWarning = Amber
	ColorError   = Red
	ColorInfo    = Indigo

	ColorText      = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#e5e5e5"}
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
)
