package tui

import (
	"github.com/charmbracelet/lipgloss"

	"caddraw/internal/style"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	warnFg    = lipgloss.Color("#F59E0B")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	popupStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentFg).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	warnStyle   = lipgloss.NewStyle().Foreground(warnFg)
	markerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
)

// canvasFrameColor outlines the document canvas when no shape covers it.
const canvasFrameColor = "#374151"

// fillShade is how far an opaque fill is blended towards backdrop.
const fillShade = 0.35

var (
	baseColor = style.RGB(0xE6, 0xE6, 0xE6)
	backdrop  = style.RGB(0x11, 0x18, 0x27)
)
