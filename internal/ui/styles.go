package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/strait-current/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for the clock marker
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue
	colorLand    = lipgloss.Color("#3B3B2F") // Olive drab
	colorWater   = lipgloss.Color("#12324A") // Deep navy

	// Title styles (no padding - paneStyle already has padding)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0, 0, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	markerStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	landStyle  = lipgloss.NewStyle().Foreground(colorLand)
	waterStyle = lipgloss.NewStyle().Foreground(colorWater)
)

// particle colors from faint to bright, per direction
var (
	ebbShades   = []lipgloss.Color{"#1B4F72", "#2E86C1", "#5DADE2", "#AED6F1"}
	floodShades = []lipgloss.Color{"#0E6251", "#17A589", "#48C9B0", "#A3E4D7"}
	slackShades = []lipgloss.Color{"#4D5656", "#717D7E", "#95A5A6", "#CCD1D1"}
)

// particleStyle picks a shade by opacity so fading particles dim out
func particleStyle(dir models.Direction, opacity float64) lipgloss.Style {
	shades := slackShades
	switch dir {
	case models.Southward:
		shades = ebbShades
	case models.Northward:
		shades = floodShades
	}
	i := int(opacity * float64(len(shades)))
	if i >= len(shades) {
		i = len(shades) - 1
	}
	if i < 0 {
		i = 0
	}
	return lipgloss.NewStyle().Foreground(shades[i])
}

// strengthStyle colors the strength label
func strengthStyle(s models.Strength) lipgloss.Style {
	switch s {
	case models.Strong:
		return lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	case models.Medium:
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	default:
		return successStyle
	}
}
