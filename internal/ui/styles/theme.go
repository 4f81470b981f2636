// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME
// =============================================================================

// Theme bundles the pre-built styles the moneyfield TUI renders with.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// Application container styles
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Field styles
	FieldLabel   lipgloss.Style
	FieldBox     lipgloss.Style
	FieldFocused lipgloss.Style
	Readout      lipgloss.Style
	ReadoutMuted lipgloss.Style

	// Status styles
	ErrorStyle lipgloss.Style
	HintStyle  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FieldLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.FieldBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldFocused = t.FieldBox.
		BorderForeground(FocusRing)

	t.Readout = lipgloss.NewStyle().
		Foreground(Emerald)

	t.ReadoutMuted = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.HintStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)
}

// SetSize records the current terminal dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
