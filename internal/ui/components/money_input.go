// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the moneyfield TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/moneyfield/internal/config"
	"github.com/jeranaias/moneyfield/internal/cursor"
	"github.com/jeranaias/moneyfield/internal/field"
	"github.com/jeranaias/moneyfield/internal/ui/styles"
	"github.com/jeranaias/moneyfield/internal/util"
)

// =============================================================================
// MONEY INPUT COMPONENT - Masked currency field with live cursor tracking
// =============================================================================

// MoneyInput is a single-line currency field. A bubbles textinput does the
// terminal-side editing; a field.Controller owns the masked text and cursor
// and rewrites both after every keystroke.
type MoneyInput struct {
	input       textinput.Model
	ctrl        *field.Controller
	label       string
	width       int
	focused     bool
	showReadout bool
	precision   int
	theme       *styles.Theme
}

// NewMoneyInput creates a currency field from a format preset.
func NewMoneyInput(label string, fc config.FieldConfig, theme *styles.Theme) (*MoneyInput, error) {
	ctrl, err := field.New(nil, fc.Mask(), field.WithPolicy(fc.Policy()))
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 30

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	ti.SetValue(ctrl.Text())
	ti.SetCursor(ctrl.Cursor().Base)

	return &MoneyInput{
		input:       ti,
		ctrl:        ctrl,
		label:       label,
		width:       40,
		showReadout: true,
		precision:   fc.Precision,
		theme:       theme,
	}, nil
}

// Focus focuses the field.
func (m *MoneyInput) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus from the field.
func (m *MoneyInput) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused returns whether the field is focused.
func (m *MoneyInput) Focused() bool {
	return m.focused
}

// SetWidth sets the rendered width of the field.
func (m *MoneyInput) SetWidth(width int) {
	m.width = width
	inputWidth := width - 8
	if inputWidth < 16 {
		inputWidth = 16
	}
	m.input.Width = inputWidth
}

// SetShowReadout toggles the numeric readout line under the field.
func (m *MoneyInput) SetShowReadout(show bool) {
	m.showReadout = show
}

// Value returns the field's numeric value.
func (m *MoneyInput) Value() float64 {
	return m.ctrl.NumericValue()
}

// SetValue programmatically updates the field. A nil value is a no-op.
func (m *MoneyInput) SetValue(v *float64) {
	m.ctrl.SetValue(v)
	m.syncFromController()
}

// Text returns the current masked text.
func (m *MoneyInput) Text() string {
	return m.ctrl.Text()
}

// UnmaskedText returns the current text with the symbols stripped.
func (m *MoneyInput) UnmaskedText() string {
	return m.ctrl.UnmaskedText()
}

// Reset returns the field to zero.
func (m *MoneyInput) Reset() {
	m.ctrl.Reset()
	m.syncFromController()
}

// Update handles input updates. The textinput edits freely; the controller
// then decides what the text and cursor actually become.
func (m *MoneyInput) Update(msg tea.Msg) (*MoneyInput, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	raw := m.input.Value()
	m.ctrl.OnHostTextChanged(raw, cursor.At(m.input.Position()))
	if m.ctrl.Text() != raw {
		m.syncFromController()
	}
	return m, cmd
}

// syncFromController pushes the controller's (text, cursor) pair back into
// the textinput.
func (m *MoneyInput) syncFromController() {
	m.input.SetValue(m.ctrl.Text())
	m.input.SetCursor(m.ctrl.Cursor().Base)
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the labeled field with its border and optional readout.
func (m *MoneyInput) View() string {
	label := m.theme.FieldLabel.Render(util.TruncateRunes(m.label, m.width-4))

	box := m.theme.FieldBox
	if m.focused {
		box = m.theme.FieldFocused
	}
	fieldBox := box.Width(m.width - 2).Render(m.input.View())

	if !m.showReadout {
		return lipgloss.JoinVertical(lipgloss.Left, label, fieldBox)
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, fieldBox, m.renderReadout())
}

// ViewCompact renders a single-line variant: label, input, readout.
func (m *MoneyInput) ViewCompact() string {
	label := m.theme.FieldLabel.Render(m.label + ":")
	readout := m.theme.ReadoutMuted.Render("= " + util.FloatToStringPrec(m.Value(), m.precision))
	return label + " " + m.input.View() + " " + readout
}

// renderReadout renders the numeric value right-aligned under the box.
func (m *MoneyInput) renderReadout() string {
	style := m.theme.Readout
	if m.Value() == 0 {
		style = m.theme.ReadoutMuted
	}
	text := util.FloatToStringPrec(m.Value(), m.precision)

	// Right-align by display width; the masked text may hold double-width
	// currency symbols.
	pad := m.width - 4 - runewidth.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + style.Render(text)
}
