// moneyfield TUI - masked currency input fields for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/moneyfield/internal/config"
	"github.com/jeranaias/moneyfield/internal/ui/components"
	"github.com/jeranaias/moneyfield/internal/ui/styles"
	"github.com/jeranaias/moneyfield/internal/util"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := newModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// MODEL
// =============================================================================

type model struct {
	cfg    *config.Config
	theme  *styles.Theme
	fields []*components.MoneyInput
	names  []string
	focus  int
	width  int
	height int
}

func newModel(cfg *config.Config) (*model, error) {
	theme := styles.NewTheme()

	// One field per preset, in a stable order, default preset first.
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		if name != cfg.DefaultPreset {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{cfg.DefaultPreset}, names...)

	fields := make([]*components.MoneyInput, 0, len(names))
	for _, name := range names {
		preset, err := cfg.Preset(name)
		if err != nil {
			return nil, err
		}
		f, err := components.NewMoneyInput(name, preset, theme)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		f.SetShowReadout(cfg.UI.ShowReadout)
		fields = append(fields, f)
	}

	return &model{
		cfg:    cfg,
		theme:  theme,
		fields: fields,
		names:  names,
	}, nil
}

func (m *model) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].Focus()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		fieldWidth := msg.Width - 8
		if fieldWidth > 48 {
			fieldWidth = 48
		}
		for _, f := range m.fields {
			f.SetWidth(fieldWidth)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.cycleFocus(1)
		case "shift+tab":
			return m, m.cycleFocus(-1)
		case "ctrl+r":
			if f := m.focusedField(); f != nil {
				f.Reset()
			}
			return m, nil
		}
	}

	if f := m.focusedField(); f != nil {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = f.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) focusedField() *components.MoneyInput {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus]
}

func (m *model) cycleFocus(dir int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	if f := m.focusedField(); f != nil {
		f.Blur()
	}
	m.focus = (m.focus + dir + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].Focus()
}

// =============================================================================
// VIEW
// =============================================================================

func (m *model) View() string {
	header := m.theme.Header.Render("moneyfield " + Version)

	sections := make([]string, 0, len(m.fields)+2)
	sections = append(sections, header, "")
	for _, f := range m.fields {
		if m.cfg.UI.CompactMode {
			sections = append(sections, f.ViewCompact())
		} else {
			sections = append(sections, f.View(), "")
		}
	}

	focused := m.focusedField()
	status := ""
	if focused != nil {
		status = "value " + util.FloatToStringPrec(focused.Value(), 6) +
			"  unmasked " + focused.UnmaskedText()
	}
	sections = append(sections,
		m.theme.HintStyle.Render(status),
		m.theme.Footer.Render("tab: next field  ctrl+r: reset  esc: quit"))

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
