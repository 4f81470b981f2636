// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/moneyfield/internal/config"
	"github.com/jeranaias/moneyfield/internal/ui/styles"
)

func usdPreset() config.FieldConfig {
	return config.FieldConfig{
		DecimalSeparator:  ".",
		ThousandSeparator: ",",
		LeftSymbol:        "$",
		Precision:         2,
		CursorPolicy:      "content",
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewMoneyInput(t *testing.T) {
	m, err := NewMoneyInput("amount", usdPreset(), styles.NewTheme())
	require.NoError(t, err)
	require.Equal(t, "$0.00", m.Text())
	require.Equal(t, 0.0, m.Value())
}

func TestNewMoneyInput_RejectsBadPreset(t *testing.T) {
	bad := usdPreset()
	bad.RightSymbol = "1st"

	m, err := NewMoneyInput("amount", bad, styles.NewTheme())
	require.Error(t, err)
	require.Nil(t, m)
}

func TestMoneyInput_TypingReformats(t *testing.T) {
	m, err := NewMoneyInput("amount", usdPreset(), styles.NewTheme())
	require.NoError(t, err)
	m.Focus()

	m, _ = m.Update(keyRunes("5"))

	require.Equal(t, "$5.00", m.Text())
	require.Equal(t, 5.0, m.Value())
}

func TestMoneyInput_SetValueAndReset(t *testing.T) {
	m, err := NewMoneyInput("amount", usdPreset(), styles.NewTheme())
	require.NoError(t, err)

	v := 1234.56
	m.SetValue(&v)
	require.Equal(t, "$1,234.56", m.Text())
	require.Equal(t, "1,234.56", m.UnmaskedText())

	m.SetValue(nil)
	require.Equal(t, "$1,234.56", m.Text())

	m.Reset()
	require.Equal(t, "$0.00", m.Text())
}

func TestMoneyInput_View(t *testing.T) {
	m, err := NewMoneyInput("amount", usdPreset(), styles.NewTheme())
	require.NoError(t, err)
	m.SetWidth(40)

	view := m.View()
	require.True(t, strings.Contains(view, "amount"))
	require.True(t, strings.Contains(view, "$0.00"))

	compact := m.ViewCompact()
	require.True(t, strings.Contains(compact, "0.00"))
}

func TestMoneyInput_FocusBlur(t *testing.T) {
	m, err := NewMoneyInput("amount", usdPreset(), styles.NewTheme())
	require.NoError(t, err)

	require.False(t, m.Focused())
	m.Focus()
	require.True(t, m.Focused())
	m.Blur()
	require.False(t, m.Focused())
}
