// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the moneyfield TUI.
//
// The centerpiece is MoneyInput, a masked currency field: a bubbles
// textinput handles terminal editing while a field.Controller owns the
// masked text and cursor, rewriting both after every keystroke.
package components
