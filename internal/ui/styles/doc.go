// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the moneyfield TUI.
//
// The palette uses lipgloss adaptive colors so the same styles render
// sensibly on light and dark terminals. Theme bundles the pre-built styles
// the rest of the UI renders with; construct one per program with NewTheme.
package styles
