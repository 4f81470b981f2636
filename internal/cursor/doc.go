// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cursor repositions an edit cursor across a mask rewrite.
//
// Grouping separators shift as digits are typed or deleted, so keeping the
// same offset would drift the cursor away from the digit the user just
// touched. Resolve re-anchors the cursor to the same logical digit in the
// newly formatted text, or pins it to the end of the numeric content,
// depending on the configured policy.
//
// All offsets are rune (code point) offsets, never byte offsets, so
// multi-byte symbols and separators are safe.
package cursor
