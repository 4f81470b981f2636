// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the moneyfield application.
//
// This package contains common helper functions used throughout the
// application for rune-safe string manipulation, numeric formatting, and
// crash-safe file writing.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - SafeSubstring: rune-index slicing that never splits a character
//
// Numeric Formatting:
//   - FloatToStringPrec: fixed-precision float rendering
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
