// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mask implements the currency masking core: rendering a numeric
// amount as a fully decorated display string and recovering the amount from
// one.
//
// Amounts are fixed-precision integers (see Amount), so repeated
// format/unmask cycles never accumulate floating-point drift.
//
// # Key Functions
//
//   - Format: amount -> decorated string ("R$ 1.234.567,89")
//   - Unmask: decorated string -> amount
//   - ExtractDigits: digit subsequence of any string
//   - StripDecoration: decorated string -> bare numeric text
//
// # Usage
//
//	cfg := mask.Config{
//		DecimalSeparator:  ",",
//		ThousandSeparator: ".",
//		LeftSymbol:        "R$ ",
//		Precision:         2,
//	}
//	s := mask.Format(mask.FromFloat(1234.5, cfg), cfg) // "R$ 1.234,50"
package mask
