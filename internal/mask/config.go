// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mask

import (
	"errors"
	"fmt"
)

// =============================================================================
// FORMAT CONFIGURATION
// =============================================================================

// MaxPrecision bounds the number of fractional digits. Together with
// MaxIntegerDigits it keeps every representable amount inside int64 range
// (12 + 6 = 18 significant digits).
const MaxPrecision = 6

// ErrDigitInSymbol is returned when a right symbol contains decimal digits.
// Digits in the suffix would be picked up by digit extraction and corrupt
// every unmask of the field's own output.
var ErrDigitInSymbol = errors.New("right symbol must not contain digit characters")

// Config describes how an amount is rendered as a display string.
// It is a value type and treated as immutable once validated.
type Config struct {
	// DecimalSeparator sits between the integer and fractional digits.
	DecimalSeparator string
	// ThousandSeparator groups the integer digits in threes.
	ThousandSeparator string
	// LeftSymbol is prepended to the rendered number (e.g. "R$ ").
	LeftSymbol string
	// RightSymbol is appended to the rendered number (e.g. " €").
	// It must not contain digit characters.
	RightSymbol string
	// Precision is the number of fractional digits (0..MaxPrecision).
	Precision int
}

// Validate checks the configuration invariants. A Config that fails
// validation must not be used; the controller refuses to construct with it.
func (c Config) Validate() error {
	if c.Precision < 0 {
		return fmt.Errorf("precision must be non-negative, got %d", c.Precision)
	}
	if c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d exceeds maximum %d", c.Precision, MaxPrecision)
	}
	for _, r := range c.RightSymbol {
		if isDigit(r) {
			return fmt.Errorf("%w: %q", ErrDigitInSymbol, c.RightSymbol)
		}
	}
	return nil
}
