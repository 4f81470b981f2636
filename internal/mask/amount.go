// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mask

// =============================================================================
// FIXED-PRECISION AMOUNT
// =============================================================================

// Amount is a currency value stored as an integer magnitude scaled by
// 10^Precision of the Config it is used with. An Amount of 1250 at
// precision 2 is 12.50.
type Amount int64

// MaxIntegerDigits is the magnitude guard bound: amounts whose integer part
// needs more than this many decimal digits are rejected by the edit loop.
const MaxIntegerDigits = 12

// pow10 returns 10^n for small non-negative n.
func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// FromFloat converts a float to an Amount at the configured precision,
// rounding half away from zero.
func FromFloat(f float64, cfg Config) Amount {
	scaled := f * float64(pow10(cfg.Precision))
	if scaled >= 0 {
		return Amount(scaled + 0.5)
	}
	return Amount(scaled - 0.5)
}

// Float converts the amount back to a float at the configured precision.
func (a Amount) Float(cfg Config) float64 {
	return float64(a) / float64(pow10(cfg.Precision))
}

// IntegerDigits returns the number of decimal digits in the amount's
// integer part, sign excluded. Zero counts as one digit.
func (a Amount) IntegerDigits(cfg Config) int {
	v := int64(a)
	if v < 0 {
		v = -v
	}
	v /= pow10(cfg.Precision)
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
