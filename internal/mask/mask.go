// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mask

import (
	"strconv"
	"strings"
)

// =============================================================================
// DIGIT EXTRACTION
// =============================================================================

// isDigit reports whether r is an ASCII decimal digit. The masking core only
// ever produces ASCII digits, so extraction matches on the same set.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ExtractDigits returns the subsequence of s consisting only of decimal
// digits, in order. Everything else is dropped. Empty in, empty out.
func ExtractDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// =============================================================================
// FORMAT (amount -> masked string)
// =============================================================================

// Format renders a as a fully decorated display string: left symbol, sign,
// grouped integer digits, decimal separator, fractional digits, right symbol.
//
// Precision 0 emits no decimal separator at all. Zero still renders with the
// configured number of fractional zeros. A negative amount renders its sign
// between the left symbol and the first digit; the sign is not a digit and
// never participates in grouping.
func Format(a Amount, cfg Config) string {
	neg := a < 0
	mag := int64(a)
	if neg {
		mag = -mag
	}

	digits := strconv.FormatInt(mag, 10)
	digits = padDigits(digits, cfg.Precision)

	intPart := digits[:len(digits)-cfg.Precision]
	fracPart := digits[len(digits)-cfg.Precision:]

	// Group the integer digits right to left in threes.
	grouped := ""
	count := 0
	for i := len(intPart) - 1; i >= 0; i-- {
		if count > 0 && count%3 == 0 {
			grouped = cfg.ThousandSeparator + grouped
		}
		grouped = string(intPart[i]) + grouped
		count++
	}

	var b strings.Builder
	b.Grow(len(cfg.LeftSymbol) + len(grouped) + len(cfg.DecimalSeparator) + len(fracPart) + len(cfg.RightSymbol) + 1)
	b.WriteString(cfg.LeftSymbol)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(grouped)
	if cfg.Precision > 0 {
		b.WriteString(cfg.DecimalSeparator)
		b.WriteString(fracPart)
	}
	b.WriteString(cfg.RightSymbol)
	return b.String()
}

// padDigits left-pads a digit string with zeros until it holds at least
// precision+1 digits, guaranteeing at least one integer digit.
func padDigits(digits string, precision int) string {
	if want := precision + 1; len(digits) < want {
		return strings.Repeat("0", want-len(digits)) + digits
	}
	return digits
}

// =============================================================================
// UNMASK (masked string -> amount)
// =============================================================================

// Unmask recovers the amount from a decorated string. The digit subsequence
// is taken as the scaled magnitude at the configured precision; too few
// digits are zero-padded so there is always at least one integer digit. An
// empty digit sequence yields 0, as does a magnitude too large to parse.
//
// A '-' appearing before the first digit of the stripped text marks the
// amount as negative.
func Unmask(masked string, cfg Config) Amount {
	stripped := StripDecoration(masked, cfg)
	digits := ExtractDigits(stripped)
	if digits == "" {
		return 0
	}
	digits = padDigits(digits, cfg.Precision)

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Magnitude beyond int64; the edit loop's guard rejects anything this
		// large before it gets here, so treat it as a malformed parse.
		return 0
	}
	if hasLeadingMinus(stripped) {
		v = -v
	}
	return Amount(v)
}

// hasLeadingMinus reports whether a '-' occurs before the first digit.
func hasLeadingMinus(s string) bool {
	for _, r := range s {
		if isDigit(r) {
			return false
		}
		if r == '-' {
			return true
		}
	}
	return false
}

// =============================================================================
// DECORATION STRIPPING
// =============================================================================

// StripDecoration removes one occurrence of the left symbol from the start,
// one occurrence of the right symbol from the end, and surrounding
// incidental whitespace, leaving the bare numeric text (digits, sign and
// separators).
func StripDecoration(masked string, cfg Config) string {
	s := strings.TrimSpace(masked)
	s = trimSymbolPrefix(s, cfg.LeftSymbol)
	s = trimSymbolSuffix(s, cfg.RightSymbol)
	return strings.TrimSpace(s)
}

func trimSymbolPrefix(s, symbol string) string {
	if symbol == "" {
		return s
	}
	if t := strings.TrimPrefix(s, symbol); t != s {
		return t
	}
	// The symbol's own padding may have been absorbed by the outer trim.
	return strings.TrimPrefix(s, strings.TrimSpace(symbol))
}

func trimSymbolSuffix(s, symbol string) string {
	if symbol == "" {
		return s
	}
	if t := strings.TrimSuffix(s, symbol); t != s {
		return t
	}
	return strings.TrimSuffix(s, strings.TrimSpace(symbol))
}
