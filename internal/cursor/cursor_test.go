// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cursor

import (
	"testing"

	"github.com/jeranaias/moneyfield/internal/mask"
)

var usd = mask.Config{
	DecimalSeparator:  ".",
	ThousandSeparator: ",",
	LeftSymbol:        "$",
	Precision:         2,
}

var brl = mask.Config{
	DecimalSeparator:  ",",
	ThousandSeparator: ".",
	LeftSymbol:        "R$ ",
	Precision:         2,
}

var eur = mask.Config{
	DecimalSeparator:  ",",
	ThousandSeparator: ".",
	RightSymbol:       " €",
	Precision:         2,
}

// =============================================================================
// STATE TESTS
// =============================================================================

func TestStateCollapsed(t *testing.T) {
	if !At(3).Collapsed() {
		t.Error("At(3) should be collapsed")
	}
	if (State{Base: 1, Extent: 4}).Collapsed() {
		t.Error("selection should not be collapsed")
	}
}

// =============================================================================
// RESOLVE TESTS
// =============================================================================

func TestResolve_SelectionPreserved(t *testing.T) {
	old := State{Base: 1, Extent: 4}
	got := Resolve("$1.00", old, "$10.00", usd, ContentAnchored)
	if got != old {
		t.Errorf("Resolve with selection = %+v, want %+v", got, old)
	}
}

func TestResolve_SelectionClampedInBounds(t *testing.T) {
	got := Resolve("$123,456.00", State{Base: 2, Extent: 40}, "$1.00", usd, ContentAnchored)
	want := State{Base: 2, Extent: 5}
	if got != want {
		t.Errorf("Resolve clamped selection = %+v, want %+v", got, want)
	}
}

func TestResolve_CollapseAtZero(t *testing.T) {
	testCases := []struct {
		name    string
		newText string
		cfg     mask.Config
		want    int
	}{
		{"bare symbol", "$0.00", usd, 2},
		{"multi-rune symbol", "R$ 0,00", brl, 4},
		{"no symbol", "0,00 €", eur, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve("", At(0), tc.newText, tc.cfg, ContentAnchored)
			if got != At(tc.want) {
				t.Errorf("Resolve(base 0) = %+v, want %+v", got, At(tc.want))
			}
		})
	}
}

func TestResolve_EndAnchored(t *testing.T) {
	testCases := []struct {
		name    string
		oldText string
		old     State
		newText string
		cfg     mask.Config
		want    int
	}{
		{"no suffix", "$1.00", At(3), "$10.00", usd, 6},
		{"before suffix", "1,00 €", At(3), "10,50 €", eur, 5},
		{"suffix longer than text", "", At(1), "€", eur, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.oldText, tc.old, tc.newText, tc.cfg, EndAnchored)
			if got != At(tc.want) {
				t.Errorf("Resolve = %+v, want %+v", got, At(tc.want))
			}
		})
	}
}

func TestResolve_ContentAnchored(t *testing.T) {
	testCases := []struct {
		name    string
		oldText string
		old     State
		newText string
		cfg     mask.Config
		want    int
	}{
		// Digit typed mid-string; a new grouping separator appears.
		{"mid insert reflows separator", "$1,2934.56", At(5), "$12,934.56", usd, 5},
		// Digit typed at the end; cursor stays at the end.
		{"append", "$123.455", At(8), "$1,234.55", usd, 9},
		// Digit typed after a leading zero; the zero carries no anchor.
		{"after leading zero", "$0.50", At(4), "$0.50", usd, 4},
		// Digit deleted mid-string; a separator disappears.
		{"mid delete reflows separator", "$12,34.56", At(2), "$1,234.56", usd, 2},
		// Cursor right behind the symbol with only zeros before it.
		{"only zeros before cursor", "$0.00", At(2), "$0.05", usd, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.oldText, tc.old, tc.newText, tc.cfg, ContentAnchored)
			if got != At(tc.want) {
				t.Errorf("Resolve = %+v, want %+v", got, At(tc.want))
			}
		})
	}
}

func TestResolve_ContentAnchoredFallback(t *testing.T) {
	testCases := []struct {
		name    string
		oldText string
		old     State
		newText string
		cfg     mask.Config
		want    int
	}{
		// Old offset out of range: recovery lands at the end.
		{"offset out of range", "$1.00", At(42), "$2.00", usd, 5},
		// Anchor digits absent from the new text.
		{"digits vanished", "$9.99", At(4), "$1.00", usd, 5},
		// End-anchored recovery still respects the suffix.
		{"fallback before suffix", "99,99 €", At(3), "1,00 €", eur, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.oldText, tc.old, tc.newText, tc.cfg, ContentAnchored)
			if got != At(tc.want) {
				t.Errorf("Resolve = %+v, want %+v", got, At(tc.want))
			}
		})
	}
}

// Offsets are rune offsets: a multi-byte symbol must not skew them.
func TestResolve_MultiByteSymbols(t *testing.T) {
	cfg := mask.Config{DecimalSeparator: ",", ThousandSeparator: ".", LeftSymbol: "€ ", Precision: 2}

	got := Resolve("", At(0), "€ 0,00", cfg, ContentAnchored)
	if got != At(3) {
		t.Errorf("Resolve(base 0) = %+v, want %+v", got, At(3))
	}

	// "€ 1,50" edited to "€ 11,50": cursor after the typed '1'.
	got = Resolve("€ 11,50", At(4), "€ 11,50", cfg, ContentAnchored)
	if got != At(4) {
		t.Errorf("Resolve = %+v, want %+v", got, At(4))
	}
}
