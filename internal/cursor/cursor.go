// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cursor

import (
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/moneyfield/internal/mask"
)

// =============================================================================
// CURSOR STATE
// =============================================================================

// State is a cursor position over a string, in rune offsets. Base and
// Extent are equal for a collapsed cursor; unequal offsets describe an
// active selection.
type State struct {
	Base   int
	Extent int
}

// Collapsed reports whether the state carries no active selection.
func (s State) Collapsed() bool {
	return s.Base == s.Extent
}

// At returns a collapsed State at the given rune offset.
func At(offset int) State {
	return State{Base: offset, Extent: offset}
}

// =============================================================================
// RESOLUTION POLICIES
// =============================================================================

// Policy selects how a collapsed cursor is re-anchored after a rewrite.
type Policy int

const (
	// EndAnchored pins the cursor just before the right symbol, so typing
	// always appends at the visible end of the number.
	EndAnchored Policy = iota
	// ContentAnchored re-anchors the cursor to the same logical digit it
	// sat behind before the rewrite.
	ContentAnchored
)

// Resolve maps the cursor state over oldText to a state over newText.
//
// Decision order: an active selection is preserved as-is (clamped in
// bounds); a cursor at offset 0 snaps to the start of the numeric content;
// otherwise the configured policy applies. A content-anchored resolution
// that cannot match falls back to the end-anchored result — a recovery
// path for malformed intermediate text, not a correctness guarantee.
//
// The returned state is always in bounds for newText.
func Resolve(oldText string, old State, newText string, cfg mask.Config, policy Policy) State {
	n := utf8.RuneCountInString(newText)

	if !old.Collapsed() {
		return State{Base: clamp(old.Base, 0, n), Extent: clamp(old.Extent, 0, n)}
	}

	if old.Base == 0 {
		// Freshly focused field: land just after the first character of the
		// numeric content.
		return At(clamp(utf8.RuneCountInString(cfg.LeftSymbol)+1, 0, n))
	}

	if policy == ContentAnchored {
		if off, ok := contentAnchor(oldText, old.Base, newText, cfg); ok {
			return At(clamp(off, 0, n))
		}
	}

	return At(clamp(n-utf8.RuneCountInString(cfg.RightSymbol), 0, n))
}

// =============================================================================
// CONTENT ANCHORING
// =============================================================================

// contentAnchor computes the offset in newText that sits just after the
// same significant digits the old cursor sat after in oldText. It reports
// false when the old offset is out of range or newText does not contain the
// target digit subsequence, in which case the caller takes the end-anchored
// branch.
//
// The anchor subsequence holds digits only. Grouping separators are
// excluded deliberately: a rewrite reflows them, and anchoring on them
// would turn every mid-string insertion into a fallback.
func contentAnchor(oldText string, oldOffset int, newText string, cfg mask.Config) (int, bool) {
	oldRunes := []rune(oldText)
	if oldOffset < 0 || oldOffset > len(oldRunes) {
		return 0, false
	}

	target := significantDigits(oldRunes[:oldOffset])

	newRunes := []rune(newText)
	start := 0
	if strings.HasPrefix(newText, cfg.LeftSymbol) {
		start = utf8.RuneCountInString(cfg.LeftSymbol)
	}
	if len(target) == 0 {
		return start, true
	}

	// Two-pointer scan: consume target digits in order as they appear in
	// newText; the cursor lands right after the last one matched.
	j := 0
	for i := start; i < len(newRunes); i++ {
		if newRunes[i] == target[j] {
			j++
			if j == len(target) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// significantDigits returns the digit characters in prefix with leading
// zeros dropped — the logical digits the cursor is anchored behind. Leading
// zeros are padding the formatter invents, so they carry no anchor.
func significantDigits(prefix []rune) []rune {
	var out []rune
	for _, r := range prefix {
		if r < '0' || r > '9' {
			continue
		}
		if r == '0' && len(out) == 0 {
			continue
		}
		out = append(out, r)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
