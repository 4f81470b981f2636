// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package field

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jeranaias/moneyfield/internal/cursor"
	"github.com/jeranaias/moneyfield/internal/mask"
)

// =============================================================================
// CONTROLLER
// =============================================================================

// ApplyFunc receives the (text, cursor) pair the controller wants the host
// to display after a rewrite. Calling back into the controller from inside
// an ApplyFunc is swallowed by the reentrancy guard.
type ApplyFunc func(text string, cur cursor.State)

// Controller owns the (text, cursor, lastAccepted) triple for one masked
// currency field. All entry points are serialized by an internal mutex, so
// a multi-goroutine host keeps the one-cycle-at-a-time invariant; a
// single-goroutine UI loop pays only the uncontended lock.
type Controller struct {
	mu     sync.Mutex
	cfg    mask.Config
	policy cursor.Policy

	text         string
	cur          cursor.State
	lastAccepted mask.Amount

	// reformatting is true while the controller is applying its own rewrite.
	// It is atomic so the guard can be checked without taking mu: a host
	// notification fired from inside an ApplyFunc must return immediately
	// instead of deadlocking on the lock the rewrite still holds.
	reformatting atomic.Bool

	onApply ApplyFunc
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithPolicy selects the cursor repositioning policy. The default is
// ContentAnchored.
func WithPolicy(p cursor.Policy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithOnApply registers the host callback invoked with every applied
// (text, cursor) pair.
func WithOnApply(fn ApplyFunc) Option {
	return func(c *Controller) { c.onApply = fn }
}

// New constructs a controller for the given configuration. A nil initial
// value starts the field at zero. Construction fails if the configuration
// is invalid (notably a right symbol containing digits); the returned
// controller is nil and must not be used.
func New(initial *float64, cfg mask.Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field configuration: %w", err)
	}

	c := &Controller{
		cfg:    cfg,
		policy: cursor.ContentAnchored,
	}
	for _, opt := range opts {
		opt(c)
	}

	var start mask.Amount
	if initial != nil {
		start = mask.FromFloat(*initial, cfg)
	}
	if start.IntegerDigits(cfg) > mask.MaxIntegerDigits {
		start = 0
	}
	c.lastAccepted = start
	c.text = mask.Format(start, cfg)
	c.cur = cursor.Resolve("", cursor.At(0), c.text, cfg, cursor.EndAnchored)
	return c, nil
}

// =============================================================================
// ENTRY POINTS
// =============================================================================

// OnHostTextChanged is the host's notification that the underlying text
// changed. Notifications caused by the controller's own rewrite are ignored.
//
// An edit whose digits would need more than MaxIntegerDigits integer digits
// is rejected: the previous accepted amount is kept and the text snaps back
// to its rendering. Text with no digits at all causes no numeric update.
func (c *Controller) OnHostTextChanged(raw string, cur cursor.State) {
	if c.reformatting.Load() {
		return
	}
	c.mu.Lock()

	digits := mask.ExtractDigits(raw)
	if digits == "" {
		// Host cleared the field; mirror it and wait for digits.
		c.text = raw
		c.cur = cur
		c.mu.Unlock()
		return
	}

	candidate := c.lastAccepted
	if integerDigitCount(digits, c.cfg.Precision) <= mask.MaxIntegerDigits {
		candidate = mask.Unmask(raw, c.cfg)
	}
	c.applyLocked(candidate, raw, cur)
}

// SetValue programmatically updates the field. A nil value is a no-op.
// The update follows the same path as a host edit: magnitude guard, format,
// cursor resolution, rewrite.
func (c *Controller) SetValue(v *float64) {
	if v == nil {
		return
	}
	if c.reformatting.Load() {
		return
	}
	c.mu.Lock()
	c.applyLocked(mask.FromFloat(*v, c.cfg), c.text, c.cur)
}

// SetAmount is SetValue for callers already holding a fixed-precision amount.
func (c *Controller) SetAmount(a mask.Amount) {
	if c.reformatting.Load() {
		return
	}
	c.mu.Lock()
	c.applyLocked(a, c.text, c.cur)
}

// Reset returns the field to zero.
func (c *Controller) Reset() {
	c.SetAmount(0)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Text returns the current masked string.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Cursor returns the current cursor state over Text.
func (c *Controller) Cursor() cursor.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// Amount returns the last accepted amount.
func (c *Controller) Amount() mask.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastAccepted
}

// NumericValue returns the numeric value derived from the current masked
// text. When the loop is idle this equals Amount; while the host holds
// cleared text it reads as zero.
func (c *Controller) NumericValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mask.Unmask(c.text, c.cfg).Float(c.cfg)
}

// UnmaskedText returns the current text with the symbols stripped.
func (c *Controller) UnmaskedText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mask.StripDecoration(c.text, c.cfg)
}

// Config returns the field configuration.
func (c *Controller) Config() mask.Config {
	return c.cfg
}

// =============================================================================
// EDIT CYCLE
// =============================================================================

// applyLocked runs one edit cycle: magnitude guard, format, redundant-churn
// short circuit, cursor resolution, rewrite, host notification. The caller
// must hold mu; applyLocked releases it.
func (c *Controller) applyLocked(candidate mask.Amount, prevText string, prevCur cursor.State) {
	if candidate.IntegerDigits(c.cfg) > mask.MaxIntegerDigits {
		candidate = c.lastAccepted
	} else {
		c.lastAccepted = candidate
	}

	next := mask.Format(candidate, c.cfg)
	if next == prevText {
		c.text = next
		c.cur = prevCur
		c.mu.Unlock()
		return
	}

	nextCur := cursor.Resolve(prevText, prevCur, next, c.cfg, c.policy)
	c.text = next
	c.cur = nextCur
	fn := c.onApply

	// The guard goes up before the lock goes down: any notification the
	// host fires while applying the rewrite sees reformatting == true.
	c.reformatting.Store(true)
	c.mu.Unlock()
	if fn != nil {
		fn(next, nextCur)
	}
	c.reformatting.Store(false)
}

// integerDigitCount returns how many integer digits a raw digit string
// carries once padded to the configured precision, ignoring leading zeros.
// Working on the string keeps the check safe for inputs too large to parse.
func integerDigitCount(digits string, precision int) int {
	if want := precision + 1; len(digits) < want {
		digits = strings.Repeat("0", want-len(digits)) + digits
	}
	n := len(strings.TrimLeft(digits[:len(digits)-precision], "0"))
	if n == 0 {
		n = 1
	}
	return n
}
