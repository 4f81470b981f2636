// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package field provides the reentrancy-guarded controller that keeps a
// hosted text input and a currency amount in sync.
//
// One edit cycle flows in a single direction: the host reports a raw text
// mutation, the controller unmasks it to an amount, re-renders the masked
// string, resolves the new cursor position, and hands the (text, cursor)
// pair back to the host. The controller's own rewrites re-trigger the host's
// change notifications; a per-instance guard swallows those so a cycle can
// never recurse into itself.
//
// # Usage
//
//	ctrl, err := field.New(nil, cfg, field.WithPolicy(cursor.ContentAnchored))
//	if err != nil { ... }
//	ctrl.OnHostTextChanged(rawText, cursor.At(pos))
//	text, cur := ctrl.Text(), ctrl.Cursor()
package field
