// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	data := []byte("hello, world!")

	if err := AtomicWriteFile(path, data, 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}

func TestAtomicWriteFileWithDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newdir", "test.txt")

	if err := AtomicWriteFileWithDir(path, []byte("test"), 0600, 0700); err != nil {
		t.Fatalf("AtomicWriteFileWithDir failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("File not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Wrong permissions: got %o, want 0600", info.Mode().Perm())
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	testCases := []struct {
		input    string
		maxRunes int
		expected string
	}{
		{"hello world", 5, "he..."},
		{"hello", 5, "hello"},
		{"", 5, ""},
		{"hello world", 0, ""},
		{"abcd", 3, "abc"}, // maxRunes <= 3 adds no ellipsis
		{"R$ 1.234,56", 7, "R$ 1..."},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := TruncateRunes(tc.input, tc.maxRunes)
			if result != tc.expected {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q",
					tc.input, tc.maxRunes, result, tc.expected)
			}
		})
	}
}

func TestSafeSubstring(t *testing.T) {
	testCases := []struct {
		input    string
		start    int
		end      int
		expected string
	}{
		{"hello world", 0, 5, "hello"},
		{"hello", 0, 10, "hello"},
		{"hello", 10, 15, ""},
		{"hello", -1, 3, "hel"},
		{"hello", 3, 2, ""},
		{"€ 1,50", 0, 2, "€ "},
		{"€ 1,50", 2, 6, "1,50"},
	}

	for _, tc := range testCases {
		result := SafeSubstring(tc.input, tc.start, tc.end)
		if result != tc.expected {
			t.Errorf("SafeSubstring(%q, %d, %d) = %q, want %q",
				tc.input, tc.start, tc.end, result, tc.expected)
		}
	}
}

func TestRuneLen(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"hello", 5},
		{"", 0},
		{"€ 1,50", 6},
		{"R$ ", 3},
	}

	for _, tc := range testCases {
		if got := RuneLen(tc.input); got != tc.expected {
			t.Errorf("RuneLen(%q) = %d, want %d", tc.input, got, tc.expected)
		}
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestFloatToStringPrec(t *testing.T) {
	testCases := []struct {
		f        float64
		prec     int
		expected string
	}{
		{123.456, 2, "123.46"},
		{0, 2, "0.00"},
		{-12.5, 2, "-12.50"},
		{1234567, 0, "1234567"},
	}

	for _, tc := range testCases {
		if got := FloatToStringPrec(tc.f, tc.prec); got != tc.expected {
			t.Errorf("FloatToStringPrec(%v, %d) = %q, want %q", tc.f, tc.prec, got, tc.expected)
		}
	}
}

func TestIntToString(t *testing.T) {
	if got := IntToString(42); got != "42" {
		t.Errorf("IntToString(42) = %q", got)
	}
}
