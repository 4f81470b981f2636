// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for moneyfield.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.moneyfield/config.toml
//   - ~/.moneyfield/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/moneyfield/internal/cursor"
	"github.com/jeranaias/moneyfield/internal/mask"
	"github.com/jeranaias/moneyfield/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete moneyfield configuration.
type Config struct {
	// Version of the configuration schema
	Version string `toml:"version" json:"version"`
	// DefaultPreset names the preset a field uses when none is specified
	DefaultPreset string `toml:"default_preset" json:"default_preset"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Presets maps preset names to field format configurations
	Presets map[string]FieldConfig `toml:"presets" json:"presets"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// ShowReadout displays the live numeric readout next to each field
	ShowReadout bool `toml:"show_readout" json:"show_readout"`
}

// FieldConfig describes the mask format and cursor behavior of one field.
type FieldConfig struct {
	// DecimalSeparator sits between integer and fractional digits
	DecimalSeparator string `toml:"decimal_separator" json:"decimal_separator"`
	// ThousandSeparator groups integer digits in threes
	ThousandSeparator string `toml:"thousand_separator" json:"thousand_separator"`
	// LeftSymbol is the currency prefix (e.g. "R$ ")
	LeftSymbol string `toml:"left_symbol" json:"left_symbol"`
	// RightSymbol is the currency suffix (e.g. " EUR"); must contain no digits
	RightSymbol string `toml:"right_symbol" json:"right_symbol"`
	// Precision is the number of fractional digits (0-6)
	Precision int `toml:"precision" json:"precision"`
	// CursorPolicy is "content" (follow the edited digit) or "end" (always append)
	CursorPolicy string `toml:"cursor_policy" json:"cursor_policy"`
}

// Mask returns the field's mask configuration.
func (f FieldConfig) Mask() mask.Config {
	return mask.Config{
		DecimalSeparator:  f.DecimalSeparator,
		ThousandSeparator: f.ThousandSeparator,
		LeftSymbol:        f.LeftSymbol,
		RightSymbol:       f.RightSymbol,
		Precision:         f.Precision,
	}
}

// Policy returns the field's cursor policy. Anything other than "end"
// resolves to the content-anchored default.
func (f FieldConfig) Policy() cursor.Policy {
	if f.CursorPolicy == "end" {
		return cursor.EndAnchored
	}
	return cursor.ContentAnchored
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:       "1.0.0",
		DefaultPreset: "usd",

		UI: UIConfig{
			Theme:       "dark",
			CompactMode: false,
			ShowReadout: true,
		},

		Presets: map[string]FieldConfig{
			"usd": {
				DecimalSeparator:  ".",
				ThousandSeparator: ",",
				LeftSymbol:        "$",
				RightSymbol:       "",
				Precision:         2,
				CursorPolicy:      "content",
			},
			"eur": {
				DecimalSeparator:  ",",
				ThousandSeparator: ".",
				LeftSymbol:        "",
				RightSymbol:       " €",
				Precision:         2,
				CursorPolicy:      "content",
			},
			"brl": {
				DecimalSeparator:  ",",
				ThousandSeparator: ".",
				LeftSymbol:        "R$ ",
				RightSymbol:       "",
				Precision:         2,
				CursorPolicy:      "content",
			},
			"jpy": {
				DecimalSeparator:  ".",
				ThousandSeparator: ",",
				LeftSymbol:        "¥",
				RightSymbol:       "",
				Precision:         0,
				CursorPolicy:      "end",
			},
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the moneyfield configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".moneyfield"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last, then defaults and validation.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	return finishLoad(cfg)
}

// finishLoad applies env overrides, defaults, and validation.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies MONEYFIELD_* environment variables on top of the
// loaded configuration.
//
//   - MONEYFIELD_PRESET: overrides DefaultPreset
//   - MONEYFIELD_THEME:  overrides UI.Theme
//   - MONEYFIELD_COMPACT: "1"/"true" enables compact mode
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MONEYFIELD_PRESET"); v != "" {
		c.DefaultPreset = strings.ToLower(v)
	}
	if v := os.Getenv("MONEYFIELD_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("MONEYFIELD_COMPACT"); v == "1" || strings.EqualFold(v, "true") {
		c.UI.CompactMode = true
	}
}

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

// SetDefaults fills in zero values a partial config file left out.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.DefaultPreset == "" {
		c.DefaultPreset = def.DefaultPreset
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if len(c.Presets) == 0 {
		c.Presets = def.Presets
	}
	// A preset with no separators at all is underspecified, not "no
	// grouping": give it the default preset's separators.
	for name, p := range c.Presets {
		if p.DecimalSeparator == "" && p.Precision > 0 {
			p.DecimalSeparator = "."
		}
		if p.CursorPolicy == "" {
			p.CursorPolicy = "content"
		}
		c.Presets[name] = p
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, ok := c.Presets[c.DefaultPreset]; !ok {
		return fmt.Errorf("default preset %q is not defined", c.DefaultPreset)
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("unknown theme %q (want dark, light or auto)", c.UI.Theme)
	}

	// Validate presets in a stable order so error messages are deterministic.
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := c.Presets[name]
		if err := p.Mask().Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
		switch p.CursorPolicy {
		case "", "content", "end":
		default:
			return fmt.Errorf("preset %q: unknown cursor policy %q (want content or end)", name, p.CursorPolicy)
		}
	}
	return nil
}

// Preset returns the named preset, or the default preset when name is empty.
func (c *Config) Preset(name string) (FieldConfig, error) {
	if name == "" {
		name = c.DefaultPreset
	}
	p, ok := c.Presets[name]
	if !ok {
		return FieldConfig{}, fmt.Errorf("preset %q is not defined", name)
	}
	return p, nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config file atomically with
// owner-only permissions.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, buf.Bytes(), 0600, 0755); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
