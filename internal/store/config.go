package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultMinYear = 1900
	DefaultLocale  = "en-AU"
)

type GlobalConfig struct {
	// MinYear is the oldest year offered by pickers.
	MinYear int `json:"minYear,omitempty"`

	// Locale is a BCP 47 identifier used for month labels (e.g. "de-DE").
	Locale string `json:"locale,omitempty"`

	// MonthNames optionally overrides month labels. Lists shorter than 12
	// entries are ignored; blank entries fall back to the locale name.
	MonthNames []string `json:"monthNames,omitempty"`

	// Timezone is an IANA zone name used to derive "today". Empty means local time.
	Timezone string `json:"timezone,omitempty"`

	// TUI holds optional user preferences for the interactive picker.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Profile is the color profile id ("default", "mono").
	Profile string `json:"profile,omitempty"`
}

// EffectiveMinYear returns MinYear or the built-in default.
func (c *GlobalConfig) EffectiveMinYear() int {
	if c == nil || c.MinYear == 0 {
		return DefaultMinYear
	}
	return c.MinYear
}

// EffectiveLocale returns Locale or the built-in default.
func (c *GlobalConfig) EffectiveLocale() string {
	if c == nil || strings.TrimSpace(c.Locale) == "" {
		return DefaultLocale
	}
	return strings.TrimSpace(c.Locale)
}

// Set updates a single field by its json name. Used by `datefield config set`.
func (c *GlobalConfig) Set(field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case "minYear":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("minYear: %w", err)
		}
		c.MinYear = n
	case "locale":
		c.Locale = value
	case "timezone":
		c.Timezone = value
	case "monthNames":
		if value == "" {
			c.MonthNames = nil
			return nil
		}
		names := strings.Split(value, ",")
		for i, n := range names {
			names[i] = strings.TrimSpace(n)
		}
		c.MonthNames = names
	case "tui.profile":
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Profile = value
	default:
		return fmt.Errorf("unknown config field: %q (expected minYear|locale|timezone|monthNames|tui.profile)", field)
	}
	return nil
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.datefield).
	if v := strings.TrimSpace(os.Getenv("DATEFIELD_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datefield"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *GlobalConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Keep a copy of the previous config; a failed backup never blocks the save.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
