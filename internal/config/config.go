package config

import (
	"os"
	"strconv"
	"strings"
)

// OutputStyle selects how summaries are printed.
type OutputStyle string

const (
	StyleAuto   OutputStyle = "auto"
	StylePlain  OutputStyle = "plain"
	StyleStyled OutputStyle = "styled"
)

// Config holds runtime settings for the stride CLI.
type Config struct {
	PackagesFile string
	LogUseCases  bool
	FailFast     bool
	Style        OutputStyle
	NoColor      bool
}

// DefaultConfig returns a Config with sensible defaults.
// With no package file the built-in samples are reported.
func DefaultConfig() Config {
	return Config{
		LogUseCases: false,
		FailFast:    false,
		Style:       StyleAuto,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STRIDE_PACKAGES"); v != "" {
		cfg.PackagesFile = v
	}
	if v := os.Getenv("STRIDE_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIDE_FAIL_FAST"); v != "" {
		cfg.FailFast, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIDE_STYLE"); v != "" {
		switch s := OutputStyle(strings.ToLower(v)); s {
		case StyleAuto, StylePlain, StyleStyled:
			cfg.Style = s
		}
	}
	// https://no-color.org: any non-empty value disables color.
	cfg.NoColor = os.Getenv("NO_COLOR") != ""

	return cfg
}

// Styled reports whether styled output should be used given whether
// stdout is a terminal.
func (c Config) Styled(isTerminal bool) bool {
	if c.NoColor {
		return false
	}
	switch c.Style {
	case StylePlain:
		return false
	case StyleStyled:
		return true
	default:
		return isTerminal
	}
}
