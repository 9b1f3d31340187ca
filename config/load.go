package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath returns $XDG_CONFIG_HOME/sift/config.toml, or "" if no user
// config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sift", "config.toml")
}

// Load reads the file at path over the defaults. A missing file is an error;
// use LoadOptional for the default location.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, wrapDecodeError(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func wrapDecodeError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decErr):
		pe.Line, pe.Column = decErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		first := &strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown key " + strings.Join(first.Key(), ".")
	}
	return pe
}

// Validate checks values that decode fine but cannot be used.
func (c *Config) Validate() error {
	if c.FontSize <= 0 {
		return fmt.Errorf("font-size %v: %w", c.FontSize, ErrInvalidValue)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrInvalidValue)
	}
	if c.NumResults < 0 {
		return fmt.Errorf("num-results %d: %w", c.NumResults, ErrInvalidValue)
	}
	themes := map[string]*ThemeConfig{
		"prompt":           &c.Prompt,
		"placeholder":      &c.Placeholder,
		"input":            &c.Input,
		"default-result":   &c.DefaultResult,
		"alternate-result": &c.AlternateResult,
		"selection":        &c.Selection,
	}
	for name, t := range themes {
		if n := len(t.BackgroundPadding); n > 4 {
			return fmt.Errorf("%s.background-padding has %d values: %w", name, n, ErrInvalidValue)
		}
	}
	return nil
}
