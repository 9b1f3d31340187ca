// Package config loads the widget configuration from a TOML file.
package config

import (
	"github.com/waozixyz/sift/render"
)

// ThemeConfig is the [prompt], [input], [selection]... tables. Empty colours
// inherit from the global settings.
type ThemeConfig struct {
	Color                  string    `toml:"color"`
	BackgroundColor        string    `toml:"background-color"`
	BackgroundPadding      []float64 `toml:"background-padding"`
	BackgroundCornerRadius float64   `toml:"background-corner-radius"`
}

// Config mirrors the configuration file.
type Config struct {
	Font           string  `toml:"font"`
	FontSize       float64 `toml:"font-size"`
	FontVariations string  `toml:"font-variations"`
	FontFeatures   string  `toml:"font-features"`

	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Horizontal bool `toml:"horizontal"`

	NumResults    int     `toml:"num-results"`
	ResultSpacing float64 `toml:"result-spacing"`
	MinInputWidth float64 `toml:"min-input-width"`

	PromptText      string  `toml:"prompt-text"`
	PromptPadding   float64 `toml:"prompt-padding"`
	PlaceholderText string  `toml:"placeholder-text"`
	HideInput       bool    `toml:"hide-input"`
	HiddenCharacter string  `toml:"hidden-character"`

	TextColor           string `toml:"text-color"`
	SelectionColor      string `toml:"selection-color"`
	SelectionMatchColor string `toml:"selection-match-color"`
	BackgroundColor     string `toml:"background-color"`

	PaddingTop    float64 `toml:"padding-top"`
	PaddingBottom float64 `toml:"padding-bottom"`
	PaddingLeft   float64 `toml:"padding-left"`
	PaddingRight  float64 `toml:"padding-right"`

	Prompt          ThemeConfig `toml:"prompt"`
	Placeholder     ThemeConfig `toml:"placeholder"`
	Input           ThemeConfig `toml:"input"`
	DefaultResult   ThemeConfig `toml:"default-result"`
	AlternateResult ThemeConfig `toml:"alternate-result"`
	Selection       ThemeConfig `toml:"selection"`
}

// Default returns the built-in configuration. A font of "" selects the
// embedded Go Regular face.
func Default() *Config {
	return &Config{
		FontSize:        24,
		Width:           1280,
		Height:          720,
		PromptText:      "run: ",
		HiddenCharacter: "*",

		TextColor:           "#FFFFFF",
		SelectionColor:      "#F92672",
		SelectionMatchColor: "#00000000",
		BackgroundColor:     "#1B1D1E",

		PaddingTop:    8,
		PaddingBottom: 8,
		PaddingLeft:   8,
		PaddingRight:  8,

		Placeholder: ThemeConfig{Color: "#FFFFFFA8"},
	}
}

// WindowConfig returns the window settings for a windowed backend.
func (c *Config) WindowConfig() render.WindowConfig {
	wc := render.DefaultWindowConfig()
	wc.Width = c.Width
	wc.Height = c.Height
	if bg := render.ParseHexColor(c.BackgroundColor); bg.IsValid() {
		wc.DefaultBg = bg
	}
	return wc
}

// Clip insets bounds by the configured padding.
func (c *Config) Clip(bounds render.Rect) render.Rect {
	return render.Rect{
		X:      bounds.X + c.PaddingLeft,
		Y:      bounds.Y + c.PaddingTop,
		Width:  max(0, bounds.Width-c.PaddingLeft-c.PaddingRight),
		Height: max(0, bounds.Height-c.PaddingTop-c.PaddingBottom),
	}
}
