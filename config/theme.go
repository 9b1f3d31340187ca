package config

import (
	"fmt"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/entry"
	"github.com/waozixyz/sift/render/shaper"
)

// Style resolves the configuration into the widget style. Every colour is
// validated; unset role colours fall back to text-color.
func (c *Config) Style() (entry.Style, error) {
	text, err := color("text-color", c.TextColor)
	if err != nil {
		return entry.Style{}, err
	}
	selection, err := color("selection-color", c.SelectionColor)
	if err != nil {
		return entry.Style{}, err
	}
	match, err := color("selection-match-color", c.SelectionMatchColor)
	if err != nil {
		return entry.Style{}, err
	}

	st := entry.Style{
		SelectionHighlight: match,
		Horizontal:         c.Horizontal,
		NumResults:         c.NumResults,
		ResultSpacing:      c.ResultSpacing,
		PromptPadding:      c.PromptPadding,
		MinInputWidth:      c.MinInputWidth,
		HideInput:          c.HideInput,
		HiddenCharacter:    c.HiddenCharacter,
	}

	roles := []struct {
		name string
		cfg  *ThemeConfig
		fg   render.Color
		dst  *render.TextTheme
	}{
		{"prompt", &c.Prompt, text, &st.PromptTheme},
		{"placeholder", &c.Placeholder, text, &st.PlaceholderTheme},
		{"input", &c.Input, text, &st.InputTheme},
		{"default-result", &c.DefaultResult, text, &st.DefaultResultTheme},
		{"alternate-result", &c.AlternateResult, text, &st.AlternateResultTheme},
		{"selection", &c.Selection, selection, &st.SelectionTheme},
	}
	for _, r := range roles {
		t, err := r.cfg.resolve(r.name, r.fg)
		if err != nil {
			return entry.Style{}, err
		}
		*r.dst = t
	}
	return st, nil
}

// ShaperOptions returns the font variation and feature settings.
func (c *Config) ShaperOptions() shaper.Options {
	return shaper.Options{Variations: c.FontVariations, Features: c.FontFeatures}
}

func (t *ThemeConfig) resolve(name string, fg render.Color) (render.TextTheme, error) {
	theme := render.TextTheme{
		Foreground:   fg,
		Padding:      ExpandPadding(t.BackgroundPadding),
		CornerRadius: t.BackgroundCornerRadius,
	}
	if t.Color != "" {
		c, err := color(name+".color", t.Color)
		if err != nil {
			return theme, err
		}
		theme.Foreground = c
	}
	if t.BackgroundColor != "" {
		c, err := color(name+".background-color", t.BackgroundColor)
		if err != nil {
			return theme, err
		}
		theme.Background = c
	}
	return theme, nil
}

// ExpandPadding follows the CSS shorthand: one value for all edges, then
// vertical/horizontal, then top/horizontal/bottom, then top/right/bottom/left.
func ExpandPadding(v []float64) render.Padding {
	switch len(v) {
	case 1:
		return render.Uniform(v[0])
	case 2:
		return render.Padding{Top: v[0], Bottom: v[0], Left: v[1], Right: v[1]}
	case 3:
		return render.Padding{Top: v[0], Left: v[1], Right: v[1], Bottom: v[2]}
	case 4:
		return render.Padding{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	}
	return render.Padding{}
}

func color(key, s string) (render.Color, error) {
	c := render.ParseHexColor(s)
	if !c.IsValid() {
		return c, fmt.Errorf("%s %q: %w", key, s, ErrInvalidColor)
	}
	return c, nil
}
