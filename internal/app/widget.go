// internal/app/widget.go
package app

import (
	"fmt"
	"log"

	"github.com/waozixyz/sift/config"
	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/entry"
	"github.com/waozixyz/sift/render/shaper"
	"github.com/waozixyz/sift/render/typeface"
)

// Widget ties a configuration to a typeface, a shaping session and the
// selection state. It draws onto any render.Surface.
type Widget struct {
	Session *Session

	cfg     *config.Config
	session *shaper.Session
	shaper  entry.TextShaper
}

// NewWidget loads the configured font and builds the widget over candidates.
func NewWidget(cfg *config.Config, candidates []string) (*Widget, error) {
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	tf, err := loadTypeface(cfg)
	if err != nil {
		return nil, err
	}
	sess, err := shaper.New(tf, cfg.ShaperOptions())
	if err != nil {
		return nil, err
	}
	return &Widget{
		Session: NewSession(style, cfg.PromptText, cfg.PlaceholderText, candidates),
		cfg:     cfg,
		session: sess,
		shaper:  sess,
	}, nil
}

func loadTypeface(cfg *config.Config) (*typeface.Typeface, error) {
	if cfg.Font == "" {
		return typeface.Default(cfg.FontSize)
	}
	tf, err := typeface.Load(cfg.Font, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("loading font %q: %w", cfg.Font, err)
	}
	return tf, nil
}

func (w *Widget) Config() *config.Config       { return w.cfg }
func (w *Widget) Typeface() *typeface.Typeface { return w.session.Typeface() }

// Runes lists every rune the widget may draw before any typing happens.
func (w *Widget) Runes() []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(s string) {
		for _, r := range s {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	add(w.cfg.PromptText)
	add(w.cfg.PlaceholderText)
	add(w.cfg.HiddenCharacter)
	for _, c := range w.Session.candidates {
		add(c)
	}
	return out
}

// Draw lays the widget out inside bounds, inset by the configured padding.
func (w *Widget) Draw(s render.Surface, bounds render.Rect) {
	e := &w.Session.Entry
	e.Clip = w.cfg.Clip(bounds)

	s.Save()
	s.Translate(e.Clip.X, e.Clip.Y)
	e.Draw(s, w.shaper)
	s.Restore()

	// A smaller page than last frame can leave the selection undrawn.
	if e.NumResultsDrawn > 0 && e.Selection >= e.NumResultsDrawn {
		w.Session.scroll()
	}
}

// Apply switches to a reloaded configuration. Style and shaping settings take
// effect immediately; a different font needs a restart.
func (w *Widget) Apply(cfg *config.Config) error {
	style, err := cfg.Style()
	if err != nil {
		return err
	}
	if cfg.Font != w.cfg.Font || cfg.FontSize != w.cfg.FontSize {
		log.Printf("WARN Apply: Font changes take effect on restart")
		cfg.Font, cfg.FontSize = w.cfg.Font, w.cfg.FontSize
	}
	if cfg.FontVariations != w.cfg.FontVariations || cfg.FontFeatures != w.cfg.FontFeatures {
		sess, err := shaper.New(w.Typeface(), cfg.ShaperOptions())
		if err != nil {
			return err
		}
		w.session.Close()
		w.session, w.shaper = sess, sess
	}

	e := &w.Session.Entry
	e.Style = style
	e.PromptText = cfg.PromptText
	e.PlaceholderText = cfg.PlaceholderText
	w.cfg = cfg
	return nil
}

func (w *Widget) Close() {
	if w.session != nil {
		w.session.Close()
	}
}
