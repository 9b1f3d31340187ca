// render/shaper/session.go
package shaper

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/harfbuzz"
	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/typeface"
)

var english = language.NewLanguage("en")

// Options are the font settings applied once when a Session is created.
type Options struct {
	Variations string // comma separated, e.g. "wght=700"
	Features   string // comma separated, e.g. "-liga,tnum"
}

// Session owns the shaping buffer and font for one widget. Extents returned
// by ShapeAndDraw are only meaningful until the next call, since the buffer
// and glyph scratch space are reused.
type Session struct {
	tf         *typeface.Typeface
	buf        *harfbuzz.Buffer
	font       *harfbuzz.Font
	variations []font.Variation
	features   []harfbuzz.Feature

	runes  []rune
	glyphs []render.Glyph
}

// New binds a shaping session to tf. Variations are applied to the shared
// face, so outlines drawn by surfaces using tf follow them too.
func New(tf *typeface.Typeface, opts Options) (*Session, error) {
	if tf == nil || tf.Face == nil {
		return nil, fmt.Errorf("error creating shaping session: %w", typeface.ErrNoFont)
	}

	s := &Session{
		tf:         tf,
		variations: ParseVariations(opts.Variations),
		features:   ParseFeatures(opts.Features),
	}

	// An empty list resets the face to its default instance.
	tf.Face.SetVariations(s.variations)

	// The face must not change after this point.
	s.font = harfbuzz.NewFont(tf.Face)
	scale := int32(fixed.Int26_6(tf.PixelSize * 64))
	if scale <= 0 {
		return nil, errors.New("error creating shaping session: font scale is zero")
	}
	s.font.XScale = scale
	s.font.YScale = scale
	s.buf = harfbuzz.NewBuffer()

	log.Printf("INFO: Shaping with %s at %.0fpx (%d variations, %d features)",
		tf.Source, tf.PixelSize, len(s.variations), len(s.features))
	return s, nil
}

// Typeface returns the face the session shapes with.
func (s *Session) Typeface() *typeface.Typeface { return s.tf }

// ShapeAndDraw shapes text, paints it at the surface's current origin with the
// current colour and returns its ink extents. The origin is the top of the
// line; YBearing in the result is relative to it.
func (s *Session) ShapeAndDraw(surface render.Surface, text string) render.InkExtents {
	if s.buf == nil {
		log.Println("WARN ShapeAndDraw: session is closed")
		return render.InkExtents{}
	}

	s.runes = s.runes[:0]
	for _, r := range text {
		s.runes = append(s.runes, r)
	}

	s.buf.Clear()
	s.buf.Props = harfbuzz.SegmentProperties{
		Direction: harfbuzz.LeftToRight,
		Script:    language.Latin,
		Language:  english,
	}
	s.buf.AddRunes(s.runes, 0, -1)
	s.buf.Shape(s.font, s.features)

	fe := surface.FontExtents()
	surface.Save()
	surface.Translate(0, fe.Ascent)

	var x, y fixed.Int26_6
	s.glyphs = s.glyphs[:0]
	for i, info := range s.buf.Info {
		pos := s.buf.Pos[i]
		s.glyphs = append(s.glyphs, render.Glyph{
			ID: uint32(info.Glyph),
			X:  toFloat(x + fixed.Int26_6(pos.XOffset)),
			Y:  toFloat(y - fixed.Int26_6(pos.YOffset)),
		})
		x += fixed.Int26_6(pos.XAdvance)
		y -= fixed.Int26_6(pos.YAdvance)
	}

	surface.ShowGlyphs(s.glyphs)
	ext := surface.GlyphExtents(s.glyphs)
	ext.YBearing += fe.Ascent

	surface.Restore()
	return ext
}

// Close releases the session's shaping state in reverse order of
// acquisition. The typeface stays owned by the caller.
func (s *Session) Close() {
	s.buf = nil
	s.font = nil
	s.features = nil
	s.variations = nil
	s.glyphs = nil
	s.runes = nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
