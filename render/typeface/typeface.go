// render/typeface/typeface.go
package typeface

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/waozixyz/sift/render"
)

// ErrNoFont is returned when a typeface cannot be used for drawing at all.
var ErrNoFont = errors.New("typeface: unusable font")

// Typeface is a parsed font face bound to a pixel size. It is shared by the
// shaping session and the surfaces that paint its glyphs, so variation
// settings applied through the shaper are seen by both.
type Typeface struct {
	Face      *font.Face
	Data      []byte // raw font file, kept for backends that load their own copy
	Source    string
	Points    float64
	PixelSize float64
}

// PixelSize converts a point size to pixels at 96 DPI, rounded down.
func PixelSize(points float64) float64 {
	return math.Floor(points * 96.0 / 72.0)
}

// Load reads and parses the font file at path.
func Load(path string, points float64) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading font %q: %w", path, err)
	}
	return Parse(data, path, points)
}

// Default returns the embedded Go Regular face.
func Default(points float64) (*Typeface, error) {
	return Parse(goregular.TTF, "Go Regular", points)
}

// Parse parses an in-memory TrueType/OpenType font.
func Parse(data []byte, source string, points float64) (*Typeface, error) {
	size := PixelSize(points)
	if size <= 0 {
		return nil, fmt.Errorf("error setting font size %.1fpt for %q: %w", points, source, ErrNoFont)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error parsing font %q: %w", source, err)
	}
	if face.Upem() == 0 {
		return nil, fmt.Errorf("font %q has no units per em: %w", source, ErrNoFont)
	}
	return &Typeface{
		Face:      face,
		Data:      data,
		Source:    source,
		Points:    points,
		PixelSize: size,
	}, nil
}

// Scale converts font units to pixels.
func (t *Typeface) Scale() float64 {
	return t.PixelSize / float64(t.Face.Upem())
}

// Extents returns the horizontal line metrics in pixels.
func (t *Typeface) Extents() render.FontExtents {
	s := t.Scale()
	fe, ok := t.Face.FontHExtents()
	if !ok {
		// No usable hhea/OS2 data; fall back to the em box.
		return render.FontExtents{Ascent: t.PixelSize * 0.8, Descent: t.PixelSize * 0.2, Height: t.PixelSize}
	}
	asc := float64(fe.Ascender) * s
	desc := -float64(fe.Descender) * s
	return render.FontExtents{
		Ascent:  asc,
		Descent: desc,
		Height:  asc + desc + float64(fe.LineGap)*s,
	}
}

// Advance returns the unshaped horizontal advance of gid in pixels.
func (t *Typeface) Advance(gid uint32) float64 {
	return float64(t.Face.HorizontalAdvance(font.GID(gid))) * t.Scale()
}

// GlyphExtents measures a positioned glyph run in y-down pixel space. Bearings
// are relative to the first glyph's position and the advance runs to the end
// of the last glyph's advance.
func (t *Typeface) GlyphExtents(glyphs []render.Glyph) render.InkExtents {
	if len(glyphs) == 0 {
		return render.InkExtents{}
	}
	s := t.Scale()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, g := range glyphs {
		ge, ok := t.Face.GlyphExtents(font.GID(g.ID))
		if !ok || ge.Width == 0 || ge.Height == 0 {
			continue
		}
		left := g.X + float64(ge.XBearing)*s
		top := g.Y - float64(ge.YBearing)*s
		right := left + float64(ge.Width)*s
		bottom := top - float64(ge.Height)*s
		minX = math.Min(minX, math.Min(left, right))
		maxX = math.Max(maxX, math.Max(left, right))
		minY = math.Min(minY, math.Min(top, bottom))
		maxY = math.Max(maxY, math.Max(top, bottom))
	}

	first, last := glyphs[0], glyphs[len(glyphs)-1]
	ext := render.InkExtents{XAdvance: last.X + t.Advance(last.ID) - first.X}
	if math.IsInf(minX, 1) {
		// Whitespace only: no ink.
		return ext
	}
	ext.XBearing = minX - first.X
	ext.YBearing = minY - first.Y
	ext.Width = maxX - minX
	ext.Height = maxY - minY
	return ext
}

// Outline returns the vector outline of gid in font units (y up), or false for
// glyphs with no outline (spaces, bitmap-only glyphs).
func (t *Typeface) Outline(gid uint32) (font.GlyphOutline, bool) {
	outline, ok := t.Face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return font.GlyphOutline{}, false
	}
	return outline, true
}

// ReverseCmap maps the nominal glyph of each rune back to the rune. Backends
// that index their glyph cache by codepoint use it to find shaped glyphs.
func (t *Typeface) ReverseCmap(runes []rune) map[uint32]rune {
	out := make(map[uint32]rune, len(runes))
	for _, r := range runes {
		gid, ok := t.Face.NominalGlyph(r)
		if !ok {
			continue
		}
		if _, seen := out[uint32(gid)]; !seen {
			out[uint32(gid)] = r
		}
	}
	return out
}
