// Package rendertest provides a recording render.Surface and a fixed-advance
// shaper for testing code that draws onto a surface.
package rendertest

import (
	"github.com/waozixyz/sift/render"
)

// Metrics of the fake font. Every glyph advances by Advance; its ink starts
// Bearing after the pen and stops Bearing before the next pen position, and
// rises CapHeight above the baseline. Glyph ' ' has no ink.
const (
	Advance   = 10.0
	Bearing   = 1.0
	CapHeight = 12.0
	Ascent    = 16.0
	Descent   = 4.0
	Height    = 20.0
)

// OpKind says what a recorded draw was.
type OpKind int

const (
	OpGlyphs OpKind = iota
	OpRect
)

// Op is one finalized paint on the surface, in device coordinates.
type Op struct {
	Kind   OpKind
	X, Y   float64 // device origin at the time of the draw
	Color  render.Color
	Glyphs []render.Glyph

	W, H, Radius float64
}

// Text rebuilds the string drawn by an OpGlyphs recorded through Shaper.
func (o Op) Text() string {
	rs := make([]rune, len(o.Glyphs))
	for i, g := range o.Glyphs {
		rs[i] = rune(g.ID)
	}
	return string(rs)
}

type point struct{ x, y float64 }

// Surface records paints. Paints inside a compositing group only reach Ops
// once the group is painted.
type Surface struct {
	Ops []Op

	Pushed   int
	Painted  int
	Released int

	color  render.Color
	pos    point
	saved  []point
	groups [][]Op
}

// New returns an empty recording surface with its origin at (0,0).
func New() *Surface {
	return &Surface{}
}

type group struct {
	s    *Surface
	ops  []Op
	done bool
}

func (g *group) Release() {
	if g.done {
		return
	}
	g.done = true
	g.s.Released++
}

func (s *Surface) record(op Op) {
	op.X += s.pos.x
	op.Y += s.pos.y
	op.Color = s.color
	if n := len(s.groups); n > 0 {
		s.groups[n-1] = append(s.groups[n-1], op)
		return
	}
	s.Ops = append(s.Ops, op)
}

func (s *Surface) SetColor(c render.Color) { s.color = c }

func (s *Surface) Translate(dx, dy float64) {
	s.pos.x += dx
	s.pos.y += dy
}

func (s *Surface) Save() { s.saved = append(s.saved, s.pos) }

func (s *Surface) Restore() {
	if n := len(s.saved); n > 0 {
		s.pos = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

func (s *Surface) Offset() (float64, float64) { return s.pos.x, s.pos.y }

// Depth is the number of unmatched Save calls.
func (s *Surface) Depth() int { return len(s.saved) }

func (s *Surface) FontExtents() render.FontExtents {
	return render.FontExtents{Ascent: Ascent, Descent: Descent, Height: Height}
}

func (s *Surface) ShowGlyphs(glyphs []render.Glyph) {
	s.record(Op{Kind: OpGlyphs, Glyphs: append([]render.Glyph(nil), glyphs...)})
}

func (s *Surface) GlyphExtents(glyphs []render.Glyph) render.InkExtents {
	return MeasureGlyphs(glyphs)
}

func (s *Surface) FillRoundedRect(w, h, radius float64) {
	s.record(Op{Kind: OpRect, W: w, H: h, Radius: radius})
}

func (s *Surface) PushGroup() {
	s.Pushed++
	s.groups = append(s.groups, nil)
}

func (s *Surface) PopGroup() render.Group {
	n := len(s.groups)
	if n == 0 {
		return &group{s: s, done: true}
	}
	g := &group{s: s, ops: s.groups[n-1]}
	s.groups = s.groups[:n-1]
	return g
}

func (s *Surface) PaintGroup(rg render.Group) {
	g, ok := rg.(*group)
	if !ok {
		return
	}
	s.Painted++
	for _, op := range g.ops {
		if n := len(s.groups); n > 0 {
			s.groups[n-1] = append(s.groups[n-1], op)
			continue
		}
		s.Ops = append(s.Ops, op)
	}
}

// OpenGroups is the number of groups pushed but not yet popped.
func (s *Surface) OpenGroups() int { return len(s.groups) }

// Texts lists the strings of every finalized glyph paint, in order.
func (s *Surface) Texts() []string {
	var out []string
	for _, op := range s.Ops {
		if op.Kind == OpGlyphs {
			out = append(out, op.Text())
		}
	}
	return out
}

// Rects returns the finalized rounded rectangle fills.
func (s *Surface) Rects() []Op {
	var out []Op
	for _, op := range s.Ops {
		if op.Kind == OpRect {
			out = append(out, op)
		}
	}
	return out
}

// MeasureGlyphs computes ink extents for glyphs with the fake font metrics.
func MeasureGlyphs(glyphs []render.Glyph) render.InkExtents {
	if len(glyphs) == 0 {
		return render.InkExtents{}
	}
	first, last := glyphs[0], glyphs[len(glyphs)-1]
	ext := render.InkExtents{XAdvance: last.X + Advance - first.X}

	inked := false
	var minX, maxX, minY, maxY float64
	for _, g := range glyphs {
		if g.ID == ' ' {
			continue
		}
		l, r := g.X+Bearing, g.X+Advance-Bearing
		t, b := g.Y-CapHeight, g.Y
		if !inked {
			minX, maxX, minY, maxY = l, r, t, b
			inked = true
			continue
		}
		minX, maxX = min(minX, l), max(maxX, r)
		minY, maxY = min(minY, t), max(maxY, b)
	}
	if !inked {
		return ext
	}
	ext.XBearing = minX - first.X
	ext.YBearing = minY - first.Y
	ext.Width = maxX - minX
	ext.Height = maxY - minY
	return ext
}

// Shaper lays every rune out at a fixed advance, using the rune as glyph id.
// It follows the same save/translate/draw/restore sequence as the real
// shaping session.
type Shaper struct {
	Calls []string
}

func (f *Shaper) ShapeAndDraw(surface render.Surface, text string) render.InkExtents {
	f.Calls = append(f.Calls, text)

	fe := surface.FontExtents()
	surface.Save()
	surface.Translate(0, fe.Ascent)

	var glyphs []render.Glyph
	x := 0.0
	for _, r := range text {
		glyphs = append(glyphs, render.Glyph{ID: uint32(r), X: x})
		x += Advance
	}
	surface.ShowGlyphs(glyphs)
	ext := surface.GlyphExtents(glyphs)
	ext.YBearing += fe.Ascent

	surface.Restore()
	return ext
}
