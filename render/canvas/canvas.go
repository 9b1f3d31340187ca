// render/canvas/canvas.go
package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/typeface"
)

type point struct{ x, y float64 }

// Surface is an off-screen render.Surface backed by a gg context. Glyphs are
// filled from the typeface's outlines.
type Surface struct {
	tf     *typeface.Typeface
	dc     *gg.Context
	below  []*gg.Context // targets suspended by PushGroup
	width  int
	height int

	color render.Color
	pos   point
	saved []point
}

// New creates a transparent width x height surface drawing text with tf.
func New(width, height int, tf *typeface.Typeface) *Surface {
	return &Surface{
		tf:     tf,
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Fill paints the whole current target with c, ignoring the transform.
func (s *Surface) Fill(c render.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.Clear()
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) EncodePNG(w io.Writer) error {
	if len(s.below) > 0 {
		return fmt.Errorf("canvas: %d compositing groups still open", len(s.below))
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) SavePNG(path string) error {
	if len(s.below) > 0 {
		return fmt.Errorf("canvas: %d compositing groups still open", len(s.below))
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func (s *Surface) SetColor(c render.Color) { s.color = c }

func (s *Surface) Translate(dx, dy float64) {
	s.pos.x += dx
	s.pos.y += dy
}

func (s *Surface) Save() { s.saved = append(s.saved, s.pos) }

func (s *Surface) Restore() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.pos = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *Surface) Offset() (float64, float64) { return s.pos.x, s.pos.y }

func (s *Surface) FontExtents() render.FontExtents { return s.tf.Extents() }

func (s *Surface) GlyphExtents(glyphs []render.Glyph) render.InkExtents {
	return s.tf.GlyphExtents(glyphs)
}

// prepare loads the current transform and colour into the gg context.
func (s *Surface) prepare() {
	s.dc.Identity()
	s.dc.Translate(s.pos.x, s.pos.y)
	s.dc.SetRGBA(s.color.R, s.color.G, s.color.B, s.color.A)
}

func (s *Surface) ShowGlyphs(glyphs []render.Glyph) {
	if len(glyphs) == 0 || !s.color.Visible() {
		return
	}
	s.prepare()
	scale := s.tf.Scale()

	drew := false
	for _, g := range glyphs {
		outline, ok := s.tf.Outline(g.ID)
		if !ok {
			continue
		}
		at := func(p ot.SegmentPoint) (float64, float64) {
			return g.X + float64(p.X)*scale, g.Y - float64(p.Y)*scale
		}
		for i, seg := range outline.Segments {
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				if i > 0 {
					s.dc.ClosePath()
				}
				s.dc.MoveTo(at(seg.Args[0]))
			case ot.SegmentOpLineTo:
				s.dc.LineTo(at(seg.Args[0]))
			case ot.SegmentOpQuadTo:
				x1, y1 := at(seg.Args[0])
				x2, y2 := at(seg.Args[1])
				s.dc.QuadraticTo(x1, y1, x2, y2)
			case ot.SegmentOpCubeTo:
				x1, y1 := at(seg.Args[0])
				x2, y2 := at(seg.Args[1])
				x3, y3 := at(seg.Args[2])
				s.dc.CubicTo(x1, y1, x2, y2, x3, y3)
			}
		}
		s.dc.ClosePath()
		drew = true
	}
	if drew {
		s.dc.Fill()
	}
}

func (s *Surface) FillRoundedRect(w, h, radius float64) {
	if w <= 0 || h <= 0 || !s.color.Visible() {
		return
	}
	s.prepare()
	radius = math.Max(0, math.Min(radius, math.Min(w, h)/2))
	if radius == 0 {
		s.dc.DrawRectangle(0, 0, w, h)
	} else {
		s.dc.DrawRoundedRectangle(0, 0, w, h, radius)
	}
	s.dc.Fill()
}

type group struct {
	img image.Image
}

func (g *group) Release() { g.img = nil }

func (s *Surface) PushGroup() {
	s.below = append(s.below, s.dc)
	s.dc = gg.NewContext(s.width, s.height)
}

func (s *Surface) PopGroup() render.Group {
	n := len(s.below)
	if n == 0 {
		return &group{}
	}
	g := &group{img: s.dc.Image()}
	s.dc = s.below[n-1]
	s.below = s.below[:n-1]
	return g
}

func (s *Surface) PaintGroup(rg render.Group) {
	g, ok := rg.(*group)
	if !ok || g.img == nil {
		return
	}
	s.dc.Identity()
	s.dc.DrawImage(g.img, 0, 0)
}
