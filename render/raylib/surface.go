// render/raylib/surface.go
package raylib

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/typeface"
)

// roundedSegments is the number of segments per rounded corner.
const roundedSegments = 8

type point struct{ x, y float64 }

// blendFactors are the GL blend factors and equations for one blend state.
type blendFactors struct {
	srcRGB, dstRGB, srcAlpha, dstAlpha int32
	eqRGB, eqAlpha                     int32
}

// groupBlend is used while drawing into a group texture. Colour is blended as
// usual, which leaves it premultiplied over the cleared texture, while alpha
// accumulates as src + dst*(1-src) instead of being multiplied by itself.
// PaintGroup then composites the texture with premultiplied blending.
var groupBlend = blendFactors{
	srcRGB:   rl.SrcAlpha,
	dstRGB:   rl.OneMinusSrcAlpha,
	srcAlpha: rl.One,
	dstAlpha: rl.OneMinusSrcAlpha,
	eqRGB:    rl.FuncAdd,
	eqAlpha:  rl.FuncAdd,
}

// Surface draws onto the raylib framebuffer, or onto a pooled render texture
// while a compositing group is open.
type Surface struct {
	tf     *typeface.Typeface
	font   rl.Font
	runes  map[uint32]rune // glyph id -> atlas codepoint
	ascent float64         // atlas ascent, top of line to baseline
	missed map[uint32]bool

	width, height int
	pool          []rl.RenderTexture2D
	open          []rl.RenderTexture2D

	color rl.Color
	pos   point
	saved []point
}

func newSurface(tf *typeface.Typeface, font rl.Font, runes map[uint32]rune, ascent float64) *Surface {
	return &Surface{
		tf:     tf,
		font:   font,
		runes:  runes,
		ascent: ascent,
		missed: make(map[uint32]bool),
	}
}

// resize drops pooled textures sized for the old window.
func (s *Surface) resize(w, h int) {
	s.unload()
	s.width, s.height = w, h
}

func (s *Surface) unload() {
	for _, rt := range s.pool {
		rl.UnloadRenderTexture(rt)
	}
	s.pool = nil
}

func (s *Surface) reset() {
	s.pos = point{}
	s.saved = s.saved[:0]
}

// endFrame closes groups a caller forgot to pop.
func (s *Surface) endFrame() {
	if n := len(s.open); n > 0 {
		log.Printf("WARN endFrame: %d compositing groups left open", n)
		endGroupTarget()
		s.pool = append(s.pool, s.open...)
		s.open = s.open[:0]
	}
}

func (s *Surface) SetColor(c render.Color) { s.color = c.RGBA8() }

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

// ShowGlyphs draws each shaped glyph from the atlas. Glyphs with no codepoint
// in the atlas, such as ligatures, are skipped.
func (s *Surface) ShowGlyphs(glyphs []render.Glyph) {
	if s.color.A == 0 {
		return
	}
	pad := float32(s.font.CharsPadding)
	for _, g := range glyphs {
		cp, ok := s.runes[g.ID]
		if !ok {
			if !s.missed[g.ID] {
				s.missed[g.ID] = true
				log.Printf("WARN ShowGlyphs: glyph %d has no atlas entry, skipping", g.ID)
			}
			continue
		}
		info := rl.GetGlyphInfo(s.font, cp)
		rec := rl.GetGlyphAtlasRec(s.font, cp)
		if rec.Width == 0 || rec.Height == 0 {
			continue
		}

		top := s.pos.y + g.Y - s.ascent
		left := s.pos.x + g.X
		dst := rl.NewRectangle(
			float32(left)+float32(info.OffsetX)-pad,
			float32(top)+float32(info.OffsetY)-pad,
			rec.Width+2*pad,
			rec.Height+2*pad,
		)
		src := rl.NewRectangle(rec.X-pad, rec.Y-pad, rec.Width+2*pad, rec.Height+2*pad)
		rl.DrawTexturePro(s.font.Texture, src, dst, rl.NewVector2(0, 0), 0, s.color)
	}
}

func (s *Surface) FillRoundedRect(w, h, radius float64) {
	if w <= 0 || h <= 0 || s.color.A == 0 {
		return
	}
	rec := rl.NewRectangle(float32(s.pos.x), float32(s.pos.y), float32(w), float32(h))
	if radius <= 0 {
		rl.DrawRectangleRec(rec, s.color)
		return
	}
	// raylib takes the radius as a fraction of half the shorter side.
	roundness := math.Min(1, 2*radius/math.Min(w, h))
	rl.DrawRectangleRounded(rec, float32(roundness), roundedSegments, s.color)
}

type group struct {
	s    *Surface
	rt   rl.RenderTexture2D
	done bool
}

func (g *group) Release() {
	if g.done {
		return
	}
	g.done = true
	if g.rt.ID > 0 {
		g.s.pool = append(g.s.pool, g.rt)
	}
}

func (s *Surface) takeTexture() rl.RenderTexture2D {
	if n := len(s.pool); n > 0 {
		rt := s.pool[n-1]
		s.pool = s.pool[:n-1]
		return rt
	}
	return rl.LoadRenderTexture(int32(s.width), int32(s.height))
}

func useGroupBlend() {
	b := groupBlend
	rl.SetBlendFactorsSeparate(b.srcRGB, b.dstRGB, b.srcAlpha, b.dstAlpha, b.eqRGB, b.eqAlpha)
	rl.BeginBlendMode(rl.BlendCustomSeparate)
}

func beginGroupTarget(rt rl.RenderTexture2D) {
	rl.BeginTextureMode(rt)
	useGroupBlend()
}

func endGroupTarget() {
	rl.EndBlendMode()
	rl.EndTextureMode()
}

func (s *Surface) PushGroup() {
	if len(s.open) > 0 {
		endGroupTarget()
	}
	rt := s.takeTexture()
	s.open = append(s.open, rt)
	beginGroupTarget(rt)
	rl.ClearBackground(rl.Blank)
}

func (s *Surface) PopGroup() render.Group {
	n := len(s.open)
	if n == 0 {
		return &group{s: s, done: true}
	}
	rt := s.open[n-1]
	s.open = s.open[:n-1]
	endGroupTarget()
	if n > 1 {
		beginGroupTarget(s.open[n-2])
	}
	return &group{s: s, rt: rt}
}

func (s *Surface) PaintGroup(rg render.Group) {
	g, ok := rg.(*group)
	if !ok || g.done || g.rt.ID == 0 {
		return
	}
	w, h := float32(g.rt.Texture.Width), float32(g.rt.Texture.Height)
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, w, -h)
	dst := rl.NewRectangle(0, 0, w, h)
	rl.BeginBlendMode(rl.BlendAlphaPremultiply)
	rl.DrawTexturePro(g.rt.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	rl.EndBlendMode()
	if len(s.open) > 0 {
		// Painting into an enclosing group.
		useGroupBlend()
	}
}
