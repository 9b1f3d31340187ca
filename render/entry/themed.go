// render/entry/themed.go
package entry

import (
	"math"

	"github.com/waozixyz/sift/render"
)

// RenderThemed draws text at the surface origin with theme and returns its
// ink extents.
//
// With a background the text is drawn, measured, painted over by the box and
// then drawn again on top. The box must cover the first drawing; very large
// corner radii can leave its corners showing.
func RenderThemed(s render.Surface, sh TextShaper, text string, theme *render.TextTheme) render.InkExtents {
	s.SetColor(theme.Foreground)
	ext := sh.ShapeAndDraw(s, text)

	if !theme.HasBackground() {
		return ext
	}

	paintBox(s, ext, theme)

	s.SetColor(theme.Foreground)
	sh.ShapeAndDraw(s, text)
	return ext
}

// BoxSize returns the background box for ink extents ext drawn with theme:
// its offset from the text origin and its size. The offset is floored and the
// size rounded up so the box lands on whole pixels.
func BoxSize(ext render.InkExtents, lineHeight float64, theme *render.TextTheme) (x, y, w, h float64) {
	pad := theme.Padding
	x = math.Floor(-pad.Left + ext.XBearing)
	y = -pad.Top
	w = math.Ceil(ext.Width + pad.Left + pad.Right)
	h = math.Ceil(lineHeight + pad.Top + pad.Bottom)
	return x, y, w, h
}

func paintBox(s render.Surface, ext render.InkExtents, theme *render.TextTheme) {
	x, y, w, h := BoxSize(ext, s.FontExtents().Height, theme)

	s.Save()
	s.SetColor(theme.Background)
	s.Translate(x, y)
	s.FillRoundedRect(w, h, theme.CornerRadius)
	s.Restore()
}
