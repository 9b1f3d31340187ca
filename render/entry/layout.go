// render/entry/layout.go
package entry

import (
	"github.com/waozixyz/sift/render"
)

// Draw renders the prompt, the input (or placeholder) and as many results as
// fit, starting at the surface's current origin. The number of result rows
// drawn is stored in NumResultsDrawn.
//
// With NumResults set, exactly that many rows are drawn (fewer on the last
// page). With NumResults 0, rows are drawn until one would cross the far edge
// of Clip. Vertically the line height is known up front, so the check comes
// before drawing; horizontally each row is drawn into a group, measured and
// only composited if it fits.
func (e *Entry) Draw(s render.Surface, sh TextShaper) {
	s.Save()
	defer s.Restore()

	ext := RenderThemed(s, sh, e.PromptText, &e.PromptTheme)
	s.Translate(ext.XAdvance+e.PromptPadding, 0)

	if e.Input == "" {
		ext = RenderThemed(s, sh, e.PlaceholderText, &e.PlaceholderTheme)
	} else {
		ext = RenderThemed(s, sh, e.DisplayedInput(), &e.InputTheme)
	}
	advance := max(ext.XAdvance, e.MinInputWidth)
	lineHeight := s.FontExtents().Height

	auto := e.NumResults <= 0
	count := len(e.Results)
	limit := count
	if !auto {
		limit = min(e.NumResults, count)
	}

	i := 0
	for ; i < limit; i++ {
		if e.Horizontal {
			s.Translate(advance+e.ResultSpacing, 0)
		} else {
			s.Translate(0, lineHeight+e.ResultSpacing)
		}
		if auto && e.Overflows(s, 0, 0) {
			break
		}

		index := i + e.FirstResult
		if index >= count {
			// Last page.
			break
		}
		result := e.Results[index]

		if e.highlighting(i) {
			// The selection is never checked for overflow.
			ext = RenderHighlighted(s, sh, result, e.highlightQuery(), &e.SelectionTheme, e.SelectionHighlight)
			advance = ext.XAdvance
			continue
		}

		var fits bool
		ext, fits = e.drawResult(s, sh, result, e.resultTheme(i, index), auto, lineHeight)
		if !fits {
			break
		}
		advance = ext.XAdvance
	}
	e.NumResultsDrawn = i
}

func (e *Entry) drawResult(s render.Surface, sh TextShaper, text string, theme *render.TextTheme, auto bool, lineHeight float64) (render.InkExtents, bool) {
	if !auto {
		return RenderThemed(s, sh, text, theme), true
	}

	if !e.Horizontal {
		if e.Overflows(s, 0, lineHeight) {
			return render.InkExtents{}, false
		}
		return RenderThemed(s, sh, text, theme), true
	}

	s.PushGroup()
	ext := RenderThemed(s, sh, text, theme)
	g := s.PopGroup()
	defer g.Release()

	if e.Overflows(s, ext.XAdvance, 0) {
		return ext, false
	}
	s.PaintGroup(g)
	return ext, true
}

// highlightQuery is the text searched for in the selected result. Masked input
// is never revealed through highlighting.
func (e *Entry) highlightQuery() string {
	if e.HideInput {
		return ""
	}
	return e.Input
}

// Overflows reports whether an item of the given size placed at the surface's
// current origin would cross the far edge of Clip along the layout axis.
func (e *Entry) Overflows(s render.Surface, width, height float64) bool {
	x, y := s.Offset()
	if e.Horizontal {
		return x+width > e.Clip.Right()
	}
	return y+height > e.Clip.Bottom()
}
