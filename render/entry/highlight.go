// render/entry/highlight.go
package entry

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/waozixyz/sift/render"
)

var matcher = search.New(language.English, search.IgnoreCase)

// SplitMatch finds the first case-insensitive occurrence of query in text and
// splits text around it. When there is no match, pre is the whole text.
func SplitMatch(text, query string) (pre, match, post string, found bool) {
	if query == "" {
		return text, "", "", false
	}
	start, end := matcher.IndexString(text, query)
	if start < 0 || end <= start {
		return text, "", "", false
	}
	return text[:start], text[start:end], text[end:], true
}

// MergeExtents joins the extents of next, drawn at run's advance, onto run.
// The width runs from the leftmost ink of run to the rightmost ink of next.
func MergeExtents(run, next render.InkExtents) render.InkExtents {
	run.Width = run.XAdvance - run.XBearing + next.XBearing + next.Width
	run.XAdvance += next.XAdvance
	return run
}

// RenderHighlighted draws the selected result with the part matching query in
// the highlight colour, sharing one background box across all parts.
func RenderHighlighted(s render.Surface, sh TextShaper, text, query string, theme *render.TextTheme, highlight render.Color) render.InkExtents {
	pre, match, post, found := SplitMatch(text, query)

	var ext render.InkExtents
	for pass := 0; pass < 2; pass++ {
		ext = drawMatchRuns(s, sh, pre, match, post, found, theme.Foreground, highlight)
		if !theme.HasBackground() {
			break
		}
		if pass == 0 {
			paintBox(s, ext, theme)
		}
	}
	return ext
}

func drawMatchRuns(s render.Surface, sh TextShaper, pre, match, post string, found bool, fg, hl render.Color) render.InkExtents {
	s.Save()
	defer s.Restore()

	var sub render.InkExtents
	s.SetColor(fg)
	if pre != "" {
		sub = sh.ShapeAndDraw(s, pre)
	}
	ext := sub
	if !found {
		return ext
	}

	s.Translate(sub.XAdvance, 0)
	s.SetColor(hl)
	sub = sh.ShapeAndDraw(s, match)
	if pre == "" {
		ext = sub
	} else {
		ext = MergeExtents(ext, sub)
	}

	if post != "" {
		s.Translate(sub.XAdvance, 0)
		s.SetColor(fg)
		sub = sh.ShapeAndDraw(s, post)
		ext = MergeExtents(ext, sub)
	}
	return ext
}
