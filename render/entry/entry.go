// render/entry/entry.go
package entry

import (
	"github.com/waozixyz/sift/render"
)

// TextShaper shapes a string, paints it at the surface origin in the current
// colour and returns its ink extents. *shaper.Session implements it.
type TextShaper interface {
	ShapeAndDraw(surface render.Surface, text string) render.InkExtents
}

// Style is the static look of the widget, normally built from configuration.
type Style struct {
	PromptTheme          render.TextTheme
	PlaceholderTheme     render.TextTheme
	InputTheme           render.TextTheme
	DefaultResultTheme   render.TextTheme
	AlternateResultTheme render.TextTheme
	SelectionTheme       render.TextTheme

	// SelectionHighlight colours the part of the selected result matching the
	// input. Zero alpha turns match highlighting off.
	SelectionHighlight render.Color

	Horizontal    bool
	NumResults    int // 0 fits as many results as the clip allows
	ResultSpacing float64
	PromptPadding float64
	MinInputWidth float64

	HideInput       bool
	HiddenCharacter string
}

// Entry is the per-frame state of the widget. Results, FirstResult and
// Selection belong to the caller; Draw only writes NumResultsDrawn.
type Entry struct {
	Style

	PromptText      string
	PlaceholderText string
	Input           string

	Results     []string
	FirstResult int
	// Selection is relative to FirstResult: 0 is the first visible row.
	Selection int

	// Clip is the device rectangle results must fit inside when NumResults
	// is 0.
	Clip render.Rect

	NumResultsDrawn int
}

// DisplayedInput is the text drawn in the input field: the input itself, or
// its masked form when HideInput is set.
func (e *Entry) DisplayedInput() string {
	if e.HideInput {
		return MaskInput(e.Input, e.HiddenCharacter)
	}
	return e.Input
}

// resultTheme picks the theme for visible slot i showing Results[index].
func (e *Entry) resultTheme(i, index int) *render.TextTheme {
	switch {
	case i == e.Selection:
		return &e.SelectionTheme
	case index%2 == 1:
		return &e.AlternateResultTheme
	default:
		return &e.DefaultResultTheme
	}
}

// highlighting reports whether slot i goes through the match highlight path.
func (e *Entry) highlighting(i int) bool {
	return i == e.Selection && e.SelectionHighlight.Visible()
}
