// render/theme.go
package render

// Padding holds independent edge insets.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// Uniform returns a Padding with the same inset on every edge.
func Uniform(v float64) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// TextTheme describes how one role of text (prompt, input, a result row...) is
// drawn. A Background with zero alpha means no box is drawn behind the text.
type TextTheme struct {
	Foreground   Color
	Background   Color
	Padding      Padding
	CornerRadius float64
}

// HasBackground reports whether the theme paints a box behind its text.
func (t TextTheme) HasBackground() bool {
	return t.Background.Visible()
}
