// render/surface.go
package render

// Glyph is a shaped glyph placed at an absolute position in the surface's
// current user space. Y grows downward and is the baseline.
type Glyph struct {
	ID uint32
	X  float64
	Y  float64
}

// InkExtents is the measured bounding box of a glyph run. XBearing and
// YBearing are relative to the origin the run was drawn from; XAdvance is how
// far the pen moved.
type InkExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
}

// FontExtents are the line metrics of the surface's font in surface units.
// Descent is positive below the baseline.
type FontExtents struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Rect is an axis aligned rectangle in device coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the far edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the far edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Surface is the 2D canvas the entry widget draws onto. Transformations are
// translation only and accumulate until Restore pops them.
type Surface interface {
	SetColor(c Color)
	Translate(dx, dy float64)
	Save()
	Restore()
	// Offset returns the absolute device offset of the current transform.
	Offset() (x, y float64)

	FontExtents() FontExtents
	ShowGlyphs(glyphs []Glyph)
	// GlyphExtents measures glyphs exactly as ShowGlyphs would paint them,
	// relative to the position of the first glyph.
	GlyphExtents(glyphs []Glyph) InkExtents
	// FillRoundedRect fills a w x h rectangle at the current origin.
	FillRoundedRect(w, h, radius float64)

	// PushGroup redirects drawing into an off-screen group until PopGroup.
	// The current transform carries over into the group.
	PushGroup()
	PopGroup() Group
	// PaintGroup composites a popped group onto the current target at the
	// device position it was drawn at.
	PaintGroup(g Group)
}

// Group is an off-screen drawing popped from a Surface. Release must be called
// once the group is painted or discarded.
type Group interface {
	Release()
}
