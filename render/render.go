// render/render.go
package render

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool
	DefaultBg Color
}

// EventKind identifies an input event delivered by a windowed backend.
type EventKind uint8

const (
	EventRune EventKind = iota
	EventBackspace
	EventUp
	EventDown
	EventLeft
	EventRight
	EventTab
	EventAccept
	EventCancel
)

// Event is one user input event. Rune is only set for EventRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// Renderer defines the interface windowed backends implement. The entry widget
// itself only ever talks to the Surface returned between BeginFrame and EndFrame.
type Renderer interface {
	Init(config WindowConfig) error
	Cleanup()
	ShouldClose() bool
	BeginFrame()
	EndFrame()
	PollEvents() []Event

	// Surface returns the drawing surface for the current frame.
	Surface() Surface
	// Bounds is the drawable area of the window in device pixels.
	Bounds() Rect
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "sift",
		Resizable: true,
		DefaultBg: Color{R: 0x1b / 255.0, G: 0x1d / 255.0, B: 0x1e / 255.0, A: 1},
	}
}
