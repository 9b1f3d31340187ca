// render/raylib/raylib_renderer.go
package raylib

import (
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/typeface"
)

// RaylibRenderer implements render.Renderer with a raylib window. Text is drawn
// from a glyph atlas rasterized by raylib at the typeface's pixel size.
type RaylibRenderer struct {
	config  render.WindowConfig
	tf      *typeface.Typeface
	runes   []rune
	font    rl.Font
	surface *Surface
	width   int
	height  int
}

// NewRaylibRenderer creates a renderer drawing with tf. Only glyphs reachable
// from runes (plus printable Latin-1) are rasterized into the atlas.
func NewRaylibRenderer(tf *typeface.Typeface, runes []rune) *RaylibRenderer {
	return &RaylibRenderer{
		tf:    tf,
		runes: atlasRunes(runes),
	}
}

// Init opens the window and loads the glyph atlas.
func (r *RaylibRenderer) Init(config render.WindowConfig) error {
	r.config = config

	log.Printf("RaylibRenderer Init: Initializing window %dx%d. Title: '%s'.",
		config.Width, config.Height, config.Title)

	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(config.Width), int32(config.Height), config.Title)

	if config.Resizable {
		rl.SetWindowState(rl.FlagWindowResizable)
	} else {
		rl.ClearWindowState(rl.FlagWindowResizable)
		rl.SetWindowSize(config.Width, config.Height)
	}

	rl.SetTargetFPS(60)
	// Escape is handled as an event, not as a close request.
	rl.SetExitKey(rl.KeyNull)

	if !rl.IsWindowReady() {
		return fmt.Errorf("RaylibRenderer Init: rl.InitWindow failed or window is not ready")
	}
	r.width, r.height = config.Width, config.Height

	atlasSize, ascent, err := atlasMetrics(r.tf)
	if err != nil {
		return fmt.Errorf("RaylibRenderer Init: %w", err)
	}
	r.font = rl.LoadFontFromMemory(".ttf", r.tf.Data, atlasSize, r.runes)
	if !rl.IsFontValid(r.font) {
		return fmt.Errorf("RaylibRenderer Init: failed to load %s at %dpx", r.tf.Source, atlasSize)
	}
	rl.SetTextureFilter(r.font.Texture, rl.FilterBilinear)

	r.surface = newSurface(r.tf, r.font, r.tf.ReverseCmap(r.runes), ascent)
	r.surface.resize(r.width, r.height)

	log.Printf("RaylibRenderer Init: Loaded %d glyphs from %s at %dpx.", len(r.runes), r.tf.Source, atlasSize)
	return nil
}

// atlasMetrics returns the size raylib must load the font at so its glyphs
// match the shaper's scale, and the ascent raylib positions glyphs from.
func atlasMetrics(tf *typeface.Typeface) (int32, float64, error) {
	fe, ok := tf.Face.FontHExtents()
	span := float64(fe.Ascender - fe.Descender)
	if !ok || span <= 0 {
		return 0, 0, fmt.Errorf("font %s has no usable vertical metrics", tf.Source)
	}
	size := int32(math.Round(tf.PixelSize * span / float64(tf.Face.Upem())))
	if size <= 0 {
		return 0, 0, fmt.Errorf("font %s rounds to a zero atlas size", tf.Source)
	}
	ascent := float64(fe.Ascender) * float64(size) / span
	return size, ascent, nil
}

func atlasRunes(extra []rune) []rune {
	seen := make(map[rune]bool)
	var out []rune
	add := func(r rune) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	for r := rune(32); r < 127; r++ {
		add(r)
	}
	for r := rune(160); r < 256; r++ {
		add(r)
	}
	for _, r := range extra {
		if r >= 32 {
			add(r)
		}
	}
	return out
}

// Cleanup unloads the atlas and group textures and closes the window.
func (r *RaylibRenderer) Cleanup() {
	if r.surface != nil {
		log.Println("RaylibRenderer Cleanup: Unloading group textures...")
		r.surface.unload()
		r.surface = nil
	}
	if r.font.Texture.ID > 0 {
		rl.UnloadFont(r.font)
		r.font = rl.Font{}
	}

	if rl.IsWindowReady() {
		log.Println("RaylibRenderer Cleanup: Closing Raylib window...")
		rl.CloseWindow()
	} else {
		log.Println("RaylibRenderer Cleanup: Raylib window was already closed or not initialized.")
	}
}

// ShouldClose returns true if the Raylib window has been signaled to close.
func (r *RaylibRenderer) ShouldClose() bool {
	return rl.IsWindowReady() && rl.WindowShouldClose()
}

// BeginFrame tracks window resizes and clears the frame.
func (r *RaylibRenderer) BeginFrame() {
	if rl.IsWindowResized() && r.config.Resizable {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		if w != r.width || h != r.height {
			r.width, r.height = w, h
			r.surface.resize(w, h)
			log.Printf("BeginFrame: Window resized to %dx%d.", w, h)
		}
	}

	rl.BeginDrawing()
	rl.ClearBackground(r.config.DefaultBg.RGBA8())
	r.surface.reset()
}

// EndFrame finalizes the drawing for the current frame.
func (r *RaylibRenderer) EndFrame() {
	r.surface.endFrame()
	rl.EndDrawing()
}

// Surface returns the window surface. It is only valid between BeginFrame
// and EndFrame.
func (r *RaylibRenderer) Surface() render.Surface { return r.surface }

func (r *RaylibRenderer) Bounds() render.Rect {
	return render.Rect{Width: float64(r.width), Height: float64(r.height)}
}
