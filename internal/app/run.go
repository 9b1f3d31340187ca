// internal/app/run.go
package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/waozixyz/sift/config"
	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/canvas"
)

// ErrCancelled is returned when the user closes the widget without choosing.
var ErrCancelled = errors.New("cancelled")

// Run is the interactive loop, independent of the specific renderer. It
// returns the accepted result. Configurations received on updates are
// applied between frames; updates may be nil.
func Run(renderer render.Renderer, w *Widget, updates <-chan *config.Config) (string, error) {
	if err := renderer.Init(w.Config().WindowConfig()); err != nil {
		renderer.Cleanup()
		return "", fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer renderer.Cleanup()

	log.Println("Entering main loop...")

	for !renderer.ShouldClose() {
		select {
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
			} else if err := w.Apply(cfg); err != nil {
				log.Printf("WARN Run: Ignoring reloaded config: %v", err)
			}
		default:
		}

		for _, ev := range renderer.PollEvents() {
			switch w.Session.Handle(ev) {
			case Accepted:
				sel, _ := w.Session.Selected()
				log.Printf("INFO: Accepted %q", sel)
				return sel, nil
			case Cancelled:
				log.Println("Exiting.")
				return "", ErrCancelled
			}
		}

		renderer.BeginFrame()
		w.Draw(renderer.Surface(), renderer.Bounds())
		renderer.EndFrame()
	}

	log.Println("Exiting.")
	return "", ErrCancelled
}

// RenderPNG draws one frame of the widget off-screen at the configured window
// size and writes it to out as PNG.
func RenderPNG(w *Widget, out io.Writer) error {
	cfg := w.Config()
	wc := cfg.WindowConfig()
	c := canvas.New(wc.Width, wc.Height, w.Typeface())
	c.Fill(wc.DefaultBg)
	w.Draw(c, render.Rect{Width: float64(wc.Width), Height: float64(wc.Height)})
	if err := c.EncodePNG(out); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}
