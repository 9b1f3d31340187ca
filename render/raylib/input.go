// render/raylib/input.go
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/waozixyz/sift/render"
)

// Keys that repeat while held.
var repeatKeys = []struct {
	key  int32
	kind render.EventKind
}{
	{rl.KeyBackspace, render.EventBackspace},
	{rl.KeyUp, render.EventUp},
	{rl.KeyDown, render.EventDown},
	{rl.KeyLeft, render.EventLeft},
	{rl.KeyRight, render.EventRight},
	{rl.KeyTab, render.EventTab},
}

// PollEvents drains the keyboard state for this frame.
func (r *RaylibRenderer) PollEvents() []render.Event {
	if !rl.IsWindowReady() {
		return nil
	}

	var events []render.Event
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		events = append(events, render.Event{Kind: render.EventRune, Rune: rune(ch)})
	}

	for _, k := range repeatKeys {
		if rl.IsKeyPressed(k.key) || rl.IsKeyPressedRepeat(k.key) {
			events = append(events, render.Event{Kind: k.kind})
		}
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		events = append(events, render.Event{Kind: render.EventAccept})
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		events = append(events, render.Event{Kind: render.EventCancel})
	}
	return events
}
