package render

import "testing"

func TestDefaultWindowConfig(t *testing.T) {
	wc := DefaultWindowConfig()
	want := WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "sift",
		Resizable: true,
		DefaultBg: ParseHexColor("#1b1d1e"),
	}
	if wc != want {
		t.Errorf("DefaultWindowConfig() = %+v, want %+v", wc, want)
	}
}
