package shaper

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/waozixyz/sift/render/rendertest"
	"github.com/waozixyz/sift/render/typeface"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	tf, err := typeface.Default(12)
	if err != nil {
		t.Fatalf("typeface.Default: %v", err)
	}
	s, err := New(tf, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func TestNewWithoutFont(t *testing.T) {
	if _, err := New(nil, Options{}); !errors.Is(err, typeface.ErrNoFont) {
		t.Errorf("New(nil) error = %v, want ErrNoFont", err)
	}
}

func TestShapeAndDraw(t *testing.T) {
	s := newSession(t, Options{})
	surf := rendertest.New()
	surf.Translate(5, 7)

	ext := s.ShapeAndDraw(surf, "Hello")

	if len(surf.Ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(surf.Ops))
	}
	op := surf.Ops[0]
	if len(op.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(op.Glyphs))
	}
	if op.X != 5 || op.Y != 7+rendertest.Ascent {
		t.Errorf("glyphs drawn at (%v,%v), want baseline at (5,%v)", op.X, op.Y, 7+rendertest.Ascent)
	}
	for i := 1; i < len(op.Glyphs); i++ {
		if op.Glyphs[i].X <= op.Glyphs[i-1].X {
			t.Errorf("glyph %d at x=%v does not follow glyph %d at x=%v", i, op.Glyphs[i].X, i-1, op.Glyphs[i-1].X)
		}
		if op.Glyphs[i].Y != 0 {
			t.Errorf("glyph %d has y offset %v", i, op.Glyphs[i].Y)
		}
	}

	want := rendertest.MeasureGlyphs(op.Glyphs)
	if ext.YBearing != want.YBearing+rendertest.Ascent {
		t.Errorf("YBearing = %v, want %v", ext.YBearing, want.YBearing+rendertest.Ascent)
	}
	if ext.XAdvance != want.XAdvance {
		t.Errorf("XAdvance = %v, want %v", ext.XAdvance, want.XAdvance)
	}
	if surf.Depth() != 0 {
		t.Errorf("unbalanced save/restore, depth %d", surf.Depth())
	}
	if x, y := surf.Offset(); x != 5 || y != 7 {
		t.Errorf("offset after draw = (%v,%v), want (5,7)", x, y)
	}
}

func TestShapeAndDrawReusesBuffer(t *testing.T) {
	s := newSession(t, Options{})
	surf := rendertest.New()

	long := s.ShapeAndDraw(surf, "a much longer string")
	short := s.ShapeAndDraw(surf, "ab")
	if len(surf.Ops[1].Glyphs) != 2 {
		t.Errorf("second run has %d glyphs, want 2", len(surf.Ops[1].Glyphs))
	}
	if short.XAdvance >= long.XAdvance {
		t.Errorf("short advance %v not less than long advance %v", short.XAdvance, long.XAdvance)
	}
	if len(surf.Ops[0].Glyphs) != len([]rune("a much longer string")) {
		t.Error("recorded glyphs of the first run were overwritten")
	}
}

func TestShapeAndDrawEmpty(t *testing.T) {
	s := newSession(t, Options{})
	surf := rendertest.New()
	ext := s.ShapeAndDraw(surf, "")
	if ext.XAdvance != 0 || ext.Width != 0 {
		t.Errorf("empty string extents = %+v", ext)
	}
}

func TestClosedSession(t *testing.T) {
	s := newSession(t, Options{})
	s.Close()
	surf := rendertest.New()
	if ext := s.ShapeAndDraw(surf, "x"); ext.XAdvance != 0 {
		t.Errorf("closed session drew with advance %v", ext.XAdvance)
	}
	if len(surf.Ops) != 0 {
		t.Error("closed session painted")
	}
}

func TestParseVariations(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"wght=700", 1},
		{"wght=700, slnt=-5", 2},
		{"wght=700,bogus_tag=1,slnt=-5", 2},
		{"wght,wdth=80", 1},
		{"wght=700,,", 1},
	}
	for _, tt := range tests {
		if got := ParseVariations(tt.in); len(got) != tt.want {
			t.Errorf("ParseVariations(%q) parsed %d, want %d", tt.in, len(got), tt.want)
		}
	}

	got := ParseVariations("wght=700")
	if got[0].Value != 700 {
		t.Errorf("wght value = %v", got[0].Value)
	}
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"-liga", 1},
		{"-liga,tnum,ss01=1", 3},
		{"kern,waytoolong,calt", 2},
	}
	for _, tt := range tests {
		if got := ParseFeatures(tt.in); len(got) != tt.want {
			t.Errorf("ParseFeatures(%q) parsed %d, want %d", tt.in, len(got), tt.want)
		}
	}

	if f := ParseFeatures("-liga")[0]; f.Value != 0 {
		t.Errorf("-liga value = %d, want 0", f.Value)
	}
}

func TestSettingsCapacity(t *testing.T) {
	var vars, feats []string
	for i := 0; i < MaxVariations+5; i++ {
		vars = append(vars, fmt.Sprintf("ax%02d=%d", i, i))
	}
	for i := 0; i < MaxFeatures+5; i++ {
		feats = append(feats, fmt.Sprintf("f%03d", i))
	}
	if got := ParseVariations(strings.Join(vars, ",")); len(got) != MaxVariations {
		t.Errorf("parsed %d variations, want cap %d", len(got), MaxVariations)
	}
	if got := ParseFeatures(strings.Join(feats, ",")); len(got) != MaxFeatures {
		t.Errorf("parsed %d features, want cap %d", len(got), MaxFeatures)
	}
}

func TestSessionWithSettings(t *testing.T) {
	s := newSession(t, Options{Variations: "wght=700,nope", Features: "-kern"})
	if len(s.variations) != 1 || len(s.features) != 1 {
		t.Errorf("variations=%d features=%d", len(s.variations), len(s.features))
	}
	surf := rendertest.New()
	if ext := s.ShapeAndDraw(surf, "AV"); ext.XAdvance <= 0 {
		t.Errorf("advance = %v", ext.XAdvance)
	}
}
