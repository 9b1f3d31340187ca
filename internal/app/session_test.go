package app

import (
	"reflect"
	"testing"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/entry"
)

var fruit = []string{"apple", "banana", "cherry", "Pineapple"}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", fruit},
		{"APP", []string{"apple", "Pineapple"}},
		{"an", []string{"banana"}},
		{"rr", []string{"cherry"}},
		{"kiwi", []string{}},
	}
	for _, tt := range tests {
		if got := Filter(fruit, tt.query); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Filter(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestTyping(t *testing.T) {
	s := NewSession(entry.Style{}, "run: ", "", fruit)
	s.Handle(render.Event{Kind: render.EventRune, Rune: 'b'})
	if s.Query() != "b" || !reflect.DeepEqual(s.Entry.Results, []string{"banana"}) {
		t.Fatalf("after 'b': query %q results %q", s.Query(), s.Entry.Results)
	}
	s.Handle(render.Event{Kind: render.EventBackspace})
	if s.Query() != "" || len(s.Entry.Results) != len(fruit) {
		t.Fatalf("after backspace: query %q results %q", s.Query(), s.Entry.Results)
	}

	s.Handle(render.Event{Kind: render.EventRune, Rune: 'é'})
	s.Handle(render.Event{Kind: render.EventBackspace})
	if s.Query() != "" {
		t.Errorf("backspace should remove a whole rune, query %q", s.Query())
	}
	s.Handle(render.Event{Kind: render.EventBackspace})
	if s.Query() != "" {
		t.Errorf("backspace on empty query changed it to %q", s.Query())
	}
}

func TestTypingResetsSelection(t *testing.T) {
	s := NewSession(entry.Style{}, "", "", fruit)
	s.Entry.NumResultsDrawn = 4
	s.Next()
	s.Next()
	s.Handle(render.Event{Kind: render.EventRune, Rune: 'a'})
	if sel, _ := s.Selected(); sel != "apple" || s.Entry.Selection != 0 || s.Entry.FirstResult != 0 {
		t.Errorf("selection not reset: %q first %d slot %d", sel, s.Entry.FirstResult, s.Entry.Selection)
	}
}

func TestPaging(t *testing.T) {
	s := NewSession(entry.Style{}, "", "", []string{"a", "b", "c", "d", "e"})
	s.Entry.NumResultsDrawn = 2

	type pos struct{ first, slot int }
	steps := []struct {
		move func()
		want pos
		sel  string
	}{
		{s.Next, pos{0, 1}, "b"},
		{s.Next, pos{2, 0}, "c"},
		{s.Next, pos{2, 1}, "d"},
		{s.Next, pos{4, 0}, "e"},
		{s.Next, pos{0, 0}, "a"},
		{s.Prev, pos{4, 0}, "e"},
		{s.Prev, pos{2, 1}, "d"},
	}
	for i, step := range steps {
		step.move()
		got := pos{s.Entry.FirstResult, s.Entry.Selection}
		sel, _ := s.Selected()
		if got != step.want || sel != step.sel {
			t.Fatalf("step %d: at %+v selecting %q, want %+v %q", i, got, sel, step.want, step.sel)
		}
	}
}

func TestPagingWithoutLayout(t *testing.T) {
	s := NewSession(entry.Style{}, "", "", []string{"a", "b", "c"})
	s.Next()
	if s.Entry.FirstResult != 1 || s.Entry.Selection != 0 {
		t.Errorf("first %d slot %d", s.Entry.FirstResult, s.Entry.Selection)
	}
}

func TestArrowKeys(t *testing.T) {
	s := NewSession(entry.Style{}, "", "", fruit)
	s.Entry.NumResultsDrawn = 4

	s.Handle(render.Event{Kind: render.EventRight})
	if sel, _ := s.Selected(); sel != "apple" {
		t.Errorf("Right moved a vertical list to %q", sel)
	}
	s.Handle(render.Event{Kind: render.EventDown})
	s.Handle(render.Event{Kind: render.EventTab})
	if sel, _ := s.Selected(); sel != "cherry" {
		t.Errorf("Down, Tab selected %q", sel)
	}
	s.Handle(render.Event{Kind: render.EventUp})
	if sel, _ := s.Selected(); sel != "banana" {
		t.Errorf("Up selected %q", sel)
	}

	s.Entry.Horizontal = true
	s.Handle(render.Event{Kind: render.EventRight})
	if sel, _ := s.Selected(); sel != "cherry" {
		t.Errorf("Right selected %q", sel)
	}
	s.Handle(render.Event{Kind: render.EventLeft})
	s.Handle(render.Event{Kind: render.EventLeft})
	if sel, _ := s.Selected(); sel != "apple" {
		t.Errorf("Left, Left selected %q", sel)
	}
}

func TestAcceptCancel(t *testing.T) {
	s := NewSession(entry.Style{}, "", "", fruit)
	if got := s.Handle(render.Event{Kind: render.EventAccept}); got != Accepted {
		t.Errorf("Accept = %v", got)
	}
	if got := s.Handle(render.Event{Kind: render.EventCancel}); got != Cancelled {
		t.Errorf("Cancel = %v", got)
	}

	s.SetQuery("kiwi")
	if got := s.Handle(render.Event{Kind: render.EventAccept}); got != Continue {
		t.Errorf("Accept with no match = %v", got)
	}
	if _, ok := s.Selected(); ok {
		t.Errorf("Selected with no match should fail")
	}
	s.Next()
	s.Prev()
}

func TestReadCandidates(t *testing.T) {
	got := ReadCandidates("a\r\n\n b \n  \nc")
	want := []string{"a", " b ", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadCandidates = %q, want %q", got, want)
	}
}
