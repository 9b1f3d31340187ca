// internal/app/session.go
package app

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/waozixyz/sift/render"
	"github.com/waozixyz/sift/render/entry"
)

var filterMatcher = search.New(language.English, search.IgnoreCase)

// Outcome is what handling an event did to the session.
type Outcome int

const (
	Continue Outcome = iota
	Accepted
	Cancelled
)

// Session holds the candidate list, the query typed so far and the selected
// match. It owns an entry.Entry and keeps its Results, FirstResult and
// Selection in step with the selection.
type Session struct {
	Entry entry.Entry

	candidates []string
	selected   int // index into Entry.Results
}

// NewSession starts a session over candidates with an empty query.
func NewSession(style entry.Style, prompt, placeholder string, candidates []string) *Session {
	s := &Session{
		Entry: entry.Entry{
			Style:           style,
			PromptText:      prompt,
			PlaceholderText: placeholder,
		},
		candidates: candidates,
	}
	s.refilter()
	return s
}

// Filter returns the candidates containing query, ignoring case, in their
// input order. An empty query keeps everything.
func Filter(candidates []string, query string) []string {
	if query == "" {
		return candidates
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if start, _ := filterMatcher.IndexString(c, query); start >= 0 {
			out = append(out, c)
		}
	}
	return out
}

// Query is the text typed so far.
func (s *Session) Query() string { return s.Entry.Input }

// SetQuery replaces the query and moves the selection back to the first match.
func (s *Session) SetQuery(q string) {
	s.Entry.Input = q
	s.refilter()
}

func (s *Session) refilter() {
	s.Entry.Results = Filter(s.candidates, s.Entry.Input)
	s.selected = 0
	s.Entry.FirstResult = 0
	s.Entry.Selection = 0
}

// Selected returns the currently selected result.
func (s *Session) Selected() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.Entry.Results) {
		return "", false
	}
	return s.Entry.Results[s.selected], true
}

// Next moves the selection forward, wrapping to the first match.
func (s *Session) Next() {
	if n := len(s.Entry.Results); n > 0 {
		s.selected = (s.selected + 1) % n
		s.scroll()
	}
}

// Prev moves the selection back, wrapping to the last match.
func (s *Session) Prev() {
	if n := len(s.Entry.Results); n > 0 {
		s.selected = (s.selected - 1 + n) % n
		s.scroll()
	}
}

// scroll pages FirstResult so the selection falls on the visible page, using
// the number of rows the last frame managed to draw as the page size.
func (s *Session) scroll() {
	page := s.Entry.NumResultsDrawn
	if page <= 0 {
		s.Entry.FirstResult = s.selected
		s.Entry.Selection = 0
		return
	}
	first := s.Entry.FirstResult
	for s.selected < first {
		first = max(0, first-page)
	}
	for s.selected >= first+page {
		first += page
	}
	s.Entry.FirstResult = first
	s.Entry.Selection = s.selected - first
}

// Handle applies one input event.
func (s *Session) Handle(ev render.Event) Outcome {
	switch ev.Kind {
	case render.EventRune:
		s.SetQuery(s.Entry.Input + string(ev.Rune))
	case render.EventBackspace:
		if q := s.Entry.Input; q != "" {
			_, size := utf8.DecodeLastRuneInString(q)
			s.SetQuery(q[:len(q)-size])
		}
	case render.EventDown, render.EventTab:
		s.Next()
	case render.EventUp:
		s.Prev()
	case render.EventRight:
		if s.Entry.Horizontal {
			s.Next()
		}
	case render.EventLeft:
		if s.Entry.Horizontal {
			s.Prev()
		}
	case render.EventAccept:
		if _, ok := s.Selected(); ok {
			return Accepted
		}
	case render.EventCancel:
		return Cancelled
	}
	return Continue
}

// ReadCandidates splits newline separated input, dropping blank lines and a
// trailing carriage return on each line.
func ReadCandidates(data string) []string {
	lines := strings.Split(data, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSuffix(l, "\r")
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
