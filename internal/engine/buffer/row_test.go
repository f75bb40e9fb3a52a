package buffer

import (
	"testing"

	"github.com/dshills/kite/internal/renderer/highlight"
)

func TestRowRenderTabs(t *testing.T) {
	tests := []struct {
		name  string
		chars string
		want  string
	}{
		{"no tabs", "abc", "abc"},
		{"leading tab", "\tx", "    x"},
		{"tab after text", "ab\tc", "ab  c"},
		{"tab at stop", "abcd\te", "abcd    e"},
		{"two tabs", "\t\t", "        "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRow([]rune(tt.chars))
			got := string(r.RenderTabs(4))
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if again := string(r.RenderTabs(4)); again != got {
				t.Errorf("RenderTabs not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestRowSetCharsLeavesRenderStale(t *testing.T) {
	r := NewRow([]rune("abc"))
	r.Update(4)
	r.SetChars([]rune("\tz"))

	if !r.Stale() {
		t.Error("row should be stale after SetChars")
	}
	if string(r.Render()) != "abc" {
		t.Errorf("render should be untouched, got %q", string(r.Render()))
	}

	r.Update(4)
	if r.Stale() {
		t.Error("row should not be stale after Update")
	}
	if string(r.Render()) != "    z" {
		t.Errorf("expected %q, got %q", "    z", string(r.Render()))
	}
	if len(r.Highlight()) != len(r.Render()) {
		t.Errorf("expected %d classes, got %d", len(r.Render()), len(r.Highlight()))
	}
}

func TestRowCxToRx(t *testing.T) {
	r := NewRow([]rune("a\tb\tc"))
	// render: "a   b   c"
	want := []int{0, 1, 4, 5, 8, 9}
	for cx, rx := range want {
		if got := r.CxToRx(cx, 4); got != rx {
			t.Errorf("CxToRx(%d) = %d, want %d", cx, got, rx)
		}
	}
	if got := r.CxToRx(100, 4); got != 9 {
		t.Errorf("CxToRx past end = %d, want 9", got)
	}
}

func TestRowRxToCx(t *testing.T) {
	r := NewRow([]rune("a\tb"))
	// render: "a   b", tab covers render columns 1..3
	tests := []struct{ rx, cx int }{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{5, 3},
		{50, 3},
	}
	for _, tt := range tests {
		if got := r.RxToCx(tt.rx, 4); got != tt.cx {
			t.Errorf("RxToCx(%d) = %d, want %d", tt.rx, got, tt.cx)
		}
	}
}

func TestRowColumnRoundTrip(t *testing.T) {
	rows := []string{"", "plain", "\t", "a\tb\t\tc", "\t\tdeep", "xyz\t"}
	for _, s := range rows {
		r := NewRow([]rune(s))
		r.Update(4)
		for rc := 0; rc <= len(r.Render()); rc++ {
			back := r.CxToRx(r.RxToCx(rc, 4), 4)
			if back > rc {
				t.Errorf("%q: rc %d maps back to %d, beyond original", s, rc, back)
			}
			if rc-back >= 4 {
				t.Errorf("%q: rc %d maps back to %d, more than a tab stop away", s, rc, back)
			}
		}
		for cx := 0; cx <= r.Len(); cx++ {
			if got := r.RxToCx(r.CxToRx(cx, 4), 4); got != cx {
				t.Errorf("%q: cx %d round-trips to %d", s, cx, got)
			}
		}
	}
}

func TestRowMarkHighlightClamps(t *testing.T) {
	r := NewRow([]rune("abc"))
	r.Update(4)
	r.MarkHighlight(1, 10, highlight.Match)

	want := []highlight.Class{highlight.Normal, highlight.Match, highlight.Match}
	for i, c := range r.Highlight() {
		if c != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], c)
		}
	}
}

func TestRowSetHighlightMatchesRenderLength(t *testing.T) {
	r := NewRow([]rune("abcd"))
	r.Update(4)

	r.SetHighlight([]highlight.Class{highlight.Number})
	if len(r.Highlight()) != 4 {
		t.Errorf("expected 4 classes, got %d", len(r.Highlight()))
	}

	r.SetHighlight(make([]highlight.Class, 9))
	if len(r.Highlight()) != 4 {
		t.Errorf("expected 4 classes, got %d", len(r.Highlight()))
	}
}
