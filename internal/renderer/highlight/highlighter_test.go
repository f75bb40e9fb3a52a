package highlight

import (
	"testing"
)

type testDoc struct {
	rows [][]rune
	hl   [][]Class
}

func newTestDoc(lines ...string) *testDoc {
	d := &testDoc{hl: make([][]Class, len(lines))}
	for _, l := range lines {
		d.rows = append(d.rows, []rune(l))
	}
	return d
}

func (d *testDoc) Len() int { return len(d.rows) }

func (d *testDoc) RenderAt(i int) []rune { return d.rows[i] }

func (d *testDoc) SetHighlight(i int, hl []Class) { d.hl[i] = hl }

func assertRange(t *testing.T, hl []Class, from, to int, want Class) {
	t.Helper()
	for i := from; i < to; i++ {
		if hl[i] != want {
			t.Errorf("position %d: expected %v, got %v", i, want, hl[i])
		}
	}
}

func TestHighlightLengthMatchesRender(t *testing.T) {
	doc := newTestDoc("int x = 1;", "", "/* open", "\"str", "a.b.c 1.2.3")
	New(C).Apply(doc)
	for i, row := range doc.rows {
		if len(doc.hl[i]) != len(row) {
			t.Errorf("row %d: expected %d classes, got %d", i, len(row), len(doc.hl[i]))
		}
	}
}

func TestHighlightDeclarationAndComment(t *testing.T) {
	doc := newTestDoc("int x = 1;", "// comment")
	New(C).Apply(doc)

	row := doc.hl[0]
	assertRange(t, row, 0, 3, Keyword2)
	assertRange(t, row, 3, 8, Normal)
	assertRange(t, row, 8, 9, Number)
	assertRange(t, row, 9, 10, Normal)

	assertRange(t, doc.hl[1], 0, len(doc.rows[1]), Comment)
}

func TestHighlightReclassifiesAfterEdit(t *testing.T) {
	doc := newTestDoc("intyx = 1;")
	New(C).Apply(doc)
	assertRange(t, doc.hl[0], 0, 5, Normal)
	assertRange(t, doc.hl[0], 8, 9, Number)
}

func TestHighlightMultiLineCommentPropagates(t *testing.T) {
	doc := newTestDoc("/* start", "middle", "end */ code")
	New(C).Apply(doc)

	assertRange(t, doc.hl[0], 0, len(doc.rows[0]), MultiLineComment)
	assertRange(t, doc.hl[1], 0, len(doc.rows[1]), MultiLineComment)
	assertRange(t, doc.hl[2], 0, 6, MultiLineComment)
	assertRange(t, doc.hl[2], 6, len(doc.rows[2]), Normal)
}

func TestHighlightUnterminatedCommentRunsToEnd(t *testing.T) {
	doc := newTestDoc("x /* never", "closed", "int y;")
	New(C).Apply(doc)
	assertRange(t, doc.hl[0], 0, 2, Normal)
	assertRange(t, doc.hl[0], 2, len(doc.rows[0]), MultiLineComment)
	assertRange(t, doc.hl[2], 0, len(doc.rows[2]), MultiLineComment)
}

func TestHighlightKeywordBoundary(t *testing.T) {
	tests := []struct {
		line string
		want []Class
	}{
		{"if(x)", []Class{Keyword1, Keyword1, Normal, Normal, Normal}},
		{"ifx", []Class{Normal, Normal, Normal}},
		{"xif", []Class{Normal, Normal, Normal}},
		{"(void)", []Class{Normal, Keyword2, Keyword2, Keyword2, Keyword2, Normal}},
		{"return;", []Class{Keyword1, Keyword1, Keyword1, Keyword1, Keyword1, Keyword1, Normal}},
	}

	h := New(C)
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, _ := h.Line([]rune(tt.line), false)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d classes, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestHighlightStrings(t *testing.T) {
	line := `char *s = "a1\"b";`
	got, _ := New(C).Line([]rune(line), false)

	assertRange(t, got, 0, 4, Keyword2)
	assertRange(t, got, 4, 10, Normal)
	assertRange(t, got, 10, 12, String)
	assertRange(t, got, 12, 13, Number)
	assertRange(t, got, 13, 17, String)
	assertRange(t, got, 17, 18, Normal)
}

func TestHighlightDigitsInsideString(t *testing.T) {
	got, _ := New(C).Line([]rune(`"a1"`), false)
	want := []Class{String, String, Number, String}
	if len(got) != len(want) {
		t.Fatalf("expected %d classes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	// An escaped digit is consumed by the string escape.
	got, _ = New(C).Line([]rune(`""`), false)
	assertRange(t, got, 0, 4, String)
}

func TestHighlightStringDoesNotCarryAcrossRows(t *testing.T) {
	doc := newTestDoc(`"open`, "int")
	New(C).Apply(doc)
	assertRange(t, doc.hl[0], 0, 5, String)
	assertRange(t, doc.hl[1], 0, 3, Keyword2)
}

func TestHighlightCommentTokensInsideString(t *testing.T) {
	got, more := New(C).Line([]rune(`"// /*"`), false)
	assertRange(t, got, 0, len(got), String)
	if more {
		t.Error("comment opener inside a string should not open a comment")
	}
}

func TestHighlightDecimals(t *testing.T) {
	got, _ := New(C).Line([]rune("3.14 x."), false)
	assertRange(t, got, 0, 4, Number)
	assertRange(t, got, 4, 7, Normal)
}

func TestHighlightWithoutGrammar(t *testing.T) {
	doc := newTestDoc("int x = 1; // c", "/* c */")
	New(nil).Apply(doc)
	for i, row := range doc.rows {
		assertRange(t, doc.hl[i], 0, len(row), Normal)
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range " \x00,.()+-/*=~%<>[];" {
		if !IsSeparator(r) {
			t.Errorf("expected %q to be a separator", r)
		}
	}
	for _, r := range "aZ0_{}\"'\t" {
		if IsSeparator(r) {
			t.Errorf("expected %q not to be a separator", r)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		want *Grammar
	}{
		{"main.c", C},
		{"include/util.h", C},
		{"widget.cpp", C},
		{"README.md", nil},
		{"Makefile", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := Select(tt.name); got != tt.want {
			t.Errorf("Select(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassNames(t *testing.T) {
	for _, c := range Classes() {
		got, ok := ParseClass(c.String())
		if !ok || got != c {
			t.Errorf("ParseClass(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseClass("bogus"); ok {
		t.Error("expected unknown class to fail")
	}
}

func TestThemeOverride(t *testing.T) {
	base := DefaultTheme()
	th, err := base.Override(map[string]string{"keyword1": "#ff0000", "number": "9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := th.StyleFor(Keyword1).Foreground.String(); got != "#FF0000" {
		t.Errorf("expected #FF0000, got %s", got)
	}
	if got := th.StyleFor(Number).Foreground.String(); got != "idx(9)" {
		t.Errorf("expected idx(9), got %s", got)
	}
	if got := base.StyleFor(Number).Foreground.String(); got != "idx(1)" {
		t.Errorf("base theme modified: got %s", got)
	}

	if _, err := base.Override(map[string]string{"bogus": "1"}); err == nil {
		t.Error("expected error for unknown class")
	}
	if _, err := base.Override(map[string]string{"string": "nope"}); err == nil {
		t.Error("expected error for bad color")
	}
}
