package buffer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func lines(b *Buffer) string {
	return strings.Join(b.Lines(), "|")
}

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.Len() != 1 {
		t.Errorf("expected 1 row, got %d", b.Len())
	}
	if b.Row(0).Len() != 0 {
		t.Errorf("expected empty row, got %q", b.Row(0).String())
	}
	if b.Dirty() {
		t.Error("new buffer should be clean")
	}
	if b.TabStop() != DefaultTabStop {
		t.Errorf("expected tab stop %d, got %d", DefaultTabStop, b.TabStop())
	}
}

func TestNewFromLinesRenders(t *testing.T) {
	b := NewFromLines([]string{"\tx", "y"}, WithTabStop(8))

	if b.TabStop() != 8 {
		t.Errorf("expected tab stop 8, got %d", b.TabStop())
	}
	if got := string(b.RenderAt(0)); got != "        x" {
		t.Errorf("expected tab expanded to 8, got %q", got)
	}
	for i := 0; i < b.Len(); i++ {
		if b.Row(i).Stale() {
			t.Errorf("row %d should be rendered", i)
		}
	}
}

func TestWithTabStopIgnoresInvalid(t *testing.T) {
	b := New(WithTabStop(0))
	if b.TabStop() != DefaultTabStop {
		t.Errorf("expected default tab stop, got %d", b.TabStop())
	}
}

func TestBufferInsertChar(t *testing.T) {
	b := NewFromLines([]string{"int x = 1;"})
	b.InsertChar(0, 3, 'y')

	if got := b.Row(0).String(); got != "intyx = 1;" {
		t.Errorf("expected %q, got %q", "intyx = 1;", got)
	}
	if !b.Dirty() {
		t.Error("insert should mark buffer dirty")
	}
	if !b.Row(0).Stale() {
		t.Error("insert should leave row stale until UpdateRender")
	}
	if n := b.UpdateRender(); n != 1 {
		t.Errorf("expected 1 row re-rendered, got %d", n)
	}
}

func TestBufferInsertCharAppend(t *testing.T) {
	b := NewFromLines([]string{"ab"})
	b.InsertChar(0, 2, 'c')
	b.InsertChar(0, 99, 'd')

	if got := b.Row(0).String(); got != "abcd" {
		t.Errorf("expected abcd, got %q", got)
	}
}

func TestBufferDeleteCharBefore(t *testing.T) {
	b := NewFromLines([]string{"abc"})
	row, col := b.DeleteCharBefore(0, 2)

	if row != 0 || col != 1 {
		t.Errorf("expected cursor (0,1), got (%d,%d)", row, col)
	}
	if got := b.Row(0).String(); got != "ac" {
		t.Errorf("expected ac, got %q", got)
	}
}

func TestBufferDeleteCharBeforeAtOrigin(t *testing.T) {
	b := NewFromLines([]string{"abc", "def"})
	row, col := b.DeleteCharBefore(0, 0)

	if row != 0 || col != 0 {
		t.Errorf("expected cursor (0,0), got (%d,%d)", row, col)
	}
	if lines(b) != "abc|def" {
		t.Errorf("buffer should be unchanged, got %q", lines(b))
	}
	if b.Dirty() {
		t.Error("no-op should not mark buffer dirty")
	}
}

func TestBufferDeleteCharBeforeJoins(t *testing.T) {
	b := NewFromLines([]string{"foo", "bar", "baz"})
	row, col := b.DeleteCharBefore(1, 0)

	if row != 0 || col != 3 {
		t.Errorf("expected cursor (0,3), got (%d,%d)", row, col)
	}
	if lines(b) != "foobar|baz" {
		t.Errorf("expected foobar|baz, got %q", lines(b))
	}
}

func TestBufferSplitRow(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "|hello"},
		{2, "he|llo"},
		{5, "hello|"},
	}

	for _, tt := range tests {
		b := NewFromLines([]string{"hello"})
		b.SplitRow(0, tt.col)
		if got := lines(b); got != tt.want {
			t.Errorf("split at %d: expected %q, got %q", tt.col, tt.want, got)
		}
		if !b.Dirty() {
			t.Error("split should mark buffer dirty")
		}
	}
}

func TestBufferSplitJoinRoundTrip(t *testing.T) {
	orig := "a\tb c\td"
	for k := 0; k <= len([]rune(orig)); k++ {
		b := NewFromLines([]string{"before", orig, "after"})
		b.SplitRow(1, k)
		row, col := b.DeleteCharBefore(2, 0)

		if row != 1 || col != k {
			t.Errorf("k=%d: expected cursor (1,%d), got (%d,%d)", k, k, row, col)
		}
		if got := lines(b); got != "before|"+orig+"|after" {
			t.Errorf("k=%d: round trip produced %q", k, got)
		}
	}
}

func TestBufferDeleteRow(t *testing.T) {
	b := NewFromLines([]string{"a", "b"})
	b.DeleteRow(0)
	if lines(b) != "b" {
		t.Errorf("expected b, got %q", lines(b))
	}

	b.DeleteRow(0)
	if b.Len() != 1 || b.Row(0).Len() != 0 {
		t.Errorf("deleting the last row should leave one empty row, got %q", lines(b))
	}

	b.DeleteRow(5)
	if b.Len() != 1 {
		t.Errorf("out of range delete should be ignored, got %d rows", b.Len())
	}
}

func TestBufferInsertRow(t *testing.T) {
	b := NewFromLines([]string{"a", "c"})
	b.InsertRow(1, []rune("b"))
	b.InsertRow(b.Len(), []rune("d"))

	if lines(b) != "a|b|c|d" {
		t.Errorf("expected a|b|c|d, got %q", lines(b))
	}
}

func TestLoadStripsTerminators(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lf", "a\nb\n", "a|b"},
		{"crlf", "a\r\nb\r\n", "a|b"},
		{"no trailing newline", "a\nb", "a|b"},
		{"blank lines", "\n\nx\n", "||x"},
		{"single newline", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Load(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if got := lines(b); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if b.Dirty() {
				t.Error("loaded buffer should be clean")
			}
		})
	}
}

func TestWriteToUsesCRLF(t *testing.T) {
	b := NewFromLines([]string{"one", "", "t\two"})
	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}

	want := "one\r\n\r\nt\two\r\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
	if n != int64(len(want)) {
		t.Errorf("expected %d bytes, got %d", len(want), n)
	}
}

func TestSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	b := NewFromLines([]string{"int x = 1;"})
	b.InsertChar(0, 0, ' ')

	if _, err := b.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if b.Dirty() {
		t.Error("save should clear dirty flag")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got := lines(reopened); got != " int x = 1;" {
		t.Errorf("expected %q, got %q", " int x = 1;", got)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	b := NewFromLines([]string{"x"})
	b.InsertChar(0, 0, 'y')

	_, err := b.Save(filepath.Join(t.TempDir(), "missing", "dir", "f.c"))
	if err == nil {
		t.Fatal("expected error saving into a missing directory")
	}
	if !b.Dirty() {
		t.Error("failed save should leave buffer dirty")
	}

	if _, err := b.Save(""); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.c"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
