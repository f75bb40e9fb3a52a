package renderer

import (
	"sync"

	"github.com/dshills/kite/internal/editor"
	"github.com/dshills/kite/internal/renderer/backend"
	"github.com/dshills/kite/internal/renderer/core"
	"github.com/dshills/kite/internal/renderer/highlight"
)

// Renderer paints editor frames onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	theme   *highlight.Theme

	frameCount uint64
}

// New creates a renderer drawing to the given backend.
// A nil theme selects highlight.DefaultTheme.
func New(b backend.Backend, theme *highlight.Theme) *Renderer {
	if theme == nil {
		theme = highlight.DefaultTheme()
	}
	return &Renderer{
		backend: b,
		theme:   theme,
	}
}

// SetTheme replaces the color theme used for subsequent frames.
func (r *Renderer) SetTheme(theme *highlight.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if theme != nil {
		r.theme = theme
	}
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.frameCount
}

// Render draws a complete frame: the text area, the reversed status bar
// below it, the message bar on the last row and finally the cursor.
func (r *Renderer) Render(f editor.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.HideCursor()
	r.backend.Clear()

	for y, line := range f.Lines {
		r.renderLine(y, f.Width, line)
	}

	r.renderText(f.Height, f.Width, f.Status, core.DefaultStyle().Reverse())
	r.renderText(f.Height+1, f.Width, f.Message, core.DefaultStyle())

	r.backend.ShowCursor(f.CursorX, f.CursorY)
	r.backend.Show()
	r.frameCount++
}

// renderLine draws one text-area row using the theme's class styles.
func (r *Renderer) renderLine(y, width int, line editor.Line) {
	x := 0
	for i, ch := range line.Text {
		if x >= width {
			return
		}
		class := highlight.Normal
		if i < len(line.Highlight) {
			class = line.Highlight[i]
		}
		x += r.setCell(x, y, ch, r.theme.StyleFor(class))
	}
}

// renderText draws a string and pads the rest of the row with the same style.
func (r *Renderer) renderText(y, width int, text string, style core.Style) {
	x := 0
	for _, ch := range text {
		if x >= width {
			return
		}
		x += r.setCell(x, y, ch, style)
	}
	for ; x < width; x++ {
		r.backend.SetCell(x, y, core.NewStyledCell(' ', style))
	}
}

// setCell writes a rune and returns the number of columns it occupies.
// Zero-width runes are shown as '?' so the row never collapses.
func (r *Renderer) setCell(x, y int, ch rune, style core.Style) int {
	cell := core.NewStyledCell(ch, style)
	if cell.Width < 1 {
		cell = core.NewStyledCell('?', style)
	}
	r.backend.SetCell(x, y, cell)
	return cell.Width
}
