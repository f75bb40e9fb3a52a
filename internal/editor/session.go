// Package editor holds the state of one editing session and applies
// keystrokes to it.
//
// A Session owns the buffer, the selected grammar, the cursor, the
// viewport, the status message and the search prompt. Each call to
// Process handles exactly one keystroke: the buffer is mutated, stale
// rows are re-rendered, the whole document is re-highlighted, the search
// overlay is re-applied and the viewport follows the cursor. Frame may be
// called at any time between keystrokes and never observes stale rows.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dshills/kite/internal/engine/buffer"
	"github.com/dshills/kite/internal/engine/cursor"
	"github.com/dshills/kite/internal/renderer/highlight"
	"github.com/dshills/kite/internal/renderer/viewport"
	"github.com/dshills/kite/internal/search"
)

// ErrQuit is returned by Process when the user quits.
var ErrQuit = errors.New("quit requested")

// Reserved screen rows below the text area.
const chromeRows = 2

// Logger is the logging surface used by a session.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Config holds the tunables of a session.
type Config struct {
	// TabStop is the column multiple tabs render to.
	TabStop int
	// QuitTimes is how many extra quit presses a dirty buffer requires.
	QuitTimes int
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration
	// ShowWelcome enables the banner on an empty unnamed buffer.
	ShowWelcome bool
	// Version is shown in the welcome banner.
	Version string
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		TabStop:        buffer.DefaultTabStop,
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		ShowWelcome:    true,
		Version:        "dev",
	}
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets the session configuration.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithLogger sets the session logger.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for status message expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(s *Session) {
		s.view.Resize(width, height-chromeRows)
	}
}

// Session is the state of one open file.
type Session struct {
	cfg Config
	log Logger
	now func() time.Time

	buf      *buffer.Buffer
	hl       *highlight.Highlighter
	filename string
	modTime  time.Time

	cur  cursor.Cursor
	view *viewport.Viewport

	status     string
	statusTime time.Time
	quitLeft   int

	search search.Incremental
}

func newSession(opts []Option) *Session {
	s := &Session{
		cfg:  DefaultConfig(),
		log:  nopLogger{},
		now:  time.Now,
		view: viewport.NewViewport(80, 24-chromeRows),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.quitLeft = s.cfg.QuitTimes
	return s
}

// New creates a session editing buf. filename selects the grammar and is
// the save target; it may be empty.
func New(buf *buffer.Buffer, filename string, opts ...Option) *Session {
	s := newSession(opts)
	s.attach(buf, filename)
	return s
}

// Open loads path into a new session. A path that does not exist yields
// an empty buffer bound to that path; other errors are returned.
func Open(path string, opts ...Option) (*Session, error) {
	s := newSession(opts)
	buf, err := buffer.Open(path, buffer.WithTabStop(s.cfg.TabStop))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Info("new file %s", path)
		buf = buffer.New(buffer.WithTabStop(s.cfg.TabStop))
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	s.attach(buf, path)
	return s, nil
}

func (s *Session) attach(buf *buffer.Buffer, filename string) {
	s.buf = buf
	s.filename = filename
	s.hl = highlight.New(highlight.Select(filename))
	s.modTime = s.statModTime()
	s.refresh()
}

// Buffer returns the session buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Cursor returns the cursor position.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Viewport returns the session viewport.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Filename returns the save target, or "".
func (s *Session) Filename() string {
	return s.filename
}

// Grammar returns the grammar selected for the file, or nil.
func (s *Session) Grammar() *highlight.Grammar {
	return s.hl.Grammar()
}

// Searching reports whether the search prompt is open.
func (s *Session) Searching() bool {
	return s.search.Active()
}

// SetStatus sets the message bar text.
func (s *Session) SetStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
	s.statusTime = s.now()
}

// StatusMessage returns the message bar text while it has not expired.
func (s *Session) StatusMessage() (string, bool) {
	if s.status == "" || s.now().Sub(s.statusTime) >= s.cfg.MessageTimeout {
		return "", false
	}
	return s.status, true
}

// Resize sets the terminal size. Two rows are kept for the status and
// message bars.
func (s *Session) Resize(width, height int) {
	s.view.Resize(width, height-chromeRows)
	s.view.Scroll(s.cur.Row, s.cur.RenderCol)
}

// ExternalChange reports a modification of the file on disk. Changes
// caused by the session's own saves are ignored. Returns true if the
// user was notified.
func (s *Session) ExternalChange() bool {
	mt := s.statModTime()
	if mt.IsZero() || !mt.After(s.modTime) {
		return false
	}
	s.modTime = mt
	s.log.Info("file changed on disk: %s", s.filename)
	if s.buf.Dirty() {
		s.SetStatus("File changed on disk; saving will overwrite it")
	} else {
		s.SetStatus("File changed on disk")
	}
	return true
}

func (s *Session) statModTime() time.Time {
	if s.filename == "" {
		return time.Time{}
	}
	fi, err := os.Stat(s.filename)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}

// refresh propagates the last mutation: stale rows are rendered, the
// document is re-highlighted, the search overlay is re-applied and the
// viewport follows the cursor.
func (s *Session) refresh() {
	s.buf.UpdateRender()
	s.hl.Apply(s.buf)
	s.search.Overlay(s.buf)
	s.cur = s.cur.WithRenderCol(s.buf)
	s.view.Scroll(s.cur.Row, s.cur.RenderCol)
}
