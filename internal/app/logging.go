package app

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log line.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel maps a configuration value to a level. Matching is case
// insensitive, "warning" is accepted for WARN, and anything unrecognized
// yields INFO.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return LogLevelWarn
	}
	for i, name := range levelNames {
		if s == name {
			return LogLevel(i)
		}
	}
	return LogLevelInfo
}

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level LogLevel

	// Output receives the log lines. A nil Output discards them; the
	// terminal itself is never a valid destination while the editor runs.
	Output io.Writer

	Prefix string
}

// DefaultLoggerConfig logs INFO and above to nowhere.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LogLevelInfo, Output: io.Discard, Prefix: "kite"}
}

// sink is the state shared by a logger and every logger derived from it.
type sink struct {
	mu    sync.Mutex
	w     io.Writer
	level LogLevel
	now   func() time.Time
}

type field struct {
	key   string
	value any
}

// Logger writes one line per call in the form
//
//	2006-01-02T15:04:05.000 [LEVEL] prefix: message {k=v, ...}
//
// Derived loggers carry extra fields and share the parent's output and
// level. A nil sink disables the logger.
type Logger struct {
	sink   *sink
	prefix string
	fields []field // sorted by key
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	w := cfg.Output
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		sink:   &sink{w: w, level: cfg.Level, now: time.Now},
		prefix: cfg.Prefix,
	}
}

// NullLogger discards everything.
var NullLogger = &Logger{}

// OpenLogFile opens path for appending. An empty path yields a writer that
// discards and a Close that does nothing.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return discardCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, NewOperationError("open log", path, err)
	}
	return f, nil
}

type discardCloser struct{}

func (discardCloser) Write(p []byte) (int, error) { return len(p), nil }
func (discardCloser) Close() error                { return nil }

// WithField returns a derived logger that adds key=value to every line.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a derived logger with the given fields added. Keys
// already present are replaced.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := slices.Clone(l.fields)
	for k, v := range fields {
		i, found := slices.BinarySearchFunc(merged, k, func(f field, k string) int {
			return strings.Compare(f.key, k)
		})
		if found {
			merged[i].value = v
		} else {
			merged = slices.Insert(merged, i, field{k, v})
		}
	}
	return &Logger{sink: l.sink, prefix: l.prefix, fields: merged}
}

// WithComponent tags lines with component=name.
func (l *Logger) WithComponent(name string) *Logger {
	return l.WithField("component", name)
}

// SetLevel changes the minimum level for this logger and every logger
// sharing its output.
func (l *Logger) SetLevel(level LogLevel) {
	if l.sink == nil {
		return
	}
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

// Level returns the minimum level written.
func (l *Logger) Level() LogLevel {
	if l.sink == nil {
		return LogLevelError
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.level
}

func (l *Logger) Debug(format string, args ...any) { l.write(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LogLevelError, format, args) }

func (l *Logger) write(level LogLevel, format string, args []any) {
	s := l.sink
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < s.level {
		return
	}

	var b strings.Builder
	b.WriteString(s.now().Format("2006-01-02T15:04:05.000"))
	b.WriteString(" [" + level.String() + "] ")
	if l.prefix != "" {
		b.WriteString(l.prefix + ": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}
	for i, f := range l.fields {
		sep := ", "
		if i == 0 {
			sep = " {"
		}
		fmt.Fprintf(&b, "%s%s=%v", sep, f.key, f.value)
	}
	if len(l.fields) > 0 {
		b.WriteByte('}')
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(s.w, b.String())
}

// Logger returns the application logger, or NullLogger before New has
// configured one.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}
