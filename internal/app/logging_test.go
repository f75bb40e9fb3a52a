package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevelNames(t *testing.T) {
	for level, want := range map[LogLevel]string{
		LogLevelDebug: "DEBUG",
		LogLevelInfo:  "INFO",
		LogLevelWarn:  "WARN",
		LogLevelError: "ERROR",
		LogLevel(-1):  "UNKNOWN",
		LogLevel(9):   "UNKNOWN",
	} {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d) = %q, want %q", int(level), got, want)
		}
	}

	for in, want := range map[string]LogLevel{
		"debug":   LogLevelDebug,
		"Info":    LogLevelInfo,
		"WARN":    LogLevelWarn,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
		"verbose": LogLevelInfo,
		"":        LogLevelInfo,
	} {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// fixedLogger writes to buf with a frozen clock.
func fixedLogger(buf *bytes.Buffer, level LogLevel) *Logger {
	l := NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "kite"})
	l.sink.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
	return l
}

func TestLoggerLine(t *testing.T) {
	var buf bytes.Buffer
	fixedLogger(&buf, LogLevelInfo).Info("opened %s (%d rows)", "main.c", 42)

	want := "2024-03-01T12:30:00.000 [INFO] kite: opened main.c (42 rows)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLoggerLiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	fixedLogger(&buf, LogLevelInfo).Info("100% done")
	if !strings.Contains(buf.String(), "kite: 100% done\n") {
		t.Errorf("message without args should be written as-is: %q", buf.String())
	}
}

func TestLoggerThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LogLevelWarn)
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "[WARN] kite: c") || !strings.Contains(lines[1], "[ERROR] kite: d") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	parent := fixedLogger(&buf, LogLevelInfo)
	child := parent.
		WithFields(map[string]any{"session": "abc", "attempt": 2}).
		WithComponent("editor").
		WithField("attempt", 3)

	child.Info("saved")
	parent.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], "saved {attempt=3, component=editor, session=abc}") {
		t.Errorf("child line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "kite: plain") {
		t.Errorf("parent picked up child fields: %q", lines[1])
	}
}

func TestLoggerSetLevelShared(t *testing.T) {
	var buf bytes.Buffer
	parent := fixedLogger(&buf, LogLevelError)
	child := parent.WithComponent("watcher")

	child.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("INFO written at ERROR level: %q", buf.String())
	}

	parent.SetLevel(LogLevelInfo)
	if child.Level() != LogLevelInfo {
		t.Errorf("child Level() = %v, want INFO", child.Level())
	}
	child.Info("shown")
	if !strings.Contains(buf.String(), "shown {component=watcher}") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.SetLevel(LogLevelDebug)
	NullLogger.Debug("x")
	NullLogger.WithComponent("editor").Error("%d", 1)
	if NullLogger.Level() != LogLevelError {
		t.Errorf("NullLogger level = %v", NullLogger.Level())
	}
	if (&Application{}).Logger() != NullLogger {
		t.Error("unconfigured application should return NullLogger")
	}
}

func TestLoggerDefaults(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != LogLevelInfo || cfg.Output != io.Discard || cfg.Prefix != "kite" {
		t.Errorf("DefaultLoggerConfig() = %+v", cfg)
	}
	if l := NewLogger(LoggerConfig{}); l.sink.w != io.Discard {
		t.Error("nil Output should discard")
	}
}

func TestOpenLogFile(t *testing.T) {
	w, err := OpenLogFile("")
	if err != nil {
		t.Fatalf("OpenLogFile(\"\") error = %v", err)
	}
	if _, err := io.WriteString(w, "dropped"); err != nil {
		t.Errorf("discard write error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "kite.log")
	for i := 0; i < 2; i++ {
		w, err = OpenLogFile(path)
		if err != nil {
			t.Fatalf("OpenLogFile error = %v", err)
		}
		NewLogger(LoggerConfig{Level: LogLevelDebug, Output: w}).Debug("run %d", i)
		if err := w.Close(); err != nil {
			t.Fatalf("Close error = %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] run 0") || !strings.Contains(string(data), "[DEBUG] run 1") {
		t.Errorf("log file should be appended to: %q", data)
	}

	_, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "kite.log"))
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "open log" {
		t.Errorf("expected open log OperationError, got %v", err)
	}
}
