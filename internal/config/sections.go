package config

import "time"

// The section accessors below return copies. A setting that is missing
// or mistyped reads as its built-in default; Validate reports it.

// EditorConfig is the [editor] table.
type EditorConfig struct {
	// TabStop is the column multiple a tab advances to.
	TabStop int

	// QuitTimes is how many extra Ctrl-Q presses a modified buffer requires.
	QuitTimes int
}

// UIConfig is the [ui] table.
type UIConfig struct {
	// MessageTimeout is how long a status message stays on screen.
	MessageTimeout time.Duration

	// ShowWelcome shows the version banner on an empty unnamed buffer.
	ShowWelcome bool

	// Theme maps highlight class names to colors.
	Theme map[string]string
}

// LoggingConfig is the [logging] table.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// File is the log destination. Empty discards logs.
	File string
}

// WatchConfig is the [watch] table.
type WatchConfig struct {
	// Enabled turns on notifications when the open file changes on disk.
	Enabled bool

	// Debounce coalesces bursts of file system events.
	Debounce time.Duration
}

func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		TabStop:   fallback(c.GetInt, "editor.tabStop", 4),
		QuitTimes: fallback(c.GetInt, "editor.quitTimes", 3),
	}
}

func (c *Config) UI() UIConfig {
	theme := fallback(c.GetStringMap, "ui.theme", map[string]string{})
	return UIConfig{
		MessageTimeout: fallback(c.GetDuration, "ui.messageTimeout", 5*time.Second),
		ShowWelcome:    fallback(c.GetBool, "ui.showWelcome", true),
		Theme:          theme,
	}
}

func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: fallback(c.GetString, "logging.level", "info"),
		File:  fallback(c.GetString, "logging.file", ""),
	}
}

func (c *Config) Watch() WatchConfig {
	return WatchConfig{
		Enabled:  fallback(c.GetBool, "watch.enabled", true),
		Debounce: fallback(c.GetDuration, "watch.debounce", 100*time.Millisecond),
	}
}

// fallback returns get(path), or def when the setting is missing or has
// the wrong type.
func fallback[T any](get func(string) (T, error), path string, def T) T {
	if v, err := get(path); err == nil {
		return v
	}
	return def
}
