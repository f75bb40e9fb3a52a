package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dshills/kite/internal/config/loader"
	"github.com/dshills/kite/internal/renderer/highlight"
)

// Config provides unified access to the Kite configuration.
// It merges built-in defaults, the user config file, an explicit config
// file, environment variables and command-line overrides, in that order.
type Config struct {
	mu sync.RWMutex

	fs  loader.FileSystem
	env loader.Loader

	userConfigDir string
	configFile    string

	merged  map[string]any
	sources []string
}

// Option configures a Config instance.
type Option func(*Config)

// WithUserConfigDir sets the user configuration directory.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithConfigFile adds an explicit configuration file that overrides the
// user file. Unlike the user file, it must exist.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithFileSystem replaces the file system used to read config files.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvLoader replaces the environment variable loader.
func WithEnvLoader(l loader.Loader) Option {
	return func(c *Config) {
		c.env = l
	}
}

// New creates a new Config instance with the given options.
// Until Load is called only the built-in defaults are visible.
func New(opts ...Option) *Config {
	c := &Config{
		fs:      loader.DefaultFS(),
		env:     loader.NewEnvLoader("KITE_"),
		merged:  defaultConfig(),
		sources: []string{"defaults"},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}
	return c
}

// Load loads configuration from all sources and validates the result.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	merged := defaultConfig()
	sources := []string{"defaults"}

	userFile, data, err := c.loadUserSettings()
	if err != nil {
		return err
	}
	if data != nil {
		merged = loader.DeepMerge(merged, data)
		sources = append(sources, userFile)
	}

	if c.configFile != "" {
		data, err := c.loadConfigFile(c.configFile)
		if err != nil {
			return err
		}
		merged = loader.DeepMerge(merged, data)
		sources = append(sources, c.configFile)
	}

	data, err = c.env.Load()
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}
	if len(data) > 0 {
		merged = loader.DeepMerge(merged, data)
		sources = append(sources, "environment")
	}

	c.mu.Lock()
	c.merged = merged
	c.sources = sources
	c.mu.Unlock()

	return c.Validate()
}

// loadUserSettings loads the first of config.toml, config.yaml and
// config.yml found in the user config directory.
func (c *Config) loadUserSettings() (string, map[string]any, error) {
	for _, ext := range loader.Extensions {
		path := filepath.Join(c.userConfigDir, "config"+ext)
		l, err := loader.ForPath(c.fs, path)
		if err != nil {
			return "", nil, err
		}
		data, err := l.Load()
		if err != nil {
			return "", nil, err
		}
		if data != nil {
			return path, data, nil
		}
	}
	return "", nil, nil
}

// loadConfigFile loads an explicitly requested file.
func (c *Config) loadConfigFile(path string) (map[string]any, error) {
	if _, err := c.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	l, err := loader.ForPath(c.fs, path)
	if err != nil {
		return nil, err
	}
	data, err := l.Load()
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// Sources returns the layers that contributed to the merged configuration,
// lowest priority first.
func (c *Config) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.sources...)
}

// Merged returns a deep copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return loader.Clone(c.merged)
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return getPath(c.merged, path)
}

// Set overrides a value at the given path. It is used for command-line
// flags, the highest-priority layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := setPath(c.merged, path, value); err != nil {
		return err
	}
	if c.sources[len(c.sources)-1] != "flags" {
		c.sources = append(c.sources, "flags")
	}
	return nil
}

// typed reads path and converts it with conv. A missing path reports
// ErrSettingNotFound; a value conv rejects reports a TypeError naming want.
func typed[T any](c *Config, path, want string, conv func(any) (T, bool)) (T, error) {
	var zero T
	v, ok := c.Get(path)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	out, ok := conv(v)
	if !ok {
		return zero, &TypeError{Path: path, Expected: want, Actual: describe(v)}
	}
	return out, nil
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	return typed(c, path, "string", func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

// GetInt returns the integer at path. Whole floats are accepted.
func (c *Config) GetInt(path string) (int, error) {
	return typed(c, path, "int", asInt)
}

// GetBool returns the boolean at path. Integers are accepted with zero as
// false so that KITE_WATCH=0 works.
func (c *Config) GetBool(path string) (bool, error) {
	return typed(c, path, "bool", func(v any) (bool, bool) {
		if b, ok := v.(bool); ok {
			return b, true
		}
		n, ok := asInt(v)
		return n != 0, ok
	})
}

// GetDuration returns the duration at path. Strings use time.ParseDuration
// syntax and bare integers count milliseconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	return typed(c, path, "duration", func(v any) (time.Duration, bool) {
		switch val := v.(type) {
		case time.Duration:
			return val, true
		case string:
			d, err := time.ParseDuration(val)
			return d, err == nil
		}
		n, ok := asInt(v)
		return time.Duration(n) * time.Millisecond, ok
	})
}

// GetStringMap returns the table at path with every value as a string.
// Integers are written in decimal; any other value is a TypeError for
// that entry.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	table, err := typed(c, path, "table", func(v any) (map[string]any, bool) {
		m, ok := v.(map[string]any)
		return m, ok
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			out[k] = s
		} else if n, ok := asInt(v); ok {
			out[k] = strconv.Itoa(n)
		} else {
			return nil, &TypeError{Path: path + "." + k, Expected: "string", Actual: describe(v)}
		}
	}
	return out, nil
}

// asInt accepts the integer types the TOML, YAML and env layers produce,
// and floats with no fractional part.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// Validate checks every known setting and returns ValidationErrors
// listing all failures.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any, code Reason) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Reason: code})
	}
	// Getter errors already carry the path.
	mistyped := func(path string, err error) {
		var te *TypeError
		if errors.As(err, &te) {
			add(path, "want "+te.Expected+", have "+te.Actual, nil, BadType)
			return
		}
		add(path, err.Error(), nil, BadType)
	}

	if v, err := c.GetInt("editor.tabStop"); err != nil {
		mistyped("editor.tabStop", err)
	} else if v < 1 || v > 16 {
		add("editor.tabStop", "must be between 1 and 16", v, OutOfRange)
	}

	if v, err := c.GetInt("editor.quitTimes"); err != nil {
		mistyped("editor.quitTimes", err)
	} else if v < 0 {
		add("editor.quitTimes", "must not be negative", v, OutOfRange)
	}

	if v, err := c.GetDuration("ui.messageTimeout"); err != nil {
		mistyped("ui.messageTimeout", err)
	} else if v <= 0 {
		add("ui.messageTimeout", "must be positive", v, OutOfRange)
	}

	if _, err := c.GetBool("ui.showWelcome"); err != nil {
		mistyped("ui.showWelcome", err)
	}

	if theme, err := c.GetStringMap("ui.theme"); err != nil {
		mistyped("ui.theme", err)
	} else if _, err := highlight.DefaultTheme().Override(theme); err != nil {
		add("ui.theme", err.Error(), theme, NotAllowed)
	}

	if v, err := c.GetString("logging.level"); err != nil {
		mistyped("logging.level", err)
	} else if !validLogLevel(v) {
		add("logging.level", "must be one of debug, info, warn, error", v, NotAllowed)
	}

	if _, err := c.GetString("logging.file"); err != nil {
		mistyped("logging.file", err)
	}

	if _, err := c.GetBool("watch.enabled"); err != nil {
		mistyped("watch.enabled", err)
	}

	if v, err := c.GetDuration("watch.debounce"); err != nil {
		mistyped("watch.debounce", err)
	} else if v < 0 {
		add("watch.debounce", "must not be negative", v, OutOfRange)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kite")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kite")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabStop":   4,
			"quitTimes": 3,
		},
		"ui": map[string]any{
			"messageTimeout": "5s",
			"showWelcome":    true,
			"theme":          map[string]any{},
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"watch": map[string]any{
			"enabled":  true,
			"debounce": "100ms",
		},
	}
}

// getPath walks the dotted path through nested tables.
func getPath(m map[string]any, path string) (any, bool) {
	keys := splitPath(path)
	if len(keys) == 0 {
		return nil, false
	}
	var v any = m
	for _, k := range keys {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = table[k]; !ok {
			return nil, false
		}
	}
	return v, true
}

// setPath stores value at the dotted path, creating missing tables. It
// fails with ErrInvalidPath when a prefix of path holds a scalar.
func setPath(m map[string]any, path string, value any) error {
	keys := splitPath(path)
	if len(keys) == 0 {
		return ErrInvalidPath
	}
	last := len(keys) - 1
	table := m
	for _, k := range keys[:last] {
		if _, ok := table[k]; !ok {
			table[k] = map[string]any{}
		}
		sub, ok := table[k].(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		table = sub
	}
	table[keys[last]] = value
	return nil
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

// describe names the dynamic type of a config value for TypeError.
func describe(v any) string {
	switch val := v.(type) {
	case nil:
		return "nothing"
	case string:
		return strconv.Quote(val)
	case map[string]any:
		return "table"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}
