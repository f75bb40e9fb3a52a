// Package loader reads configuration layers into nested maps: TOML and
// YAML files, and KITE_* environment variables.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader produces one configuration layer. A source that does not exist
// yields nil data and no error.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the file access the loaders need. MemFS implements it for
// tests.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error)     { return os.Open(name) }
func (osFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }
func (osFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS is the operating system's file system.
func DefaultFS() FileSystem { return osFS{} }

// Extensions are the config file extensions ForPath accepts, in the order
// the user config directory is searched.
var Extensions = []string{".toml", ".yaml", ".yml"}

var formatByExt = map[string]Format{
	".toml": TOML,
	".yaml": YAML,
	".yml":  YAML,
}

// ForPath picks the format from the extension of path, ignoring case.
func ForPath(fsys FileSystem, path string) (*FileLoader, error) {
	ext := filepath.Ext(path)
	f, ok := formatByExt[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return NewFileLoader(fsys, path, f), nil
}

// ParseError reports a file that could not be decoded. Line and Column are
// zero when the decoder did not report a position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var at string
	switch {
	case e.Line > 0 && e.Column > 0:
		at = fmt.Sprintf(":%d:%d", e.Line, e.Column)
	case e.Line > 0:
		at = fmt.Sprintf(":%d", e.Line)
	}
	return "parse " + e.Path + at + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// DeepMerge overlays src onto dst and returns dst, allocating it when nil.
// Nested maps merge key by key; any other value in src replaces the one in
// dst.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		sub, isMap := v.(map[string]any)
		if prev, ok := dst[k].(map[string]any); ok && isMap {
			dst[k] = DeepMerge(prev, sub)
			continue
		}
		dst[k] = v
	}
	return dst
}

// Clone copies m and every map nested in it. Other values are shared.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			v = Clone(sub)
		}
		out[k] = v
	}
	return out
}
