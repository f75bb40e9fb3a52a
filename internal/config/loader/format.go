package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format decodes one file syntax into a nested map.
type Format struct {
	Name string

	decode func(data []byte, v *map[string]any) error
	// position extracts a 1-based line and column from a decode error.
	position func(err error) (line, col int)
}

// TOML reads TOML documents. Integers decode as int64.
var TOML = Format{
	Name:   "toml",
	decode: func(data []byte, v *map[string]any) error { return toml.Unmarshal(data, v) },
	position: func(err error) (int, int) {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			return de.Position()
		}
		return 0, 0
	},
}

// YAML reads YAML documents. Integers decode as int and nested mappings
// as map[string]any.
var YAML = Format{
	Name:   "yaml",
	decode: func(data []byte, v *map[string]any) error { return yaml.Unmarshal(data, v) },
	position: func(err error) (int, int) {
		var line int
		if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr == nil {
			return line, 0
		}
		return 0, 0
	},
}

// FileLoader loads one config file in a fixed format.
type FileLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFileLoader reads path from fsys using format.
func NewFileLoader(fsys FileSystem, path string, format Format) *FileLoader {
	return &FileLoader{fs: fsys, path: path, format: format}
}

// Path is the file this loader reads.
func (l *FileLoader) Path() string { return l.path }

// Format is the syntax this loader decodes.
func (l *FileLoader) Format() Format { return l.format }

// Load reads and decodes the file. A missing file is not an error and
// yields nil; an empty file yields an empty map.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	return l.parse(l.path, data)
}

// Decode parses r, reporting errors against the loader's path.
func (l *FileLoader) Decode(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return l.parse(l.path, data)
}

func (l *FileLoader) parse(source string, data []byte) (map[string]any, error) {
	var out map[string]any
	if err := l.format.decode(data, &out); err != nil {
		line, col := l.format.position(err)
		return nil, &ParseError{Path: source, Line: line, Column: col, Message: err.Error(), Err: err}
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}
