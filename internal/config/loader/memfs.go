package loader

import (
	"io/fs"
	"path"
	"strings"
	"testing/fstest"
)

// MemFS is an in-memory FileSystem for tests.
type MemFS struct {
	files fstest.MapFS
}

// NewMemFS creates an in-memory file system from path -> content pairs.
// Leading slashes are ignored so absolute paths can be used as keys.
func NewMemFS(files map[string]string) *MemFS {
	m := &MemFS{files: make(fstest.MapFS, len(files))}
	for p, content := range files {
		m.files[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: 0o644}
	}
	return m
}

func clean(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// Open implements fs.FS.
func (m *MemFS) Open(name string) (fs.File, error) {
	return m.files.Open(clean(name))
}

// ReadFile reads the entire file at path.
func (m *MemFS) ReadFile(p string) ([]byte, error) {
	return m.files.ReadFile(clean(p))
}

// Stat returns file info for path.
func (m *MemFS) Stat(p string) (fs.FileInfo, error) {
	return m.files.Stat(clean(p))
}
