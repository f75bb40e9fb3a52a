package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineTerminator is written after every row on save.
const LineTerminator = "\r\n"

// ErrNoPath is returned when saving a buffer without a target path.
var ErrNoPath = errors.New("no file path")

// Load reads newline-delimited text from r. Trailing "\n" and "\r"
// characters are stripped from every line.
func Load(r io.Reader, opts ...Option) (*Buffer, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
	return NewFromLines(lines, opts...), nil
}

// Open loads the file at path.
func Open(path string, opts ...Option) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return b, nil
}

// WriteTo writes every row followed by LineTerminator.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, r := range b.rows {
		m, err := bw.WriteString(string(r.chars) + LineTerminator)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Save overwrites path with the buffer contents and clears the dirty
// flag. On failure the buffer is left dirty.
func (b *Buffer) Save(path string) (int64, error) {
	if path == "" {
		return 0, ErrNoPath
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := b.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	b.dirty = false
	return n, nil
}
