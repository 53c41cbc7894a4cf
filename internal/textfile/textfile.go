// Package textfile loads and stores files as ordered lines with their
// original terminators.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/decomment/pkg/cleaner/comments"
)

// ErrTooLarge is returned when an input exceeds the configured size limit.
var ErrTooLarge = errors.New("input too large")

// ReadLines reads r into lines, keeping each line's terminator.
func ReadLines(r io.Reader) ([]comments.Line, error) {
	br := bufio.NewReader(r)
	var lines []comments.Line
	for {
		text, err := br.ReadString('\n')
		if text != "" {
			lines = append(lines, comments.Line{Index: len(lines), Text: text})
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Load reads the file at path. A maxBytes of 0 means no limit.
func Load(path string, maxBytes int64) ([]comments.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if maxBytes > 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.Size() > maxBytes {
			return nil, fmt.Errorf("%s is %s, limit %s: %w", path,
				humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(maxBytes)), ErrTooLarge)
		}
	}

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// Store writes lines to path in order, creating parent directories.
// A failed write may leave a partial file behind.
func Store(path string, lines []comments.Line) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := w.WriteString(l.Text); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
