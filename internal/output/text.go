package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TextWriter writes records using their String method, or %v otherwise.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a plain-text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record, ending it with a newline.
func (w *TextWriter) Write(data any) error {
	var s string
	if st, ok := data.(fmt.Stringer); ok {
		s = st.String()
	} else {
		s = fmt.Sprintf("%v", data)
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := w.w.WriteString(s)
	return err
}

// Flush flushes the buffer.
func (w *TextWriter) Flush() error {
	return w.w.Flush()
}
