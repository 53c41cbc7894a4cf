package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter buffers records and writes them as one JSON document.
// A single record is written as-is, several as an array.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	items  []any
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

// Write buffers a single record.
func (w *JSONWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

// Flush writes the buffered records.
func (w *JSONWriter) Flush() error {
	if len(w.items) == 0 {
		return w.w.Flush()
	}

	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}

	enc := json.NewEncoder(w.w)
	if w.pretty {
		enc.SetIndent("", w.indent)
	}
	if err := enc.Encode(doc); err != nil {
		return err
	}
	w.items = nil
	return w.w.Flush()
}

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record as a JSON line.
func (w *JSONLWriter) Write(data any) error {
	if err := json.NewEncoder(w.w).Encode(data); err != nil {
		return err
	}
	return w.w.Flush()
}

// Flush flushes the buffer.
func (w *JSONLWriter) Flush() error {
	return w.w.Flush()
}
