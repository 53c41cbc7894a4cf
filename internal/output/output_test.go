package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testItem struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type stringerItem struct{ name string }

func (s stringerItem) String() string { return "item " + s.name }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSONL", FormatJSONL, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"text", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWriter_Types(t *testing.T) {
	tests := []struct {
		format Format
		check  func(Writer) bool
	}{
		{FormatText, func(w Writer) bool { _, ok := w.(*TextWriter); return ok }},
		{FormatJSON, func(w Writer) bool { _, ok := w.(*JSONWriter); return ok }},
		{FormatJSONL, func(w Writer) bool { _, ok := w.(*JSONLWriter); return ok }},
		{FormatYAML, func(w Writer) bool { _, ok := w.(*YAMLWriter); return ok }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(&bytes.Buffer{}, tt.format)
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			if !tt.check(w) {
				t.Errorf("unexpected writer type %T", w)
			}
		})
	}
}

func TestNewWriter_UnsupportedFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("unsupported"))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestJSONWriter_SingleItem(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, true, "  ")

	if err := w.Write(testItem{Name: "test", Value: 42}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var result testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if result.Name != "test" || result.Value != 42 {
		t.Errorf("unexpected result: %+v", result)
	}
	if !strings.Contains(buf.String(), "\n  \"name\"") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestJSONWriter_MultipleItems(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf, false, "")

	_ = w.Write(testItem{Name: "first", Value: 1})
	_ = w.Write(testItem{Name: "second", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var result []testItem
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if len(result) != 2 || result[1].Name != "second" {
		t.Errorf("unexpected result: %+v", result)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected compact output, got %q", buf.String())
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSONWriter(buf, true, "  ").Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestJSONLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONLWriter(buf)

	_ = w.Write(testItem{Name: "a", Value: 1})
	_ = w.Write(testItem{Name: "b", Value: 2})
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var item testItem
	if err := json.Unmarshal([]byte(lines[1]), &item); err != nil {
		t.Fatalf("failed to unmarshal line: %v", err)
	}
	if item.Name != "b" {
		t.Errorf("unexpected item %+v", item)
	}
}

func TestYAMLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	if err := w.Write(testItem{Name: "test", Value: 42}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	var result testItem
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if result.Name != "test" || result.Value != 42 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestTextWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	_ = w.Write(stringerItem{name: "one"})
	_ = w.Write(42)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if buf.String() != "item one\n42\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
