package cleaner_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jmylchreest/decomment/pkg/cleaner"
	"github.com/jmylchreest/decomment/pkg/cleaner/comments"
)

// --- NoopCleaner Tests ---

func TestNoopCleaner_Clean(t *testing.T) {
	c := cleaner.NewNoop()

	tests := []struct {
		name  string
		input string
	}{
		{"empty_string", ""},
		{"plain_text", "Hello, World!"},
		{"doc_comment", "/**\n * Doc.\n */\nclass A {}\n"},
		{"whitespace", "  \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Errorf("Clean() error = %v, want nil", err)
			}
			if got != tt.input {
				t.Errorf("Clean() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestNoopCleaner_Name(t *testing.T) {
	c := cleaner.NewNoop()
	if got := c.Name(); got != "noop" {
		t.Errorf("Name() = %q, want %q", got, "noop")
	}
}

// --- TrimTrailingCleaner Tests ---

func TestTrimTrailingCleaner_Clean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no trailing", "a\nb", "a\nb"},
		{"spaces and tabs", "x = 5; \t\n  y\t", "x = 5;\n  y"},
		{"crlf kept", "a  \r\nb \r\n", "a\r\nb\r\n"},
		{"blank lines kept", "  \n\n", "\n\n"},
	}

	c := cleaner.NewTrimTrailing()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := cleaner.NewChain()

	input := "unchanged content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestChainCleaner_Order(t *testing.T) {
	c := cleaner.NewChain(comments.New(nil), cleaner.NewTrimTrailing())

	got, err := c.Clean("/**\n * Doc.\n */\nx = 5; // Set x\n")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != "x = 5;\n" {
		t.Errorf("Clean() = %q, want %q", got, "x = 5;\n")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

// errorCleaner is a test cleaner that always returns an error
type errorCleaner struct{}

func (c *errorCleaner) Clean(string) (string, error) {
	return "", errors.New("test error")
}

func (c *errorCleaner) Name() string {
	return "error"
}

func TestChainCleaner_ErrorPropagation(t *testing.T) {
	c := cleaner.NewChain(cleaner.NewNoop(), &errorCleaner{}, cleaner.NewTrimTrailing())

	_, err := c.Clean("test")
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if !strings.Contains(err.Error(), "error: test error") {
		t.Errorf("expected error naming the failing stage, got %v", err)
	}
}

func TestChainCleaner_Name(t *testing.T) {
	tests := []struct {
		name     string
		cleaners []cleaner.Cleaner
		want     string
	}{
		{"empty", []cleaner.Cleaner{}, "chain()"},
		{"single", []cleaner.Cleaner{cleaner.NewNoop()}, "chain(noop)"},
		{"double", []cleaner.Cleaner{comments.New(nil), cleaner.NewTrimTrailing()}, "chain(comments->trim_trailing)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cleaner.NewChain(tt.cleaners...)
			if got := c.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Interface conformance
var (
	_ cleaner.Cleaner = (*comments.Cleaner)(nil)
	_ cleaner.Cleaner = (*cleaner.NoopCleaner)(nil)
	_ cleaner.Cleaner = (*cleaner.TrimTrailingCleaner)(nil)
	_ cleaner.Cleaner = (*cleaner.ChainCleaner)(nil)
)
