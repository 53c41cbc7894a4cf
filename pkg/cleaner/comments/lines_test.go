package comments

import "testing"

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single unterminated", "abc", []string{"abc"}},
		{"single terminated", "abc\n", []string{"abc\n"}},
		{"mixed terminators", "a\r\nb\nc", []string{"a\r\n", "b\n", "c"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lines, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i].Text != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i].Text, tt.want[i])
				}
				if got[i].Index != i {
					t.Errorf("line %d has index %d", i, got[i].Index)
				}
			}
			if JoinLines(got) != tt.input {
				t.Errorf("JoinLines() = %q, want %q", JoinLines(got), tt.input)
			}
		})
	}
}

func TestLineContent(t *testing.T) {
	tests := map[string]string{
		"abc\r\n": "abc",
		"abc\n":   "abc",
		"abc":     "abc",
		"\n":      "",
	}
	for text, want := range tests {
		if got := (Line{Text: text}).Content(); got != want {
			t.Errorf("Content(%q) = %q, want %q", text, got, want)
		}
	}
}
