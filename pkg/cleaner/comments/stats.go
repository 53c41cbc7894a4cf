package comments

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures metrics about what the stripper did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`
	InputLines  int `json:"input_lines" yaml:"input_lines"`
	OutputLines int `json:"output_lines" yaml:"output_lines"`

	// LinesRemoved counts dropped lines by reason.
	LinesRemoved map[Reason]int `json:"lines_removed" yaml:"lines_removed"`

	// LinesTrimmed counts kept lines shortened by an inline marker.
	LinesTrimmed int `json:"lines_trimmed" yaml:"lines_trimmed"`

	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		LinesRemoved: make(map[Reason]int),
	}
}

// Record accounts for one line outcome.
func (s *Stats) Record(o Outcome) {
	switch {
	case !o.Keep:
		s.LinesRemoved[o.Reason]++
	case o.Reason == ReasonInlineMarker:
		s.LinesTrimmed++
	}
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// TotalLinesRemoved returns the sum of all dropped lines.
func (s *Stats) TotalLinesRemoved() int {
	total := 0
	for _, count := range s.LinesRemoved {
		total += count
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)), s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Lines: %d -> %d (%d removed, %d trimmed)\n",
		s.InputLines, s.OutputLines, s.TotalLinesRemoved(), s.LinesTrimmed))

	if len(s.LinesRemoved) > 0 {
		reasons := make([]string, 0, len(s.LinesRemoved))
		for reason := range s.LinesRemoved {
			reasons = append(reasons, string(reason))
		}
		sort.Strings(reasons)

		parts := make([]string, 0, len(reasons))
		for _, reason := range reasons {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, s.LinesRemoved[Reason(reason)]))
		}
		sb.WriteString("Removed by reason: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: %v\n", s.Duration.Round(time.Microsecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during stripping.
type Warning struct {
	Phase   string `json:"phase" yaml:"phase"`
	Message string `json:"message" yaml:"message"`
	Context string `json:"context" yaml:"context"`
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a stripping pass.
type Result struct {
	Content  string    `json:"content" yaml:"-"`
	Lines    []Line    `json:"-" yaml:"-"`
	Stats    *Stats    `json:"stats" yaml:"stats"`
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
