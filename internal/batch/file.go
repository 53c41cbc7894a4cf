// Package batch strips comments from one or many files on disk.
package batch

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/decomment/internal/textfile"
	"github.com/jmylchreest/decomment/pkg/cleaner"
	"github.com/jmylchreest/decomment/pkg/cleaner/comments"
)

// FileOptions configures how a single file is processed.
type FileOptions struct {
	// Stripper performs the comment pass. Nil means comments.New(nil).
	Stripper *comments.Cleaner

	// Post runs over the stripped content before it is stored, e.g. a
	// trailing-whitespace trimmer. Optional.
	Post cleaner.Cleaner

	// MaxBytes rejects larger inputs. Zero means unlimited.
	MaxBytes int64

	// DryRun computes stats without writing the output file.
	DryRun bool
}

// FileResult describes the outcome for one file.
type FileResult struct {
	Input    string             `json:"input" yaml:"input"`
	Output   string             `json:"output" yaml:"output"`
	Stats    *comments.Stats    `json:"stats,omitempty" yaml:"stats,omitempty"`
	Warnings []comments.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// String returns a human-readable summary of the file outcome.
func (f FileResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s\n", f.Input, f.Output)
	if f.Error != "" {
		fmt.Fprintf(&sb, "Error: %s\n", f.Error)
	}
	if f.Stats != nil {
		sb.WriteString(f.Stats.String())
	}
	for _, w := range f.Warnings {
		fmt.Fprintf(&sb, "Warning: %s\n", w.String())
	}
	return sb.String()
}

// StripFile loads input, strips it and stores the result at output.
// Input and output may be the same path.
func StripFile(input, output string, opts FileOptions) (*comments.Result, error) {
	stripper := opts.Stripper
	if stripper == nil {
		stripper = comments.New(nil)
	}

	lines, err := textfile.Load(input, opts.MaxBytes)
	if err != nil {
		return nil, err
	}

	result := stripper.StripWithStats(lines)

	if opts.Post != nil {
		content, err := opts.Post.Clean(result.Content)
		if err != nil {
			return nil, fmt.Errorf("post-processing %s: %w", input, err)
		}
		result.Content = content
		result.Lines = comments.SplitLines(content)
		result.Stats.OutputBytes = len(content)
	}

	if opts.DryRun {
		return result, nil
	}

	if err := textfile.Store(output, result.Lines); err != nil {
		return nil, err
	}
	return result, nil
}
