package batch

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/decomment/internal/logger"
)

// Options configures a batch run.
type Options struct {
	FileOptions

	// Root is the directory patterns are resolved against. Defaults to ".".
	Root string

	// Patterns are doublestar globs relative to Root, e.g. "src/**/*.java".
	Patterns []string

	// OutDir receives the stripped files under their path relative to Root.
	OutDir string

	// InPlace overwrites each input instead of writing to OutDir.
	InPlace bool
}

// Report summarizes a batch run.
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Files     []FileResult  `json:"files" yaml:"files"`
}

// Failed returns the number of files that could not be processed.
func (r *Report) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Error != "" {
			n++
		}
	}
	return n
}

// Totals returns the summed input and output sizes of successful files.
func (r *Report) Totals() (inputBytes, outputBytes, linesRemoved int) {
	for _, f := range r.Files {
		if f.Stats == nil {
			continue
		}
		inputBytes += f.Stats.InputBytes
		outputBytes += f.Stats.OutputBytes
		linesRemoved += f.Stats.TotalLinesRemoved()
	}
	return inputBytes, outputBytes, linesRemoved
}

// String returns a human-readable summary of the run.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run %s: %d files, %d failed\n", r.RunID, len(r.Files), r.Failed())
	for _, f := range r.Files {
		switch {
		case f.Error != "":
			fmt.Fprintf(&sb, "  FAIL %s: %s\n", f.Input, f.Error)
		case f.Stats != nil:
			fmt.Fprintf(&sb, "  ok   %s -> %s (%d lines removed, %d trimmed)\n",
				f.Input, f.Output, f.Stats.TotalLinesRemoved(), f.Stats.LinesTrimmed)
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(&sb, "       %s\n", w.String())
		}
	}
	in, out, removed := r.Totals()
	fmt.Fprintf(&sb, "Total: %s -> %s, %d lines removed in %v\n",
		humanize.Bytes(uint64(in)), humanize.Bytes(uint64(out)), removed, r.Duration.Round(time.Millisecond))
	return sb.String()
}

// NewRunID returns a time-ordered identifier for a batch run.
func NewRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Expand resolves patterns under root into a sorted, de-duplicated list of
// regular files.
func Expand(root string, patterns []string) ([]string, error) {
	if root == "" {
		root = "."
	}
	matches := map[string]bool{}
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid glob %q", pattern)
		}
		hits, err := doublestar.FilepathGlob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("expand glob %q: %w", pattern, err)
		}
		for _, hit := range hits {
			if info, err := os.Stat(hit); err == nil && info.Mode().IsRegular() {
				matches[filepath.Clean(hit)] = true
			}
		}
	}

	files := make([]string, 0, len(matches))
	for f := range matches {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

// Run strips every file matched by opts.Patterns, one after another.
// A failing file is recorded in the report and the run continues; the
// returned error is reserved for invalid options and cancellation.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if !opts.InPlace && opts.OutDir == "" && !opts.DryRun {
		return nil, errors.New("batch: either an output directory or in-place mode is required")
	}
	if len(opts.Patterns) == 0 {
		return nil, errors.New("batch: no patterns given")
	}
	root := opts.Root
	if root == "" {
		root = "."
	}

	runID, err := NewRunID()
	if err != nil {
		return nil, fmt.Errorf("batch: creating run id: %w", err)
	}

	report := &Report{
		RunID:     runID,
		StartedAt: time.Now().UTC(),
	}
	log := logger.With("run_id", runID)

	files, err := Expand(root, opts.Patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("expanded patterns", "patterns", opts.Patterns, "files", len(files))

	start := time.Now()
	for _, input := range files {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}

		output := input
		if !opts.InPlace {
			rel, err := filepath.Rel(root, input)
			if err != nil {
				rel = filepath.Base(input)
			}
			output = filepath.Join(opts.OutDir, rel)
		}

		fr := FileResult{Input: input, Output: output}
		result, err := StripFile(input, output, opts.FileOptions)
		if err != nil {
			fr.Error = err.Error()
			log.Warn("failed to strip file", "input", input, "error", err)
		} else {
			fr.Stats = result.Stats
			fr.Warnings = result.Warnings
			log.Debug("stripped file", "input", input, "output", output,
				"lines_removed", result.Stats.TotalLinesRemoved())
		}
		report.Files = append(report.Files, fr)
	}

	report.Duration = time.Since(start)
	return report, nil
}
