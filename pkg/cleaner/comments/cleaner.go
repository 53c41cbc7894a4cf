package comments

import (
	"fmt"
	"time"
)

// Cleaner strips comments from source text.
// It implements the cleaner.Cleaner interface.
type Cleaner struct {
	config *Config
	rules  *Rules
	stats  *Stats
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
		rules:  Compile(config),
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "comments"
}

// Config returns the configuration the cleaner was built with.
func (c *Cleaner) Config() *Config {
	return c.config
}

// Clean strips comments from content.
// This method implements the cleaner.Cleaner interface.
func (c *Cleaner) Clean(content string) (string, error) {
	return c.CleanWithStats(content).Content, nil
}

// Strip runs a single pass over lines and returns the surviving lines in
// their original order. Trimmed lines keep their original index.
func (c *Cleaner) Strip(lines []Line) []Line {
	out, _ := c.strip(lines, nil)
	return out
}

func (c *Cleaner) strip(lines []Line, stats *Stats) ([]Line, State) {
	var st State
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		var o Outcome
		st, o = c.rules.Step(st, line)
		if stats != nil {
			stats.Record(o)
		}
		if o.Keep {
			out = append(out, Line{Index: line.Index, Text: o.Text})
		}
	}
	return out, st
}

// CleanWithStats strips content and returns detailed stats.
func (c *Cleaner) CleanWithStats(content string) *Result {
	return c.StripWithStats(SplitLines(content))
}

// StripWithStats strips lines and returns detailed stats.
func (c *Cleaner) StripWithStats(lines []Line) *Result {
	start := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputLines = len(lines)
	for _, l := range lines {
		result.Stats.InputBytes += len(l.Text)
	}

	out, st := c.strip(lines, result.Stats)
	if st.InBlockComment {
		result.AddWarning("scan", "block comment not terminated before end of input",
			fmt.Sprintf("line %d", st.OpenedAt+1))
	}

	result.Lines = out
	result.Content = JoinLines(out)
	result.Stats.OutputLines = len(out)
	result.Stats.OutputBytes = len(result.Content)
	result.Stats.Duration = time.Since(start)
	c.stats = result.Stats

	return result
}

// Stats returns the stats from the last stripping pass.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}
