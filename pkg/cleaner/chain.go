package cleaner

import (
	"fmt"
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence, feeding each stage the
// output of the previous one.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a new cleaner that applies multiple cleaners in order.
//
// Example:
//
//	chain := cleaner.NewChain(
//	    comments.New(comments.PresetAggressive()),
//	    cleaner.NewTrimTrailing(),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence. The first failing stage aborts
// the chain.
func (c *ChainCleaner) Clean(content string) (string, error) {
	var err error
	for _, stage := range c.cleaners {
		content, err = stage.Clean(content)
		if err != nil {
			return "", fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}
	return content, nil
}

// Len returns the number of stages.
func (c *ChainCleaner) Len() int {
	return len(c.cleaners)
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, stage := range c.cleaners {
		names[i] = stage.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
