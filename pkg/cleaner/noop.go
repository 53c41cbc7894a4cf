package cleaner

// NoopCleaner passes content through without modification.
// Use this when you want to copy a file unchanged, or as a placeholder
// stage in a chain.
type NoopCleaner struct{}

// NewNoop creates a new no-op cleaner.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns the input unchanged.
func (c *NoopCleaner) Clean(content string) (string, error) {
	return content, nil
}

// Name returns the cleaner type.
func (c *NoopCleaner) Name() string {
	return "noop"
}
