// Package cleaner provides interfaces and implementations for cleaning source text.
// Cleaners transform a file's content into a simplified copy of it.
package cleaner

// Cleaner transforms text content into a cleaner form.
// The default implementation strips noisy comments line by line.
type Cleaner interface {
	// Clean transforms the input content.
	// Line order and terminators are expected to be preserved.
	Clean(content string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
