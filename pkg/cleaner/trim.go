package cleaner

import "strings"

// TrimTrailingCleaner removes trailing spaces and tabs from every line.
// Line terminators, including "\r\n", are kept as they were.
type TrimTrailingCleaner struct{}

// NewTrimTrailing creates a cleaner that trims trailing whitespace.
func NewTrimTrailing() *TrimTrailingCleaner {
	return &TrimTrailingCleaner{}
}

// Clean trims trailing whitespace from each line of content.
func (c *TrimTrailingCleaner) Clean(content string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(content))

	for content != "" {
		line, rest, found := strings.Cut(content, "\n")
		term := ""
		if found {
			term = "\n"
			if strings.HasSuffix(line, "\r") {
				line = line[:len(line)-1]
				term = "\r\n"
			}
		}
		sb.WriteString(strings.TrimRight(line, " \t"))
		sb.WriteString(term)
		content = rest
	}
	return sb.String(), nil
}

// Name returns the cleaner type.
func (c *TrimTrailingCleaner) Name() string {
	return "trim_trailing"
}
