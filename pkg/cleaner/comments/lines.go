package comments

import "strings"

// Line is one input line. Text keeps its original terminator ("\n", "\r\n",
// or none for a final unterminated line).
type Line struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Content returns the line without its terminator.
func (l Line) Content() string {
	body, _ := splitTerminator(l.Text)
	return body
}

// SplitLines splits content into lines, keeping each line's terminator.
func SplitLines(content string) []Line {
	if content == "" {
		return nil
	}

	lines := make([]Line, 0, strings.Count(content, "\n")+1)
	for i := 0; content != ""; i++ {
		end := strings.IndexByte(content, '\n')
		if end < 0 {
			lines = append(lines, Line{Index: i, Text: content})
			break
		}
		lines = append(lines, Line{Index: i, Text: content[:end+1]})
		content = content[end+1:]
	}
	return lines
}

// JoinLines concatenates lines back into a single string.
func JoinLines(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Text)
	}
	return sb.String()
}

func splitTerminator(s string) (body, term string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	default:
		return s, ""
	}
}
