package comments

import (
	"regexp"
	"strings"
)

// Reason explains why a line was dropped or trimmed.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonDocCommentOpen    Reason = "doc_comment_open"
	ReasonBlockCommentOpen  Reason = "block_comment_open"
	ReasonBlockCommentClose Reason = "block_comment_close"
	ReasonBlockCommentBody  Reason = "block_comment_body"
	ReasonBlankAfterBlock   Reason = "blank_after_block"
	ReasonDivider           Reason = "divider"
	ReasonNoisePrefix       Reason = "noise_prefix"
	ReasonInlineMarker      Reason = "inline_marker"
)

const (
	docOpener   = "/**"
	blockOpener = "/*"
	blockCloser = "*/"
)

// dividerPattern matches a trimmed `//` line made of two runs of at least
// three `=` around an optional label.
var dividerPattern = regexp.MustCompile(`^//\s*={3,}.*={3,}\s*$`)

// State is the scan state carried from one line to the next. The zero value
// is the state at the start of a file.
type State struct {
	InBlockComment bool `json:"in_block_comment"`
	SkipNextBlank  bool `json:"skip_next_blank"`

	// OpenedAt is the index of the line that opened the current block.
	OpenedAt int `json:"opened_at"`
}

// Outcome is the decision for a single line.
type Outcome struct {
	Keep   bool
	Text   string
	Reason Reason
}

// Rules is a compiled pattern table for a Config.
type Rules struct {
	cfg    Config
	noise  *regexp.Regexp
	inline *regexp.Regexp
}

// Compile builds the pattern table for cfg. Markers are matched literally.
func Compile(cfg *Config) *Rules {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Rules{cfg: *cfg}
	if cfg.StripNoisePrefixes {
		if alt := alternation(cfg.NoisePrefixes); alt != "" {
			r.noise = regexp.MustCompile(`^//\s*(?:` + alt + `)`)
		}
	}
	if cfg.StripInlineMarkers {
		if alt := alternation(cfg.InlineMarkers); alt != "" {
			r.inline = regexp.MustCompile(`//\s*(?:` + alt + `)`)
		}
	}
	return r
}

func alternation(markers []string) string {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		if m == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(m))
	}
	return strings.Join(quoted, "|")
}

// Step applies the rules to one line and returns the next state together
// with the decision for that line.
func (r *Rules) Step(st State, line Line) (State, Outcome) {
	trimmed := strings.TrimSpace(line.Text)

	if !st.InBlockComment {
		if reason, ok := r.opens(trimmed); ok {
			if r.cfg.CloseSingleLineBlocks && strings.Contains(trimmed[len(blockOpener):], blockCloser) {
				st.SkipNextBlank = r.cfg.SkipBlankAfterBlock
				return st, Outcome{Reason: reason}
			}
			st.InBlockComment = true
			st.OpenedAt = line.Index
			return st, Outcome{Reason: reason}
		}
	}

	if st.InBlockComment {
		// Anything after the closer on the same line is dropped too.
		if strings.Contains(trimmed, blockCloser) {
			st.InBlockComment = false
			st.SkipNextBlank = r.cfg.SkipBlankAfterBlock
			return st, Outcome{Reason: ReasonBlockCommentClose}
		}
		return st, Outcome{Reason: ReasonBlockCommentBody}
	}

	if st.SkipNextBlank {
		st.SkipNextBlank = false
		if trimmed == "" {
			return st, Outcome{Reason: ReasonBlankAfterBlock}
		}
	}

	if r.cfg.StripDividers && dividerPattern.MatchString(trimmed) {
		return st, Outcome{Reason: ReasonDivider}
	}

	if r.noise != nil && r.noise.MatchString(trimmed) {
		return st, Outcome{Reason: ReasonNoisePrefix}
	}

	if r.inline != nil {
		body, term := splitTerminator(line.Text)
		if loc := r.inline.FindStringIndex(body); loc != nil {
			return st, Outcome{Keep: true, Text: body[:loc[0]] + term, Reason: ReasonInlineMarker}
		}
	}

	return st, Outcome{Keep: true, Text: line.Text}
}

func (r *Rules) opens(trimmed string) (Reason, bool) {
	if r.cfg.StripDocComments && strings.HasPrefix(trimmed, docOpener) {
		return ReasonDocCommentOpen, true
	}
	if r.cfg.StripBlockComments && strings.HasPrefix(trimmed, blockOpener) {
		if strings.HasPrefix(trimmed, docOpener) {
			return ReasonDocCommentOpen, true
		}
		return ReasonBlockCommentOpen, true
	}
	return ReasonNone, false
}
