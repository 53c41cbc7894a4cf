// Package comments provides a configurable, line-oriented comment stripper.
// It removes doc-comment blocks, section dividers and noisy explanatory
// comments from source files while leaving code untouched.
package comments

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Preset names accepted by PresetByName.
const (
	PresetNameMinimal    = "minimal"
	PresetNameDefault    = "default"
	PresetNameAggressive = "aggressive"
)

// DefaultNoisePrefixes are the comment bodies that mark a whole `//` line as
// explanatory clutter. Order is the match order.
var DefaultNoisePrefixes = []string{
	"Method calls:",
	"Calls",
	"Note:",
	"Why:",
	"Problem:",
	"NEW APPROACH:",
	"OLD APPROACH:",
	"FIXED:",
	"Uses",
	"This demonstrates",
	"Benefits:",
	"Algorithm:",
	"Time Complexity:",
	"Space Complexity:",
	"Pattern:",
	"Demonstrates:",
}

// DefaultInlineMarkers are the comment bodies whose trailing `//` comment is
// cut from an otherwise kept line.
var DefaultInlineMarkers = []string{
	"Format:",
	"Extract",
	"Track",
	"Record",
	"Mark",
	"Add to",
	"Shift",
	"Continue",
	"Found",
	"Insert",
	"Safe",
	"Return",
	"Get",
	"Set",
	"Create",
	"Update",
	"Delete",
	"Find",
	"Check",
	"Display",
	"Process",
	"Handle",
	"Show",
	"Print",
}

// Config defines all configuration options for the comment stripper.
type Config struct {
	// === Block Comments ===

	// StripDocComments drops `/** ... */` regions.
	StripDocComments bool `json:"strip_doc_comments" yaml:"strip_doc_comments" mapstructure:"strip_doc_comments"`

	// StripBlockComments also treats a plain `/*` opener as the start of a
	// dropped region.
	StripBlockComments bool `json:"strip_block_comments" yaml:"strip_block_comments" mapstructure:"strip_block_comments"`

	// CloseSingleLineBlocks drops an opener line that also contains the
	// closer (`/** @return x */`) without entering block state. When false
	// such a line opens a region that runs until the next `*/`.
	CloseSingleLineBlocks bool `json:"close_single_line_blocks" yaml:"close_single_line_blocks" mapstructure:"close_single_line_blocks"`

	// SkipBlankAfterBlock drops the single blank line that follows a closed
	// block comment.
	SkipBlankAfterBlock bool `json:"skip_blank_after_block" yaml:"skip_blank_after_block" mapstructure:"skip_blank_after_block"`

	// === Line Comments ===

	// StripDividers drops `// ===== SECTION =====` lines.
	StripDividers bool `json:"strip_dividers" yaml:"strip_dividers" mapstructure:"strip_dividers"`

	// StripNoisePrefixes drops whole `//` lines whose body starts with one of
	// NoisePrefixes.
	StripNoisePrefixes bool     `json:"strip_noise_prefixes" yaml:"strip_noise_prefixes" mapstructure:"strip_noise_prefixes"`
	NoisePrefixes      []string `json:"noise_prefixes" yaml:"noise_prefixes" mapstructure:"noise_prefixes" validate:"dive,required"`

	// StripInlineMarkers cuts trailing `//` comments whose body starts with
	// one of InlineMarkers, keeping the code before them.
	StripInlineMarkers bool     `json:"strip_inline_markers" yaml:"strip_inline_markers" mapstructure:"strip_inline_markers"`
	InlineMarkers      []string `json:"inline_markers" yaml:"inline_markers" mapstructure:"inline_markers" validate:"dive,required"`
}

// PresetMinimal returns the conservative config: doc-comment blocks, the
// blank line after them, and section dividers.
func PresetMinimal() *Config {
	return &Config{
		StripDocComments:    true,
		SkipBlankAfterBlock: true,
		StripDividers:       true,
	}
}

// DefaultConfig returns the full stripping config, which adds the noise
// prefix and inline marker tables to the minimal preset.
func DefaultConfig() *Config {
	cfg := PresetMinimal()
	cfg.StripNoisePrefixes = true
	cfg.NoisePrefixes = append([]string(nil), DefaultNoisePrefixes...)
	cfg.StripInlineMarkers = true
	cfg.InlineMarkers = append([]string(nil), DefaultInlineMarkers...)
	return cfg
}

// PresetAggressive returns the default config with plain `/* ... */`
// regions removed as well.
func PresetAggressive() *Config {
	cfg := DefaultConfig()
	cfg.StripBlockComments = true
	return cfg
}

// PresetByName resolves a preset name. An empty name means the default.
func PresetByName(name string) (*Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetNameDefault:
		return DefaultConfig(), nil
	case PresetNameMinimal:
		return PresetMinimal(), nil
	case PresetNameAggressive:
		return PresetAggressive(), nil
	default:
		return nil, fmt.Errorf("unknown preset: %s (use minimal, default or aggressive)", name)
	}
}

// Merge merges another config into this one.
// Enabled options from other win; marker lists are appended, not replaced.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c
	merged.NoisePrefixes = append([]string(nil), c.NoisePrefixes...)
	merged.InlineMarkers = append([]string(nil), c.InlineMarkers...)

	if other.StripDocComments {
		merged.StripDocComments = true
	}
	if other.StripBlockComments {
		merged.StripBlockComments = true
	}
	if other.CloseSingleLineBlocks {
		merged.CloseSingleLineBlocks = true
	}
	if other.SkipBlankAfterBlock {
		merged.SkipBlankAfterBlock = true
	}
	if other.StripDividers {
		merged.StripDividers = true
	}
	if other.StripNoisePrefixes {
		merged.StripNoisePrefixes = true
	}
	if other.StripInlineMarkers {
		merged.StripInlineMarkers = true
	}

	merged.NoisePrefixes = appendUnique(merged.NoisePrefixes, other.NoisePrefixes)
	merged.InlineMarkers = appendUnique(merged.InlineMarkers, other.InlineMarkers)

	return &merged
}

func appendUnique(dst, src []string) []string {
	if len(src) == 0 {
		return dst
	}
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}

// Validate checks the config for empty markers.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var msgs []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: %s", e.Namespace(), formatValidationError(e)))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return fmt.Errorf("invalid config: %w", err)
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must not be empty"
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}

// LoadConfig reads a config from a JSON or YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON rules: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported rules file format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
