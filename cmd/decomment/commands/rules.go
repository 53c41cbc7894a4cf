package commands

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/decomment/internal/batch"
	"github.com/jmylchreest/decomment/internal/logger"
	"github.com/jmylchreest/decomment/pkg/cleaner"
	"github.com/jmylchreest/decomment/pkg/cleaner/comments"
)

// addRuleFlags registers the flags that shape the comment rules.
func addRuleFlags(flags *pflag.FlagSet) {
	flags.String("preset", "default", "rule preset: minimal, default, aggressive")
	flags.String("rules-file", "", "JSON or YAML rules file merged over the preset")
	flags.StringSlice("noise-prefix", nil, "extra comment prefix that drops a whole // line (can be repeated)")
	flags.StringSlice("inline-marker", nil, "extra comment prefix cut from the end of a line (can be repeated)")
	flags.Bool("no-noise", false, "keep whole-line noise comments")
	flags.Bool("no-inline", false, "keep trailing inline comments")
	flags.Bool("block-comments", false, "also strip plain /* ... */ blocks")
	flags.Bool("single-line-blocks", false, "close a doc comment that opens and ends on the same line")
	flags.Bool("trim-trailing", false, "trim trailing whitespace left behind on kept lines")
	flags.String("max-size", "0", "skip inputs larger than this (e.g. 512KB, 2MB, 0=unlimited)")
}

// buildConfig resolves the rules: preset, then the config file's "rules"
// key, then --rules-file, then individual flags.
func (a *app) buildConfig(cmd *cobra.Command) (*comments.Config, error) {
	flags := cmd.Flags()

	cfg, err := comments.PresetByName(a.v.GetString("preset"))
	if err != nil {
		return nil, err
	}

	if a.v.IsSet("rules") {
		var fileRules comments.Config
		if err := a.v.UnmarshalKey("rules", &fileRules); err != nil {
			return nil, fmt.Errorf("invalid rules in config file: %w", err)
		}
		cfg = cfg.Merge(&fileRules)
		logger.Debug("merged rules from config file", "path", a.v.ConfigFileUsed())
	}

	if path, _ := flags.GetString("rules-file"); path != "" {
		fileRules, err := comments.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(fileRules)
		logger.Debug("merged rules file", "path", path)
	}

	if noise, _ := flags.GetStringSlice("noise-prefix"); len(noise) > 0 {
		cfg = cfg.Merge(&comments.Config{StripNoisePrefixes: true, NoisePrefixes: noise})
	}
	if inline, _ := flags.GetStringSlice("inline-marker"); len(inline) > 0 {
		cfg = cfg.Merge(&comments.Config{StripInlineMarkers: true, InlineMarkers: inline})
	}
	if v, _ := flags.GetBool("block-comments"); v {
		cfg.StripBlockComments = true
	}
	if v, _ := flags.GetBool("single-line-blocks"); v {
		cfg.CloseSingleLineBlocks = true
	}
	if v, _ := flags.GetBool("no-noise"); v {
		cfg.StripNoisePrefixes = false
	}
	if v, _ := flags.GetBool("no-inline"); v {
		cfg.StripInlineMarkers = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileOptions builds the per-file options shared by strip and batch.
func (a *app) fileOptions(cmd *cobra.Command) (batch.FileOptions, error) {
	cfg, err := a.buildConfig(cmd)
	if err != nil {
		return batch.FileOptions{}, err
	}

	opts := batch.FileOptions{Stripper: comments.New(cfg)}

	if trim, _ := cmd.Flags().GetBool("trim-trailing"); trim {
		opts.Post = cleaner.NewTrimTrailing()
	}

	maxSizeStr := a.v.GetString("max_size")
	if s := strings.TrimSpace(maxSizeStr); s != "" && s != "0" {
		n, err := humanize.ParseBytes(s)
		if err != nil {
			logger.Error("invalid max-size", "value", maxSizeStr, "error", err)
			return batch.FileOptions{}, err
		}
		opts.MaxBytes = int64(n)
	}

	logger.Debug("rules resolved",
		"doc_comments", cfg.StripDocComments,
		"block_comments", cfg.StripBlockComments,
		"dividers", cfg.StripDividers,
		"noise_prefixes", len(cfg.NoisePrefixes),
		"inline_markers", len(cfg.InlineMarkers),
		"max_bytes", opts.MaxBytes)

	return opts, nil
}
