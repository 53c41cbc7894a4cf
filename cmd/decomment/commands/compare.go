package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/decomment/internal/textfile"
	"github.com/jmylchreest/decomment/pkg/cleaner/comments"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file>",
		Short: "Show how each preset would simplify a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args[0])
		},
	}
}

func (a *app) runCompare(cmd *cobra.Command, path string) error {
	cmd.SilenceUsage = true

	opts, err := a.fileOptions(cmd)
	if err != nil {
		return err
	}

	lines, err := textfile.Load(path, opts.MaxBytes)
	if err != nil {
		return err
	}

	presets := []struct {
		name string
		cfg  *comments.Config
	}{
		{comments.PresetNameMinimal, comments.PresetMinimal()},
		{comments.PresetNameDefault, comments.DefaultConfig()},
		{comments.PresetNameAggressive, comments.PresetAggressive()},
		{"current", opts.Stripper.Config()},
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== Preset Comparison for %s ===\n", path)
	fmt.Fprintf(out, "Input: %d lines\n\n", len(lines))
	fmt.Fprintf(out, "%-12s %8s %8s %8s %8s %10s\n", "Preset", "Lines", "Removed", "Trimmed", "Reduce%", "Time")
	fmt.Fprintf(out, "%-12s %8s %8s %8s %8s %10s\n", "------", "-----", "-------", "-------", "-------", "----")

	for _, p := range presets {
		result := comments.New(p.cfg).StripWithStats(lines)
		s := result.Stats
		fmt.Fprintf(out, "%-12s %8d %8d %8d %7.1f%% %10v\n",
			p.name,
			s.OutputLines,
			s.TotalLinesRemoved(),
			s.LinesTrimmed,
			s.ReductionPercent(),
			s.Duration.Round(time.Microsecond))
	}

	fmt.Fprintln(out)
	return nil
}
