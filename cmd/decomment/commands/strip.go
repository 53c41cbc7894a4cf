package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/decomment/internal/batch"
	"github.com/jmylchreest/decomment/internal/logger"
	"github.com/jmylchreest/decomment/internal/output"
)

func (a *app) runStrip(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	input, outputPath := args[0], args[1]

	opts, err := a.fileOptions(cmd)
	if err != nil {
		return err
	}
	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")

	statsFormat, err := statsFormatFlag(cmd)
	if err != nil {
		return err
	}

	logger.Debug("stripping file", "input", input, "output", outputPath, "cleaner", opts.Stripper.Name())
	result, err := batch.StripFile(input, outputPath, opts)
	if err != nil {
		logger.Error("failed to strip file", "input", input, "error", err)
		return err
	}

	for _, w := range result.Warnings {
		logger.Warn("incomplete comment", "input", input, "warning", w.String())
	}

	if statsFormat != "" {
		w, err := output.NewWriter(cmd.ErrOrStderr(), statsFormat)
		if err != nil {
			return err
		}
		if err := w.Write(batch.FileResult{
			Input:    input,
			Output:   outputPath,
			Stats:    result.Stats,
			Warnings: result.Warnings,
		}); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if !a.v.GetBool("quiet") {
		fmt.Fprintf(cmd.OutOrStdout(), "Simplified %s -> %s\n", input, outputPath)
	}
	return nil
}

// statsFormatFlag returns the stats format, or "" when --stats is off.
func statsFormatFlag(cmd *cobra.Command) (output.Format, error) {
	if on, _ := cmd.Flags().GetBool("stats"); !on {
		return "", nil
	}
	s, _ := cmd.Flags().GetString("stats-format")
	return output.ParseFormat(s)
}
