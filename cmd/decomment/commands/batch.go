package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/decomment/internal/batch"
	"github.com/jmylchreest/decomment/internal/logger"
	"github.com/jmylchreest/decomment/internal/output"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Strip every file matching one or more glob patterns",
		Long: `Strip comments from every file matched by the given doublestar glob
patterns. Patterns are resolved against --root; stripped files are written
under --out with the same relative path, or over the originals with
--in-place. Files are processed one at a time; a failing file is reported
and the run continues.

Examples:
  decomment batch "src/**/*.java" --out simplified/
  decomment batch "**/*.java" "**/*.kt" --root app --in-place
  decomment batch "src/**/*.java" --dry-run --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.String("root", ".", "directory patterns are resolved against")
	flags.StringP("out", "o", "", "output directory")
	flags.Bool("in-place", false, "overwrite the input files")
	flags.Bool("dry-run", false, "report what would change without writing files")
	flags.String("format", "text", "report format: text, json, jsonl, yaml")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, patterns []string) error {
	cmd.SilenceUsage = true

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fileOpts, err := a.fileOptions(cmd)
	if err != nil {
		return err
	}
	fileOpts.DryRun, _ = cmd.Flags().GetBool("dry-run")

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	root, _ := cmd.Flags().GetString("root")
	outDir, _ := cmd.Flags().GetString("out")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	if inPlace && outDir != "" {
		return fmt.Errorf("--in-place and --out are mutually exclusive")
	}

	report, err := batch.Run(ctx, batch.Options{
		FileOptions: fileOpts,
		Root:        root,
		Patterns:    patterns,
		OutDir:      outDir,
		InPlace:     inPlace,
	})
	if report != nil {
		w, werr := output.NewWriter(cmd.OutOrStdout(), format)
		if werr != nil {
			return werr
		}
		if werr := w.Write(report); werr != nil {
			return werr
		}
		if werr := w.Flush(); werr != nil {
			return werr
		}
	}
	if err != nil {
		logger.Error("batch run aborted", "error", err)
		return err
	}

	if len(report.Files) == 0 {
		logger.Warn("no files matched", "patterns", patterns, "root", root)
	}
	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(report.Files))
	}
	return nil
}
