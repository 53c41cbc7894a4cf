// Package commands implements the CLI commands for decomment.
package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/decomment/internal/logger"
	"github.com/jmylchreest/decomment/internal/version"
)

// app holds state shared by all commands of one invocation.
type app struct {
	v *viper.Viper
}

// NewRootCmd builds the decomment command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "decomment <input> <output>",
		Short: "Strip doc comments, dividers and noisy comments from source files",
		Long: `Decomment writes a simplified copy of a source file with comment
clutter removed: /** ... */ doc blocks (and the blank line after them),
// ===== SECTION ===== dividers, explanatory "// Note:"-style lines and
trailing "// Set the value"-style remarks. Code is left byte-for-byte intact.

Examples:
  # Strip a single file
  decomment Account.java Account.simple.java

  # Keep line comments, only drop doc blocks and dividers
  decomment --preset minimal Account.java out/Account.java

  # Add your own noise markers and show what was removed
  decomment --noise-prefix "HACK:" --stats Account.java out/Account.java

  # Strip a whole tree into another directory
  decomment batch "src/**/*.java" --out simplified/`,
		Args:              cobra.ExactArgs(2),
		Version:           version.String(),
		PersistentPreRunE: a.initConfig,
		RunE:              a.runStrip,
	}

	// Global flags
	pflags := rootCmd.PersistentFlags()
	pflags.String("config", "", "config file (default $HOME/.decomment.yaml)")
	pflags.Bool("debug", false, "enable debug logging")
	pflags.BoolP("quiet", "q", false, "suppress progress output")
	addRuleFlags(pflags)

	_ = a.v.BindPFlag("config", pflags.Lookup("config"))
	_ = a.v.BindPFlag("debug", pflags.Lookup("debug"))
	_ = a.v.BindPFlag("quiet", pflags.Lookup("quiet"))
	_ = a.v.BindPFlag("preset", pflags.Lookup("preset"))
	_ = a.v.BindPFlag("max_size", pflags.Lookup("max-size"))

	flags := rootCmd.Flags()
	flags.Bool("stats", false, "print what was removed to stderr")
	flags.String("stats-format", "text", "stats format: text, json, jsonl, yaml")
	flags.Bool("dry-run", false, "compute the result without writing the output file")

	rootCmd.AddCommand(newBatchCmd(a), newCompareCmd(a), newVersionCmd())

	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".decomment")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("DECOMMENT")
	a.v.AutomaticEnv()

	// A missing default config file is fine; a broken or missing explicit one is not.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	logger.Init(logger.Options{
		Debug:  a.v.GetBool("debug"),
		Quiet:  a.v.GetBool("quiet"),
		Output: cmd.ErrOrStderr(),
	})
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
