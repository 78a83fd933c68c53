// Package cli provides the Cobra command structure for lintcore.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintcore/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	configPath string
	color      string
	logLevel   string
	debug      bool
}

// NewRootCommand creates the root lintcore command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "lintcore",
		Short: "A Markdown linter with inline suppressions and safe auto-fixes",
		Long: `lintcore checks Markdown documents against a set of rules.

Problems can be silenced in place with directive comments such as
<!-- lintcore-disable-next-line no-hard-tabs -->, and fixable problems are
corrected in a single pass that keeps every later position in sync with
earlier edits. Fixed files are written atomically and never when they
changed on disk while being linted.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := flags.logLevel
			if flags.debug {
				level = "debug"
			}
			logging.SetLevel(level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newLintCommand(flags))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	newHelpTheme(flags.color, os.Stdout).apply(rootCmd)

	return rootCmd
}
