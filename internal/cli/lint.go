package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/lintcore/internal/logging"
	"github.com/yaklabco/lintcore/pkg/config"
	"github.com/yaklabco/lintcore/pkg/lint"
	_ "github.com/yaklabco/lintcore/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/lintcore/pkg/reporter"
	"github.com/yaklabco/lintcore/pkg/runner"
)

type lintFlags struct {
	format         string
	flavor         string
	ignore         []string
	include        []string
	enable         []string
	disable        []string
	extensions     []string
	strict         bool
	noContext      bool
	compact        bool
	followSymlinks bool
	noConfig       bool
}

const lintLongDescription = `Lint Markdown files.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Rules can be selected by ID (LC001), name (no-hard-tabs), alias or tag
(whitespace) with --enable and --disable.`

const lintExamples = `  lintcore lint                          # Lint current directory
  lintcore lint docs/ README.md          # Lint selected paths
  lintcore lint --fix                    # Fix what can be fixed
  lintcore lint --fix --dry-run          # Show results of fixing without writing
  lintcore lint --fix --dry-run --format diff  # Preview fixes as a unified diff
  lintcore lint --disable whitespace     # Skip every whitespace rule
  lintcore lint --format json            # Machine-readable output`

func newLintCommand(root *rootFlags) *cobra.Command {
	// Only flags the user sets reach the loader; defaults live in config.NewConfig.
	cliCfg := &config.Config{}
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:     "lint [paths...]",
		Short:   "Lint Markdown files",
		Long:    lintLongDescription,
		Example: lintExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, root, cliCfg, flags)
		},
	}

	addLintFlags(cmd, cliCfg, flags)

	return cmd
}

func runLint(cmd *cobra.Command, args []string, root *rootFlags, cliCfg *config.Config, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if cmd.Flags().Changed("flavor") {
		cliCfg.Flavor = config.Flavor(flags.flavor)
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	cliCfg.Ignore = flags.ignore
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable

	workDir, err := os.Getwd()
	if err != nil {
		return exitError(ExitInternalError, fmt.Errorf("get working directory: %w", err))
	}

	cfg, err := loadConfig(ctx, workDir, root.configPath, flags.noConfig, cliCfg)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		logging.FieldFix, cfg.Fix,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return exitError(ExitInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       root.color,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return exitError(ExitInvalidUsage, fmt.Errorf("create reporter: %w", err))
	}

	lintRunner := runner.New(lint.NewPipeline(lint.NewEngine(lint.DefaultRegistry)))
	result, err := lintRunner.Run(ctx, runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     normalizeExtensions(flags.extensions),
		IncludeGlobs:   flags.include,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		Config:         cfg,
	})
	if err != nil {
		return exitError(ExitIOError, fmt.Errorf("lint run failed: %w", err))
	}

	logger.Debug("lint run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)

	if _, err := rep.Report(ctx, result); err != nil {
		return exitError(ExitIOError, fmt.Errorf("report results: %w", err))
	}

	if code := ExitCodeFromResult(result, flags.strict); code != ExitSuccess {
		return exitError(code, ErrLintIssuesFound)
	}
	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	f := cmd.Flags()

	f.BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "compute fixes without writing files")
	f.IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of files linted in parallel (0 = all CPUs)")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "report errors only")
	f.BoolVar(&cfg.IgnoreDisables, "ignore-disables", false, "report problems inside disabled ranges")
	f.BoolVar(&cfg.ReportNeedlessDisables, "report-needless-disables", false, "report disable comments that suppress nothing")
	f.StringVar(&cfg.DirectivePrefix, "directive-prefix", "", "prefix of disable comments (default lintcore)")

	f.StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json, diff")
	f.StringVar(&flags.flavor, "flavor", string(config.FlavorCommonMark), "Markdown flavor: commonmark, gfm")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	f.StringSliceVar(&flags.include, "include", nil, "only lint files matching these glob patterns")
	f.StringSliceVar(&flags.extensions, "ext", nil, "Markdown file extensions (default .md,.markdown)")
	f.StringSliceVar(&flags.enable, "enable", nil, "rules or tags to enable")
	f.StringSliceVar(&flags.disable, "disable", nil, "rules or tags to disable")
	f.BoolVar(&flags.strict, "strict", false, "exit non-zero on warnings too")
	f.BoolVar(&flags.noContext, "no-context", false, "hide source lines under diagnostics")
	f.BoolVar(&flags.compact, "compact", false, "single-line JSON output")
	f.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	f.BoolVar(&flags.noConfig, "no-config", false, "skip config file discovery; --config still applies")
}

// IsLintFailure reports whether err only signals lint findings.
func IsLintFailure(err error) bool {
	return errors.Is(err, ErrLintIssuesFound)
}

// normalizeExtensions lowercases extensions and adds the leading dot.
func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
